package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var addPluginKind string

// addCmd attaches a managed service to the linked project
var addCmd = &cobra.Command{
	Use:   "add --plugin <postgresql|redis>",
	Short: "Attach a managed plugin (PostgreSQL or Redis)",
	Long: `Provisions a managed service for the project and injects its
connection URL as an environment variable:

  postgresql -> DATABASE_URL
  redis      -> REDIS_URL

The variable appears in the app environment on the next deploy.`,
	RunE: runAdd,
}

// connectCmd opens an interactive shell to a plugin
var connectCmd = &cobra.Command{
	Use:   "connect <postgres|redis>",
	Short: "Open an interactive shell to a managed plugin",
	Long: `Fetches the plugin's connection URL and execs the matching client:

  skylift connect postgres   # psql
  skylift connect redis      # redis-cli`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"postgres", "redis"},
	RunE:      runConnect,
}

func init() {
	addCmd.Flags().StringVar(&addPluginKind, "plugin", "", "Plugin kind: postgresql or redis (required)")
	addCmd.MarkFlagRequired("plugin")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	pl, err := client.AddPlugin(ctx, projectID, addPluginKind)
	if err != nil {
		return fmt.Errorf("failed to add plugin: %w", err)
	}

	fmt.Printf("Added %s plugin [%s]\n", pl.Kind, pl.Status)
	fmt.Printf("Injected variable: %s\n", pl.Variable)
	return nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	// The CLI speaks "postgres"; the API kind is "postgresql".
	var kind, tool string
	switch args[0] {
	case "postgres":
		kind, tool = "postgresql", "psql"
	case "redis":
		kind, tool = "redis", "redis-cli"
	default:
		return fmt.Errorf("unknown plugin %q (want postgres or redis)", args[0])
	}

	url, err := client.PluginConnection(ctx, projectID, kind)
	if err != nil {
		return err
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH; connection URL:\n  %s", tool, url)
	}

	var sh *exec.Cmd
	if tool == "redis-cli" {
		sh = exec.Command(path, "-u", url)
	} else {
		sh = exec.Command(path, url)
	}
	sh.Stdin = os.Stdin
	sh.Stdout = os.Stdout
	sh.Stderr = os.Stderr
	return sh.Run()
}

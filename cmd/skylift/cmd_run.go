package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// runCmd executes a command locally with the project environment
var runCmd = &cobra.Command{
	Use:   "run <command...>",
	Short: "Run a command locally with the project's environment",
	Long: `Fetches the project's resolved variables (user variables plus
injected DATABASE_URL, REDIS_URL and PORT) and executes the command
with them exported:

  skylift run python manage.py migrate
  skylift run env`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	vars, err := client.ExportVariables(ctx, projectID)
	if err != nil {
		return fmt.Errorf("failed to fetch variables: %w", err)
	}

	path, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("%s not found in PATH", args[0])
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summary := fmt.Sprintf("Running %s with %d project variables", args[0], len(vars))
	if len(keys) > 5 {
		summary += fmt.Sprintf(" (%s, ...)", strings.Join(keys[:5], ", "))
	} else if len(keys) > 0 {
		summary += fmt.Sprintf(" (%s)", strings.Join(keys, ", "))
	}
	fmt.Fprintln(os.Stderr, summary)

	// Project variables win over the local shell on conflicts.
	env := os.Environ()
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}

	child := exec.Command(path, args[1:]...)
	child.Env = env
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr

	if err := child.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		return err
	}
	return nil
}

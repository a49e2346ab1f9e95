// Package main implements the skylift CLI: the operator surface for
// deploying projects to the Skylift platform.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	apiBase     string
	projectFlag string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "skylift",
	Short: "skylift - deploy projects to the Skylift platform",
	Long: `skylift is the command-line interface for the Skylift platform.

Typical flow for a new project:
  skylift login
  skylift init
  skylift add --plugin postgresql
  skylift add --plugin redis
  skylift variables set --from-file .env
  skylift up
  skylift domain
  skylift open`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "Control plane URL (default from ~/.skylift/config.json)")
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "", "Project ID (default from .skylift/project.json)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(linkCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(variablesCmd)
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(domainCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(connectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var variablesFromFile string

// variablesCmd lists the project's variables
var variablesCmd = &cobra.Command{
	Use:   "variables",
	Short: "List and manage project variables",
	Long: `Lists the project's environment variables. Secret-looking values
are masked; injected variables (DATABASE_URL, REDIS_URL, PORT) are
marked and cannot be edited.

Subcommands:
  set   - Set variables from KEY=VALUE args or a dotenv file
  unset - Remove a variable`,
	RunE: runVariablesList,
}

// variablesSetCmd upserts variables
var variablesSetCmd = &cobra.Command{
	Use:   "set [KEY=VALUE...]",
	Short: "Set project variables",
	Long: `Sets variables from KEY=VALUE arguments or uploads a dotenv file:

  skylift variables set SECRET_KEY=abc LOG_LEVEL=info
  skylift variables set --from-file .env`,
	RunE: runVariablesSet,
}

// variablesUnsetCmd removes a variable
var variablesUnsetCmd = &cobra.Command{
	Use:   "unset <KEY>",
	Short: "Remove a project variable",
	Args:  cobra.ExactArgs(1),
	RunE:  runVariablesUnset,
}

func init() {
	variablesSetCmd.Flags().StringVar(&variablesFromFile, "from-file", "", "Path to a dotenv file to upload")
	variablesCmd.AddCommand(variablesSetCmd, variablesUnsetCmd)
}

func runVariablesList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	vars, err := client.ListVariables(ctx, projectID)
	if err != nil {
		return err
	}
	if len(vars) == 0 {
		fmt.Println("No variables set.")
		return nil
	}

	sort.Slice(vars, func(i, j int) bool { return vars[i].Key < vars[j].Key })

	width := 0
	for _, v := range vars {
		if len(v.Key) > width {
			width = len(v.Key)
		}
	}
	for _, v := range vars {
		marker := ""
		if v.Injected {
			marker = "  (injected)"
		}
		fmt.Printf("%-*s = %s%s\n", width, v.Key, v.Value, marker)
	}
	return nil
}

func runVariablesSet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	var updated int
	switch {
	case variablesFromFile != "":
		if len(args) > 0 {
			return fmt.Errorf("--from-file cannot be combined with KEY=VALUE arguments")
		}
		raw, err := os.ReadFile(variablesFromFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", variablesFromFile, err)
		}
		updated, err = client.SetVariablesDotenv(ctx, projectID, raw)
		if err != nil {
			return err
		}
	case len(args) > 0:
		pairs := make(map[string]string, len(args))
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok || key == "" {
				return fmt.Errorf("invalid argument %q (want KEY=VALUE)", arg)
			}
			pairs[key] = value
		}
		var err error
		updated, err = client.SetVariables(ctx, projectID, pairs)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("nothing to set: pass KEY=VALUE arguments or --from-file")
	}

	fmt.Printf("Updated %d variable(s). Changes apply on the next deploy.\n", updated)
	return nil
}

func runVariablesUnset(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := requireClient()
	if err != nil {
		return err
	}
	projectID, err := resolveProjectID()
	if err != nil {
		return err
	}

	if err := client.UnsetVariable(ctx, projectID, args[0]); err != nil {
		return err
	}
	fmt.Printf("Removed %s. Changes apply on the next deploy.\n", args[0])
	return nil
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	loginToken string
	loginEmail string
)

// loginCmd authenticates against the control plane
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with the Skylift platform",
	Long: `Authenticate with the Skylift control plane and save the session.

Two modes:
  skylift login --token sk_...     # paste a personal access token
  skylift login --email you@co.com # email + password prompt

The verified token is written to ~/.skylift/config.json.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Personal access token (sk_...)")
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompts for password)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadUserConfig()
	if err != nil {
		return err
	}
	if apiBase != "" {
		cfg.APIBase = apiBase
	}

	token := loginToken
	if token == "" {
		email := loginEmail
		reader := bufio.NewReader(os.Stdin)
		if email == "" {
			fmt.Print("Email: ")
			line, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read email: %w", err)
			}
			email = strings.TrimSpace(line)
		}
		fmt.Print("Password: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password := strings.TrimRight(line, "\r\n")

		client, _, err := newClient()
		if err != nil {
			return err
		}
		out, err := client.Login(ctx, email, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		token = out.Token
		cfg.Email = out.User.Email
	}

	cfg.Token = token

	// Round-trip the token before persisting it.
	verify := newClientWith(cfg)
	user, err := verify.WhoAmI(ctx)
	if err != nil {
		return fmt.Errorf("token rejected by %s: %w", verify.BaseURL(), err)
	}
	cfg.Email = user.Email

	if err := saveUserConfig(cfg); err != nil {
		return err
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Email, verify.BaseURL())
	return nil
}

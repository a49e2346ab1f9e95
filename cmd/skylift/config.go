package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"skylift/pkg/apiclient"
)

const (
	userConfigDir  = ".skylift"
	userConfigFile = "config.json"
	linkFile       = "project.json"
)

// userConfig is the per-user CLI state in ~/.skylift/config.json.
type userConfig struct {
	Token   string `json:"token"`
	APIBase string `json:"api_base"`
	Email   string `json:"email,omitempty"`
}

// projectLink is the per-directory link state in .skylift/project.json.
type projectLink struct {
	ProjectID string `json:"project_id"`
	Name      string `json:"name"`
}

func userConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, userConfigDir, userConfigFile), nil
}

func loadUserConfig() (userConfig, error) {
	var cfg userConfig
	path, err := userConfigPath()
	if err != nil {
		return cfg, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("corrupt config at %s: %w", path, err)
	}
	return cfg, nil
}

func saveUserConfig(cfg userConfig) error {
	path, err := userConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Holds the access token; keep it out of other users' reach.
	return os.WriteFile(path, raw, 0o600)
}

func linkPath(dir string) string {
	return filepath.Join(dir, userConfigDir, linkFile)
}

func loadLink(dir string) (projectLink, error) {
	var link projectLink
	raw, err := os.ReadFile(linkPath(dir))
	if err != nil {
		return link, err
	}
	if err := json.Unmarshal(raw, &link); err != nil {
		return link, fmt.Errorf("corrupt link file at %s: %w", linkPath(dir), err)
	}
	return link, nil
}

func saveLink(dir string, link projectLink) error {
	if err := os.MkdirAll(filepath.Join(dir, userConfigDir), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(link, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(linkPath(dir), raw, 0o644)
}

// newClient builds an API client from flags and the saved config.
// Commands that require auth should use requireClient instead.
func newClient() (*apiclient.Client, userConfig, error) {
	cfg, err := loadUserConfig()
	if err != nil {
		return nil, cfg, err
	}
	base := apiBase
	if base == "" {
		base = cfg.APIBase
	}
	return apiclient.New(base, cfg.Token), cfg, nil
}

// newClientWith builds a client from an explicit config, honoring the
// --api flag override.
func newClientWith(cfg userConfig) *apiclient.Client {
	base := apiBase
	if base == "" {
		base = cfg.APIBase
	}
	return apiclient.New(base, cfg.Token)
}

// requireClient errors out when no token is saved yet.
func requireClient() (*apiclient.Client, error) {
	client, cfg, err := newClient()
	if err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("not logged in. Run 'skylift login' first")
	}
	return client, nil
}

// resolveProjectID returns the target project: the --project flag when
// set, otherwise the link file in the working directory.
func resolveProjectID() (string, error) {
	if projectFlag != "" {
		return projectFlag, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	link, err := loadLink(wd)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("no project linked. Run 'skylift init' or 'skylift link <project-id>'")
		}
		return "", err
	}
	return link.ProjectID, nil
}

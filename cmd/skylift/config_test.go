package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkRoundTrip(t *testing.T) {
	dir := t.TempDir()

	_, err := loadLink(dir)
	require.True(t, os.IsNotExist(err))

	want := projectLink{ProjectID: "p-123", Name: "qwen-backend"}
	require.NoError(t, saveLink(dir, want))

	got, err := loadLink(dir)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestLoadLinkCorrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, userConfigDir), 0o755))
	require.NoError(t, os.WriteFile(linkPath(dir), []byte("{not json"), 0o644))

	_, err := loadLink(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "corrupt link file")
}

func TestUserConfigRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadUserConfig()
	require.NoError(t, err)
	require.Empty(t, cfg.Token)

	cfg.Token = "sk_id_secret"
	cfg.APIBase = "https://api.skylift.app"
	require.NoError(t, saveUserConfig(cfg))

	path, err := userConfigPath()
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := loadUserConfig()
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestResolveProjectIDFlagWins(t *testing.T) {
	projectFlag = "p-from-flag"
	t.Cleanup(func() { projectFlag = "" })

	id, err := resolveProjectID()
	require.NoError(t, err)
	require.Equal(t, "p-from-flag", id)
}

// chdir changes the working directory for the duration of the test.
// Equivalent to t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}

func TestResolveProjectIDFromLink(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, saveLink(dir, projectLink{ProjectID: "p-linked", Name: "app"}))
	chdir(t, dir)

	id, err := resolveProjectID()
	require.NoError(t, err)
	require.Equal(t, "p-linked", id)
}

func TestResolveProjectIDUnlinked(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := resolveProjectID()
	require.Error(t, err)
	require.Contains(t, err.Error(), "no project linked")
}

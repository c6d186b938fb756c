package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// isolate keeps the developer's own config file and environment out of the tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GAR_TOKEN", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(NewViper(now), "", now)
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Year)
	assert.Equal(t, FormatJSON, cfg.Format)
	assert.False(t, cfg.Save)
	assert.Empty(t, cfg.User)
	assert.Empty(t, cfg.Token)
	assert.ErrorIs(t, cfg.RequireToken(), ErrMissingToken)
	assert.Equal(t, "reviews.db", filepath.Base(cfg.StorePath))
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("GITHUB_TOKEN", "ghp_primary")
	t.Setenv("GAR_TOKEN", "ghp_secondary")
	t.Setenv("GAR_YEAR", "2023")
	t.Setenv("GAR_FORMAT", "TEXT")
	t.Setenv("GAR_ENTERPRISE_URL", "https://github.example.com")

	cfg, err := Load(NewViper(now), "", now)
	require.NoError(t, err)

	assert.Equal(t, "ghp_primary", cfg.Token)
	assert.NoError(t, cfg.RequireToken())
	assert.Equal(t, 2023, cfg.Year)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, "https://github.example.com", cfg.EnterpriseURL)
}

func TestLoad_TokenPrecedence(t *testing.T) {
	tests := []struct {
		name      string
		githubEnv string
		garEnv    string
		want      string
	}{
		{name: "config file only", want: "ghp_file"},
		{name: "prefixed env over file", garEnv: "ghp_gar", want: "ghp_gar"},
		{name: "GITHUB_TOKEN over file", githubEnv: "ghp_github", want: "ghp_github"},
		{name: "GITHUB_TOKEN over prefixed env", githubEnv: "ghp_github", garEnv: "ghp_gar", want: "ghp_github"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := isolate(t)
			t.Setenv("GITHUB_TOKEN", tt.githubEnv)
			t.Setenv("GAR_TOKEN", tt.garEnv)
			path := filepath.Join(dir, "review.yaml")
			require.NoError(t, os.WriteFile(path, []byte("token: ghp_file\n"), 0o644))

			cfg, err := Load(NewViper(now), path, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Token)
		})
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "review.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user: hubot\nyear: 2022\nformat: yaml\nsave: true\nstore: /tmp/r.db\n"), 0o644))

	cfg, err := Load(NewViper(now), path, now)
	require.NoError(t, err)

	assert.Equal(t, "hubot", cfg.User)
	assert.Equal(t, 2022, cfg.Year)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.True(t, cfg.Save)
	assert.Equal(t, "/tmp/r.db", cfg.StorePath)
}

func TestLoad_DiscoveredConfigFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".github-annual-review.yaml"), []byte("user: monalisa\n"), 0o644))

	cfg, err := Load(NewViper(now), "", now)
	require.NoError(t, err)
	assert.Equal(t, "monalisa", cfg.User)
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	dir := isolate(t)

	_, err := Load(NewViper(now), filepath.Join(dir, "nope.yaml"), now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name        string
		cfg         Config
		expectError string
	}{
		{name: "valid", cfg: Config{Year: 2024, Format: FormatText, StorePath: "r.db"}},
		{name: "next year is allowed", cfg: Config{Year: 2026, Format: FormatJSON, StorePath: "r.db"}},
		{name: "year before GitHub", cfg: Config{Year: 2007, Format: FormatJSON, StorePath: "r.db"}, expectError: "invalid year"},
		{name: "year too far ahead", cfg: Config{Year: 2027, Format: FormatJSON, StorePath: "r.db"}, expectError: "invalid year"},
		{name: "unknown format", cfg: Config{Year: 2024, Format: "xml", StorePath: "r.db"}, expectError: "invalid format"},
		{name: "empty store", cfg: Config{Year: 2024, Format: FormatJSON}, expectError: "store path"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate(now)
			if tc.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectError)
		})
	}
}

func TestConfig_RequireUser(t *testing.T) {
	assert.ErrorIs(t, (&Config{}).RequireUser(), ErrMissingUser)
	assert.NoError(t, (&Config{User: "octocat"}).RequireUser())
}

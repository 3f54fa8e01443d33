package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadConfig reads so the host environment
// (for example a CI runner exporting GITHUB_TOKEN) cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"INPUT_GITHUB_TOKEN", "GITHUB_TOKEN", "GITHUB_DOMAIN", "GITHUB_REPOSITORY",
		"INPUT_DELETE_USER_NAME", "DELETE_USER_NAME",
		"INPUT_BODY_REGEX", "BODY_REGEX",
		"INPUT_ISSUE_NUMBER", "ISSUE_NUMBER",
		"INPUT_DRY_RUN", "DRY_RUN",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadGitHubConfig(t *testing.T) {
	tests := []struct {
		name       string
		domain     string
		inputToken string
		token      string
		wantToken  string
		wantDomain string
		wantErr    bool
	}{
		{
			name:       "Explicit github.com",
			domain:     "github.com",
			token:      "test-token",
			wantToken:  "test-token",
			wantDomain: "github.com",
		},
		{
			name:       "Custom GitHub domain",
			domain:     "github.example.com",
			token:      "test-token",
			wantToken:  "test-token",
			wantDomain: "github.example.com",
		},
		{
			name:       "Empty domain should default to github.com",
			domain:     "",
			token:      "test-token",
			wantToken:  "test-token",
			wantDomain: "github.com",
		},
		{
			name:       "Action input takes precedence",
			inputToken: "input-token",
			token:      "env-token",
			wantToken:  "input-token",
			wantDomain: "github.com",
		},
		{
			name:    "Missing token",
			domain:  "github.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GITHUB_DOMAIN", tt.domain)
			t.Setenv("GITHUB_TOKEN", tt.token)
			t.Setenv("INPUT_GITHUB_TOKEN", tt.inputToken)

			config, err := LoadConfig()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			assert.Equal(t, tt.wantDomain, config.GitHub.Domain)
			assert.Equal(t, tt.wantToken, config.GitHub.Token)
		})
	}
}

func TestLoadPurgeConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("GITHUB_TOKEN", "test-token")
	t.Setenv("GITHUB_REPOSITORY", "octo/repo")
	t.Setenv("INPUT_DELETE_USER_NAME", "bot")
	t.Setenv("DELETE_USER_NAME", "ignored")
	t.Setenv("BODY_REGEX", "^auto:")
	t.Setenv("INPUT_ISSUE_NUMBER", " 42 ")
	t.Setenv("INPUT_DRY_RUN", "true")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "octo/repo", config.GitHub.Repository)
	assert.Equal(t, "bot", config.Purge.UserName)
	assert.Equal(t, "^auto:", config.Purge.BodyRegex)
	assert.Equal(t, "42", config.Purge.IssueNumber)
	assert.True(t, config.Purge.DryRun)

	issueNumber, err := ValidatePurgeConfig(config)
	require.NoError(t, err)
	assert.Equal(t, 42, issueNumber)
}

func TestValidatePurgeConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			GitHub: GitHubConfig{Token: "t", Repository: "octo/repo"},
			Purge:  PurgeConfig{UserName: "bot", BodyRegex: "^auto:", IssueNumber: "7"},
		}
	}

	tests := []struct {
		name          string
		mutate        func(*Config)
		wantErr       bool
		errorContains string
	}{
		{
			name:   "All fields present",
			mutate: func(*Config) {},
		},
		{
			name:          "Missing repository",
			mutate:        func(c *Config) { c.GitHub.Repository = "" },
			wantErr:       true,
			errorContains: "repository",
		},
		{
			name:          "Missing user name",
			mutate:        func(c *Config) { c.Purge.UserName = "" },
			wantErr:       true,
			errorContains: "delete_user_name",
		},
		{
			name:          "Missing regex",
			mutate:        func(c *Config) { c.Purge.BodyRegex = "" },
			wantErr:       true,
			errorContains: "body_regex",
		},
		{
			name:          "Missing issue number",
			mutate:        func(c *Config) { c.Purge.IssueNumber = "" },
			wantErr:       true,
			errorContains: "issue_number",
		},
		{
			name:          "Non-numeric issue number",
			mutate:        func(c *Config) { c.Purge.IssueNumber = "abc" },
			wantErr:       true,
			errorContains: `"abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.mutate(config)

			n, err := ValidatePurgeConfig(config)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				assert.Contains(t, err.Error(), tt.errorContains)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 7, n)
		})
	}
}

func TestParseIssueNumber(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "42", want: 42},
		{raw: " 9 ", want: 9},
		{raw: "abc", wantErr: true},
		{raw: "0", wantErr: true},
		{raw: "-3", wantErr: true},
		{raw: "4.5", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, err := ParseIssueNumber(tt.raw)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidConfig))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

// Package config provides centralized configuration management for the application.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// ErrInvalidConfig marks errors caused by missing or malformed inputs.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration parameters for the application.
type Config struct {
	GitHub GitHubConfig
	Purge  PurgeConfig
}

// GitHubConfig holds GitHub specific configuration.
type GitHubConfig struct {
	Token      string
	Domain     string
	Repository string
}

// PurgeConfig holds the comment selection inputs. Values are kept as raw strings
// so that flags can override them before validation.
type PurgeConfig struct {
	UserName    string
	BodyRegex   string
	IssueNumber string
	DryRun      bool
}

// LoadConfig initializes and loads configuration from environment variables.
// GitHub Actions inputs (INPUT_*) take precedence over the plain variable names.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("github.token", "INPUT_GITHUB_TOKEN", "GITHUB_TOKEN")
	v.BindEnv("github.domain", "GITHUB_DOMAIN")
	v.BindEnv("github.repository", "GITHUB_REPOSITORY")
	v.BindEnv("purge.user_name", "INPUT_DELETE_USER_NAME", "DELETE_USER_NAME")
	v.BindEnv("purge.body_regex", "INPUT_BODY_REGEX", "BODY_REGEX")
	v.BindEnv("purge.issue_number", "INPUT_ISSUE_NUMBER", "ISSUE_NUMBER")
	v.BindEnv("purge.dry_run", "INPUT_DRY_RUN", "DRY_RUN")

	v.SetDefault("github.domain", "github.com")
	v.SetDefault("purge.dry_run", false)

	config := &Config{
		GitHub: GitHubConfig{
			Token:      v.GetString("github.token"),
			Domain:     v.GetString("github.domain"),
			Repository: v.GetString("github.repository"),
		},
		Purge: PurgeConfig{
			UserName:    v.GetString("purge.user_name"),
			BodyRegex:   v.GetString("purge.body_regex"),
			IssueNumber: strings.TrimSpace(v.GetString("purge.issue_number")),
			DryRun:      v.GetBool("purge.dry_run"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig ensures that all required configuration values are provided.
func validateConfig(config *Config) error {
	if config.GitHub.Token == "" {
		return errors.Wrap(ErrInvalidConfig, "missing required input: github_token (INPUT_GITHUB_TOKEN or GITHUB_TOKEN)")
	}

	return nil
}

// ValidatePurgeConfig validates the purge inputs and returns the parsed issue number.
// All missing inputs are reported at once.
func ValidatePurgeConfig(config *Config) (int, error) {
	var missingVars []string

	if config.GitHub.Repository == "" {
		missingVars = append(missingVars, "repository")
	}
	if config.Purge.UserName == "" {
		missingVars = append(missingVars, "delete_user_name")
	}
	if config.Purge.BodyRegex == "" {
		missingVars = append(missingVars, "body_regex")
	}
	if config.Purge.IssueNumber == "" {
		missingVars = append(missingVars, "issue_number")
	}

	if len(missingVars) > 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "missing required inputs: %v", missingVars)
	}

	return ParseIssueNumber(config.Purge.IssueNumber)
}

// ParseIssueNumber parses an issue number, which must be a positive integer.
func ParseIssueNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidConfig, "issue_number %q is not an integer", raw)
	}
	if n <= 0 {
		return 0, errors.Wrapf(ErrInvalidConfig, "issue_number %d must be positive", n)
	}

	return n, nil
}

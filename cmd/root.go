// Package cmd provides the command-line interface for the purge-comments tool.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running the root command without a
// subcommand performs a purge, which is how the GitHub Action invokes it.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "purge-comments",
		Short: "Delete GitHub issue comments by author and body pattern",
		Long: `purge-comments lists every comment on a GitHub issue, keeps the ones written
by a given user whose body matches a regular expression, and deletes them one
by one in the order GitHub returns them.

Inputs are read from the environment (INPUT_GITHUB_TOKEN, INPUT_DELETE_USER_NAME,
INPUT_BODY_REGEX, INPUT_ISSUE_NUMBER and GITHUB_REPOSITORY, as set by a GitHub
Actions runner) and can be overridden with flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPurge,
	}

	rootCmd.PersistentFlags().StringP("repository", "r", "", "GitHub repository name (e.g., 'owner/repo'), defaults to GITHUB_REPOSITORY")
	rootCmd.PersistentFlags().StringP("issue-number", "i", "", "issue or pull request number whose comments are purged")
	rootCmd.PersistentFlags().StringP("user", "u", "", "login of the comment author to match exactly")
	rootCmd.PersistentFlags().StringP("body-regex", "e", "", "regular expression searched for in the comment body")
	rootCmd.PersistentFlags().Bool("dry-run", false, "log matching comments without deleting them")

	rootCmd.AddCommand(newPurgeCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

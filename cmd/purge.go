package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/danielolaszy/purge/internal/actions"
	"github.com/danielolaszy/purge/internal/config"
	"github.com/danielolaszy/purge/internal/github"
	"github.com/danielolaszy/purge/internal/logging"
	"github.com/danielolaszy/purge/internal/purger"
)

// newCommentService is replaced in tests.
var newCommentService = func(cfg config.GitHubConfig) (purger.CommentService, error) {
	client, err := github.NewClient(cfg, cfg.Repository)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func newPurgeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete matching comments from an issue",
		Long: `Delete the comments on an issue that were written by --user and whose body
matches --body-regex. The pattern is searched for anywhere in the body; anchor
it with ^ or $ to restrict it.

Deletions are permanent. They happen one at a time and the first failure stops
the run, leaving earlier deletions applied.

Example:
  purge-comments purge -r owner/repo -i 42 -u github-actions[bot] -e '^<!-- preview -->'`,
		RunE: runPurge,
	}
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	issueNumber, err := config.ValidatePurgeConfig(cfg)
	if err != nil {
		return err
	}

	criteria, err := purger.NewCriteria(cfg.Purge.UserName, cfg.Purge.BodyRegex)
	if err != nil {
		return err
	}

	logging.Info("starting process for " + cfg.GitHub.Repository)

	svc, err := newCommentService(cfg.GitHub)
	if err != nil {
		return errors.Wrap(err, "failed to initialize github client")
	}

	result, err := purger.New(svc, purger.WithDryRun(cfg.Purge.DryRun)).Run(cmd.Context(), issueNumber, criteria)
	if err != nil {
		return err
	}

	return actions.SetOutputs(map[string]string{
		"deleted_count": strconv.Itoa(len(result.Deleted)),
	})
}

// applyFlags overrides environment values with flags the user set explicitly.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("repository") {
		cfg.GitHub.Repository, _ = flags.GetString("repository")
	}
	if flags.Changed("issue-number") {
		cfg.Purge.IssueNumber, _ = flags.GetString("issue-number")
	}
	if flags.Changed("user") {
		cfg.Purge.UserName, _ = flags.GetString("user")
	}
	if flags.Changed("body-regex") {
		cfg.Purge.BodyRegex, _ = flags.GetString("body-regex")
	}
	if flags.Changed("dry-run") {
		cfg.Purge.DryRun, _ = flags.GetBool("dry-run")
	}
}

package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-logr/logr"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/log"
	"github.com/sms-spam-demo/deploycheck/internal/project"
)

const originRemoteName = "origin"

var _ check.Check = &GitRemoteCheck{}

// GitRemoteCheck evaluates that the project is a git repository with an
// origin remote whose URL is retrievable. This check has no skip flag.
type GitRemoteCheck struct {
	open func(path string) (*git.Repository, error)
}

func NewGitRemoteCheck() *GitRemoteCheck {
	return &GitRemoteCheck{open: git.PlainOpen}
}

func (c *GitRemoteCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	repo, err := c.open(pref.RootDir)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return check.Outcome{
				Message: "project is not a git repository",
			}, nil
		}
		return check.Outcome{}, fmt.Errorf("could not open repository: %w", err)
	}

	rem, err := repo.Remote(originRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return check.Outcome{
				Message: fmt.Sprintf("no %s remote is configured", originRemoteName),
			}, nil
		}
		return check.Outcome{}, fmt.Errorf("could not read remotes: %w", err)
	}

	urls := rem.Config().URLs
	if len(urls) == 0 || urls[0] == "" {
		return check.Outcome{
			Message: fmt.Sprintf("%s remote has no URL", originRemoteName),
		}, nil
	}

	logger.V(log.DBG).Info("git remote inspected", "remote", originRemoteName, "url", urls[0])

	return check.Outcome{
		Passed:  true,
		Message: fmt.Sprintf("%s remote points at %s", originRemoteName, urls[0]),
	}, nil
}

func (c *GitRemoteCheck) Name() string {
	return "GitRemote"
}

func (c *GitRemoteCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the repository has an origin remote with a retrievable URL",
		Level:       check.LevelMandatory,
	}
}

func (c *GitRemoteCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check GitRemote could not find a usable origin remote.",
		Suggestion: "Initialize the repository and add an origin remote pointing at the project's upstream.",
	}
}

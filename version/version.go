// Package version identifies the running deploycheck build and the
// project's published releases.
package version

import (
	"context"
	"fmt"

	semver "github.com/Masterminds/semver/v3"
	"github.com/go-logr/logr"
	"github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"
)

// Populated at build time through ldflags.
var (
	version = "unknown"
	commit  = "unknown"
)

const (
	releaseOwner = "sms-spam-demo"
	releaseRepo  = "deploycheck"
)

var Version = VersionContext{
	Name:    releaseOwner + "/" + releaseRepo,
	Version: version,
	Commit:  commit,
}

// VersionClient is the release-lookup surface of the Github repositories API.
type VersionClient interface {
	GetLatestRelease(ctx context.Context, owner string, repo string) (*github.RepositoryRelease, *github.Response, error)
}

type VersionContext struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

func (vc *VersionContext) String() string {
	return fmt.Sprintf("%s <commit: %s>", vc.Version, vc.Commit)
}

// LatestReleasedVersion returns the latest published release when it is
// newer than the running build, and nil otherwise.
func (vc *VersionContext) LatestReleasedVersion(cmd *cobra.Command, svc VersionClient) (*github.RepositoryRelease, error) {
	ctx := cmd.Context()
	logger := logr.FromContextOrDiscard(ctx)

	latestRelease, resp, err := svc.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return nil, err
	}
	logger.V(1).Info("Github release lookup", "rate limit", resp.Rate.String())

	current, err := semver.NewVersion(vc.Version)
	if err != nil {
		return nil, fmt.Errorf("could not parse the running version %q: %w", vc.Version, err)
	}

	latest, err := semver.NewVersion(latestRelease.GetTagName())
	if err != nil {
		return nil, fmt.Errorf("could not parse the release tag %q: %w", latestRelease.GetTagName(), err)
	}

	if latest.GreaterThan(current) {
		return latestRelease, nil
	}

	return nil, nil
}

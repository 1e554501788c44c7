package engine

import (
	"context"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/policy/deploy"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
)

// InitializeChecks assembles the battery in its fixed execution order. Skip
// flags remove whole categories; the git remote check always runs.
func InitializeChecks(ctx context.Context, cfg runtime.Config) ([]check.Check, error) {
	checks := []check.Check{
		&deploy.ProjectLayoutCheck{},
		&deploy.PipelineStagesCheck{},
		&deploy.ImageDirectivesCheck{},
		&deploy.DependencyManifestCheck{},
	}

	if !cfg.SkipSSH {
		checks = append(checks, deploy.NewDeployCredentialsCheck())
	}

	if !cfg.SkipContainerRuntime {
		// The remote engine probe reuses the SSH credential material, so
		// it is enabled only when the credential checks are.
		checks = append(checks, deploy.NewContainerRuntimeCheck(!cfg.SkipSSH))
	}

	checks = append(checks, deploy.NewGitRemoteCheck())

	return checks, nil
}

// CheckNames returns the names of the battery for cfg, in execution order.
func CheckNames(ctx context.Context, cfg runtime.Config) ([]string, error) {
	checks, err := InitializeChecks(ctx, cfg)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(checks))
	for _, c := range checks {
		names = append(names, c.Name())
	}
	return names, nil
}

package deploy

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/exec"
	"github.com/sms-spam-demo/deploycheck/internal/log"
	"github.com/sms-spam-demo/deploycheck/internal/project"
	"github.com/sms-spam-demo/deploycheck/internal/remote"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
)

// DockerClient is the subset of the engine API the runtime check needs.
type DockerClient interface {
	ServerVersion(ctx context.Context) (types.Version, error)
	ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error)
	ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error)
	Close() error
}

var _ check.Check = &ContainerRuntimeCheck{}

// ContainerRuntimeCheck evaluates that the container engine and its compose
// plugin are invocable, that a local image build succeeds, and, when a host
// is configured and credential checks are enabled, that the engine is usable
// on the deploy host by the deploy account. An unusable key downgrades the
// remote probe to a warning since the credential category already reports it.
type ContainerRuntimeCheck struct {
	newClient       func(ctx context.Context) (DockerClient, error)
	runner          exec.Runner
	newRemoteRunner func(fs afero.Fs, host, keyPath string) (remote.CommandRunner, error)
	probeRemote     bool
	probeTimeout    time.Duration
	buildTimeout    time.Duration
	remoteTimeout   time.Duration
	smokeTag        string
}

func NewContainerRuntimeCheck(probeRemote bool) *ContainerRuntimeCheck {
	return &ContainerRuntimeCheck{
		probeRemote: probeRemote,
		newClient: func(ctx context.Context) (DockerClient, error) {
			return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
		},
		runner: exec.NewRunner(),
		newRemoteRunner: func(fs afero.Fs, host, keyPath string) (remote.CommandRunner, error) {
			signer, err := remote.LoadSigner(fs, keyPath)
			if err != nil {
				return nil, err
			}
			return remote.NewClient(host, signer), nil
		},
		probeTimeout:  runtime.DefaultProbeTimeout,
		buildTimeout:  runtime.DefaultBuildTimeout,
		remoteTimeout: runtime.DefaultRemoteCommandTimeout,
		smokeTag:      "deploycheck-smoketest:latest",
	}
}

func (c *ContainerRuntimeCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	var failures, details, warnings []string

	cli, err := c.newClient(ctx)
	if err != nil {
		failures = append(failures, fmt.Sprintf("container engine client not available: %v", err))
	} else {
		defer cli.Close()

		versionCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
		version, err := cli.ServerVersion(versionCtx)
		cancel()
		if err != nil {
			failures = append(failures, fmt.Sprintf("container engine not reachable: %v", err))
		} else {
			logger.V(log.DBG).Info("container engine probed", "version", version.Version)
			details = append(details, fmt.Sprintf("engine %s", version.Version))

			warning, failure := c.buildSmokeTest(ctx, cli, pref)
			if warning != "" {
				warnings = append(warnings, warning)
			}
			if failure != "" {
				failures = append(failures, failure)
			} else if warning == "" {
				details = append(details, "image build smoke test succeeded")
			}
		}
	}

	composeCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	res, err := c.runner.Run(composeCtx, "docker", "compose", "version")
	cancel()
	switch {
	case err != nil:
		failures = append(failures, fmt.Sprintf("compose plugin not invocable: %v", err))
	case res.ExitCode != 0:
		failures = append(failures, fmt.Sprintf("compose plugin exited with %d: %s", res.ExitCode, res.Stderr))
	default:
		details = append(details, res.Stdout)
	}

	if pref.RemoteHost != "" && c.probeRemote {
		remoteWarning, remoteFailure, remoteDetail := c.probeRemoteEngine(ctx, pref)
		switch {
		case remoteWarning != "":
			warnings = append(warnings, remoteWarning)
		case remoteFailure != "":
			failures = append(failures, remoteFailure)
		default:
			details = append(details, remoteDetail)
		}
	}

	if len(failures) > 0 {
		return check.Outcome{
			Message:  strings.Join(failures, "; "),
			Warnings: warnings,
		}, nil
	}

	return check.Outcome{
		Passed:   true,
		Message:  strings.Join(details, "; "),
		Warnings: warnings,
	}, nil
}

// buildSmokeTest builds the project image under a throwaway tag and removes
// it afterwards. Returns a warning when the build cannot be attempted and a
// failure when it was attempted and did not succeed.
func (c *ContainerRuntimeCheck) buildSmokeTest(ctx context.Context, cli DockerClient, pref project.ProjectReference) (warning, failure string) {
	logger := logr.FromContextOrDiscard(ctx)

	exists, err := afero.Exists(pref.Fs, filepath.Join(pref.RootDir, check.ContainerFilename))
	if err != nil || !exists {
		return fmt.Sprintf("no %s present, skipping image build smoke test", check.ContainerFilename), ""
	}

	buildCtx, cancel := context.WithTimeout(ctx, c.buildTimeout)
	defer cancel()

	buildContext, err := buildContextTar(pref.Fs, pref.RootDir)
	if err != nil {
		return "", fmt.Sprintf("could not assemble build context: %v", err)
	}

	resp, err := cli.ImageBuild(buildCtx, buildContext, types.ImageBuildOptions{
		Tags:        []string{c.smokeTag},
		Dockerfile:  check.ContainerFilename,
		Remove:      true,
		ForceRemove: true,
	})
	if err != nil {
		return "", fmt.Sprintf("image build failed: %v", err)
	}
	defer resp.Body.Close()

	if err := drainBuildOutput(resp.Body); err != nil {
		return "", fmt.Sprintf("image build failed: %v", err)
	}

	if _, err := cli.ImageRemove(ctx, c.smokeTag, image.RemoveOptions{Force: true, PruneChildren: true}); err != nil {
		logger.Error(err, "unable to remove smoke test image", "tag", c.smokeTag)
	}

	return "", ""
}

// probeRemoteEngine distinguishes an absent engine from an engine the deploy
// account may not use. A key that cannot be loaded skips the probe with a
// warning rather than failing the category.
func (c *ContainerRuntimeCheck) probeRemoteEngine(ctx context.Context, pref project.ProjectReference) (warning, failure, detail string) {
	runner, err := c.newRemoteRunner(pref.Fs, pref.RemoteHost, pref.PrivateKeyPath)
	if err != nil {
		return fmt.Sprintf("remote engine check on %s skipped: %v", pref.RemoteHost, err), "", ""
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.remoteTimeout)
	defer cancel()

	res, err := runner.Run(probeCtx, "docker info --format '{{.ServerVersion}}'")
	switch {
	case err != nil:
		return "", fmt.Sprintf("remote engine check on %s failed: %v", pref.RemoteHost, err), ""
	case res.ExitCode == 127:
		return "", fmt.Sprintf("container engine is not installed on %s", pref.RemoteHost), ""
	case res.ExitCode != 0 && strings.Contains(strings.ToLower(res.Output), "permission denied"):
		return "", fmt.Sprintf("deploy account lacks container engine access on %s", pref.RemoteHost), ""
	case res.ExitCode != 0:
		return "", fmt.Sprintf("remote engine on %s reported an error: %s", pref.RemoteHost, res.Output), ""
	}

	return "", "", fmt.Sprintf("remote engine %s on %s", res.Output, pref.RemoteHost)
}

func (c *ContainerRuntimeCheck) Name() string {
	return "ContainerRuntime"
}

func (c *ContainerRuntimeCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the container engine and compose plugin are usable, the image builds, and the deploy host can run it",
		Level:       check.LevelMandatory,
	}
}

func (c *ContainerRuntimeCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check ContainerRuntime could not use the container engine locally or on the deploy host.",
		Suggestion: "Install the engine and its compose plugin, add the deploy account to the docker group on the host, and verify the image builds locally.",
	}
}

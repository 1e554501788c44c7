package deploy

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/log"
	"github.com/sms-spam-demo/deploycheck/internal/project"
	"github.com/sms-spam-demo/deploycheck/internal/remote"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
)

var _ check.Check = &DeployCredentialsCheck{}

// DeployCredentialsCheck evaluates the deploy key pair and, when a remote
// host is configured, that it grants authenticated command execution there.
// Without a host the remote sub-check is not attempted at all.
type DeployCredentialsCheck struct {
	loadSigner     func(afero.Fs, string) (ssh.Signer, error)
	newRunner      func(host string, signer ssh.Signer) remote.CommandRunner
	commandTimeout time.Duration
}

func NewDeployCredentialsCheck() *DeployCredentialsCheck {
	return &DeployCredentialsCheck{
		loadSigner: remote.LoadSigner,
		newRunner: func(host string, signer ssh.Signer) remote.CommandRunner {
			return remote.NewClient(host, signer)
		},
		commandTimeout: runtime.DefaultRemoteCommandTimeout,
	}
}

func (c *DeployCredentialsCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	signer, err := c.loadSigner(pref.Fs, pref.PrivateKeyPath)
	if err != nil {
		return check.Outcome{
			Message: fmt.Sprintf("deploy key unusable: %v", err),
		}, nil
	}

	pubExists, err := afero.Exists(pref.Fs, pref.PublicKeyPath)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not stat %s: %w", pref.PublicKeyPath, err)
	}
	if !pubExists {
		return check.Outcome{
			Message: fmt.Sprintf("public key %s not found", pref.PublicKeyPath),
		}, nil
	}

	pubBytes, err := afero.ReadFile(pref.Fs, pref.PublicKeyPath)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not read %s: %w", pref.PublicKeyPath, err)
	}
	if _, _, _, _, err := ssh.ParseAuthorizedKey(pubBytes); err != nil {
		return check.Outcome{
			Message: fmt.Sprintf("public key %s is not parseable: %v", pref.PublicKeyPath, err),
		}, nil
	}

	if pref.RemoteHost == "" {
		logger.V(log.DBG).Info("no remote host configured, skipping remote connectivity")
		return check.Outcome{
			Passed:  true,
			Message: "deploy key pair is valid",
		}, nil
	}

	runCtx, cancel := context.WithTimeout(ctx, c.commandTimeout)
	defer cancel()

	runner := c.newRunner(pref.RemoteHost, signer)
	res, err := runner.Run(runCtx, "echo connected")
	if err != nil {
		return check.Outcome{
			Message: fmt.Sprintf("remote command execution on %s failed: %v", pref.RemoteHost, err),
		}, nil
	}
	if res.ExitCode != 0 {
		return check.Outcome{
			Message: fmt.Sprintf("remote command on %s exited with %d: %s", pref.RemoteHost, res.ExitCode, res.Output),
		}, nil
	}

	return check.Outcome{
		Passed:  true,
		Message: fmt.Sprintf("deploy key pair is valid and %s accepts it", pref.RemoteHost),
	}, nil
}

func (c *DeployCredentialsCheck) Name() string {
	return "DeployCredentials"
}

func (c *DeployCredentialsCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the deploy key pair is structurally valid and, when a host is configured, accepted by it",
		Level:       check.LevelMandatory,
	}
}

func (c *DeployCredentialsCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check DeployCredentials could not validate the deploy key pair or reach the configured host.",
		Suggestion: "Generate a key pair with the provisioning scripts, install the public key on the deploy host, and re-run.",
	}
}

// Package engine executes the validation battery sequentially and collects
// the results into the final report.
package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	deperrors "github.com/sms-spam-demo/deploycheck/errors"
	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/log"
	"github.com/sms-spam-demo/deploycheck/internal/project"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
	"github.com/sms-spam-demo/deploycheck/validation"
)

// CheckEngine defines the functionality necessary to run all checks for a battery,
// and return the results of that check execution.
type CheckEngine interface {
	// ExecuteChecks should execute all checks in a battery, and internally
	// store the results. Errors returned by ExecuteChecks should reflect
	// errors in pre-validation tasks, and not errors in individual check
	// execution itself.
	ExecuteChecks(context.Context) error
	// Results returns the outcome of executing all checks.
	Results(context.Context) validation.Results
}

// New creates a new validatorEngine from the passed params.
func New(ctx context.Context,
	checks []check.Check,
	cfg runtime.Config,
) (*validatorEngine, error) {
	return &validatorEngine{
		cfg:    cfg,
		checks: checks,
		fs:     afero.NewOsFs(),
	}, nil
}

// validatorEngine runs checks against a project tree on a plain filesystem.
type validatorEngine struct {
	cfg    runtime.Config
	checks []check.Check
	fs     afero.Fs

	projectRef project.ProjectReference
	results    validation.Results
}

// ExecuteChecks runs the battery in order. Check failures and errors are
// recorded, never propagated; an error return means the engine could not
// establish the target at all.
func (e *validatorEngine) ExecuteChecks(ctx context.Context) error {
	logger := logr.FromContextOrDiscard(ctx)
	logger.Info("target project", "dir", e.cfg.ProjectDir)

	if e.cfg.ProjectDir == "" {
		return deperrors.ErrProjectDirEmpty
	}

	root, err := filepath.Abs(e.cfg.ProjectDir)
	if err != nil {
		return fmt.Errorf("could not resolve project directory: %v", err)
	}

	exists, err := afero.DirExists(e.fs, root)
	if err != nil {
		return fmt.Errorf("could not stat project directory: %v", err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", deperrors.ErrProjectDirNotFound, root)
	}

	e.projectRef = project.ProjectReference{
		RootDir:        root,
		Fs:             e.fs,
		RemoteHost:     e.cfg.RemoteHost,
		PrivateKeyPath: e.cfg.PrivateKey,
		PublicKeyPath:  e.cfg.PublicKey,
	}
	e.results.TestedProject = root
	e.results.RemoteHost = e.cfg.RemoteHost

	logger.V(log.DBG).Info("executing checks")
	for _, ch := range e.checks {
		logger.V(log.DBG).Info("running check", "check", ch.Name())

		checkStartTime := time.Now()
		outcome, err := ch.Validate(ctx, e.projectRef)
		checkElapsedTime := time.Since(checkStartTime)

		for _, warning := range outcome.Warnings {
			logger.WithValues("result", "WARNING").Info(warning, "check", ch.Name())
			e.results.Warned = append(e.results.Warned, validation.Result{
				Check:       ch,
				ElapsedTime: checkElapsedTime,
				Outcome:     check.Outcome{Message: warning},
			})
		}

		if err != nil {
			logger.WithValues("result", "ERROR", "err", err.Error()).Info("check completed", "check", ch.Name())
			res := validation.Result{Check: ch, ElapsedTime: checkElapsedTime, Outcome: outcome}
			e.results.Errors = append(e.results.Errors, *res.WithError(err))
			continue
		}

		if !outcome.Passed {
			logger.WithValues("result", "FAILED").Info("check completed", "check", ch.Name(), "reason", outcome.Message)
			e.results.Failed = append(e.results.Failed, validation.Result{Check: ch, ElapsedTime: checkElapsedTime, Outcome: outcome})
			continue
		}

		logger.WithValues("result", "PASSED").Info("check completed", "check", ch.Name())
		e.results.Passed = append(e.results.Passed, validation.Result{Check: ch, ElapsedTime: checkElapsedTime, Outcome: outcome})
	}

	e.results.PassedOverall = len(e.results.Errors) == 0 && len(e.results.Failed) == 0

	return nil
}

// Results will return the results of check execution.
func (e *validatorEngine) Results(ctx context.Context) validation.Results {
	return e.results
}

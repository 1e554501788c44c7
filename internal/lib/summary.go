package lib

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/sms-spam-demo/deploycheck/validation"
)

// LogResultSummary emits a human-oriented tally of the run plus a suggestion
// for each check that did not pass.
func LogResultSummary(ctx context.Context, results validation.Results) {
	logger := logr.FromContextOrDiscard(ctx)

	logger.Info("validation summary",
		"executed", results.ExecutedCount(),
		"passed", len(results.Passed),
		"failed", results.FailedCount(),
		"warnings", len(results.Warned),
	)

	for _, result := range results.Failed {
		logger.Info("suggested fix", "check", result.Name(), "suggestion", result.Help().Suggestion)
	}

	for _, result := range results.Errors {
		logger.Info("check could not be completed", "check", result.Name(), "error", result.Error())
	}
}

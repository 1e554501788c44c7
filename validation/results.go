// Package validation holds the report types produced by a validator run.
package validation

import (
	"time"

	"github.com/sms-spam-demo/deploycheck/internal/check"
)

// Result records the outcome of one executed check.
type Result struct {
	check.Check
	ElapsedTime time.Duration
	// Outcome is what the check reported after running.
	Outcome check.Outcome
	// err contains the error a check itself throws if it failed to run.
	// If populated, the expectation is that this Result is in the
	// Results{}.Errors slice.
	err error
}

// Results is the aggregate report for a full validation run. Warned holds
// one entry per advisory finding; those entries reference the same check
// that produced a Passed or Failed entry and never change the verdict.
type Results struct {
	TestedProject string
	RemoteHost    string
	PassedOverall bool
	Passed        []Result
	Failed        []Result
	Errors        []Result
	Warned        []Result
}

func (r Result) Error() error {
	return r.err
}

func (r *Result) WithError(err error) *Result {
	r.err = err
	return r
}

// FailedCount is the number of checks counting against the verdict. Checks
// that errored out could not establish their condition and count as failed.
func (r Results) FailedCount() int {
	return len(r.Failed) + len(r.Errors)
}

// ExecutedCount is the number of checks that ran.
func (r Results) ExecutedCount() int {
	return len(r.Passed) + len(r.Failed) + len(r.Errors)
}

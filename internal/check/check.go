// Package check defines the interface every validation category implements,
// along with the outcome type checks report back to the engine.
package check

import (
	"context"

	"github.com/sms-spam-demo/deploycheck/internal/project"
)

// Check is the interface containing all methods necessary to use and
// identify a given check.
type Check interface {
	// Validate runs the check against the referenced project. The returned
	// error indicates the check itself could not run; a check that ran and
	// found problems reports them through the Outcome instead.
	Validate(ctx context.Context, pref project.ProjectReference) (Outcome, error)
	// Name returns the name of the check.
	Name() string
	// Metadata returns the check's metadata.
	Metadata() Metadata
	// Help returns the check's help text.
	Help() HelpText
}

// Outcome is the result of a single executed check. A check contributes
// exactly one pass or fail; warnings are advisory findings that never
// change the verdict on their own.
type Outcome struct {
	Passed   bool
	Message  string
	Warnings []string
}

// Metadata contains useful information regarding the check.
type Metadata struct {
	Description string `json:"description" xml:"description"`
	Level       string `json:"level" xml:"level"`
}

// HelpText is the help message associated with any given check.
type HelpText struct {
	Message    string `json:"message" xml:"message"`
	Suggestion string `json:"suggestion" xml:"suggestion"`
}

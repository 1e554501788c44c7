package formatters

import (
	"github.com/sms-spam-demo/deploycheck/validation"
	"github.com/sms-spam-demo/deploycheck/version"
)

// getResponse will extract the runtime's results and format it to fit the
// UserResponse definition in a way that can then be formatted.
func getResponse(r validation.Results) UserResponse {
	passedChecks := make([]checkExecutionInfo, 0, len(r.Passed))
	failedChecks := make([]checkExecutionInfo, 0, len(r.Failed))
	erroredChecks := make([]checkExecutionInfo, 0, len(r.Errors))
	warnings := make([]checkExecutionInfo, 0, len(r.Warned))

	if len(r.Passed) > 0 {
		for _, check := range r.Passed {
			passedChecks = append(passedChecks, checkExecutionInfo{
				Name:        check.Name(),
				ElapsedTime: float64(check.ElapsedTime.Milliseconds()),
				Description: check.Metadata().Description,
			})
		}
	}

	if len(r.Failed) > 0 {
		for _, check := range r.Failed {
			failedChecks = append(failedChecks, checkExecutionInfo{
				Name:        check.Name(),
				ElapsedTime: float64(check.ElapsedTime.Milliseconds()),
				Description: check.Metadata().Description,
				Reason:      check.Outcome.Message,
				Help:        check.Help().Message,
				Suggestion:  check.Help().Suggestion,
			})
		}
	}

	if len(r.Errors) > 0 {
		for _, check := range r.Errors {
			erroredChecks = append(erroredChecks, checkExecutionInfo{
				Name:        check.Name(),
				ElapsedTime: float64(check.ElapsedTime.Milliseconds()),
				Description: check.Metadata().Description,
				Help:        check.Help().Message,
			})
		}
	}

	if len(r.Warned) > 0 {
		for _, check := range r.Warned {
			warnings = append(warnings, checkExecutionInfo{
				Name:   check.Name(),
				Reason: check.Outcome.Message,
			})
		}
	}

	response := UserResponse{
		Project:     r.TestedProject,
		RemoteHost:  r.RemoteHost,
		Passed:      r.PassedOverall,
		LibraryInfo: version.Version,
		Results: resultsText{
			Passed:   passedChecks,
			Failed:   failedChecks,
			Errors:   erroredChecks,
			Warnings: warnings,
		},
	}

	return response
}

// UserResponse is the standard user-facing response.
type UserResponse struct {
	Project     string                 `json:"project" xml:"project"`
	RemoteHost  string                 `json:"remote_host,omitempty" xml:"remote_host,omitempty"`
	Passed      bool                   `json:"passed" xml:"passed"`
	LibraryInfo version.VersionContext `json:"test_library" xml:"test_library"`
	Results     resultsText            `json:"results" xml:"results"`
}

// resultsText represents the results of check execution against the project.
type resultsText struct {
	Passed   []checkExecutionInfo `json:"passed" xml:"passed"`
	Failed   []checkExecutionInfo `json:"failed" xml:"failed"`
	Errors   []checkExecutionInfo `json:"errors" xml:"errors"`
	Warnings []checkExecutionInfo `json:"warnings" xml:"warnings"`
}

// checkExecutionInfo contains all possible output fields that a user might see in their result.
// Empty fields will be omitted.
type checkExecutionInfo struct {
	Name        string  `json:"name,omitempty" xml:"name,omitempty"`
	ElapsedTime float64 `json:"elapsed_time" xml:"elapsed_time"`
	Description string  `json:"description,omitempty" xml:"description,omitempty"`
	Reason      string  `json:"reason,omitempty" xml:"reason,omitempty"`
	Help        string  `json:"help,omitempty" xml:"help,omitempty"`
	Suggestion  string  `json:"suggestion,omitempty" xml:"suggestion,omitempty"`
}

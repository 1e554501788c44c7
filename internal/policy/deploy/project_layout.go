package deploy

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/log"
	"github.com/sms-spam-demo/deploycheck/internal/project"
)

var _ check.Check = &ProjectLayoutCheck{}

// ProjectLayoutCheck evaluates that the project tree contains every file and
// directory the deployment pipeline relies on.
type ProjectLayoutCheck struct{}

func (c *ProjectLayoutCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	missing := []string{}
	for _, rel := range requiredProjectPaths {
		exists, err := afero.Exists(pref.Fs, filepath.Join(pref.RootDir, rel))
		if err != nil {
			return check.Outcome{}, fmt.Errorf("could not stat %s: %w", rel, err)
		}
		if !exists {
			missing = append(missing, rel)
		}
	}

	logger.V(log.DBG).Info("required paths inspected", "required", len(requiredProjectPaths), "missing", len(missing))

	if len(missing) > 0 {
		return check.Outcome{
			Message: fmt.Sprintf("missing required paths: %s", strings.Join(missing, ", ")),
		}, nil
	}

	return check.Outcome{
		Passed:  true,
		Message: "all required project paths are present",
	}, nil
}

func (c *ProjectLayoutCheck) Name() string {
	return "ProjectLayout"
}

func (c *ProjectLayoutCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the project tree contains the application, pipeline, and container files the deployment relies on",
		Level:       check.LevelMandatory,
	}
}

func (c *ProjectLayoutCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check ProjectLayout found required files or directories missing from the project tree.",
		Suggestion: "Restore the listed paths from version control, or run the check from the project root.",
	}
}

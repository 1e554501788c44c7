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

var _ check.Check = &ImageDirectivesCheck{}

// ImageDirectivesCheck evaluates the container descriptor. The file itself is
// required, but its expected directives are build hints only, so absences
// are reported as warnings rather than failures.
type ImageDirectivesCheck struct{}

func (c *ImageDirectivesCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	path := filepath.Join(pref.RootDir, check.ContainerFilename)
	exists, err := afero.Exists(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not stat %s: %w", check.ContainerFilename, err)
	}
	if !exists {
		return check.Outcome{
			Message: fmt.Sprintf("%s not found at project root", check.ContainerFilename),
		}, nil
	}

	contents, err := afero.ReadFile(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not read %s: %w", check.ContainerFilename, err)
	}

	text := string(contents)
	warnings := []string{}
	for _, directive := range expectedImageDirectives {
		if !strings.Contains(text, directive) {
			warnings = append(warnings, fmt.Sprintf("%s does not contain expected directive %q", check.ContainerFilename, directive))
		}
	}

	logger.V(log.DBG).Info("image directives inspected", "expected", len(expectedImageDirectives), "missing", len(warnings))

	return check.Outcome{
		Passed:   true,
		Message:  fmt.Sprintf("%s is present", check.ContainerFilename),
		Warnings: warnings,
	}, nil
}

func (c *ImageDirectivesCheck) Name() string {
	return "ImageDirectives"
}

func (c *ImageDirectivesCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the container descriptor exists and carries the directives the deployment expects",
		Level:       check.LevelAdvisory,
	}
}

func (c *ImageDirectivesCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check ImageDirectives could not find the container descriptor.",
		Suggestion: "Add a Dockerfile at the project root; review warnings for directives the image usually carries.",
	}
}

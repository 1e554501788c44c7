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

var _ check.Check = &PipelineStagesCheck{}

// PipelineStagesCheck evaluates that the pipeline descriptor exists and
// declares every mandatory stage. Unlike the container and dependency
// descriptors, missing stages fail the run.
type PipelineStagesCheck struct{}

func (c *PipelineStagesCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	path := filepath.Join(pref.RootDir, check.PipelineFilename)
	exists, err := afero.Exists(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not stat %s: %w", check.PipelineFilename, err)
	}
	if !exists {
		return check.Outcome{
			Message: fmt.Sprintf("%s not found at project root", check.PipelineFilename),
		}, nil
	}

	contents, err := afero.ReadFile(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not read %s: %w", check.PipelineFilename, err)
	}

	text := string(contents)
	missing := []string{}
	for _, stage := range requiredPipelineStages {
		if !strings.Contains(text, fmt.Sprintf("stage('%s')", stage)) {
			missing = append(missing, stage)
		}
	}

	logger.V(log.DBG).Info("pipeline stages inspected", "required", len(requiredPipelineStages), "missing", len(missing))

	if len(missing) > 0 {
		return check.Outcome{
			Message: fmt.Sprintf("%s is missing mandatory stages: %s", check.PipelineFilename, strings.Join(missing, ", ")),
		}, nil
	}

	return check.Outcome{
		Passed:  true,
		Message: "all mandatory pipeline stages are declared",
	}, nil
}

func (c *PipelineStagesCheck) Name() string {
	return "PipelineStages"
}

func (c *PipelineStagesCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the pipeline descriptor declares the checkout, build, test, and deploy stages",
		Level:       check.LevelMandatory,
	}
}

func (c *PipelineStagesCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check PipelineStages could not find the pipeline descriptor or one of its mandatory stages.",
		Suggestion: "Add the missing stage('...') blocks to the Jenkinsfile; the pipeline will not deploy without them.",
	}
}

package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/sms-spam-demo/deploycheck/artifacts"
	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/formatters"
	"github.com/sms-spam-demo/deploycheck/internal/lib"
	"github.com/sms-spam-demo/deploycheck/validation"
)

type CheckConfig struct {
	IncludeJUnitResults bool
}

// RunValidation executes checks, writes logs and results.
func RunValidation(
	ctx context.Context,
	runChecks func(context.Context) (validation.Results, error),
	cfg CheckConfig,
	formatter formatters.ResponseFormatter,
	rw lib.ResultWriter,
) (validation.Results, error) {
	// Configure artifact writing if not already configured. For CLI
	// executions, we default to writing to the filesystem.
	artifactsWriter := artifacts.WriterFromContext(ctx)
	if artifactsWriter == nil {
		return validation.Results{}, errors.New("no artifact writer was configured")
	}
	// Fail early if we cannot write to the results path.
	resultsFilePath, err := artifactsWriter.WriteFile(ResultsFilenameWithExtension(formatter.FileExtension()), strings.NewReader(""))
	if err != nil {
		return validation.Results{}, err
	}

	resultsFile, err := rw.OpenFile(resultsFilePath)
	if err != nil {
		return validation.Results{}, err
	}

	defer resultsFile.Close()
	resultsOutputTarget := io.MultiWriter(os.Stdout, resultsFile)

	// Execute Checks.
	results, err := runChecks(ctx)
	if err != nil {
		return validation.Results{}, err
	}

	// Format and write the results.
	formattedResults, err := formatter.Format(ctx, results)
	if err != nil {
		return validation.Results{}, err
	}

	fmt.Fprintln(resultsOutputTarget, string(formattedResults))

	// Optionally write the JUnit results alongside the regular results.
	if cfg.IncludeJUnitResults {
		if err := writeJUnit(ctx, results); err != nil {
			return validation.Results{}, err
		}
	}

	log.Infof("Validation result: %s", convertPassedOverall(results.PassedOverall))

	return results, nil
}

// writeJUnit will write JUnit results as an artifact using the ArtifactWriter configured
// in ctx.
func writeJUnit(ctx context.Context, results validation.Results) error {
	junitformatter, err := formatters.NewByName("junitxml")
	if err != nil {
		return err
	}

	junitResults, err := junitformatter.Format(ctx, results)
	if err != nil {
		return err
	}

	if aw := artifacts.WriterFromContext(ctx); aw != nil {
		junitFilename, err := aw.WriteFile(check.DefaultJUnitFilename, bytes.NewReader(junitResults))
		if err != nil {
			return err
		}
		log.Tracef("JUnitXML written to %s", junitFilename)
	}

	return nil
}

func convertPassedOverall(passedOverall bool) string {
	if passedOverall {
		return "PASSED"
	}

	return "FAILED"
}

// ResultsFilenameWithExtension swaps the extension of the default results
// filename for the one the configured formatter emits.
func ResultsFilenameWithExtension(ext string) string {
	base := strings.TrimSuffix(check.DefaultTestResultsFilename, filepath.Ext(check.DefaultTestResultsFilename))
	return strings.Join([]string{base, ext}, ".")
}

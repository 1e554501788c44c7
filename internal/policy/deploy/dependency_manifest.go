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

var _ check.Check = &DependencyManifestCheck{}

// DependencyManifestCheck evaluates the dependency manifest. The file itself
// is required; the expected package entries are advisory and surface as
// warnings when absent.
type DependencyManifestCheck struct{}

func (c *DependencyManifestCheck) Validate(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
	logger := logr.FromContextOrDiscard(ctx)

	path := filepath.Join(pref.RootDir, check.DependencyManifestFilename)
	exists, err := afero.Exists(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not stat %s: %w", check.DependencyManifestFilename, err)
	}
	if !exists {
		return check.Outcome{
			Message: fmt.Sprintf("%s not found at project root", check.DependencyManifestFilename),
		}, nil
	}

	contents, err := afero.ReadFile(pref.Fs, path)
	if err != nil {
		return check.Outcome{}, fmt.Errorf("could not read %s: %w", check.DependencyManifestFilename, err)
	}

	text := strings.ToLower(string(contents))
	warnings := []string{}
	for _, pkg := range expectedPackages {
		if !strings.Contains(text, pkg) {
			warnings = append(warnings, fmt.Sprintf("%s does not list expected package %q", check.DependencyManifestFilename, pkg))
		}
	}

	logger.V(log.DBG).Info("dependency manifest inspected", "expected", len(expectedPackages), "missing", len(warnings))

	return check.Outcome{
		Passed:   true,
		Message:  fmt.Sprintf("%s is present", check.DependencyManifestFilename),
		Warnings: warnings,
	}, nil
}

func (c *DependencyManifestCheck) Name() string {
	return "DependencyManifest"
}

func (c *DependencyManifestCheck) Metadata() check.Metadata {
	return check.Metadata{
		Description: "Checking that the dependency manifest exists and lists the packages both model runtimes need",
		Level:       check.LevelAdvisory,
	}
}

func (c *DependencyManifestCheck) Help() check.HelpText {
	return check.HelpText{
		Message:    "Check DependencyManifest could not find the dependency manifest.",
		Suggestion: "Add a requirements.txt at the project root; review warnings for packages the demo usually needs.",
	}
}

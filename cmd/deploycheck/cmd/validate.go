package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/go-github/v57/github"
	"github.com/spf13/cobra"

	"github.com/sms-spam-demo/deploycheck/artifacts"
	deperrors "github.com/sms-spam-demo/deploycheck/errors"
	"github.com/sms-spam-demo/deploycheck/internal/cli"
	"github.com/sms-spam-demo/deploycheck/internal/formatters"
	"github.com/sms-spam-demo/deploycheck/internal/lib"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
	"github.com/sms-spam-demo/deploycheck/internal/viper"
	"github.com/sms-spam-demo/deploycheck/validation"
	"github.com/sms-spam-demo/deploycheck/version"
)

// runValidation is introduced to make testing of this command possible, it has the same method signature as cli.RunValidation.
type runValidation func(context.Context, func(ctx context.Context) (validation.Results, error), cli.CheckConfig, formatters.ResponseFormatter, lib.ResultWriter) (validation.Results, error)

// runValidationFn is the production implementation handed to validateCmd.
var runValidationFn runValidation = cli.RunValidation

func validateCmd(runvalidation runValidation) *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate <project-dir>",
		Short: "Run the deployment setup checks for a project",
		Long:  `This command will run the deployment setup checks for a project directory, covering its layout, pipeline and container descriptors, dependency manifest, deploy credentials, container runtime, and git remote.`,
		Args:  validatePositionalArgs,
		// this fmt.Sprintf is in place to keep spacing consistent with cobras two spaces that's used in: Usage, Flags, etc
		Example: fmt.Sprintf("  %s", "deploycheck validate ./sms-spam-demo --host deploy.example.com"),
		PreRun:  func(cmd *cobra.Command, args []string) { checkForNewerReleaseVersion(cmd) },
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateRunE(cmd, args, runvalidation)
		},
	}

	flags := validateCmd.Flags()

	viper := viper.Instance()
	flags.String("host", "", "Deploy host to validate against, as [user@]host[:port]. Host-dependent checks are skipped when unset. (env: DPLCK_HOST)")
	_ = viper.BindPFlag("host", flags.Lookup("host"))

	flags.String("ssh-key", "", fmt.Sprintf("Path to the private key used to reach the deploy host. Defaults to %s. (env: DPLCK_SSH_KEY)", runtime.DefaultSSHKeyPath))
	_ = viper.BindPFlag("ssh_key", flags.Lookup("ssh-key"))

	flags.Bool("skip-ssh", false, "Skip the deploy credential checks. (env: DPLCK_SKIP_SSH)")
	_ = viper.BindPFlag("skip_ssh", flags.Lookup("skip-ssh"))

	flags.Bool("skip-docker", false, "Skip the container runtime checks. (env: DPLCK_SKIP_DOCKER)")
	_ = viper.BindPFlag("skip_docker", flags.Lookup("skip-docker"))

	flags.String("format", "", fmt.Sprintf("Response output format. Choose from: %s. (env: DPLCK_FORMAT)", "json, xml, junitxml"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))

	flags.Bool("junit", false, "Write a JUnit XML rendition of the results alongside the regular results file. (env: DPLCK_JUNIT)")
	_ = viper.BindPFlag("junit", flags.Lookup("junit"))

	flags.String("artifacts", "", "Where check-specific artifacts will be written. (env: DPLCK_ARTIFACTS)")
	_ = viper.BindPFlag("artifacts", flags.Lookup("artifacts"))

	flags.String("gh-auth-token", "", "A Github auth token can be specified to work around rate limits")
	_ = viper.BindPFlag("gh-auth-token", flags.Lookup("gh-auth-token"))

	return validateCmd
}

// validateRunE executes the validation battery using the user args to inform the execution.
func validateRunE(cmd *cobra.Command, args []string, runvalidation runValidation) error {
	ctx := cmd.Context()
	logger, err := logr.FromContext(ctx)
	if err != nil {
		return fmt.Errorf("invalid logging configuration")
	}
	logger.Info("deploycheck version", "version", version.Version.String())

	// Render the Viper configuration as a runtime.Config
	cfg, err := runtime.NewConfigFrom(*viper.Instance())
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cfg.ProjectDir = args[0]

	artifactsWriter, err := artifacts.NewFilesystemWriter(artifacts.WithDirectory(cfg.Artifacts))
	if err != nil {
		return err
	}

	// Add the artifact writer to the context for use by checks.
	ctx = artifacts.ContextWithWriter(ctx, artifactsWriter)

	runner, err := lib.NewValidationRunner(ctx, cfg)
	if err != nil {
		return err
	}

	cmd.SilenceUsage = true

	results, err := runvalidation(
		ctx,
		func(ctx context.Context) (validation.Results, error) {
			if err := runner.Eng.ExecuteChecks(ctx); err != nil {
				return validation.Results{}, err
			}
			return runner.Eng.Results(ctx), nil
		},
		cli.CheckConfig{
			IncludeJUnitResults: cfg.WriteJUnit,
		},
		runner.Formatter,
		runner.Rw,
	)
	if err != nil {
		return err
	}

	lib.LogResultSummary(ctx, results)

	if !results.PassedOverall {
		return deperrors.ErrValidationFailed
	}

	return nil
}

func validatePositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("a project directory positional argument is required")
	}

	return nil
}

// checkForNewerReleaseVersion checks if there is a newer release available
func checkForNewerReleaseVersion(cmd *cobra.Command) {
	logger := logr.FromContextOrDiscard(cmd.Context())

	// use an authenticated client if a token is provided
	var client *github.Client
	ghToken, err := cmd.Flags().GetString("gh-auth-token")
	if err == nil && len(ghToken) > 0 {
		client = github.NewClient(&http.Client{
			// Timeout in 1s in case Github is slow to respond
			Timeout: time.Second * 1,
		}).WithAuthToken(ghToken)
	} else {
		client = github.NewClient(&http.Client{
			// timeout in 1s in case Github is slow to respond
			Timeout: time.Second * 1,
		})
	}
	// check if a newer release is available
	latestRelease, err := version.Version.LatestReleasedVersion(cmd, client.Repositories)
	if err != nil {
		logger.Error(err, "Unable to determine if running the latest release")
	}
	if latestRelease != nil {
		logger.Info("Found newer release", "New version", *latestRelease.TagName, "available at", *latestRelease.HTMLURL)
	}
}

package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sms-spam-demo/deploycheck/artifacts"
	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/formatters"
	"github.com/sms-spam-demo/deploycheck/internal/project"
	"github.com/sms-spam-demo/deploycheck/internal/runtime"
	"github.com/sms-spam-demo/deploycheck/validation"
)

var _ = Describe("CLI Library function", func() {
	When("invoking validation using the CLI library", func() {
		Context("without passing in an artifact writer ", func() {
			It("should throw an error", func() {
				_, err := RunValidation(context.TODO(), func(ctx context.Context) (validation.Results, error) { return validation.Results{}, nil }, CheckConfig{}, nil, nil)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring("no artifact writer"))
			})
		})

		Context("with a preconfigured artifact writer", func() {
			var testcontext context.Context
			var artifactWriter *artifacts.FilesystemWriter
			var testFormatter formatters.ResponseFormatter

			BeforeEach(func() {
				tmpDir, err := os.MkdirTemp("", "lib-execute-*")
				Expect(err).ToNot(HaveOccurred())
				artifactWriter, err = artifacts.NewFilesystemWriter(artifacts.WithDirectory(tmpDir))
				Expect(err).ToNot(HaveOccurred())
				testcontext = artifacts.ContextWithWriter(context.Background(), artifactWriter)
				DeferCleanup(os.RemoveAll, tmpDir)

				testFormatter, err = formatters.NewByName(formatters.DefaultFormat)
				Expect(err).ToNot(HaveOccurred())
			})

			It("Should write the results file into the artifacts directory", func() {
				_, err := RunValidation(testcontext, func(ctx context.Context) (validation.Results, error) { return validation.Results{}, nil }, CheckConfig{}, testFormatter, &runtime.ResultWriterFile{})
				Expect(err).ToNot(HaveOccurred())

				expectedResultsFile := filepath.Join(artifactWriter.Path(), ResultsFilenameWithExtension(testFormatter.FileExtension()))
				Expect(expectedResultsFile).To(BeAnExistingFile())
			})

			It("Should return an error if check execution encounters an error", func() {
				_, err := RunValidation(testcontext, func(ctx context.Context) (validation.Results, error) { return validation.Results{}, errors.New("some error") }, CheckConfig{}, testFormatter, &runtime.ResultWriterFile{})
				Expect(err).To(HaveOccurred())
			})

			It("Should throw an error writing formatted results if the formatter returns an error", func() {
				var err error
				testFormatter, err = formatters.New("test", "test", func(ctx context.Context, r validation.Results) (response []byte, formattingError error) {
					return []byte{}, errors.New("unable to format")
				})
				Expect(err).ToNot(HaveOccurred())

				_, err = RunValidation(testcontext, func(ctx context.Context) (validation.Results, error) { return validation.Results{}, nil }, CheckConfig{}, testFormatter, &runtime.ResultWriterFile{})
				Expect(err).To(HaveOccurred())
			})

			When("JUnit results are requested", func() {
				It("Should write the junit results as an artifact", func() {
					c := CheckConfig{
						IncludeJUnitResults: true,
					}

					results, err := RunValidation(testcontext, func(ctx context.Context) (validation.Results, error) {
						return validation.Results{
							TestedProject: "testWithJUnit",
							PassedOverall: true,
							Passed: []validation.Result{
								{
									Check: check.NewGenericCheck(
										"testJUnitWritten",
										func(ctx context.Context, pref project.ProjectReference) (check.Outcome, error) {
											return check.Outcome{Passed: true}, nil
										},
										check.Metadata{},
										check.HelpText{},
									),
									ElapsedTime: 1,
								},
							},
							Failed: []validation.Result{},
							Errors: []validation.Result{},
						}, nil
					}, c, testFormatter, &runtime.ResultWriterFile{})
					Expect(err).ToNot(HaveOccurred())
					Expect(results.PassedOverall).To(BeTrue())
					expectedJUnitResultFile := filepath.Join(artifactWriter.Path(), check.DefaultJUnitFilename)
					Expect(expectedJUnitResultFile).To(BeAnExistingFile())
				})

			})
		})
	})
})

var _ = Describe("JUnit", func() {
	var results *validation.Results
	var junitfile string
	var artifactWriter *artifacts.FilesystemWriter
	var testcontext context.Context

	BeforeEach(func() {
		tmpDir, err := os.MkdirTemp("", "junit-*")
		Expect(err).ToNot(HaveOccurred())
		artifactWriter, err = artifacts.NewFilesystemWriter(artifacts.WithDirectory(tmpDir))
		Expect(err).ToNot(HaveOccurred())
		testcontext = artifacts.ContextWithWriter(context.Background(), artifactWriter)
		DeferCleanup(os.RemoveAll, tmpDir)

		results = &validation.Results{
			TestedProject: "/work/sms-spam-demo",
			PassedOverall: true,
			Passed:        []validation.Result{},
			Failed:        []validation.Result{},
			Errors:        []validation.Result{},
		}
		junitfile = filepath.Join(artifactWriter.Path(), check.DefaultJUnitFilename)
	})

	When("The additional JUnitXML results file is requested", func() {
		It("should be written to the artifacts directory without error", func() {
			Expect(writeJUnit(testcontext, *results)).To(Succeed())
			_, err := os.Stat(junitfile)
			Expect(err).ToNot(HaveOccurred())
		})
	})
})

var _ = DescribeTable("Results filename for a formatter extension",
	func(ext, expected string) {
		Expect(ResultsFilenameWithExtension(ext)).To(Equal(expected))
	},
	Entry("the default formatter keeps the default name", "json", check.DefaultTestResultsFilename),
	Entry("other formatters swap the extension", "xml", "results.xml"),
)

var _ = DescribeTable("Checking overall pass/fail",
	func(result bool, expected string) {
		Expect(convertPassedOverall(result)).To(Equal(expected))
	},
	Entry("when passing true", true, "PASSED"),
	Entry("when passing false", false, "FAILED"),
)

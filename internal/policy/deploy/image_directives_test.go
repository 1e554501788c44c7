package deploy

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sms-spam-demo/deploycheck/internal/check"
	"github.com/sms-spam-demo/deploycheck/internal/project"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const completeDockerfile = `FROM python:3.11-slim
WORKDIR /app
COPY requirements.txt .
RUN pip install -r requirements.txt
COPY . .
EXPOSE 5000
CMD ["python", "demo_app.py"]`

var _ = Describe("ImageDirectivesCheck", func() {
	var chk ImageDirectivesCheck
	var pref project.ProjectReference

	BeforeEach(func() {
		pref = project.ProjectReference{
			RootDir: "/work/project",
			Fs:      afero.NewMemMapFs(),
		}
	})

	Context("with a descriptor carrying every expected directive", func() {
		BeforeEach(func() {
			Expect(afero.WriteFile(pref.Fs, filepath.Join(pref.RootDir, check.ContainerFilename), []byte(completeDockerfile), 0o644)).To(Succeed())
		})
		It("should pass without warnings", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
			Expect(outcome.Warnings).To(BeEmpty())
		})
	})

	Context("with the descriptor absent", func() {
		It("should fail", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("not found"))
		})
	})

	Context("with expected directives missing", func() {
		BeforeEach(func() {
			partial := "FROM python:3.11-slim\nCMD [\"python\", \"demo_app.py\"]\n"
			Expect(afero.WriteFile(pref.Fs, filepath.Join(pref.RootDir, check.ContainerFilename), []byte(partial), 0o644)).To(Succeed())
		})
		It("should still pass but surface warnings", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
			Expect(outcome.Warnings).ToNot(BeEmpty())
			Expect(outcome.Warnings[0]).To(ContainSubstring("WORKDIR"))
		})
	})
})

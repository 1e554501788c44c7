package deploy

import (
	"context"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sms-spam-demo/deploycheck/internal/project"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// populateProjectTree writes every required path into fs under root.
func populateProjectTree(fs afero.Fs, root string) {
	for _, rel := range requiredProjectPaths {
		full := filepath.Join(root, rel)
		if filepath.Ext(rel) == "" && (rel == "src" || rel == "scripts") {
			Expect(fs.MkdirAll(full, 0o755)).To(Succeed())
			continue
		}
		Expect(afero.WriteFile(fs, full, []byte("content"), 0o644)).To(Succeed())
	}
}

var _ = Describe("ProjectLayoutCheck", func() {
	var chk ProjectLayoutCheck
	var pref project.ProjectReference

	BeforeEach(func() {
		pref = project.ProjectReference{
			RootDir: "/work/project",
			Fs:      afero.NewMemMapFs(),
		}
		populateProjectTree(pref.Fs, pref.RootDir)
	})

	Context("with a complete project tree", func() {
		It("should pass", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
		})
	})

	Context("with a missing application entrypoint", func() {
		BeforeEach(func() {
			Expect(pref.Fs.Remove(filepath.Join(pref.RootDir, "demo_app.py"))).To(Succeed())
		})
		It("should fail and name the missing path", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("demo_app.py"))
		})
	})

	Context("with several missing paths", func() {
		BeforeEach(func() {
			Expect(pref.Fs.Remove(filepath.Join(pref.RootDir, "Jenkinsfile"))).To(Succeed())
			Expect(pref.Fs.Remove(filepath.Join(pref.RootDir, "Dockerfile"))).To(Succeed())
		})
		It("should report all of them in one outcome", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("Jenkinsfile"))
			Expect(outcome.Message).To(ContainSubstring("Dockerfile"))
		})
	})
})

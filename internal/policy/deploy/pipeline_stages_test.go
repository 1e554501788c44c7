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

const completeJenkinsfile = `pipeline {
    agent any
    stages {
        stage('Checkout') { steps { checkout scm } }
        stage('Build Image') { steps { sh 'docker build .' } }
        stage('Test') { steps { sh 'pytest' } }
        stage('Deploy') { steps { sh './scripts/deploy.sh' } }
    }
}`

var _ = Describe("PipelineStagesCheck", func() {
	var chk PipelineStagesCheck
	var pref project.ProjectReference

	BeforeEach(func() {
		pref = project.ProjectReference{
			RootDir: "/work/project",
			Fs:      afero.NewMemMapFs(),
		}
	})

	Context("with every mandatory stage declared", func() {
		BeforeEach(func() {
			Expect(afero.WriteFile(pref.Fs, filepath.Join(pref.RootDir, check.PipelineFilename), []byte(completeJenkinsfile), 0o644)).To(Succeed())
		})
		It("should pass", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
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

	Context("with a mandatory stage missing", func() {
		BeforeEach(func() {
			partial := `stage('Checkout')
stage('Build Image')
stage('Test')`
			Expect(afero.WriteFile(pref.Fs, filepath.Join(pref.RootDir, check.PipelineFilename), []byte(partial), 0o644)).To(Succeed())
		})
		It("should fail and name the missing stage", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("Deploy"))
			Expect(outcome.Warnings).To(BeEmpty())
		})
	})
})

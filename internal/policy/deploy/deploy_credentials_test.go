package deploy

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"

	"github.com/sms-spam-demo/deploycheck/internal/project"
	"github.com/sms-spam-demo/deploycheck/internal/remote"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DeployCredentialsCheck", func() {
	var chk *DeployCredentialsCheck
	var pref project.ProjectReference
	var runner *fakeRemoteRunner
	var signer ssh.Signer

	BeforeEach(func() {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		Expect(err).ToNot(HaveOccurred())
		signer, err = ssh.NewSignerFromKey(priv)
		Expect(err).ToNot(HaveOccurred())
		sshPub, err := ssh.NewPublicKey(pub)
		Expect(err).ToNot(HaveOccurred())

		pref = project.ProjectReference{
			RootDir:        "/work/project",
			Fs:             afero.NewMemMapFs(),
			PrivateKeyPath: "/keys/id_ed25519",
			PublicKeyPath:  "/keys/id_ed25519.pub",
		}
		Expect(afero.WriteFile(pref.Fs, pref.PublicKeyPath, ssh.MarshalAuthorizedKey(sshPub), 0o644)).To(Succeed())

		runner = &fakeRemoteRunner{result: remote.Result{Output: "connected"}}
		chk = &DeployCredentialsCheck{
			loadSigner: func(fs afero.Fs, path string) (ssh.Signer, error) { return signer, nil },
			newRunner: func(host string, s ssh.Signer) remote.CommandRunner {
				return runner
			},
			commandTimeout: time.Second,
		}
	})

	Context("with an unusable private key", func() {
		BeforeEach(func() {
			chk.loadSigner = func(fs afero.Fs, path string) (ssh.Signer, error) {
				return nil, errors.New("bad key")
			}
		})
		It("should fail without attempting any remote work", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("deploy key unusable"))
			Expect(runner.commands).To(BeEmpty())
		})
	})

	Context("with a missing public key", func() {
		BeforeEach(func() {
			Expect(pref.Fs.Remove(pref.PublicKeyPath)).To(Succeed())
		})
		It("should fail", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("not found"))
		})
	})

	Context("with an unparseable public key", func() {
		BeforeEach(func() {
			Expect(afero.WriteFile(pref.Fs, pref.PublicKeyPath, []byte("not a key"), 0o644)).To(Succeed())
		})
		It("should fail", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("not parseable"))
		})
	})

	Context("without a configured remote host", func() {
		It("should pass on the key pair alone and never dial", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
			Expect(runner.commands).To(BeEmpty())
		})
	})

	Context("with a configured remote host", func() {
		BeforeEach(func() {
			pref.RemoteHost = "deploy@server.example.com"
		})

		It("should pass when the host accepts the command", func() {
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeTrue())
			Expect(runner.commands).To(HaveLen(1))
		})

		It("should fail when the command exits non-zero", func() {
			runner.result = remote.Result{Output: "denied", ExitCode: 1}
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("exited with 1"))
		})

		It("should fail when the host is unreachable", func() {
			runner.err = errors.New("ssh dial server.example.com:22: i/o timeout")
			outcome, err := chk.Validate(context.TODO(), pref)
			Expect(err).ToNot(HaveOccurred())
			Expect(outcome.Passed).To(BeFalse())
			Expect(outcome.Message).To(ContainSubstring("remote command execution"))
		})
	})
})

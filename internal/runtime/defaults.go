package runtime

import "time"

var (
	// DefaultSSHKeyPath is the conventional private key location used when
	// no key path is supplied.
	DefaultSSHKeyPath = "~/.ssh/id_rsa"
	// DefaultRemoteCommandTimeout bounds a full remote command execution.
	DefaultRemoteCommandTimeout = 15 * time.Second
	// DefaultProbeTimeout bounds local tool probes (engine version, compose).
	DefaultProbeTimeout = 10 * time.Second
	// DefaultBuildTimeout bounds the image build smoke test.
	DefaultBuildTimeout = 300 * time.Second
)

package config

// Config is a read-only deploycheck configuration.
type Config interface {
	commonConfig
	sshConfig
	containerRuntimeConfig
}

// commonConfig contains configurables common to every validation run.
type commonConfig interface {
	ProjectDir() string
	ResponseFormat() string
	LogFile() string
	Artifacts() string
	WriteJUnit() bool
}

// sshConfig are configurables relevant to the credential and remote
// connectivity checks.
type sshConfig interface {
	RemoteHost() string
	PrivateKey() string
	PublicKey() string
	SkipSSH() bool
}

// containerRuntimeConfig are configurables relevant to the container
// runtime checks.
type containerRuntimeConfig interface {
	SkipContainerRuntime() bool
}

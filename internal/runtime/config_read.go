package runtime

import (
	"github.com/sms-spam-demo/deploycheck/internal/config"
)

// ensure ReadOnlyConfig always implements config.Config
var _ config.Config = &ReadOnlyConfig{}

// ReadOnlyConfig is a Config that cannot be modified.
type ReadOnlyConfig struct {
	cfg Config
}

func (ro *ReadOnlyConfig) ProjectDir() string {
	return ro.cfg.ProjectDir
}

func (ro *ReadOnlyConfig) ResponseFormat() string {
	return ro.cfg.ResponseFormat
}

func (ro *ReadOnlyConfig) LogFile() string {
	return ro.cfg.LogFile
}

func (ro *ReadOnlyConfig) Artifacts() string {
	return ro.cfg.Artifacts
}

func (ro *ReadOnlyConfig) WriteJUnit() bool {
	return ro.cfg.WriteJUnit
}

func (ro *ReadOnlyConfig) RemoteHost() string {
	return ro.cfg.RemoteHost
}

func (ro *ReadOnlyConfig) PrivateKey() string {
	return ro.cfg.PrivateKey
}

func (ro *ReadOnlyConfig) PublicKey() string {
	return ro.cfg.PublicKey
}

func (ro *ReadOnlyConfig) SkipSSH() bool {
	return ro.cfg.SkipSSH
}

func (ro *ReadOnlyConfig) SkipContainerRuntime() bool {
	return ro.cfg.SkipContainerRuntime
}

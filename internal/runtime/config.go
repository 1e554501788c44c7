package runtime

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config contains configuration details for running deploycheck.
type Config struct {
	ProjectDir     string
	ResponseFormat string
	LogFile        string
	Artifacts      string
	WriteJUnit     bool
	// SSH-Specific Fields
	RemoteHost string
	PrivateKey string
	PublicKey  string
	SkipSSH    bool
	// Container-Runtime-Specific Fields
	SkipContainerRuntime bool
}

// ReadOnly returns an uneditable configuration.
func (c *Config) ReadOnly() *ReadOnlyConfig {
	return &ReadOnlyConfig{
		cfg: *c,
	}
}

// NewConfigFrom will return a runtime.Config based on the stored inputs in
// the provided viper.Viper. Defaults should be set before this function is
// called.
func NewConfigFrom(vcfg viper.Viper) (*Config, error) {
	cfg := Config{}
	cfg.LogFile = vcfg.GetString("logfile")
	cfg.Artifacts = vcfg.GetString("artifacts")
	cfg.ResponseFormat = vcfg.GetString("format")
	cfg.WriteJUnit = vcfg.GetBool("junit")
	cfg.storeSSHConfiguration(vcfg)
	cfg.SkipContainerRuntime = vcfg.GetBool("skip_docker")
	return &cfg, nil
}

// storeSSHConfiguration reads SSH-specific config items in viper,
// normalizes them, and stores them in Config.
func (c *Config) storeSSHConfiguration(vcfg viper.Viper) {
	c.RemoteHost = vcfg.GetString("host")
	c.SkipSSH = vcfg.GetBool("skip_ssh")

	key := vcfg.GetString("ssh_key")
	if key == "" {
		key = DefaultSSHKeyPath
	}
	c.PrivateKey = expandHome(key)
	c.PublicKey = c.PrivateKey + ".pub"
}

// expandHome resolves a leading ~/ against the current user's home
// directory. Paths that cannot be resolved are returned unchanged.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

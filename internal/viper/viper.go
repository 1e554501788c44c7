// Package viper exposes a single Viper shared by the commands, keeping
// flag and environment bindings off the library's global instance.
package viper

import (
	"sync"

	spfviper "github.com/spf13/viper"
)

var (
	instance *spfviper.Viper
	once     sync.Once
)

// Instance lazily constructs the shared Viper.
func Instance() *spfviper.Viper {
	once.Do(func() {
		instance = spfviper.New()
	})
	return instance
}

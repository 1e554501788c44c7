// Package project defines the reference handed to every check describing
// the deployment target under validation.
package project

import "github.com/spf13/afero"

// ProjectReference holds everything check implementations need to locate
// the project tree and, when configured, the deploy target.
type ProjectReference struct {
	// RootDir is the absolute path to the project tree being validated.
	RootDir string
	// Fs is the filesystem the project tree lives on. Checks go through
	// this handle so tests can substitute an in-memory filesystem.
	Fs afero.Fs
	// RemoteHost is the deploy host in [user@]host[:port] form, or empty
	// when no remote was configured.
	RemoteHost string
	// PrivateKeyPath is the path to the deploy private key.
	PrivateKeyPath string
	// PublicKeyPath is the path to the corresponding public key.
	PublicKeyPath string
}

// Package remote executes single commands on the deploy host over SSH. Every
// network-facing operation here is bounded: the dial by the client config
// timeout, the command itself by the caller's context.
package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/crypto/ssh"
)

const (
	// DefaultUser is the account the provisioning scripts create on the
	// deploy host.
	DefaultUser = "deploy"
	defaultPort = "22"
)

// DefaultDialTimeout bounds the TCP/SSH handshake to the deploy host.
var DefaultDialTimeout = 10 * time.Second

// CommandRunner runs one command on a remote host.
type CommandRunner interface {
	Run(ctx context.Context, command string) (Result, error)
}

// Result is the observable output of one remote command execution.
type Result struct {
	Output   string
	ExitCode int
}

// LoadSigner reads and parses a private key usable for SSH authentication.
func LoadSigner(fs afero.Fs, path string) (ssh.Signer, error) {
	keyBytes, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read private key %s: %w", path, err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("could not parse private key %s: %w", path, err)
	}
	return signer, nil
}

// ParseHost splits a [user@]host[:port] address into the SSH user and the
// dialable address. User defaults to DefaultUser, port to 22.
func ParseHost(host string) (user, addr string) {
	user = DefaultUser
	addr = host
	if at := strings.Index(addr, "@"); at >= 0 {
		user = addr[:at]
		addr = addr[at+1:]
	}
	if !strings.Contains(addr, ":") {
		addr = addr + ":" + defaultPort
	}
	return user, addr
}

// Client is a CommandRunner that opens a fresh SSH connection per command.
type Client struct {
	addr   string
	config *ssh.ClientConfig
}

// NewClient builds a client for host authenticating as the parsed user with
// the given signer. Host keys are not verified; the validator only probes
// reachability and command execution.
func NewClient(host string, signer ssh.Signer) *Client {
	user, addr := ParseHost(host)
	return &Client{
		addr: addr,
		config: &ssh.ClientConfig{
			User:            user,
			Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
			HostKeyCallback: ssh.InsecureIgnoreHostKey(),
			Timeout:         DefaultDialTimeout,
		},
	}
}

var _ CommandRunner = &Client{}

// Run executes command on the remote host, returning its combined output and
// exit code. A non-nil error means the command could not be executed at all
// (unreachable host, authentication failure, timeout).
func (c *Client) Run(ctx context.Context, command string) (Result, error) {
	conn, err := ssh.Dial("tcp", c.addr, c.config)
	if err != nil {
		return Result{}, fmt.Errorf("ssh dial %s: %w", c.addr, err)
	}
	defer conn.Close()

	session, err := conn.NewSession()
	if err != nil {
		return Result{}, fmt.Errorf("ssh session on %s: %w", c.addr, err)
	}
	defer session.Close()

	type execResult struct {
		out []byte
		err error
	}
	done := make(chan execResult, 1)
	go func() {
		out, err := session.CombinedOutput(command)
		done <- execResult{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		_ = session.Signal(ssh.SIGKILL)
		return Result{}, fmt.Errorf("remote command timed out: %w", ctx.Err())
	case r := <-done:
		res := Result{Output: strings.TrimSpace(string(r.out))}
		if r.err != nil {
			var exitErr *ssh.ExitError
			if errors.As(r.err, &exitErr) {
				res.ExitCode = exitErr.ExitStatus()
				return res, nil
			}
			return res, fmt.Errorf("remote command failed: %w", r.err)
		}
		return res, nil
	}
}

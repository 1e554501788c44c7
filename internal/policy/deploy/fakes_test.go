package deploy

import (
	"context"
	"io"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/image"

	"github.com/sms-spam-demo/deploycheck/internal/exec"
	"github.com/sms-spam-demo/deploycheck/internal/remote"
)

// streamOf joins build event lines into a readable stream.
func streamOf(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n"))
}

// fakeDockerClient implements DockerClient for specs.
type fakeDockerClient struct {
	serverVersionErr error
	imageBuildErr    error
	buildOutput      string

	buildCalled  bool
	removeCalled bool
}

func (f *fakeDockerClient) ServerVersion(ctx context.Context) (types.Version, error) {
	if f.serverVersionErr != nil {
		return types.Version{}, f.serverVersionErr
	}
	return types.Version{Version: "26.1.4"}, nil
}

func (f *fakeDockerClient) ImageBuild(ctx context.Context, buildContext io.Reader, options types.ImageBuildOptions) (types.ImageBuildResponse, error) {
	f.buildCalled = true
	if f.imageBuildErr != nil {
		return types.ImageBuildResponse{}, f.imageBuildErr
	}
	return types.ImageBuildResponse{Body: io.NopCloser(strings.NewReader(f.buildOutput))}, nil
}

func (f *fakeDockerClient) ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error) {
	f.removeCalled = true
	return nil, nil
}

func (f *fakeDockerClient) Close() error { return nil }

// fakeExecRunner implements exec.Runner for specs.
type fakeExecRunner struct {
	result exec.Result
	err    error

	commands []string
}

func (f *fakeExecRunner) Run(ctx context.Context, name string, args ...string) (exec.Result, error) {
	f.commands = append(f.commands, strings.Join(append([]string{name}, args...), " "))
	return f.result, f.err
}

// fakeRemoteRunner implements remote.CommandRunner for specs.
type fakeRemoteRunner struct {
	result remote.Result
	err    error

	commands []string
}

func (f *fakeRemoteRunner) Run(ctx context.Context, command string) (remote.Result, error) {
	f.commands = append(f.commands, command)
	return f.result, f.err
}

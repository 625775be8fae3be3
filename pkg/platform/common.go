package platform

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// DefaultPlatform backs the Platform interface with the real OS.
type DefaultPlatform struct{}

func (dp *DefaultPlatform) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

func (dp *DefaultPlatform) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (dp *DefaultPlatform) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (dp *DefaultPlatform) MkdirAll(dir string, perm os.FileMode) error {
	return os.MkdirAll(dir, perm)
}

func (dp *DefaultPlatform) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}

func (dp *DefaultPlatform) Remove(path string) error {
	return os.Remove(path)
}

func (dp *DefaultPlatform) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// DirExists checks if a directory exists
func (dp *DefaultPlatform) DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists checks if a regular file exists
func (dp *DefaultPlatform) FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func (dp *DefaultPlatform) CommandContext(ctx context.Context, name string, args ...string) Command {
	return &ExecCommand{cmd: exec.CommandContext(ctx, name, args...)}
}

func (dp *DefaultPlatform) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// ExecCommand wraps exec.Cmd to implement the Command interface
type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Run() error {
	return e.cmd.Run()
}

func (e *ExecCommand) SetStderr(w io.Writer) {
	e.cmd.Stderr = w
}

func (e *ExecCommand) String() string {
	return e.cmd.String()
}

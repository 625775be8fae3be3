package platform

import (
	"context"
	"io"
	"os"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

// Platform provides a unified interface for the OS-level operations the
// staging and codegen steps need, so both can be tested against fakes.
//
//counterfeiter:generate . Platform
type Platform interface {
	OSOperations
	CommandFactory
	ExecOperations
}

// OSOperations defines file system and OS-level operations
//
//counterfeiter:generate . OSOperations
type OSOperations interface {
	// File operations
	WriteFile(name string, data []byte, perm os.FileMode) error
	ReadFile(path string) ([]byte, error)
	ReadDir(path string) ([]os.DirEntry, error)
	MkdirAll(dir string, perm os.FileMode) error
	MkdirTemp(dir, pattern string) (string, error)
	Remove(path string) error
	RemoveAll(path string) error

	// Additional helpers
	DirExists(path string) bool
	FileExists(path string) bool
}

// CommandFactory creates external command invocations
//
//counterfeiter:generate . CommandFactory
type CommandFactory interface {
	CommandContext(ctx context.Context, name string, args ...string) Command
}

// Command represents a single external command invocation
//
//counterfeiter:generate . Command
type Command interface {
	Run() error
	SetStderr(w io.Writer)
	String() string
}

// ExecOperations defines executable resolution operations
//
//counterfeiter:generate . ExecOperations
type ExecOperations interface {
	LookPath(file string) (string, error)
}

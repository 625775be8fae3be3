package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageErrorWrapping(t *testing.T) {
	underlying := errors.New("disk full")
	err := WrapStageError("proto/hello.proto", "copy", underlying)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "proto/hello.proto")
	assert.Contains(t, err.Error(), "copy")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, IsStageError(err))
	assert.False(t, IsGenerateError(err))

	path, ok := GetStagePath(err)
	assert.True(t, ok)
	assert.Equal(t, "proto/hello.proto", path)
}

func TestGenerateErrorWrapping(t *testing.T) {
	err := WrapGenerateError("hello.proto", "invoke", ErrGenerationFailed)

	require.Error(t, err)
	assert.True(t, IsGenerateError(err))
	assert.True(t, errors.Is(err, ErrGenerationFailed))

	entry, ok := GetGenerateEntry(err)
	assert.True(t, ok)
	assert.Equal(t, "hello.proto", entry)
}

func TestGenerateErrorIncludesStderr(t *testing.T) {
	err := &GenerateError{
		Entry:     "hello.proto",
		Operation: "invoke",
		Stderr:    "hello.proto:3:1: unexpected token",
		Err:       ErrGenerationFailed,
	}

	assert.Contains(t, err.Error(), "unexpected token")
}

func TestCleanErrorWrapping(t *testing.T) {
	underlying := errors.New("text file busy")
	err := WrapCleanError("gen/hello.pb.go", "remove", underlying)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "gen/hello.pb.go")
	assert.Contains(t, err.Error(), "remove")
	assert.True(t, errors.Is(err, underlying))
	assert.True(t, IsCleanError(err))
	assert.False(t, IsStageError(err))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, WrapStageError("p", "copy", nil))
	assert.Nil(t, WrapGenerateError("e", "invoke", nil))
	assert.Nil(t, WrapCleanError("p", "remove", nil))
	assert.Nil(t, WrapConfigError("field", nil))
	assert.Nil(t, Wrap(nil, "msg"))
}

func TestConfigErrorFormat(t *testing.T) {
	err := WrapConfigError("generator.entry_files", ErrInvalidConfig)
	assert.Contains(t, err.Error(), "generator.entry_files")
	assert.True(t, IsConfigError(err))

	bare := WrapConfigError("", ErrInvalidConfig)
	assert.Equal(t, "config: invalid configuration", bare.Error())
}

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrProtocNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("wrapped: %w", ErrEntryFileNotFound)))
	assert.False(t, IsNotFoundError(ErrGenerationFailed))
	assert.False(t, IsNotFoundError(nil))
}

func TestNestedUnwrapping(t *testing.T) {
	inner := WrapGenerateError("hello.proto", "resolve", ErrEntryFileNotFound)
	outer := Wrap(inner, "pipeline")

	assert.True(t, errors.Is(outer, ErrEntryFileNotFound))
	assert.True(t, IsGenerateError(outer))

	entry, ok := GetGenerateEntry(outer)
	assert.True(t, ok)
	assert.Equal(t, "hello.proto", entry)
}

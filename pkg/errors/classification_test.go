package errors

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
	}{
		{
			name:     "config error",
			err:      WrapConfigError("staging.proto_dir", ErrInvalidConfig),
			category: CategoryConfiguration,
		},
		{
			name:     "protoc missing",
			err:      ErrProtocNotFound,
			category: CategoryNotFound,
		},
		{
			name:     "entry file missing",
			err:      WrapGenerateError("hello.proto", "resolve", ErrEntryFileNotFound),
			category: CategoryNotFound,
		},
		{
			name:     "permission",
			err:      os.ErrPermission,
			category: CategoryPermission,
		},
		{
			name:     "generation failure",
			err:      WrapGenerateError("hello.proto", "invoke", errors.New("exit status 1")),
			category: CategoryGeneration,
		},
		{
			name:     "stage failure",
			err:      WrapStageError("proto", "mkdir", errors.New("read-only filesystem")),
			category: CategoryFilesystem,
		},
		{
			name:     "clean failure",
			err:      WrapCleanError("gen/hello.pb.go", "remove", errors.New("text file busy")),
			category: CategoryFilesystem,
		},
		{
			name:     "unknown",
			err:      errors.New("something odd"),
			category: CategoryUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classified := ClassifyError(tt.err)
			require.NotNil(t, classified)
			assert.Equal(t, tt.category, classified.Category)
			assert.NotEmpty(t, classified.UserMsg)
			assert.Equal(t, tt.err.Error(), classified.Error())
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Nil(t, ClassifyError(nil))
	assert.Empty(t, UserMessage(nil))
}

func TestClassifyAlreadyClassified(t *testing.T) {
	original := &ClassifiedError{
		Err:      ErrProtocNotFound,
		Category: CategoryNotFound,
		Severity: SeverityHigh,
		UserMsg:  "custom message",
	}

	classified := ClassifyError(original)
	assert.Same(t, original, classified)
}

func TestEntryFileErrorBeatsGenerateError(t *testing.T) {
	// A GenerateError wrapping ErrEntryFileNotFound classifies as
	// not_found, which carries the more actionable user message.
	err := WrapGenerateError("hello.proto", "resolve", ErrEntryFileNotFound)
	classified := ClassifyError(err)
	assert.Equal(t, CategoryNotFound, classified.Category)
	assert.Contains(t, classified.UserMsg, "entry proto file")
}

func TestClassifiedErrorUnwraps(t *testing.T) {
	classified := ClassifyError(WrapStageError("proto", "copy", os.ErrPermission))
	assert.Equal(t, CategoryPermission, classified.Category)
	assert.True(t, errors.Is(classified, os.ErrPermission))
}

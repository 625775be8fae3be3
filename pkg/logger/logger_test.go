package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"debug", DEBUG},
		{"DEBUG", DEBUG},
		{"info", INFO},
		{"warn", WARN},
		{"warning", WARN},
		{"error", ERROR},
		{" error ", ERROR},
		{"nonsense", INFO},
		{"", INFO},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: WARN, Output: &buf})

	log.Debug("not visible")
	log.Info("not visible either")
	log.Warn("visible")
	log.Error("also visible")

	output := buf.String()
	assert.NotContains(t, output, "not visible")
	assert.Contains(t, output, "[WARN] visible")
	assert.Contains(t, output, "[ERROR] also visible")
}

func TestTextFormatFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: DEBUG, Output: &buf})

	log.WithField("component", "stager").Info("copied file",
		"file", "hello.proto",
		"dest", "proto dir")

	line := buf.String()
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "copied file")
	assert.Contains(t, line, "component=stager")
	assert.Contains(t, line, "file=hello.proto")
	// Values with spaces get quoted
	assert.Contains(t, line, `dest="proto dir"`)
}

func TestTextFormatFieldOrderStable(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf})

	log.Info("msg", "b", 2, "a", 1, "c", 3)
	first := buf.String()

	buf.Reset()
	log.Info("msg", "c", 3, "a", 1, "b", 2)
	second := buf.String()

	assert.Equal(t, first, second)
	assert.Contains(t, first, "a=1 b=2 c=3")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf, Format: "json"})

	log.WithField("component", "codegen").Error("protoc failed",
		"err", errors.New("exit status 1"))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "protoc failed", entry["msg"])
	assert.Equal(t, "codegen", entry["component"])
	assert.Equal(t, "exit status 1", entry["err"])
	assert.NotEmpty(t, entry["time"])
}

func TestWithFieldsDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWithConfig(Config{Level: INFO, Output: &buf})
	child := parent.WithField("component", "stager")

	parent.Info("from parent")
	require.Equal(t, 1, len(strings.Split(strings.TrimSpace(buf.String()), "\n")))
	assert.NotContains(t, buf.String(), "component=stager")

	buf.Reset()
	child.Info("from child")
	assert.Contains(t, buf.String(), "component=stager")
}

func TestWithFieldsOddPair(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf})

	// A dangling key is dropped rather than paired with garbage.
	log.Info("msg", "key1", "value1", "dangling")

	assert.Contains(t, buf.String(), "key1=value1")
	assert.NotContains(t, buf.String(), "dangling")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf})

	assert.False(t, log.IsDebugEnabled())
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetLevel(DEBUG)
	assert.True(t, log.IsDebugEnabled())
	log.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

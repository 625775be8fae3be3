package stage

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protostage/pkg/config"
	"protostage/pkg/errors"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

func testStager(t *testing.T, cfg config.StagingConfig, tracker DependencyTracker) *Stager {
	t.Helper()
	if tracker == nil {
		tracker = NewListTracker()
	}
	return NewStager(cfg, tracker, platform.NewPlatform(), logger.NewWithConfig(logger.Config{
		Level:  logger.ERROR,
		Output: &bytes.Buffer{},
	}))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestStageCopiesMatchingFilesOnly(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(sourceDir, 0755))

	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "syntax = \"proto3\";\n")
	writeFile(t, filepath.Join(sourceDir, "types.proto"), "syntax = \"proto3\";\npackage types;\n")
	writeFile(t, filepath.Join(sourceDir, "notes.txt"), "not a schema")
	writeFile(t, filepath.Join(sourceDir, "README"), "no extension")
	require.NoError(t, os.Mkdir(filepath.Join(sourceDir, "nested"), 0755))
	writeFile(t, filepath.Join(sourceDir, "nested", "inner.proto"), "never staged")

	tracker := NewListTracker()
	stager := testStager(t, config.StagingConfig{
		SourceDir: sourceDir,
		ProtoDir:  destDir,
		Extension: ".proto",
	}, tracker)

	result, err := stager.Stage(context.Background())
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"hello.proto", "types.proto"}, result.Staged)
	assert.Len(t, result.Tracked, 2)
	assert.Equal(t, result.Tracked, tracker.TrackedFiles())

	// Destination holds exactly the matching subset, byte-identical
	entries, err := os.ReadDir(destDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	for _, name := range result.Staged {
		want, err := os.ReadFile(filepath.Join(sourceDir, name))
		require.NoError(t, err)
		got, err := os.ReadFile(filepath.Join(destDir, name))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestStageSkipsFileNamedExactlyExtension(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(sourceDir, 0755))

	writeFile(t, filepath.Join(sourceDir, ".proto"), "hidden, no stem")
	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "syntax = \"proto3\";\n")

	tracker := NewListTracker()
	stager := testStager(t, config.StagingConfig{
		SourceDir: sourceDir,
		ProtoDir:  destDir,
		Extension: ".proto",
	}, tracker)

	result, err := stager.Stage(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"hello.proto"}, result.Staged)
	assert.NoFileExists(t, filepath.Join(destDir, ".proto"))
}

func TestStageMissingSourceIsNoOp(t *testing.T) {
	dir := t.TempDir()
	destDir := filepath.Join(dir, "proto")

	tracker := NewListTracker()
	stager := testStager(t, config.StagingConfig{
		SourceDir: filepath.Join(dir, "does-not-exist"),
		ProtoDir:  destDir,
		Extension: ".proto",
	}, tracker)

	result, err := stager.Stage(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Staged)
	assert.Empty(t, result.Tracked)
	assert.Empty(t, tracker.TrackedFiles())

	// Destination dir exists even with nothing to stage
	info, err := os.Stat(destDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStageMissingSourceKeepsExistingDestContents(t *testing.T) {
	dir := t.TempDir()
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(destDir, 0755))
	writeFile(t, filepath.Join(destDir, "prior.proto"), "staged by another mechanism")

	stager := testStager(t, config.StagingConfig{
		SourceDir: filepath.Join(dir, "gone"),
		ProtoDir:  destDir,
		Extension: ".proto",
	}, nil)

	_, err := stager.Stage(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(destDir, "prior.proto"))
	require.NoError(t, err)
	assert.Equal(t, "staged by another mechanism", string(data))
}

func TestStageIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "syntax = \"proto3\";\n")

	cfg := config.StagingConfig{SourceDir: sourceDir, ProtoDir: destDir, Extension: ".proto"}

	_, err := testStager(t, cfg, nil).Stage(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(destDir, "hello.proto"))
	require.NoError(t, err)

	_, err = testStager(t, cfg, nil).Stage(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(destDir, "hello.proto"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStageOverwritesStaleDestFile(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	require.NoError(t, os.Mkdir(destDir, 0755))
	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "new content")
	writeFile(t, filepath.Join(destDir, "hello.proto"), "stale content")

	stager := testStager(t, config.StagingConfig{
		SourceDir: sourceDir,
		ProtoDir:  destDir,
		Extension: ".proto",
	}, nil)

	_, err := stager.Stage(context.Background())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(destDir, "hello.proto"))
	require.NoError(t, err)
	assert.Equal(t, "new content", string(data))
}

func TestStageDestBlockedByFileFailsBeforeCopying(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "syntax = \"proto3\";\n")

	// A regular file occupies the destination path
	destPath := filepath.Join(dir, "proto")
	writeFile(t, destPath, "in the way")

	tracker := NewListTracker()
	stager := testStager(t, config.StagingConfig{
		SourceDir: sourceDir,
		ProtoDir:  destPath,
		Extension: ".proto",
	}, tracker)

	_, err := stager.Stage(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsStageError(err))
	assert.Empty(t, tracker.TrackedFiles())

	path, ok := errors.GetStagePath(err)
	require.True(t, ok)
	assert.Equal(t, destPath, path)
}

func TestDirectiveTrackerEmitsOneLinePerFile(t *testing.T) {
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	destDir := filepath.Join(dir, "proto")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	writeFile(t, filepath.Join(sourceDir, "hello.proto"), "a")
	writeFile(t, filepath.Join(sourceDir, "world.proto"), "b")
	writeFile(t, filepath.Join(sourceDir, "skip.txt"), "c")

	var out bytes.Buffer
	tracker := NewDirectiveTracker(&out)
	stager := testStager(t, config.StagingConfig{
		SourceDir: sourceDir,
		ProtoDir:  destDir,
		Extension: ".proto",
	}, tracker)

	result, err := stager.Stage(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Tracked, 2)

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	for i, line := range lines {
		assert.Equal(t, DirectivePrefix+result.Tracked[i], string(line))
	}
}

package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"protostage/internal/codegen"
	"protostage/internal/stage"
	"protostage/pkg/config"
	"protostage/pkg/errors"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

// stubGenerator records the request it was handed and returns canned
// results, standing in for a real protoc invocation.
type stubGenerator struct {
	req    *codegen.Request
	result *codegen.Result
	err    error
}

func (s *stubGenerator) Generate(_ context.Context, req codegen.Request) (*codegen.Result, error) {
	s.req = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func quietLogger() *logger.Logger {
	return logger.NewWithConfig(logger.Config{Level: logger.ERROR, Output: &bytes.Buffer{}})
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	sourceDir := filepath.Join(dir, "protobuf")
	require.NoError(t, os.Mkdir(sourceDir, 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(sourceDir, "hello.proto"), []byte("syntax = \"proto3\";\n"), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(sourceDir, "notes.txt"), []byte("ignored"), 0644))

	cfg := config.DefaultConfig
	cfg.Staging.SourceDir = sourceDir
	cfg.Staging.ProtoDir = filepath.Join(dir, "proto")
	cfg.Generator.OutputDir = filepath.Join(dir, "gen")
	return &cfg
}

func TestRunStagesThenGenerates(t *testing.T) {
	cfg := testConfig(t)
	gen := &stubGenerator{
		result: &codegen.Result{
			ProtocPath: "/usr/bin/protoc",
			Entries: []codegen.EntryReport{
				{File: "hello.proto", Services: []string{"Greeter"}},
			},
		},
	}

	tracker := stage.NewListTracker()
	p := New(cfg, tracker, gen, platform.NewPlatform(), quietLogger())

	summary, err := p.Run(context.Background())
	require.NoError(t, err)

	// Staging happened: only the matching file landed in the proto dir
	assert.Equal(t, []string{"hello.proto"}, summary.Staged)
	assert.FileExists(t, filepath.Join(cfg.Staging.ProtoDir, "hello.proto"))
	assert.NoFileExists(t, filepath.Join(cfg.Staging.ProtoDir, "notes.txt"))

	// The generator saw the configured request with the proto dir as the
	// first include path
	require.NotNil(t, gen.req)
	assert.Equal(t, cfg.Generator.EntryFiles, gen.req.EntryFiles)
	assert.Equal(t, []string{cfg.Staging.ProtoDir}, gen.req.IncludePaths)
	assert.Equal(t, cfg.Generator.OutputDir, gen.req.OutputDir)
	assert.True(t, gen.req.BuildServer)
	assert.True(t, gen.req.BuildClient)

	require.Len(t, summary.Entries, 1)
	assert.Equal(t, []string{"Greeter"}, summary.Entries[0].Services)
	assert.Equal(t, tracker.TrackedFiles(), summary.Tracked)
}

func TestRunGenerateFailurePropagates(t *testing.T) {
	cfg := testConfig(t)
	gen := &stubGenerator{
		err: errors.WrapGenerateError("hello.proto", "invoke", errors.ErrGenerationFailed),
	}

	p := New(cfg, stage.NewListTracker(), gen, platform.NewPlatform(), quietLogger())

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrGenerationFailed))

	// Staging still completed before the generator ran
	assert.FileExists(t, filepath.Join(cfg.Staging.ProtoDir, "hello.proto"))
}

func TestRunStageFailureSkipsGenerator(t *testing.T) {
	cfg := testConfig(t)
	// Block the destination path with a regular file
	require.NoError(t, os.WriteFile(cfg.Staging.ProtoDir, []byte("in the way"), 0644))

	gen := &stubGenerator{result: &codegen.Result{}}
	p := New(cfg, stage.NewListTracker(), gen, platform.NewPlatform(), quietLogger())

	_, err := p.Run(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsStageError(err))
	assert.Nil(t, gen.req, "generator must not run after a staging failure")
}

func TestRunMissingSourceStillGenerates(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.RemoveAll(cfg.Staging.SourceDir))

	gen := &stubGenerator{result: &codegen.Result{}}
	p := New(cfg, stage.NewListTracker(), gen, platform.NewPlatform(), quietLogger())

	summary, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary.Staged)
	require.NotNil(t, gen.req, "generation runs even when staging was a no-op")
}

package codegen

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"protostage/pkg/errors"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

// ProtocGenerator implements Generator by invoking protoc with the Go
// and Go-gRPC plugins. The invocation happens at most once per pass; no
// retry, no partial success.
type ProtocGenerator struct {
	protocPath string
	platform   platform.Platform
	logger     *logger.Logger
}

// NewProtocGenerator creates a generator. protocPath may be empty, in
// which case protoc is resolved from PATH at generation time.
func NewProtocGenerator(protocPath string, pf platform.Platform, log *logger.Logger) *ProtocGenerator {
	return &ProtocGenerator{
		protocPath: protocPath,
		platform:   pf,
		logger:     log.WithField("component", "codegen"),
	}
}

func (g *ProtocGenerator) Generate(ctx context.Context, req Request) (*Result, error) {
	if len(req.EntryFiles) == 0 {
		return nil, errors.WrapGenerateError("", "validate", errors.ErrNoEntryFiles)
	}

	protoc, err := g.resolveProtoc()
	if err != nil {
		return nil, err
	}

	for _, entry := range req.EntryFiles {
		if !g.entryResolves(entry, req.IncludePaths) {
			return nil, errors.WrapGenerateError(entry, "resolve", errors.ErrEntryFileNotFound)
		}
	}

	if err := g.platform.MkdirAll(req.OutputDir, 0o755); err != nil {
		return nil, errors.WrapGenerateError("", "prepare", err)
	}

	tmpDir, err := g.platform.MkdirTemp("", "protostage-desc-")
	if err != nil {
		return nil, errors.WrapGenerateError("", "prepare", err)
	}
	defer func() { _ = g.platform.RemoveAll(tmpDir) }()

	descPath := filepath.Join(tmpDir, "descriptor.bin")
	args := buildArgs(req, descPath)

	var stderr bytes.Buffer
	cmd := g.platform.CommandContext(ctx, protoc, args...)
	cmd.SetStderr(&stderr)

	g.logger.Debug("invoking protoc", "command", cmd.String())

	if err := cmd.Run(); err != nil {
		return nil, &errors.GenerateError{
			Entry:     strings.Join(req.EntryFiles, ","),
			Operation: "invoke",
			Stderr:    strings.TrimSpace(stderr.String()),
			Err:       fmt.Errorf("%w: %v", errors.ErrGenerationFailed, err),
		}
	}

	entries, err := g.readDescriptorSet(descPath, req.EntryFiles)
	if err != nil {
		return nil, err
	}

	return &Result{ProtocPath: protoc, Entries: entries}, nil
}

func (g *ProtocGenerator) resolveProtoc() (string, error) {
	if g.protocPath != "" {
		if !g.platform.FileExists(g.protocPath) {
			return "", errors.WrapGenerateError("", "resolve",
				fmt.Errorf("%w: %s", errors.ErrProtocNotFound, g.protocPath))
		}
		return g.protocPath, nil
	}

	path, err := g.platform.LookPath("protoc")
	if err != nil {
		return "", errors.WrapGenerateError("", "resolve",
			fmt.Errorf("%w: %v", errors.ErrProtocNotFound, err))
	}
	return path, nil
}

func (g *ProtocGenerator) entryResolves(entry string, includePaths []string) bool {
	for _, inc := range includePaths {
		if g.platform.FileExists(filepath.Join(inc, entry)) {
			return true
		}
	}
	return false
}

// buildArgs assembles the protoc command line. The descriptor set is
// always requested so the run can be verified and reported afterwards.
func buildArgs(req Request, descPath string) []string {
	args := make([]string, 0, 2*len(req.IncludePaths)+len(req.EntryFiles)+6)

	for _, inc := range req.IncludePaths {
		args = append(args, "--proto_path="+inc)
	}

	args = append(args,
		"--go_out="+req.OutputDir,
		"--go_opt=paths=source_relative",
	)

	if req.BuildServer || req.BuildClient {
		args = append(args,
			"--go-grpc_out="+req.OutputDir,
			"--go-grpc_opt=paths=source_relative",
		)
	}

	args = append(args,
		"--descriptor_set_out="+descPath,
		"--include_imports",
	)

	args = append(args, req.EntryFiles...)
	return args
}

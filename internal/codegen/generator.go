// Package codegen drives the protocol-buffer code generator against the
// staged proto files.
package codegen

import (
	"context"
)

// Request describes one generation pass.
type Request struct {
	// EntryFiles are the entry-point schemas, relative to an include path.
	EntryFiles []string
	// IncludePaths resolve imports between proto files. The staged proto
	// dir is expected to come first.
	IncludePaths []string
	// OutputDir receives the generated Go sources.
	OutputDir string
	// BuildServer and BuildClient select gRPC stub generation. With both
	// unset only message types are generated.
	BuildServer bool
	BuildClient bool
}

// EntryReport names the services found in one entry file.
type EntryReport struct {
	File     string   `json:"file"`
	Services []string `json:"services,omitempty"`
}

// Result reports a successful generation pass.
type Result struct {
	// ProtocPath is the resolved generator executable.
	ProtocPath string `json:"protoc_path"`
	// Entries holds one report per requested entry file.
	Entries []EntryReport `json:"entries"`
}

// Generator is the pluggable code-generation facility. Generation is
// all-or-nothing: an error means no usable artifacts were produced and
// the build must abort.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

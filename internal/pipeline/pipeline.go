// Package pipeline runs the two build steps in fixed order: stage the
// proto files, then generate code from them.
package pipeline

import (
	"context"

	"protostage/internal/codegen"
	"protostage/internal/stage"
	"protostage/pkg/config"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

// Pipeline wires the staging step to the code generator.
type Pipeline struct {
	cfg       *config.Config
	stager    *stage.Stager
	generator codegen.Generator
	logger    *logger.Logger
}

// Summary reports a full successful run.
type Summary struct {
	// Staged holds file names copied into the proto dir.
	Staged []string `json:"staged"`
	// Tracked holds source paths declared to the build system.
	Tracked []string `json:"tracked"`
	// Entries holds the per-entry-file generation reports.
	Entries []codegen.EntryReport `json:"entries"`
}

func New(cfg *config.Config, tracker stage.DependencyTracker, gen codegen.Generator, pf platform.Platform, log *logger.Logger) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		stager:    stage.NewStager(cfg.Staging, tracker, pf, log),
		generator: gen,
		logger:    log.WithField("component", "pipeline"),
	}
}

// Run executes staging then generation. The first failing step aborts
// the run and its error propagates unchanged; there is no retry and no
// partial-success mode.
func (p *Pipeline) Run(ctx context.Context) (*Summary, error) {
	stageResult, err := p.stager.Stage(ctx)
	if err != nil {
		return nil, err
	}
	p.logger.Info("staged proto files",
		"count", len(stageResult.Staged),
		"dest", p.cfg.Staging.ProtoDir)

	genResult, err := p.generator.Generate(ctx, codegen.Request{
		EntryFiles:   p.cfg.Generator.EntryFiles,
		IncludePaths: p.cfg.AllIncludePaths(),
		OutputDir:    p.cfg.Generator.OutputDir,
		BuildServer:  p.cfg.Generator.BuildServer,
		BuildClient:  p.cfg.Generator.BuildClient,
	})
	if err != nil {
		return nil, err
	}
	p.logger.Info("generated code",
		"entries", len(genResult.Entries),
		"output", p.cfg.Generator.OutputDir)

	return &Summary{
		Staged:  stageResult.Staged,
		Tracked: stageResult.Tracked,
		Entries: genResult.Entries,
	}, nil
}

// Package stage copies proto interface definitions from a source tree
// into the local build directory and declares each copied file to the
// host build system for staleness tracking.
package stage

import (
	"context"
	"path/filepath"
	"strings"

	"protostage/pkg/config"
	"protostage/pkg/errors"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

// Stager performs the staging step: destination dir creation, source
// enumeration, and extension-filtered copying.
type Stager struct {
	sourceDir string
	destDir   string
	extension string
	tracker   DependencyTracker
	platform  platform.Platform
	logger    *logger.Logger
}

// Result reports what a staging run did. Order follows directory
// enumeration order, which is filesystem-dependent; callers must not
// rely on it.
type Result struct {
	// Staged holds the file names copied into the destination dir.
	Staged []string
	// Tracked holds the source paths declared to the build system.
	Tracked []string
}

func NewStager(cfg config.StagingConfig, tracker DependencyTracker, pf platform.Platform, log *logger.Logger) *Stager {
	return &Stager{
		sourceDir: cfg.SourceDir,
		destDir:   cfg.ProtoDir,
		extension: cfg.Extension,
		tracker:   tracker,
		platform:  pf,
		logger:    log.WithField("component", "stager"),
	}
}

// Stage guarantees that on successful return the destination directory
// exists and holds a byte-identical copy of every matching file from the
// source directory. A missing source directory is not an error: the
// build proceeds with whatever the destination already holds. The first
// failing operation aborts the run; already-copied files are left in
// place.
func (s *Stager) Stage(ctx context.Context) (*Result, error) {
	if err := s.platform.MkdirAll(s.destDir, 0o755); err != nil {
		return nil, errors.WrapStageError(s.destDir, "mkdir", err)
	}

	if !s.platform.DirExists(s.sourceDir) {
		s.logger.Debug("source directory absent, nothing to stage", "source", s.sourceDir)
		return &Result{}, nil
	}

	entries, err := s.platform.ReadDir(s.sourceDir)
	if err != nil {
		return nil, errors.WrapStageError(s.sourceDir, "enumerate", err)
	}

	result := &Result{}
	for _, entry := range entries {
		// A name equal to the extension itself (".proto") is a hidden
		// file with no stem, not a schema.
		if entry.IsDir() || entry.Name() == s.extension || !strings.HasSuffix(entry.Name(), s.extension) {
			s.logger.Debug("skipping non-matching entry", "entry", entry.Name())
			continue
		}

		src := filepath.Join(s.sourceDir, entry.Name())

		// Declared before the copy: the build system must re-run this
		// step on the next pass even when the copy below fails.
		if err := s.tracker.TrackFile(src); err != nil {
			return nil, errors.WrapStageError(src, "track", err)
		}
		result.Tracked = append(result.Tracked, src)

		if err := s.copyFile(src, entry.Name()); err != nil {
			return nil, err
		}
		result.Staged = append(result.Staged, entry.Name())
	}

	s.logger.Debug("staging complete", "staged", len(result.Staged))
	return result, nil
}

func (s *Stager) copyFile(src, name string) error {
	data, err := s.platform.ReadFile(src)
	if err != nil {
		return errors.WrapStageError(src, "read", err)
	}

	dest := filepath.Join(s.destDir, name)
	if err := s.platform.WriteFile(dest, data, 0o644); err != nil {
		return errors.WrapStageError(dest, "write", err)
	}

	s.logger.Debug("copied proto file", "src", src, "dest", dest)
	return nil
}

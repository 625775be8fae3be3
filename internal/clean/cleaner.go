// Package clean removes previously generated files from the output
// directory so a fresh generation pass starts from a known state.
package clean

import (
	"context"
	"path/filepath"

	"protostage/pkg/errors"
	"protostage/pkg/logger"
	"protostage/pkg/platform"
)

// preservedNames are never removed. The output directory may double as
// a Go module root whose metadata outlives any single generation pass.
var preservedNames = map[string]bool{
	"go.mod": true,
	"go.sum": true,
}

// Cleaner removes generated files under the output directory,
// recursively, sparing module metadata. Directories are left in place.
type Cleaner struct {
	outputDir string
	platform  platform.Platform
	logger    *logger.Logger
}

// Result reports what a clean run removed.
type Result struct {
	// Removed holds the paths of the deleted files.
	Removed []string
}

func NewCleaner(outputDir string, pf platform.Platform, log *logger.Logger) *Cleaner {
	return &Cleaner{
		outputDir: outputDir,
		platform:  pf,
		logger:    log.WithField("component", "cleaner"),
	}
}

// Clean removes every file under the output directory except preserved
// module metadata. A missing output directory is not an error: there is
// nothing to remove. The first failing operation aborts the run;
// already-removed files stay removed.
func (c *Cleaner) Clean(ctx context.Context) (*Result, error) {
	if !c.platform.DirExists(c.outputDir) {
		c.logger.Debug("output directory absent, nothing to clean", "output", c.outputDir)
		return &Result{}, nil
	}

	result := &Result{}
	if err := c.cleanDir(c.outputDir, result); err != nil {
		return nil, err
	}

	c.logger.Debug("clean complete", "removed", len(result.Removed))
	return result, nil
}

func (c *Cleaner) cleanDir(dir string, result *Result) error {
	entries, err := c.platform.ReadDir(dir)
	if err != nil {
		return errors.WrapCleanError(dir, "enumerate", err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := c.cleanDir(path, result); err != nil {
				return err
			}
			continue
		}

		if preservedNames[entry.Name()] {
			c.logger.Debug("preserving module metadata", "path", path)
			continue
		}

		if err := c.platform.Remove(path); err != nil {
			return errors.WrapCleanError(path, "remove", err)
		}
		result.Removed = append(result.Removed, path)
		c.logger.Debug("removed generated file", "path", path)
	}

	return nil
}

// Package config loads and validates the protostage configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"protostage/pkg/errors"
)

// Config holds the complete application configuration
type Config struct {
	Version   string          `yaml:"version" json:"version"`
	Staging   StagingConfig   `yaml:"staging" json:"staging"`
	Generator GeneratorConfig `yaml:"generator" json:"generator"`
	Logging   LoggingConfig   `yaml:"logging" json:"logging"`
}

// StagingConfig describes where proto sources live and where they are
// staged before generation.
type StagingConfig struct {
	SourceDir string `yaml:"source_dir" json:"source_dir"`
	ProtoDir  string `yaml:"proto_dir" json:"proto_dir"`
	Extension string `yaml:"extension" json:"extension"`
}

// GeneratorConfig describes the protoc invocation.
type GeneratorConfig struct {
	ProtocPath   string   `yaml:"protoc_path" json:"protoc_path"`
	EntryFiles   []string `yaml:"entry_files" json:"entry_files"`
	IncludePaths []string `yaml:"include_paths" json:"include_paths"`
	OutputDir    string   `yaml:"output_dir" json:"output_dir"`
	BuildServer  bool     `yaml:"build_server" json:"build_server"`
	BuildClient  bool     `yaml:"build_client" json:"build_client"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// DefaultConfig mirrors the conventional layout: proto sources in a
// sibling source tree, staged into ./proto, one entry file.
var DefaultConfig = Config{
	Version: "1",
	Staging: StagingConfig{
		SourceDir: "../src/main/protobuf",
		ProtoDir:  "proto",
		Extension: ".proto",
	},
	Generator: GeneratorConfig{
		EntryFiles:  []string{"hello.proto"},
		OutputDir:   "gen",
		BuildServer: true,
		BuildClient: true,
	},
	Logging: LoggingConfig{
		Level:  "info",
		Format: "text",
	},
}

// EnvConfigPath names the environment variable that overrides the config
// file location when no --config flag is given.
const EnvConfigPath = "PROTOSTAGE_CONFIG"

// searchPaths are tried in order when neither the flag nor the
// environment variable names a config file.
var searchPaths = []string{
	"protostage.yml",
	"protostage.yaml",
	filepath.Join(".protostage", "config.yml"),
}

// LoadConfig loads configuration from the given path, or from the
// standard search locations when path is empty. A missing config file is
// not an error: the defaults describe the conventional layout. Returns
// the config and the path it was loaded from ("builtin" for defaults).
func LoadConfig(path string) (*Config, string, error) {
	resolved := resolveConfigPath(path)
	if resolved == "" {
		cfg := DefaultConfig
		if err := cfg.Validate(); err != nil {
			return nil, "", err
		}
		return &cfg, "builtin", nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, "", errors.WrapConfigError("", fmt.Errorf("reading %s: %w", resolved, err))
	}

	// Unmarshal over a copy of the defaults so absent keys keep their
	// default values.
	cfg := DefaultConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, "", errors.WrapConfigError("", fmt.Errorf("parsing %s: %w", resolved, err))
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, resolved, nil
}

func resolveConfigPath(path string) string {
	if path != "" {
		return path
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	for _, candidate := range searchPaths {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Validate checks the configuration for values the pipeline cannot work
// with. It does not check that directories exist: a missing source dir
// is valid (staging becomes a no-op), and the proto dir is created.
func (c *Config) Validate() error {
	if c.Staging.ProtoDir == "" {
		return errors.WrapConfigError("staging.proto_dir", errors.ErrInvalidConfig)
	}
	if !strings.HasPrefix(c.Staging.Extension, ".") {
		return errors.WrapConfigError("staging.extension", errors.ErrInvalidConfig)
	}
	if len(c.Generator.EntryFiles) == 0 {
		return errors.WrapConfigError("generator.entry_files", errors.ErrNoEntryFiles)
	}
	for _, entry := range c.Generator.EntryFiles {
		if strings.TrimSpace(entry) == "" {
			return errors.WrapConfigError("generator.entry_files", errors.ErrInvalidConfig)
		}
		if filepath.IsAbs(entry) {
			return errors.WrapConfigError("generator.entry_files",
				fmt.Errorf("entry %q must be relative to the proto dir: %w", entry, errors.ErrInvalidConfig))
		}
	}
	if c.Generator.OutputDir == "" {
		return errors.WrapConfigError("generator.output_dir", errors.ErrInvalidConfig)
	}
	return nil
}

// AllIncludePaths returns the generator include paths with the staged
// proto dir always present, first.
func (c *Config) AllIncludePaths() []string {
	paths := []string{c.Staging.ProtoDir}
	for _, p := range c.Generator.IncludePaths {
		if p != c.Staging.ProtoDir {
			paths = append(paths, p)
		}
	}
	return paths
}

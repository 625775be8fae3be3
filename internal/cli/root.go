// Package cli implements the protostage command line interface.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"protostage/pkg/config"
	"protostage/pkg/logger"
)

var (
	cfg        *config.Config
	configUsed string
	configPath string
	jsonOutput bool
	log        = logger.New()
)

var rootCmd = &cobra.Command{
	Use:   "protostage",
	Short: "Stage proto files and generate gRPC code before compilation",
	Long: `protostage copies .proto interface definitions from a source tree into
a local build directory, declares each copied file to the host build
system for staleness tracking, and invokes protoc to generate Go
message types plus gRPC client and server stubs.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// version and config-help work without a loaded configuration
		if cmd.Name() == "version" || cmd.Name() == "config-help" {
			return
		}

		var err error
		cfg, configUsed, err = config.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
			fmt.Fprintf(os.Stderr, "Use 'protostage config-help' for a configuration example.\n")
			os.Exit(1)
		}

		log = logger.NewWithConfig(logger.Config{
			Level:  logger.ParseLevel(cfg.Logging.Level),
			Output: os.Stderr,
			Format: cfg.Logging.Format,
		})
		log.Debug("configuration loaded", "path", configUsed)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Config keys use snake_case; accept the same spelling for flags.
	rootCmd.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to configuration file (searches protostage.yml when not set)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"Output summaries in JSON format")

	// Add subcommands
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewStageCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewCleanCmd())
	rootCmd.AddCommand(NewVersionCmd())
	rootCmd.AddCommand(NewHelpConfigCmd())
}

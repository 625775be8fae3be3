package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protostage/internal/clean"
	"protostage/pkg/errors"
	"protostage/pkg/platform"
)

// NewCleanCmd creates the clean command: remove previously generated
// files from the output directory, sparing go.mod and go.sum.
func NewCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove previously generated files from the output directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cleaner := clean.NewCleaner(cfg.Generator.OutputDir, platform.NewPlatform(), log)
			result, err := cleaner.Clean(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, errors.UserMessage(err))
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(map[string][]string{
					"removed": result.Removed,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Removed %d file(s) from %s\n", len(result.Removed), cfg.Generator.OutputDir)
			for _, path := range result.Removed {
				fmt.Printf("  %s\n", path)
			}
			return nil
		},
	}
}

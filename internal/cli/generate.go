package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protostage/internal/codegen"
	"protostage/pkg/errors"
	"protostage/pkg/platform"
)

// NewGenerateCmd creates the generate command: run protoc against
// already-staged proto files.
func NewGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate code from already-staged proto files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			gen := codegen.NewProtocGenerator(cfg.Generator.ProtocPath, platform.NewPlatform(), log)
			result, err := gen.Generate(cmd.Context(), codegen.Request{
				EntryFiles:   cfg.Generator.EntryFiles,
				IncludePaths: cfg.AllIncludePaths(),
				OutputDir:    cfg.Generator.OutputDir,
				BuildServer:  cfg.Generator.BuildServer,
				BuildClient:  cfg.Generator.BuildClient,
			})
			if err != nil {
				fmt.Fprintln(os.Stderr, errors.UserMessage(err))
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(result, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			printEntries(result.Entries)
			return nil
		},
	}
}

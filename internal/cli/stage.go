package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"protostage/internal/stage"
	"protostage/pkg/errors"
	"protostage/pkg/platform"
)

// NewStageCmd creates the stage command: copy proto files into the
// build directory without generating code.
func NewStageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stage",
		Short: "Copy proto files into the build directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			tracker := stage.NewDirectiveTracker(os.Stdout)
			stager := stage.NewStager(cfg.Staging, tracker, platform.NewPlatform(), log)

			result, err := stager.Stage(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, errors.UserMessage(err))
				return err
			}

			if jsonOutput {
				data, err := json.MarshalIndent(map[string][]string{
					"staged":  result.Staged,
					"tracked": result.Tracked,
				}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Staged %d file(s) into %s\n", len(result.Staged), cfg.Staging.ProtoDir)
			for _, name := range result.Staged {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
}

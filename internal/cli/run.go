package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"protostage/internal/codegen"
	"protostage/internal/pipeline"
	"protostage/internal/stage"
	"protostage/pkg/errors"
	"protostage/pkg/platform"
)

// NewRunCmd creates the run command: staging followed by generation.
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Stage proto files and generate code in one pass",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			pf := platform.NewPlatform()
			tracker := stage.NewDirectiveTracker(os.Stdout)
			gen := codegen.NewProtocGenerator(cfg.Generator.ProtocPath, pf, log)

			summary, err := pipeline.New(cfg, tracker, gen, pf, log).Run(cmd.Context())
			if err != nil {
				fmt.Fprintln(os.Stderr, errors.UserMessage(err))
				return err
			}

			return printSummary(summary)
		},
	}
}

func printSummary(summary *pipeline.Summary) error {
	if jsonOutput {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Staged %d file(s) into %s\n", len(summary.Staged), cfg.Staging.ProtoDir)
	for _, name := range summary.Staged {
		fmt.Printf("  %s\n", name)
	}
	printEntries(summary.Entries)
	return nil
}

func printEntries(entries []codegen.EntryReport) {
	fmt.Printf("Generated code for %d entry file(s) into %s\n", len(entries), cfg.Generator.OutputDir)
	for _, entry := range entries {
		if len(entry.Services) == 0 {
			fmt.Printf("  %s: messages only\n", entry.File)
			continue
		}
		fmt.Printf("  %s: %s\n", entry.File, strings.Join(entry.Services, ", "))
	}
}

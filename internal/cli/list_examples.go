/*
PURPOSE:
  Defines the 'list-examples' subcommand.
  Helps debug example discovery before a full run.

REQUIREMENTS:
  User-specified:
  - List the .llm files the suite would benchmark.

  Implementation-discovered:
  - Useful validation step before full run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.DiscoverExamples()

ERROR HANDLING:
  - Prints error if the examples directory is missing or empty.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  prompt-bench list-examples --examples-dir ./demo/examples

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/runner.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/prompt-bench/internal/config"
	"github.com/daryltucker/prompt-bench/internal/engine"
)

var listExamplesCmd = &cobra.Command{
	Use:   "list-examples",
	Short: "List the .llm input files a run would benchmark",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		if examplesOverride != "" {
			cfg.ExamplesDir = examplesOverride
		}

		e := engine.New(cfg)

		files, err := e.DiscoverExamples()
		if err != nil {
			return err
		}

		fmt.Printf("Found %d example files in %s:\n", len(files), cfg.ExamplesDir)
		for _, f := range files {
			fmt.Printf("- %s\n", f)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listExamplesCmd)
	listExamplesCmd.Flags().StringVar(&examplesOverride, "examples-dir", "", "Directory scanned for .llm input files")
}

/*
PURPOSE:
  Defines the 'run' subcommand.
  Executes the full benchmark suite.

REQUIREMENTS:
  User-specified:
  - Run the benchmarks.
  - Specific flags for overrides.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails or engine run fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> Engine.Run.

USAGE:
  prompt-bench run --executable ./build/cql

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/prompt-bench/internal/config"
	"github.com/daryltucker/prompt-bench/internal/engine"
)

var (
	executableOverride string
	examplesOverride   string
	outputOverride     string
	reportOverride     string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the benchmark suite",
	Long: `Executes the full benchmark suite against the compiler executable.
The process follows a strict protocol:
1. Discovery: Finds all .llm input files in the examples directory.
2. Execution: For every file, runs each configuration in order -
   parameters are validated, the output filename is sanitized, and the
   compiler is invoked with a hard 30 second timeout.
3. Reporting: Renders a markdown report with an executive summary and
   per-file detail tables.

Every outcome is also streamed to CSV and JSON Lines files in the output
directory for downstream analysis.`,
	Example: `  # Run with defaults (uses prompt_bench.yaml)
  prompt-bench run

  # Point at a freshly built compiler
  prompt-bench run --executable ./build/cql

  # Benchmark a different example set into a separate output directory
  prompt-bench run --examples-dir ./prompts -o ./benchmarks

  # Change the report filename
  prompt-bench run --report nightly_report.md`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if executableOverride != "" {
			cfg.Executable = executableOverride
		}
		if examplesOverride != "" {
			cfg.ExamplesDir = examplesOverride
		}
		if outputOverride != "" {
			cfg.OutputDir = outputOverride
		}
		if reportOverride != "" {
			cfg.ReportFile = reportOverride
		}

		// 3. Execution
		return engine.Run(cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&executableOverride, "executable", "", "Path to the compiler executable under test")
	runCmd.Flags().StringVar(&examplesOverride, "examples-dir", "", "Directory scanned for .llm input files")
	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for the report and CSV/JSON results")
	runCmd.Flags().StringVar(&reportOverride, "report", "", "Report filename (written inside the output directory)")
}

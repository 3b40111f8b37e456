package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/discovery"
	"mustgather-discover/v1/pkg/report"
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <must-gather-path>",
	Short: "Report discovery findings without writing a config",
	Long: `Inspect runs the same analysis as discover and prints the findings
summary, but does not generate a configuration file. Useful for checking what
the discovery heuristics would flag before committing to an output.

Examples:
  mustgather-discover inspect ./must-gather`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("must-gather path does not exist: %s", path)
	}

	opts, err := config.FromViper()
	if err != nil {
		return fmt.Errorf("invalid scan options: %w", err)
	}

	findings, err := discovery.Run(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	report.New(findings).Print(cmd.OutOrStdout())
	return nil
}

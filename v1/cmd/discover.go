package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mustgather-discover/v1/pkg/cleanconfig"
	"mustgather-discover/v1/pkg/config"
	"mustgather-discover/v1/pkg/discovery"
	"mustgather-discover/v1/pkg/logger"
	"mustgather-discover/v1/pkg/report"
)

var discoverOutput string

// discoverCmd represents the discover command
var discoverCmd = &cobra.Command{
	Use:   "discover <must-gather-path>",
	Short: "Analyze a must-gather tree and generate a cleaning config",
	Long: `Discover scans the given must-gather directory for known secret
patterns, custom domain names and organization-specific keywords, prints a
findings summary, and writes a suggested must-gather-clean configuration.

The scan is sampled and bounded; review the generated config and edit it
before use.

Examples:
  # Generate a config next to the current directory
  mustgather-discover discover ./must-gather

  # Choose the output location
  mustgather-discover discover ./must-gather -o /tmp/clean-config.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDiscover,
}

func init() {
	rootCmd.AddCommand(discoverCmd)

	discoverCmd.Flags().StringVarP(&discoverOutput, "output", "o",
		"must-gather-clean-config.yaml", "Path for the generated config file")
}

func runDiscover(cmd *cobra.Command, args []string) error {
	log := logger.WithName("discover")
	out := cmd.OutOrStdout()

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("must-gather path does not exist: %s", path)
	}

	opts, err := config.FromViper()
	if err != nil {
		return fmt.Errorf("invalid scan options: %w", err)
	}

	fmt.Fprintln(out, "[*] Starting discovery analysis (all processing is local)...")
	fmt.Fprintf(out, "[*] Analyzing must-gather at: %s\n\n", path)

	findings, err := discovery.Run(cmd.Context(), path, opts)
	if err != nil {
		return fmt.Errorf("discovery failed: %w", err)
	}

	report.New(findings).Print(out)

	doc := cleanconfig.Synthesize(findings)
	if err := doc.Save(discoverOutput); err != nil {
		return err
	}
	log.InfoS("Configuration written",
		"output", discoverOutput,
		"obfuscateRules", len(doc.Config.Obfuscate),
		"omitRules", len(doc.Config.Omit))

	fmt.Fprintf(out, "\nConfiguration generated: %s\n", discoverOutput)
	fmt.Fprintln(out, "\nReview the generated config and edit if needed before using it.")
	return nil
}

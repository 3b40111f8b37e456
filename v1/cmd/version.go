package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mustgather-discover",
	Long:  `All software has versions. This is mustgather-discover's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mustgather-discover v%s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

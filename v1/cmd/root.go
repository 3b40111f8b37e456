package cmd

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mustgather-discover/v1/pkg/logger"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mustgather-discover",
	Short: "Suggest a must-gather-clean config from must-gather artifacts",
	Long: `mustgather-discover analyzes a must-gather directory tree locally and
suggests an obfuscation/omission configuration for must-gather-clean.

No data ever leaves the machine: the analysis reads manifests and pod logs
from the given path, looks for known secret patterns, custom domain names and
organization-specific keywords, and writes a config you can review and edit
before running must-gather-clean.

Get started:
  1. Collect a must-gather:
     $ oc adm must-gather --dest-dir ./must-gather

  2. Generate a suggested cleaning config:
     $ mustgather-discover discover ./must-gather -o must-gather-clean-config.yaml

  3. Review the config, then run must-gather-clean with it.

For more information, use --help with any command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	defer logger.Flush()
	err := rootCmd.Execute()
	if err != nil {
		logger.ErrorS(err, "Failed to execute command")
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile,
			"config",
			"",
			"config file (optional, default is ./config.yaml)")

	// Add klog flags to the command
	fs := flag.NewFlagSet("klog", flag.ExitOnError)
	logger.InitFlags(fs)
	rootCmd.PersistentFlags().AddGoFlagSet(fs)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err == nil {
			viper.AddConfigPath(cwd)
		}

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home + "/.config/mustgather-discover")
		}

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MUSTGATHER") // Allow MUSTGATHER_* environment variables

	if err := viper.ReadInConfig(); err == nil {
		logger.V(1).InfoS("Using config file", "file", viper.ConfigFileUsed())
	} else {
		// All options have defaults, so a missing config file is fine.
		logger.V(3).InfoS("Config file not found, using defaults", "error", err)
	}
}

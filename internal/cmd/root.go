package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	outputDir string
	verbose   bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "hostagg",
	Short: "Hostagg — hosts-file blocklist aggregator",
	Long: `Hostagg downloads hosts-format blocklists from multiple remote sources,
extracts blocked hostnames tagged with each source's category, removes
duplicates, and writes the unified list as CSV, JSON, and/or YAML.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $HOME/.hostagg.yaml)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "", "directory for output files (default: data)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-entry debug details")
}

func initConfig() {
	// All progress and error reporting goes to stdout, timestamped.
	log.SetOutput(os.Stdout)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".hostagg")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

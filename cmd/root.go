// Package cmd is for command line interactions with the debruijn assembler
package cmd

import (
	"os"

	"github.com/Trysis/debruijn-tp/config"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// verbose, when set, turns on per-resolution debug logging
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "debruijn",
	Short: `Assemble contigs from short sequencing reads.
Reads become a k-mer de Bruijn graph that is simplified down to contigs`,
	Version:      "0.1.0",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
		readSettings()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// setupLogging points logrus at stderr, colored only when stderr is a
// terminal. The verbose flag turns on debug lines
func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		ForceColors:      isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// readSettings registers the setting defaults and merges in the
// optional .debruijn.yaml from the working directory or home directory
func readSettings() {
	config.SetDefaults()

	viper.SetConfigName(".debruijn")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Warnf("failed to read settings file: %v", err)
		}
		return
	}
	log.Debugf("using settings from %s", viper.ConfigFileUsed())
}

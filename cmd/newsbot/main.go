// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the newsbot CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the newsbot CLI. Without a subcommand it
// starts the interactive chat loop.
var rootCmd = &cobra.Command{
	Use:   "newsbot",
	Short: "Search Google News and print short summaries",
	Long: `newsbot searches the Google News RSS feed for a keyword and prints the
latest articles with a short summary of each.

Run without arguments for the interactive loop, or use "newsbot search" for a
single query with optional JSON or YAML output.`,
	SilenceUsage: true,
	RunE:         runChat,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./newsbot.yaml or $XDG_CONFIG_HOME/newsbot/newsbot.yaml)")
	flags.String("lang", "", "interface language code (default ko)")
	flags.String("region", "", "region code (default KR)")
	flags.Int("max-results", 0, "maximum number of articles per query (default 10)")
	flags.Int("sentences", 0, "sentences kept per summary (default 2)")
	flags.Duration("timeout", 0, "HTTP request timeout (default 10s)")
	flags.String("user-agent", "", "User-Agent header for feed requests")
	flags.String("endpoint", "", "RSS search endpoint")

	configureViper(flags)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("newsbot")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "newsbot"))
	}

	viper.SetEnvPrefix("NEWSBOT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		fmt.Fprintf(os.Stderr, "warning: could not read config %s: %v\n", cfgFile, err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

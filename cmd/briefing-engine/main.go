// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the briefing-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/briefing-engine/internal/secrets"
	"github.com/pdiddy/briefing-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// corpusToken returns the corpus endpoint bearer token, if configured.
func corpusToken() string {
	return loadedSecrets["corpus-endpoint-token"]
}

// rootCmd is the base command for the briefing-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "briefing-engine",
	Short: "Procedural generator for Pentagon-style briefing decks",
	Long: `briefing-engine procedurally generates satirical military briefing decks:
ordered sequences of typed slides (title, agenda, bullets, timeline, matrix,
orgchart, flowchart, budget, venn, questions, backup) with vocabulary drawn
from a harvested corpus of real briefing slides when one is available, and
from built-in fallback word lists otherwise.

Use "generate" to write one deck as JSON or YAML, "corpus" to inspect the
resolved corpus, and "serve" to expose generation over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./briefing-engine.yaml or ~/.config/briefing-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("briefing-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "briefing-engine"))
		}
	}

	viper.SetDefault("corpus.timeout", 15*time.Second)
	viper.SetDefault("corpus.user_agent", "briefing-engine/"+version)
	viper.SetDefault("generate.format", "json")
	viper.SetDefault("server.addr", ":8440")
	viper.SetDefault("server.mode", "dev")

	viper.SetEnvPrefix("BRIEFING_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// corpusConfig assembles the corpus retrieval settings from viper.
func corpusConfig() types.CorpusConfig {
	return types.CorpusConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("corpus.timeout"),
			UserAgent: viper.GetString("corpus.user_agent"),
		},
		Endpoint: viper.GetString("corpus.endpoint"),
		File:     viper.GetString("corpus.file"),
		CacheDir: viper.GetString("corpus.cache_dir"),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

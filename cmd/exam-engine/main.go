// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the exam-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/exam-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// apiKey resolves the completion API credential: explicit flag value first,
// then the environment, then the secrets directory.
func apiKey(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		return v
	}
	return loadedSecrets["openai-api-key"]
}

// rootCmd is the base command for the exam-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "exam-engine",
	Short: "Generate exam study material from lecture slide PDFs",
	Long: `exam-engine turns lecture slide decks into exam study material in two
stages. The generate command extracts text from each PDF in the slices
directory, asks the completion API for question/answer pairs, and writes
one JSON file per lecture. The export command flattens those files into
numbered plain-text study sheets.

The stages share only the per-lecture JSON files; each can be re-run
independently.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; it feeds the OPENAI_API_KEY lookup.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./exam-engine.yaml or ~/.config/exam-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("exam-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "exam-engine"))
		}
	}

	viper.SetEnvPrefix("EXAM_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

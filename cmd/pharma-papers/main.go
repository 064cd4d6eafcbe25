// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pharma-papers CLI.
// Implements: prd001-retrieval, prd002-extraction, prd003-classification,
//             prd004-reporting (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Shreyasr1/pharma-papers/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the pharma-papers CLI. The query is the
// single positional argument; the pipeline runs directly from the root.
var rootCmd = &cobra.Command{
	Use:   "pharma-papers <query>",
	Short: "Find papers with pharma/biotech company authors",
	Long: `pharma-papers searches PubMed for papers matching a query, parses the
returned article records, classifies each author's affiliation, and reports
the papers that have at least one author affiliated with a pharmaceutical or
biotech company rather than an academic, governmental, or non-profit
institution.

Results go to the console by default, or to a CSV/XLSX file via --file.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	RunE:          runFetch,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pharma-papers.yaml or ~/.config/pharma-papers/config.yaml)")

	rootCmd.Flags().StringP("file", "f", "", "output file path (.csv or .xlsx); console output when omitted")
	rootCmd.Flags().BoolP("debug", "d", false, "enable debug logging")
	rootCmd.Flags().IntP("max", "m", 100, "maximum number of results to process")
	rootCmd.Flags().String("keywords", "", "YAML file overriding the built-in classification keyword sets")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pharma-papers")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pharma-papers"))
		}
	}

	viper.SetEnvPrefix("PHARMA_PAPERS")
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

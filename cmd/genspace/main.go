// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the genspace CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshint/genspace/internal/catalog"
	"github.com/meshint/genspace/internal/search"
	"github.com/meshint/genspace/internal/secrets"
	"github.com/meshint/genspace/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns the secret value for key if it exists, or fallback otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the genspace CLI.
var rootCmd = &cobra.Command{
	Use:   "genspace",
	Short: "Browse, search, and report on space biology studies",
	Long: `genspace is a study browser for space biology research. It searches a
study catalogue with synonym expansion, recognises spoken commands,
builds analysis reports from selected studies, and renders them to PDF,
Word, presentation, and web formats.

Each capability is a subcommand: search, say, report, history, and
serve. The serve command exposes the same capabilities over HTTP.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./genspace.yaml or ~/.config/genspace/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("genspace")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "genspace"))
		}
	}

	viper.SetEnvPrefix("GENSPACE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the full configuration from viper, applying
// defaults where the file and environment are silent.
func appConfig() types.AppConfig {
	cfg := types.AppConfig{
		Search: types.SearchConfig{
			CatalogPath:  viper.GetString("search.catalog"),
			SynonymsPath: viper.GetString("search.synonyms"),
			MaxResults:   viper.GetInt("search.max_results"),
		},
		Report:  types.DefaultReportConfig(),
		History: types.HistoryConfig{DBPath: viper.GetString("history.db")},
		Archive: types.ArchiveConfig{BaseURL: viper.GetString("archive.base_url")},
		Polish:  types.PolishConfig{BaseURL: viper.GetString("polish.base_url")},
		Server: types.ServerConfig{
			Addr:           viper.GetString("server.addr"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
			AuthToken:      viper.GetString("server.auth_token"),
		},
	}
	if v := viper.GetInt("report.confidence"); v > 0 {
		cfg.Report.Confidence = v
	}
	if v := viper.GetInt("report.coverage"); v > 0 {
		cfg.Report.Coverage = v
	}
	if v := viper.GetInt("report.reproducibility"); v > 0 {
		cfg.Report.Reproducibility = v
	}
	if v := viper.GetString("report.output_dir"); v != "" {
		cfg.Report.OutputDir = v
	}
	if cfg.History.DBPath == "" {
		cfg.History.DBPath = "data/history.db"
	}
	return cfg
}

// loadCatalog returns the study catalogue from the configured YAML file,
// falling back to the built-in sample catalogue.
func loadCatalog(cfg types.SearchConfig) (*catalog.Catalog, error) {
	if cfg.CatalogPath != "" {
		return catalog.Load(cfg.CatalogPath)
	}
	return catalog.Default(), nil
}

// loadSynonyms returns the synonym table from the configured YAML file,
// falling back to the built-in defaults.
func loadSynonyms(cfg types.SearchConfig) (search.Synonyms, error) {
	if cfg.SynonymsPath != "" {
		return search.LoadSynonyms(cfg.SynonymsPath)
	}
	return search.DefaultSynonyms(), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/meshint/genspace/internal/archive"
	"github.com/meshint/genspace/internal/history"
	"github.com/meshint/genspace/internal/polish"
	"github.com/meshint/genspace/internal/search"
	"github.com/meshint/genspace/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the study browser over HTTP",
	Long: `Serve exposes search, intent recognition, report generation, report
history, and the NASA OSDR and AI editing proxies as a JSON API.

API keys come from .secrets/ (nasa-api-key, ai-gateway-api-key) or a
.env file; without them the archive endpoint serves sample data and
report polishing is disabled.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; secrets and real env take precedence.
	godotenv.Load()

	cfg := appConfig()
	cat, err := loadCatalog(cfg.Search)
	if err != nil {
		return err
	}
	syn, err := loadSynonyms(cfg.Search)
	if err != nil {
		return err
	}

	store, err := history.NewStore(historyDBPath(cmd, cfg))
	if err != nil {
		return err
	}
	defer store.Close()

	cfg.Archive.APIKey = secretDefault("nasa-api-key", os.Getenv("NASA_API_KEY"))
	cfg.Polish.APIKey = secretDefault("ai-gateway-api-key", os.Getenv("AI_GATEWAY_API_KEY"))
	cfg.Server.AuthToken = secretDefault("auth-token", cfg.Server.AuthToken)

	h := &server.Handler{
		Catalog:   cat,
		Searcher:  search.New(cat, syn),
		ReportCfg: reportConfig(cmd, cfg),
		History:   store,
		Archive:   archive.New(cfg.Archive, os.Stderr),
		AuthToken: cfg.Server.AuthToken,
	}
	if cfg.Polish.APIKey != "" {
		h.Polish = polish.New(cfg.Polish)
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}

	router := server.NewRouter(h, cfg.Server)

	fmt.Fprintln(os.Stderr, "Listening on", cfg.Server.Addr)
	return http.ListenAndServe(cfg.Server.Addr, router)
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	serveCmd.Flags().String("db", "", "history database path (default: data/history.db)")
	serveCmd.Flags().String("out", "", "output directory for rendered reports")

	rootCmd.AddCommand(serveCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the study browser over HTTP: search, intent
// recognition, report generation, report history, and the archive and
// polish proxies.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/meshint/genspace/internal/archive"
	"github.com/meshint/genspace/internal/catalog"
	"github.com/meshint/genspace/internal/history"
	"github.com/meshint/genspace/internal/intent"
	"github.com/meshint/genspace/internal/polish"
	"github.com/meshint/genspace/internal/render"
	"github.com/meshint/genspace/internal/report"
	"github.com/meshint/genspace/internal/search"
	"github.com/meshint/genspace/pkg/types"
)

// Handler carries the wired components behind the HTTP surface.
// History, Archive, and Polish may be nil; their endpoints then report
// the feature as unavailable.
type Handler struct {
	Catalog   *catalog.Catalog
	Searcher  *search.Searcher
	ReportCfg types.ReportConfig
	History   *history.Store
	Archive   *archive.Client
	Polish    *polish.Client
	AuthToken string

	// Now stamps generated reports; tests pin it.
	Now func() time.Time
}

// NewRouter builds the chi router with the standard middleware stack
// and all routes registered.
func NewRouter(h *Handler, cfg types.ServerConfig) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes attaches every endpoint to the router.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.healthCheck)
	r.Get("/api/search", h.searchStudies)
	r.Post("/api/intent", h.recogniseIntent)
	r.Post("/api/report", h.generateReport)
	r.Post("/api/biospecimens", h.biospecimens)
	r.Post("/api/edit-report", h.editReport)

	r.Route("/api/history", func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Get("/", h.listHistory)
		r.Get("/{id}", h.downloadHistory)
		r.Delete("/{id}", h.deleteHistory)
	})
}

func (h *Handler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *Handler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) searchStudies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var names []string
	if raw := r.URL.Query().Get("filters"); raw != "" {
		names = strings.Split(raw, ",")
	}
	filters, err := search.ParseFilterSet(names)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results := h.Searcher.Search(query, filters)
	if results == nil {
		results = []search.Result{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"count":   len(results),
	})
}

func (h *Handler) recogniseIntent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Utterance string `json:"utterance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, intent.Recognise(req.Utterance))
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudyIDs []string `json:"studyIds"`
		Title    string   `json:"title"`
		Format   string   `json:"format"`
		Save     bool     `json:"save"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	studies := h.Catalog.Subset(req.StudyIDs)
	if len(studies) == 0 {
		writeError(w, http.StatusBadRequest, report.ErrEmptySelection.Error())
		return
	}

	format := render.Format(req.Format)
	if req.Format == "" {
		format = render.FormatPDF
	}

	doc := report.Build(studies, req.Title, h.now(), h.ReportCfg)
	out, err := render.Render(doc, format)
	if err != nil {
		if errors.Is(err, render.ErrUnknownFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "rendering report failed")
		return
	}

	if req.Save && h.History != nil {
		_, err := h.History.Save(history.Record{
			Title:    doc.Title,
			Format:   string(format),
			StudyIDs: req.StudyIDs,
			Content:  out.Data,
		})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "saving report failed")
			return
		}
	}

	w.Header().Set("Content-Type", out.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(out.Data)
}

// requireAuth gates the history endpoints behind the configured bearer
// token. An empty token disables the endpoints entirely.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.AuthToken == "" || h.History == nil {
			writeError(w, http.StatusNotFound, "report history is not enabled")
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+h.AuthToken {
			writeError(w, http.StatusUnauthorized, "missing or invalid bearer token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) listHistory(w http.ResponseWriter, _ *http.Request) {
	records, err := h.History.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "listing reports failed")
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reports": records,
		"count":   len(records),
	})
}

func (h *Handler) downloadHistory(w http.ResponseWriter, r *http.Request) {
	rec, err := h.History.Get(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "loading report failed")
		return
	}

	filename := render.Slug(rec.Title) + extensionFor(rec.Format)
	w.Header().Set("Content-Type", contentTypeFor(rec.Format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(rec.Content)
}

func (h *Handler) deleteHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.Delete(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, history.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "deleting report failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

func (h *Handler) biospecimens(w http.ResponseWriter, r *http.Request) {
	if h.Archive == nil {
		writeError(w, http.StatusNotFound, "archive proxy is not enabled")
		return
	}
	var req archive.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	env, err := h.Archive.Biospecimens(r.Context(), req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, archive.Envelope{
			Success:   false,
			Error:     err.Error(),
			Timestamp: h.now().UTC().Format(time.RFC3339),
		})
		return
	}
	writeJSON(w, http.StatusOK, env)
}

func (h *Handler) editReport(w http.ResponseWriter, r *http.Request) {
	if h.Polish == nil {
		writeError(w, http.StatusNotFound, "report polishing is not enabled")
		return
	}
	var req struct {
		ReportText string `json:"reportText"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ReportText == "" {
		writeError(w, http.StatusBadRequest, "Report text is required")
		return
	}

	edited, err := h.Polish.Edit(r.Context(), req.ReportText)
	switch {
	case errors.Is(err, polish.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "Rate limit exceeded. Please try again in a moment.")
		return
	case errors.Is(err, polish.ErrCreditsExhausted):
		writeError(w, http.StatusPaymentRequired, "AI credits exhausted. Please add credits to continue.")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "Failed to edit report with AI")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"editedText": edited})
}

func extensionFor(format string) string {
	switch render.Format(format) {
	case render.FormatPDF:
		return ".pdf"
	case render.FormatWord:
		return ".doc"
	case render.FormatPresentation:
		return "_presentation.html"
	case render.FormatWeb:
		return "_web_report.html"
	}
	return ""
}

func contentTypeFor(format string) string {
	switch render.Format(format) {
	case render.FormatPDF:
		return "application/pdf"
	case render.FormatWord:
		return "application/msword"
	case render.FormatPresentation, render.FormatWeb:
		return "text/html; charset=utf-8"
	}
	return "application/octet-stream"
}

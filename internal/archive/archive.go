// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive proxies the NASA Open Science Data Repository. The
// payloads pass through opaque: nothing downstream parses them.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/meshint/genspace/internal/httputil"
	"github.com/meshint/genspace/pkg/types"
)

const (
	defaultBaseURL = "https://osdr.nasa.gov"
	defaultStudyID = "37"
)

// Request is the body of a biospecimens query.
type Request struct {
	Action    string `json:"action"`
	Timestamp string `json:"timestamp,omitempty"`
	StudyID   string `json:"studyId,omitempty"`
}

// Envelope wraps every archive response. Data carries either the OSDR
// payload or the built-in sample set, untouched.
type Envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	Metadata  *Metadata       `json:"metadata,omitempty"`
	Error     string          `json:"error,omitempty"`
	Timestamp string          `json:"timestamp,omitempty"`
}

// Metadata describes where a live response came from.
type Metadata struct {
	Source      string  `json:"source"`
	Timestamp   string  `json:"timestamp"`
	RequestBody Request `json:"requestBody"`
}

// Client queries the OSDR archive. Without an API key it serves the
// canned sample biospecimens instead of calling out.
type Client struct {
	cfg  types.ArchiveConfig
	http *http.Client
	warn io.Writer
}

// New builds an archive client. Rate-limit warnings go to warn; nil
// discards them.
func New(cfg types.ArchiveConfig, warn io.Writer) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
		warn: warn,
	}
}

// Biospecimens answers a biospecimens request. With no API key
// configured the sample dataset is returned; otherwise the study
// metadata is fetched from OSDR with retry on rate limiting.
func (c *Client) Biospecimens(ctx context.Context, req Request) (Envelope, error) {
	if c.cfg.APIKey == "" {
		return Envelope{
			Success:   true,
			Message:   "Biospecimens sample data retrieved (NASA API key not configured)",
			Data:      sampleBiospecimens(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, nil
	}

	studyID := req.StudyID
	if studyID == "" {
		studyID = defaultStudyID
	}
	url := fmt.Sprintf("%s/osdr/data/osd/meta/OSD-%s/", c.cfg.BaseURL, studyID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Envelope{}, fmt.Errorf("building archive request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.cfg.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, httpReq, c.cfg.MaxRetries, c.warn)
	if err != nil {
		return Envelope{}, fmt.Errorf("querying archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Envelope{}, fmt.Errorf("archive returned %d: %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Envelope{}, fmt.Errorf("reading archive response: %w", err)
	}
	if !json.Valid(data) {
		return Envelope{}, fmt.Errorf("archive returned invalid JSON")
	}

	return Envelope{
		Success: true,
		Message: "Biospecimens data fetched successfully from NASA OSDR",
		Data:    json.RawMessage(data),
		Metadata: &Metadata{
			Source:      "NASA Open Science Data Repository",
			Timestamp:   time.Now().UTC().Format(time.RFC3339),
			RequestBody: req,
		},
	}, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/meshint/genspace/internal/httputil"
	"github.com/meshint/genspace/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestBiospecimensSampleFallback(t *testing.T) {
	c := New(types.ArchiveConfig{}, nil)

	env, err := c.Biospecimens(context.Background(), Request{Action: "fetch_biospecimens"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !env.Success {
		t.Error("Success = false")
	}
	if !strings.Contains(env.Message, "sample data") {
		t.Errorf("Message = %q", env.Message)
	}

	var payload struct {
		Biospecimens []struct {
			ID string `json:"id"`
		} `json:"biospecimens"`
		TotalCount int `json:"total_count"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decoding sample payload: %v", err)
	}
	if payload.TotalCount != 3 || len(payload.Biospecimens) != 3 {
		t.Errorf("payload = %+v", payload)
	}
	if payload.Biospecimens[0].ID != "bio-001" {
		t.Errorf("first id = %q", payload.Biospecimens[0].ID)
	}
}

func TestBiospecimensLiveFetch(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"study":{"OSD-101":{"title":"Rodent Research"}}}`))
	}))
	defer ts.Close()

	c := New(types.ArchiveConfig{BaseURL: ts.URL, APIKey: "nk_test"}, nil)

	env, err := c.Biospecimens(context.Background(), Request{Action: "fetch_biospecimens", StudyID: "101"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/osdr/data/osd/meta/OSD-101/" {
		t.Errorf("path = %q", gotPath)
	}
	if !env.Success || env.Metadata == nil {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Metadata.Source != "NASA Open Science Data Repository" {
		t.Errorf("Metadata.Source = %q", env.Metadata.Source)
	}
	if env.Metadata.RequestBody.StudyID != "101" {
		t.Errorf("Metadata.RequestBody = %+v", env.Metadata.RequestBody)
	}
	if !strings.Contains(string(env.Data), "Rodent Research") {
		t.Errorf("Data = %s", env.Data)
	}
}

func TestBiospecimensDefaultStudyID(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := New(types.ArchiveConfig{BaseURL: ts.URL, APIKey: "nk_test"}, nil)
	if _, err := c.Biospecimens(context.Background(), Request{Action: "fetch_biospecimens"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/osdr/data/osd/meta/OSD-37/" {
		t.Errorf("path = %q, want default study 37", gotPath)
	}
}

func TestBiospecimensRetriesRateLimit(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := New(types.ArchiveConfig{BaseURL: ts.URL, APIKey: "nk_test", MaxRetries: 2}, nil)
	env, err := c.Biospecimens(context.Background(), Request{Action: "fetch_biospecimens"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if !env.Success {
		t.Error("Success = false")
	}
}

func TestBiospecimensUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := New(types.ArchiveConfig{BaseURL: ts.URL, APIKey: "nk_test"}, nil)
	if _, err := c.Biospecimens(context.Background(), Request{Action: "fetch_biospecimens"}); err == nil {
		t.Error("expected error for upstream 502")
	}
}

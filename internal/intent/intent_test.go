// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package intent

import (
	"reflect"
	"testing"
)

func TestRecogniseNavigate(t *testing.T) {
	tests := []struct {
		utterance      string
		wantDest       Destination
		wantConfidence float64
	}{
		{"go to dashboard", DestDashboard, 0.9},
		{"open reports", DestReports, 0.9},
		{"take me to the home page", DestHome, 0.9},
		{"navigate to about", DestAbout, 0.9},
		{"switch to the data view", DestDashboard, 0.9},
		// A lone destination word navigates with reduced confidence.
		{"dashboard", DestDashboard, 0.7},
		{"reports", DestReports, 0.7},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := Recognise(tt.utterance)
			if got.Kind != KindNavigate {
				t.Fatalf("Kind = %s, want navigate", got.Kind)
			}
			if got.Destination != tt.wantDest {
				t.Errorf("Destination = %s, want %s", got.Destination, tt.wantDest)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestRecogniseSearch(t *testing.T) {
	tests := []struct {
		utterance string
		wantQuery string
	}{
		{"search for bone density", "bone density"},
		{"search radiation", "radiation"},
		{"find bacterial biofilm experiments", "bacterial biofilm experiments"},
		{"look for muscle atrophy", "muscle atrophy"},
		// No extractor fires; action words are stripped instead.
		{"locate radiation experiments", "radiation experiments"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := Recognise(tt.utterance)
			if got.Kind != KindSearch {
				t.Fatalf("Kind = %s, want search (intent %+v)", got.Kind, got)
			}
			if got.Query != tt.wantQuery {
				t.Errorf("Query = %q, want %q", got.Query, tt.wantQuery)
			}
			if got.Confidence != 0.8 {
				t.Errorf("Confidence = %v, want 0.8", got.Confidence)
			}
		})
	}
}

func TestRecogniseReports(t *testing.T) {
	tests := []struct {
		utterance      string
		wantConfidence float64
	}{
		{"generate report", 0.9},
		{"export the pdf", 0.9},
		{"create it now", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			got := Recognise(tt.utterance)
			if got.Kind != KindOpenReports {
				t.Fatalf("Kind = %s, want open_reports (intent %+v)", got.Kind, got)
			}
			if got.Confidence != tt.wantConfidence {
				t.Errorf("Confidence = %v, want %v", got.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestNavigationOutranksSearch(t *testing.T) {
	// "show" is both a navigation and a search verb; with a destination
	// word present the navigation reading wins.
	got := Recognise("show me the dashboard")
	if got.Kind != KindNavigate || got.Destination != DestDashboard {
		t.Errorf("got %+v, want Navigate(dashboard)", got)
	}
}

func TestRecogniseUnrecognised(t *testing.T) {
	got := Recognise("purple turtles fly")
	if got.Kind != KindUnrecognised {
		t.Fatalf("Kind = %s, want unrecognised (intent %+v)", got.Kind, got)
	}
	if got.Confidence != 0 {
		t.Errorf("Confidence = %v, want 0", got.Confidence)
	}
	want := []string{"search for purple turtles fly"}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", got.Suggestions, want)
	}
	if got.Utterance != "purple turtles fly" {
		t.Errorf("Utterance = %q", got.Utterance)
	}
}

func TestSuggestDestinationHint(t *testing.T) {
	// "bananas" carries the 3-char prefix of "analysis", a reports
	// synonym, so the hint proposes that destination.
	got := Recognise("bananas")
	if got.Kind != KindUnrecognised {
		t.Fatalf("Kind = %s, want unrecognised", got.Kind)
	}
	want := []string{"go to reports"}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", got.Suggestions, want)
	}
}

func TestSuggestCanonicalFallback(t *testing.T) {
	got := Recognise("zzz")
	if got.Kind != KindUnrecognised {
		t.Fatalf("Kind = %s, want unrecognised", got.Kind)
	}
	// The canonical trio is trimmed to two.
	want := []string{"go to dashboard", "search for studies"}
	if !reflect.DeepEqual(got.Suggestions, want) {
		t.Errorf("Suggestions = %v, want %v", got.Suggestions, want)
	}
}

func TestEmptyUtterance(t *testing.T) {
	got := Recognise("")
	if got.Kind != KindUnrecognised || got.Confidence != 0 {
		t.Errorf("got %+v, want unrecognised with confidence 0", got)
	}
}

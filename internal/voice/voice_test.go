// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package voice

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/meshint/genspace/internal/intent"
)

type fakeTranscriber struct {
	ch chan string
}

func (f *fakeTranscriber) Transcripts() <-chan string { return f.ch }

type fakeSpeaker struct {
	spoken []string
}

func (f *fakeSpeaker) Speak(text string) { f.spoken = append(f.spoken, text) }

type fakeActions struct {
	log []string
}

func (f *fakeActions) Navigate(dest intent.Destination) { f.log = append(f.log, "nav:"+string(dest)) }
func (f *fakeActions) Search(query string)              { f.log = append(f.log, "search:"+query) }
func (f *fakeActions) OpenReports()                     { f.log = append(f.log, "reports") }

func TestHandleDispatchAndAcks(t *testing.T) {
	tests := []struct {
		utterance  string
		wantAction string
		wantAck    string
	}{
		{"go to dashboard", "nav:dashboard", "Navigating to dashboard"},
		{"open reports", "nav:reports", "Navigating to reports"},
		{"navigate to about", "nav:about", "Navigating to about page"},
		{"find bone density", "search:bone density", "Searching for bone density"},
		{"generate report", "reports", "Generating report"},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			speaker := &fakeSpeaker{}
			actions := &fakeActions{}
			s := NewSession(&fakeTranscriber{}, speaker, actions)

			s.Handle(tt.utterance)

			if len(actions.log) != 1 || actions.log[0] != tt.wantAction {
				t.Errorf("actions = %v, want [%s]", actions.log, tt.wantAction)
			}
			if len(speaker.spoken) != 1 || speaker.spoken[0] != tt.wantAck {
				t.Errorf("spoken = %v, want [%s]", speaker.spoken, tt.wantAck)
			}
		})
	}
}

func TestHandleUnrecognised(t *testing.T) {
	speaker := &fakeSpeaker{}
	actions := &fakeActions{}
	s := NewSession(&fakeTranscriber{}, speaker, actions)

	in := s.Handle("purple turtles fly")

	if in.Kind != intent.KindUnrecognised {
		t.Errorf("Kind = %s", in.Kind)
	}
	if len(actions.log) != 0 {
		t.Errorf("actions dispatched for unrecognised command: %v", actions.log)
	}
	want := "Command not recognized. Try saying go to dashboard, search for studies, or generate report."
	if len(speaker.spoken) != 1 || speaker.spoken[0] != want {
		t.Errorf("spoken = %v", speaker.spoken)
	}
}

func TestRunDrainsSequentially(t *testing.T) {
	tr := &fakeTranscriber{ch: make(chan string, 3)}
	tr.ch <- "go to dashboard"
	tr.ch <- "find muscle atrophy"
	tr.ch <- "generate report"
	close(tr.ch)

	speaker := &fakeSpeaker{}
	actions := &fakeActions{}
	s := NewSession(tr, speaker, actions)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantActions := []string{"nav:dashboard", "search:muscle atrophy", "reports"}
	if !reflect.DeepEqual(actions.log, wantActions) {
		t.Errorf("actions = %v, want %v", actions.log, wantActions)
	}
	wantSpoken := []string{"Navigating to dashboard", "Searching for muscle atrophy", "Generating report"}
	if !reflect.DeepEqual(speaker.spoken, wantSpoken) {
		t.Errorf("spoken = %v, want %v", speaker.spoken, wantSpoken)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	tr := &fakeTranscriber{ch: make(chan string)}
	s := NewSession(tr, &fakeSpeaker{}, &fakeActions{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := s.Run(ctx); err != context.DeadlineExceeded {
		t.Errorf("err = %v, want DeadlineExceeded", err)
	}
}

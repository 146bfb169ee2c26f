// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package voice drives the spoken command loop: transcripts in,
// recognised intents dispatched, short acknowledgements out. The
// recogniser stays pure; this package owns the side effects.
package voice

import (
	"context"

	"github.com/meshint/genspace/internal/intent"
)

// Transcriber delivers finalised utterance transcripts. The channel
// closes when the transcript source ends.
type Transcriber interface {
	Transcripts() <-chan string
}

// Speaker voices short acknowledgements back to the user.
type Speaker interface {
	Speak(text string)
}

// Actions receives the side effects of dispatched intents.
type Actions interface {
	Navigate(dest intent.Destination)
	Search(query string)
	OpenReports()
}

// Session wires a transcriber, a speaker, and an action sink into one
// command loop.
type Session struct {
	transcriber Transcriber
	speaker     Speaker
	actions     Actions
}

// NewSession builds a voice session.
func NewSession(t Transcriber, s Speaker, a Actions) *Session {
	return &Session{transcriber: t, speaker: s, actions: a}
}

// Run drains transcripts sequentially until the source closes or the
// context is cancelled. Each utterance is fully handled before the next
// is read, so acknowledgements keep utterance order.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case utterance, ok := <-s.transcriber.Transcripts():
			if !ok {
				return nil
			}
			s.Handle(utterance)
		}
	}
}

// Handle recognises one utterance, dispatches it when confident enough,
// and speaks the acknowledgement. The recognised intent is returned for
// callers that surface it.
func (s *Session) Handle(utterance string) intent.Intent {
	in := intent.Recognise(utterance)
	if in.Confidence <= intent.Threshold {
		s.speaker.Speak("Command not recognized. Try saying go to dashboard, search for studies, or generate report.")
		return in
	}

	switch in.Kind {
	case intent.KindNavigate:
		s.actions.Navigate(in.Destination)
		s.speaker.Speak(navigateAck(in.Destination))
	case intent.KindSearch:
		s.actions.Search(in.Query)
		s.speaker.Speak("Searching for " + in.Query)
	case intent.KindOpenReports:
		s.actions.OpenReports()
		s.speaker.Speak("Generating report")
	}
	return in
}

func navigateAck(dest intent.Destination) string {
	if dest == intent.DestAbout {
		return "Navigating to about page"
	}
	return "Navigating to " + string(dest)
}

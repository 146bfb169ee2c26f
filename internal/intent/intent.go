// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package intent classifies free-form utterances into navigation,
// search, and report commands. Recognition is pure pattern matching;
// dispatching side effects is the caller's concern.
package intent

import (
	"regexp"
	"strings"
)

// Kind tags the recognised command class.
type Kind string

const (
	KindNavigate     Kind = "navigate"
	KindSearch       Kind = "search"
	KindOpenReports  Kind = "open_reports"
	KindUnrecognised Kind = "unrecognised"
)

// Destination is a navigable view.
type Destination string

const (
	DestDashboard Destination = "dashboard"
	DestHome      Destination = "home"
	DestReports   Destination = "reports"
	DestAbout     Destination = "about"
)

// Threshold is the minimum confidence for dispatching an intent.
const Threshold = 0.5

// Intent is the classification of one utterance. Destination is set for
// navigate, Query for search, Suggestions for unrecognised.
type Intent struct {
	Kind        Kind        `json:"kind"`
	Destination Destination `json:"destination,omitempty"`
	Query       string      `json:"query,omitempty"`
	Utterance   string      `json:"utterance"`
	Confidence  float64     `json:"confidence"`
	Suggestions []string    `json:"suggestions,omitempty"`
}

var navActions = []string{
	"go", "navigate", "open", "show", "display",
	"take me to", "switch to", "move to", "visit",
}

// destinations pairs each view with its spoken synonyms; order decides
// which destination wins when an utterance touches several.
var destinations = []struct {
	dest     Destination
	synonyms []string
}{
	{DestDashboard, []string{"dashboard", "dash", "studies", "main", "data"}},
	{DestHome, []string{"home", "start", "beginning", "main page", "homepage"}},
	{DestReports, []string{"reports", "report", "documents", "analysis", "summary"}},
	{DestAbout, []string{"about", "info", "information", "details", "help"}},
}

var searchActions = []string{
	"search", "find", "look for", "show me", "get", "display", "filter", "locate",
}

// searchExtractors pull the query term out of a search utterance, in
// precedence order.
var searchExtractors = []*regexp.Regexp{
	regexp.MustCompile(`search (?:for )?(.+)`),
	regexp.MustCompile(`find (.+)`),
	regexp.MustCompile(`look for (.+)`),
	regexp.MustCompile(`show me (.+)`),
	regexp.MustCompile(`get (.+)`),
}

// searchStopwords are the tokens stripped by the fallback extractor,
// the action words plus the particles of the phrase actions.
var searchStopwords = map[string]bool{
	"search": true, "find": true, "look": true, "for": true,
	"show": true, "me": true, "get": true, "display": true,
	"filter": true, "locate": true,
}

var reportActions = []string{
	"generate", "create", "make", "export", "download", "produce", "build",
}

var reportObjects = []string{
	"report", "pdf", "document", "analysis", "summary", "file",
}

// Recognise classifies an utterance. Navigation takes precedence over
// search, search over reports. Anything below the dispatch threshold
// comes back as Unrecognised with confidence 0 and suggestions.
func Recognise(utterance string) Intent {
	lowered := strings.ToLower(strings.TrimSpace(utterance))
	words := strings.Fields(lowered)

	if in, ok := recogniseNavigate(lowered, words); ok {
		in.Utterance = utterance
		return in
	}
	if in, ok := recogniseSearch(lowered, words); ok {
		in.Utterance = utterance
		return in
	}
	if in, ok := recogniseReports(lowered, words); ok {
		in.Utterance = utterance
		return in
	}

	return Intent{
		Kind:        KindUnrecognised,
		Utterance:   utterance,
		Confidence:  0,
		Suggestions: suggest(lowered, words),
	}
}

func recogniseNavigate(lowered string, words []string) (Intent, bool) {
	dest, destOK := matchDestination(words)

	if matchAction(lowered, words, navActions) {
		if destOK {
			return Intent{Kind: KindNavigate, Destination: dest, Confidence: 0.9}, true
		}
		return Intent{}, false
	}
	if destOK && len(words) == 1 {
		return Intent{Kind: KindNavigate, Destination: dest, Confidence: 0.7}, true
	}
	return Intent{}, false
}

func recogniseSearch(lowered string, words []string) (Intent, bool) {
	if !matchAction(lowered, words, searchActions) {
		return Intent{}, false
	}
	for _, re := range searchExtractors {
		if m := re.FindStringSubmatch(lowered); m != nil {
			if term := strings.TrimSpace(m[1]); term != "" {
				return Intent{Kind: KindSearch, Query: term, Confidence: 0.8}, true
			}
		}
	}
	var rest []string
	for _, w := range words {
		if !searchStopwords[w] {
			rest = append(rest, w)
		}
	}
	if term := strings.Join(rest, " "); term != "" {
		return Intent{Kind: KindSearch, Query: term, Confidence: 0.8}, true
	}
	return Intent{}, false
}

func recogniseReports(lowered string, words []string) (Intent, bool) {
	action := matchAction(lowered, words, reportActions)
	object := matchAction(lowered, words, reportObjects)
	switch {
	case action && object:
		return Intent{Kind: KindOpenReports, Confidence: 0.9}, true
	case action || object:
		return Intent{Kind: KindOpenReports, Confidence: 0.6}, true
	}
	return Intent{}, false
}

// matchAction reports whether any vocabulary entry matches: multi-word
// entries match as utterance substrings, single words per tokenMatch.
func matchAction(lowered string, words []string, vocab []string) bool {
	for _, v := range vocab {
		if strings.Contains(v, " ") {
			if strings.Contains(lowered, v) {
				return true
			}
			continue
		}
		for _, w := range words {
			if tokenMatch(w, v) {
				return true
			}
		}
	}
	return false
}

func matchDestination(words []string) (Destination, bool) {
	for _, d := range destinations {
		for _, syn := range d.synonyms {
			for _, w := range words {
				if tokenMatch(w, syn) {
					return d.dest, true
				}
			}
		}
	}
	return "", false
}

// tokenMatch reports whether a word and a vocabulary token match: one
// contains the other, or for tokens of four or more characters, one is
// a 3-character prefix of the other.
func tokenMatch(word, token string) bool {
	if strings.Contains(word, token) || strings.Contains(token, word) {
		return true
	}
	if len(token) >= 4 && len(word) >= 3 {
		return strings.HasPrefix(word, token[:3]) || strings.HasPrefix(token, word[:3])
	}
	return false
}

// suggest proposes follow-up commands for an unrecognised utterance.
// At most two are surfaced.
func suggest(lowered string, words []string) []string {
	var out []string
	for _, d := range destinations {
		if destHinted(d.synonyms, words) {
			out = append(out, "go to "+string(d.dest))
		}
	}
	if len(out) == 0 && len(words) >= 2 {
		out = append(out, "search for "+lowered)
	}
	if len(out) == 0 {
		out = []string{"go to dashboard", "search for studies", "generate report"}
	}
	if len(out) > 2 {
		out = out[:2]
	}
	return out
}

// destHinted reports whether any synonym's 3-character prefix occurs in
// some word of the utterance.
func destHinted(synonyms []string, words []string) bool {
	for _, syn := range synonyms {
		if len(syn) < 3 {
			continue
		}
		prefix := syn[:3]
		for _, w := range words {
			if strings.Contains(w, prefix) {
				return true
			}
		}
	}
	return false
}

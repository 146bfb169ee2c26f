// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Synonyms maps a canonical keyword to its ordered related terms.
// Lookup is case-insensitive; keys are stored lowercased.
type Synonyms map[string][]string

// DefaultSynonyms returns the built-in expansion table for space-biology
// vocabulary.
func DefaultSynonyms() Synonyms {
	return Synonyms{
		"plant":        {"arabidopsis", "root", "photosynthesis", "gravitropic"},
		"bacteria":     {"e. coli", "pseudomonas", "biofilm", "microbial"},
		"bone":         {"skeletal", "calcium", "density", "osteo"},
		"muscle":       {"skeletal muscle", "atrophy", "myofiber"},
		"radiation":    {"cosmic", "ionizing", "dna damage"},
		"gene":         {"genomics", "transcriptomics", "rna", "dna", "expression"},
		"human":        {"astronaut", "crew", "physiology"},
		"microgravity": {"weightlessness", "spaceflight", "orbit"},
		"protein":      {"proteomics", "folding", "enzyme"},
		"dna":          {"genome", "mutation", "repair", "sequencing"},
	}
}

// LoadSynonyms reads an expansion table from a YAML file mapping
// keywords to term lists. Keys are lowercased; duplicates after
// lowercasing are an error.
func LoadSynonyms(path string) (Synonyms, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading synonyms: %w", err)
	}
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing synonyms: %w", err)
	}
	syn := make(Synonyms, len(raw))
	for key, terms := range raw {
		lk := strings.ToLower(key)
		if _, ok := syn[lk]; ok {
			return nil, fmt.Errorf("duplicate synonym key %q", lk)
		}
		syn[lk] = terms
	}
	return syn, nil
}

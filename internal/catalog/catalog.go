// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog provides the in-memory study catalogue: an ordered,
// read-only collection of space-biology study records.
package catalog

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/meshint/genspace/pkg/types"
)

// Catalog is an ordered collection of study records with unique IDs.
// It is immutable after construction, so it is safe for concurrent reads.
type Catalog struct {
	studies []types.Study
	byID    map[string]int
}

// New builds a catalogue from the given records, preserving their order.
// Duplicate IDs are an error.
func New(studies []types.Study) (*Catalog, error) {
	c := &Catalog{
		studies: make([]types.Study, len(studies)),
		byID:    make(map[string]int, len(studies)),
	}
	copy(c.studies, studies)
	for i, s := range c.studies {
		if s.ID == "" {
			return nil, fmt.Errorf("study %d: empty id", i)
		}
		if prev, ok := c.byID[s.ID]; ok {
			return nil, fmt.Errorf("duplicate study id %q (records %d and %d)", s.ID, prev, i)
		}
		c.byID[s.ID] = i
	}
	return c, nil
}

// Default returns the built-in sample catalogue.
func Default() *Catalog {
	c, err := New(sampleStudies())
	if err != nil {
		// The sample set is compiled in; a duplicate ID is a programming error.
		panic(err)
	}
	return c
}

// Load reads a catalogue from a YAML file containing a list of studies.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalogue: %w", err)
	}
	var studies []types.Study
	if err := yaml.Unmarshal(data, &studies); err != nil {
		return nil, fmt.Errorf("parsing catalogue: %w", err)
	}
	c, err := New(studies)
	if err != nil {
		return nil, fmt.Errorf("validating catalogue: %w", err)
	}
	return c, nil
}

// Get returns the study with the given ID, or false when absent.
func (c *Catalog) Get(id string) (types.Study, bool) {
	i, ok := c.byID[id]
	if !ok {
		return types.Study{}, false
	}
	return c.studies[i], true
}

// All returns the records in catalogue order. The caller must not
// modify the returned slice.
func (c *Catalog) All() []types.Study {
	return c.studies
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.studies)
}

// Subset returns the records for the given IDs, in the order the IDs
// appear. Unknown IDs are skipped.
func (c *Catalog) Subset(ids []string) []types.Study {
	out := make([]types.Study, 0, len(ids))
	for _, id := range ids {
		if s, ok := c.Get(id); ok {
			out = append(out, s)
		}
	}
	return out
}

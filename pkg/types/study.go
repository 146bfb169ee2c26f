// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for GenSpace: study
// records, report documents, and stage configurations.
package types

// Study is a single space-biology study record. Records are read-only
// after construction; optional attributes are empty strings when the
// source dataset does not carry them.
type Study struct {
	// ID is an opaque, catalogue-unique identifier.
	ID string `json:"id" yaml:"id"`

	// Title is the study title.
	Title string `json:"title" yaml:"title"`

	// Year is the four-digit publication year.
	Year string `json:"year" yaml:"year"`

	// Mission names the flight or analog campaign (e.g. "ISS Expedition 68").
	Mission string `json:"mission" yaml:"mission"`

	// Summary is a one-paragraph abstract.
	Summary string `json:"summary" yaml:"summary"`

	// Tags are free-form labels attached by curators.
	Tags []string `json:"tags" yaml:"tags"`

	// References lists citation strings for the study.
	References []string `json:"references" yaml:"references"`

	Species   string `json:"species,omitempty" yaml:"species,omitempty"`
	Tissue    string `json:"tissue,omitempty" yaml:"tissue,omitempty"`
	OmicsType string `json:"omics_type,omitempty" yaml:"omics_type,omitempty"`
	Duration  string `json:"duration,omitempty" yaml:"duration,omitempty"`
	Radiation string `json:"radiation,omitempty" yaml:"radiation,omitempty"`
	Pathway   string `json:"pathway,omitempty" yaml:"pathway,omitempty"`
	Outcome   string `json:"outcome,omitempty" yaml:"outcome,omitempty"`
	DataType  string `json:"data_type,omitempty" yaml:"data_type,omitempty"`
}

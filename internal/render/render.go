// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns a report document into the supported output
// formats. Each renderer is total over the document tree: it emits
// exactly the sections the document declares, in the declared order.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/meshint/genspace/pkg/types"
)

// Format selects an output renderer.
type Format string

const (
	FormatPDF          Format = "pdf"
	FormatWord         Format = "word"
	FormatPresentation Format = "presentation"
	FormatWeb          Format = "web"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPDF, FormatWord, FormatPresentation, FormatWeb}
}

// ErrUnknownFormat is returned for a format outside the supported set.
var ErrUnknownFormat = errors.New("unknown report format")

// Output is a rendered report: the bytes, a suggested filename, and the
// MIME type to serve it under.
type Output struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Render produces the document in the requested format.
func Render(doc types.ReportDocument, format Format) (Output, error) {
	slug := Slug(doc.Title)
	switch format {
	case FormatPDF:
		data, err := renderPDF(doc)
		if err != nil {
			return Output{}, fmt.Errorf("rendering pdf: %w", err)
		}
		return Output{Data: data, Filename: slug + ".pdf", ContentType: "application/pdf"}, nil
	case FormatWord:
		return Output{
			Data:        renderWord(doc),
			Filename:    slug + ".doc",
			ContentType: "application/msword",
		}, nil
	case FormatPresentation:
		return Output{
			Data:        renderPresentation(doc),
			Filename:    slug + "_presentation.html",
			ContentType: "text/html; charset=utf-8",
		}, nil
	case FormatWeb:
		return Output{
			Data:        renderWeb(doc),
			Filename:    slug + "_web_report.html",
			ContentType: "text/html; charset=utf-8",
		}, nil
	}
	return Output{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

var nonAlphanum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases a title and collapses each non-alphanumeric run to a
// single underscore.
func Slug(title string) string {
	return nonAlphanum.ReplaceAllString(strings.ToLower(title), "_")
}

// WriteFile writes the rendered output into dir, creating it if needed,
// and returns the full path.
func WriteFile(out Output, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	path := filepath.Join(dir, out.Filename)
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	return path, nil
}

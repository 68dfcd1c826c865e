// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litreview pipeline.
// Implements: metadata records produced by the extractor and the
// configuration consumed by the review, render, and catalog stages.
package types

import "strings"

// PaperMetadata describes one paper reviewed in a generated literature
// review. Every field defaults to its zero value when the corresponding
// label is missing from the review text; Keywords is never nil.
type PaperMetadata struct {
	// Title is the section heading the paper was reviewed under.
	Title string `json:"title" yaml:"title"`

	// Authors is the author list exactly as written after the Authors label.
	Authors string `json:"authors" yaml:"authors"`

	// PublicationDate is the free-form date written after the Publication Date label.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// Keywords lists the comma-separated keywords, trimmed, in source order.
	Keywords []string `json:"keywords" yaml:"keywords"`

	// SourceLink is the first HTTP or HTTPS URL found in the section.
	SourceLink string `json:"source_link" yaml:"source_link"`
}

// HasKeyword reports whether kw matches one of the record's keywords,
// ignoring case.
func (p PaperMetadata) HasKeyword(kw string) bool {
	for _, k := range p.Keywords {
		if strings.EqualFold(strings.TrimSpace(k), strings.TrimSpace(kw)) {
			return true
		}
	}
	return false
}

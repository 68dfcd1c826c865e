// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metadata pulls per-paper metadata records out of a generated
// literature review and persists them.
// Implements: paper sections split on level-2 headings, independent label
// scanners for authors, publication date, keywords, and source link.
package metadata

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litreview/pkg/types"
)

// sectionMarker separates paper sections in the review text.
const sectionMarker = "## "

// structuralSections are section titles that describe the review itself
// rather than a paper. Compared case-insensitively.
var structuralSections = map[string]bool{
	"conclusion": true,
	"references": true,
}

// Label scanners. Each is applied to a whole section body and captures
// the rest of the line after the label.
var (
	authorsRe  = regexp.MustCompile(`\*\*Authors\*\*: (.+)`)
	dateRe     = regexp.MustCompile(`\*\*Publication Date\*\*: (.+)`)
	keywordsRe = regexp.MustCompile(`\*\*Keywords\*\*: (.+)`)
	linkRe     = regexp.MustCompile(`https?://\S+`)
)

// Extract splits text into paper sections and returns one record per
// section, in document order. The preamble before the first section and
// the Conclusion and References sections are skipped. Extract never
// fails: a missing label leaves the corresponding field empty.
func Extract(text string) []types.PaperMetadata {
	segments := strings.Split(text, sectionMarker)
	records := make([]types.PaperMetadata, 0, len(segments))

	for _, sec := range segments[1:] {
		title := sectionTitle(sec)
		if structuralSections[strings.ToLower(title)] {
			continue
		}
		records = append(records, parseSection(title, sec))
	}
	return records
}

// sectionTitle returns the first line of a section, trimmed.
func sectionTitle(sec string) string {
	first, _, _ := strings.Cut(strings.TrimSpace(sec), "\n")
	return strings.TrimSpace(first)
}

func parseSection(title, body string) types.PaperMetadata {
	rec := types.PaperMetadata{
		Title:    title,
		Keywords: []string{},
	}
	if v, ok := scanLabel(authorsRe, body); ok {
		rec.Authors = v
	}
	if v, ok := scanLabel(dateRe, body); ok {
		rec.PublicationDate = v
	}
	if v, ok := scanLabel(keywordsRe, body); ok {
		rec.Keywords = SplitKeywords(v)
	}
	if link := linkRe.FindString(body); link != "" {
		rec.SourceLink = link
	}
	return rec
}

// scanLabel returns the first capture group of re in body, without the
// carriage return a CRLF line leaves at its end.
func scanLabel(re *regexp.Regexp, body string) (string, bool) {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return "", false
	}
	return strings.TrimRight(m[1], "\r"), true
}

// SplitKeywords splits a comma-separated keyword list and trims each
// token. Empty tokens are kept, so "a,, b," yields four keywords.
func SplitKeywords(s string) []string {
	toks := strings.Split(s, ",")
	for i, tok := range toks {
		toks[i] = strings.TrimSpace(tok)
	}
	return toks
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"regexp"
	"strings"
)

// Weight selects the font variant of a style run.
type Weight int

const (
	Regular Weight = iota
	Bold
	Oblique
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	case Oblique:
		return "oblique"
	default:
		return "regular"
	}
}

// Color selects the fill color of a style run.
type Color int

const (
	ColorDefault Color = iota
	ColorLink
)

// StyleRun is a contiguous piece of text drawn with one weight and color.
type StyleRun struct {
	Text   string
	Weight Weight
	Color  Color
}

// spanRe matches, in precedence order, **bold**, *emphasis*, and bare
// URLs. Go's alternation is leftmost-first, so at any position the first
// alternative that matches consumes the text.
var spanRe = regexp.MustCompile(`\*\*(.*?)\*\*|\*(.*?)\*|(https?://\S+)`)

// Submatch index pairs for the three alternatives.
const (
	boldGroup     = 2
	emphasisGroup = 4
	urlGroup      = 6
)

// ResolveRuns splits text into style runs in a single left-to-right pass.
// Delimiters are stripped, spans never nest, and text between spans
// becomes a regular run. Runs with nothing to draw are omitted.
func ResolveRuns(text string) []StyleRun {
	var runs []StyleRun
	emit := func(s string, w Weight, c Color) {
		if strings.TrimSpace(s) == "" {
			return
		}
		runs = append(runs, StyleRun{Text: s, Weight: w, Color: c})
	}

	cursor := 0
	for _, m := range spanRe.FindAllStringSubmatchIndex(text, -1) {
		if cursor < m[0] {
			emit(text[cursor:m[0]], Regular, ColorDefault)
		}
		switch {
		case m[boldGroup] >= 0:
			emit(text[m[boldGroup]:m[boldGroup+1]], Bold, ColorDefault)
		case m[emphasisGroup] >= 0:
			emit(text[m[emphasisGroup]:m[emphasisGroup+1]], Regular, ColorDefault)
		case m[urlGroup] >= 0:
			emit(text[m[urlGroup]:m[urlGroup+1]], Oblique, ColorLink)
		}
		cursor = m[1]
	}
	if cursor < len(text) {
		emit(text[cursor:], Regular, ColorDefault)
	}
	return runs
}

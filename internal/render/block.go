// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render lays out a generated literature review onto fixed-size
// PDF pages.
// Implements: line classification into blocks, inline style runs,
// greedy word wrap, and the pagination state machine with running footers.
package render

import "strings"

// BlockKind identifies how a line of review text is drawn.
type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
	BoldLine
	NumberedItem
	BulletItem
)

var blockKindNames = [...]string{
	Paragraph:    "paragraph",
	Heading:      "heading",
	BoldLine:     "bold-line",
	NumberedItem: "numbered-item",
	BulletItem:   "bullet-item",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// Block is one classified line of the review.
type Block struct {
	Kind BlockKind
	Text string
}

// Line prefixes, in classification order.
const (
	headingPrefix  = "### "
	boldPrefix     = "**"
	numberedPrefix = "* "
	bulletPlus     = "  + "
	bulletMinus    = "  - "
)

// Classify assigns a BlockKind to a single line. Prefixes are tested in a
// fixed order and the first match wins. A "* " list marker renders as a
// numbered item.
func Classify(line string) Block {
	kind := Paragraph
	switch {
	case strings.HasPrefix(line, headingPrefix):
		kind = Heading
	case strings.HasPrefix(line, boldPrefix):
		kind = BoldLine
	case strings.HasPrefix(line, numberedPrefix):
		kind = NumberedItem
	case strings.HasPrefix(line, bulletPlus), strings.HasPrefix(line, bulletMinus):
		kind = BulletItem
	}
	return Block{Kind: kind, Text: line}
}

// Blocks splits text into lines and classifies each one, in document order.
func Blocks(text string) []Block {
	lines := strings.Split(text, "\n")
	blocks := make([]Block, len(lines))
	for i, line := range lines {
		blocks[i] = Classify(strings.TrimRight(line, "\r"))
	}
	return blocks
}

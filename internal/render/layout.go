// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"strconv"
	"strings"
)

// inch is one inch in PDF points.
const inch = 72.0

// Font sizes and line heights in points.
const (
	titleSize      = 20.0
	headingSize    = 18.0
	boldLineSize   = 14.0
	bodySize       = 12.0
	footerSize     = 10.0
	bodyLineHeight = 14.0
	numberedIndent = 10.0
	bulletIndent   = 20.0
)

// bullet is drawn in front of indented sub-list items.
const bullet = "•"

// Geometry describes the page size and the left/right margin. All other
// vertical landmarks are fixed offsets from the page edges.
type Geometry struct {
	Width  float64
	Height float64
	Margin float64
}

// ContentWidth is the page width between the left and right margins.
func (g Geometry) ContentWidth() float64 { return g.Width - 2*g.Margin }

// titleY is the baseline of the document title on the first page.
func (g Geometry) titleY() float64 { return g.Height - 1.5*inch }

// topY is where content starts on every page after a break.
func (g Geometry) topY() float64 { return g.Height - inch }

// nearTopY is the threshold above which a page counts as still mostly empty.
func (g Geometry) nearTopY() float64 { return g.Height - 2*inch }

// bottomY is the lowest position content may start at before a break.
func (g Geometry) bottomY() float64 { return 2 * inch }

// Cursor is the mutable layout state of one render. ListCounter is
// document scoped: it is never reset, not even by a page break.
type Cursor struct {
	Page        int
	Y           float64
	ListCounter int
}

// WrapSpec configures one call to Wrap.
type WrapSpec struct {
	// Indent shifts every line of the block right of the left margin.
	Indent float64
	// Width is the available line width measured from the left margin.
	Width float64
	// Size is the font size.
	Size float64
	// LineHeight is the distance between baselines.
	LineHeight float64
}

// Wrap draws runs word by word starting at (left+Indent, y), breaking to a
// new line whenever the next word would pass left+Width. A word that does
// not fit on an empty line is drawn anyway. It returns the y position
// below the last line.
func Wrap(c Canvas, runs []StyleRun, left, y float64, spec WrapSpec) float64 {
	lineStart := left + spec.Indent
	limit := left + spec.Width
	x := lineStart
	empty := true

	for _, run := range runs {
		c.SetFont(run.Weight, spec.Size)
		c.SetColor(run.Color)
		space := c.StringWidth(" ")

		for _, word := range strings.Fields(run.Text) {
			w := c.StringWidth(word)
			if !empty && x+w > limit {
				y -= spec.LineHeight
				x = lineStart
			}
			c.DrawString(x, y, word)
			x += w + space
			empty = false
		}
	}
	c.SetColor(ColorDefault)

	return y - spec.LineHeight
}

// Layout is the pagination state machine. It owns the cursor for the
// whole document and must not be shared between renders.
type Layout struct {
	canvas Canvas
	geo    Geometry
	cursor Cursor
	breaks int
}

// NewLayout returns a layout that draws onto c. Call Begin before placing
// blocks and Finish after the last one.
func NewLayout(c Canvas, geo Geometry) *Layout {
	return &Layout{canvas: c, geo: geo}
}

// Cursor returns a copy of the current layout state.
func (l *Layout) Cursor() Cursor { return l.cursor }

// Breaks returns the number of page breaks taken so far.
func (l *Layout) Breaks() int { return l.breaks }

// Begin opens the first page and draws the document title.
func (l *Layout) Begin(title string) {
	l.canvas.AddPage()
	l.cursor = Cursor{Page: 1, Y: l.geo.titleY()}

	l.canvas.SetFont(Bold, titleSize)
	l.canvas.SetColor(ColorDefault)
	l.canvas.DrawString(l.geo.Margin, l.cursor.Y, title)
	l.cursor.Y -= 0.5 * inch
}

// Place draws one block, breaking the page first when required.
//
// A heading breaks the page while the cursor is still at or above the
// near-top threshold, so headings never share a page with only a little
// content above them. Any block breaks the page once the cursor has
// dropped below the bottom threshold.
func (l *Layout) Place(b Block) {
	if b.Kind == Heading && l.cursor.Y >= l.geo.nearTopY() {
		l.pageBreak()
	}
	if l.cursor.Y < l.geo.bottomY() {
		l.pageBreak()
	}

	left := l.geo.Margin
	switch b.Kind {
	case Heading:
		l.cursor.Y -= 0.5 * inch
		l.canvas.SetFont(Bold, headingSize)
		l.canvas.SetColor(ColorDefault)
		l.canvas.DrawString(left, l.cursor.Y, strings.TrimSpace(b.Text[len(headingPrefix):]))
		l.cursor.Y -= 0.3 * inch
		l.canvas.Line(left, l.cursor.Y, l.geo.Width-left, l.cursor.Y)
		l.cursor.Y -= 0.4 * inch
	case BoldLine:
		l.cursor.Y -= 0.3 * inch
		l.cursor.Y = l.wrap(b.Text, boldLineSize, 0)
	case NumberedItem:
		l.cursor.ListCounter++
		text := fmt.Sprintf("**%d.** %s", l.cursor.ListCounter, b.Text[len(numberedPrefix):])
		l.cursor.Y = l.wrap(text, bodySize, numberedIndent)
	case BulletItem:
		l.cursor.Y = l.wrap(bullet+" "+b.Text[len(bulletPlus):], bodySize, bulletIndent)
	default:
		l.cursor.Y = l.wrap(b.Text, bodySize, 0)
	}

	l.cursor.Y -= 0.1 * inch
}

// Finish draws the footer of the last page.
func (l *Layout) Finish() {
	l.footer()
}

func (l *Layout) wrap(text string, size, indent float64) float64 {
	return Wrap(l.canvas, ResolveRuns(text), l.geo.Margin, l.cursor.Y, WrapSpec{
		Indent:     indent,
		Width:      l.geo.ContentWidth() - indent,
		Size:       size,
		LineHeight: bodyLineHeight,
	})
}

func (l *Layout) pageBreak() {
	l.footer()
	l.canvas.AddPage()
	l.cursor.Page++
	l.cursor.Y = l.geo.topY()
	l.breaks++
}

// footer draws the right-aligned page number and the rule above it.
func (l *Layout) footer() {
	l.canvas.SetFont(Regular, footerSize)
	l.canvas.SetColor(ColorDefault)
	l.canvas.DrawRightString(l.geo.Width-l.geo.Margin, 0.5*inch, "Page "+strconv.Itoa(l.cursor.Page))
	l.canvas.Line(l.geo.Margin, 0.6*inch, l.geo.Width-l.geo.Margin, 0.6*inch)
}

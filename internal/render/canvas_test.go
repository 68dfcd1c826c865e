// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import "unicode/utf8"

// drawOp is one recorded DrawString or DrawRightString call.
type drawOp struct {
	page   int
	x, y   float64
	text   string
	weight Weight
	size   float64
	color  Color
	right  bool
}

// lineOp is one recorded Line call.
type lineOp struct {
	page           int
	x1, y1, x2, y2 float64
}

// recordingCanvas implements Canvas by recording every call. Each rune
// measures half the font size, which keeps expected positions easy to
// compute by hand.
type recordingCanvas struct {
	pages  int
	weight Weight
	size   float64
	color  Color
	draws  []drawOp
	lines  []lineOp
}

func (r *recordingCanvas) AddPage() { r.pages++ }

func (r *recordingCanvas) SetFont(w Weight, size float64) {
	r.weight = w
	r.size = size
}

func (r *recordingCanvas) SetColor(c Color) { r.color = c }

func (r *recordingCanvas) StringWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * r.size / 2
}

func (r *recordingCanvas) DrawString(x, y float64, s string) {
	r.draws = append(r.draws, drawOp{page: r.pages, x: x, y: y, text: s, weight: r.weight, size: r.size, color: r.color})
}

func (r *recordingCanvas) DrawRightString(x, y float64, s string) {
	r.draws = append(r.draws, drawOp{page: r.pages, x: x, y: y, text: s, weight: r.weight, size: r.size, color: r.color, right: true})
}

func (r *recordingCanvas) Line(x1, y1, x2, y2 float64) {
	r.lines = append(r.lines, lineOp{page: r.pages, x1: x1, y1: y1, x2: x2, y2: y2})
}

// find returns the first draw whose text equals s.
func (r *recordingCanvas) find(s string) (drawOp, bool) {
	for _, d := range r.draws {
		if d.text == s {
			return d, true
		}
	}
	return drawOp{}, false
}

// footers returns the right-aligned page labels in draw order.
func (r *recordingCanvas) footers() []drawOp {
	var out []drawOp
	for _, d := range r.draws {
		if d.right {
			out = append(out, d)
		}
	}
	return out
}

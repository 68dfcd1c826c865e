// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

// Canvas is the drawing surface the layout writes to. Coordinates are in
// points with the origin at the bottom-left corner of the page, so a
// larger y is higher on the page. PDFCanvas is the production
// implementation; tests supply a recording canvas.
type Canvas interface {
	// AddPage starts a new page. Drawing before the first AddPage is undefined.
	AddPage()

	// SetFont selects the font weight and size for subsequent text.
	SetFont(w Weight, size float64)

	// SetColor selects the fill color for subsequent text.
	SetColor(c Color)

	// StringWidth measures s in the current font.
	StringWidth(s string) float64

	// DrawString draws s with its baseline starting at (x, y).
	DrawString(x, y float64, s string)

	// DrawRightString draws s with its baseline ending at (x, y).
	DrawRightString(x, y float64, s string)

	// Line strokes a straight line.
	Line(x1, y1, x2, y2 float64)
}

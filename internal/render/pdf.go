// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

const (
	fontFamily = "Helvetica"
	creator    = "litreview"
)

// fontStyles maps a run weight to the gofpdf core font style.
var fontStyles = map[Weight]string{
	Regular: "",
	Bold:    "B",
	Oblique: "I",
}

// PDFCanvas draws onto a gofpdf document using the standard Helvetica
// fonts. It converts the layout's bottom-left coordinates to gofpdf's
// top-left ones.
type PDFCanvas struct {
	pdf    *gofpdf.Fpdf
	height float64
}

// NewPDFCanvas creates an empty document of the given geometry with title
// stored as its document metadata.
func NewPDFCanvas(geo Geometry, title string) *PDFCanvas {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: geo.Width, Ht: geo.Height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(geo.Margin, geo.Margin, geo.Margin)
	pdf.SetTitle(encodeText(title), false)
	pdf.SetCreator(creator, false)
	pdf.SetLineWidth(1)
	pdf.SetFont(fontFamily, "", bodySize)

	return &PDFCanvas{pdf: pdf, height: geo.Height}
}

func (c *PDFCanvas) AddPage() { c.pdf.AddPage() }

func (c *PDFCanvas) SetFont(w Weight, size float64) {
	c.pdf.SetFont(fontFamily, fontStyles[w], size)
}

func (c *PDFCanvas) SetColor(col Color) {
	if col == ColorLink {
		c.pdf.SetTextColor(0, 0, 255)
		return
	}
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *PDFCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(encodeText(s))
}

func (c *PDFCanvas) DrawString(x, y float64, s string) {
	c.pdf.Text(x, c.height-y, encodeText(s))
}

func (c *PDFCanvas) DrawRightString(x, y float64, s string) {
	enc := encodeText(s)
	c.pdf.Text(x-c.pdf.GetStringWidth(enc), c.height-y, enc)
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.height-y1, x2, c.height-y2)
}

// Close finalizes the document and writes it to w. The canvas cannot be
// used afterwards.
func (c *PDFCanvas) Close(w io.Writer) error {
	if err := c.pdf.Error(); err != nil {
		return fmt.Errorf("building PDF: %w", err)
	}
	if err := c.pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

// encodeText converts s to the Windows-1252 bytes the core PDF fonts
// expect. Runes outside that code page become '?'.
func encodeText(s string) string {
	s = norm.NFC.String(s)
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteByte(byte(r))
			continue
		}
		if enc, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(enc)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

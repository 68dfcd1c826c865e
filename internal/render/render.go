// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PageSizes lists the supported page geometries, all with 1-inch margins.
var PageSizes = map[string]Geometry{
	"letter": {Width: 612, Height: 792, Margin: inch},
	"legal":  {Width: 612, Height: 1008, Margin: inch},
	"a4":     {Width: 595.28, Height: 841.89, Margin: inch},
}

// DefaultGeometry is a US Letter page with 1-inch margins.
func DefaultGeometry() Geometry { return PageSizes["letter"] }

// LookupPageSize returns the geometry for a page size name. An empty name
// selects Letter.
func LookupPageSize(name string) (Geometry, error) {
	if name == "" {
		return DefaultGeometry(), nil
	}
	geo, ok := PageSizes[strings.ToLower(name)]
	if !ok {
		names := make([]string, 0, len(PageSizes))
		for n := range PageSizes {
			names = append(names, n)
		}
		sort.Strings(names)
		return Geometry{}, fmt.Errorf("unknown page size %q: use one of %s", name, strings.Join(names, ", "))
	}
	return geo, nil
}

// Draw lays out text onto c: title first, then every block in document
// order, then the final footer. It returns the finished layout so callers
// can inspect the cursor.
func Draw(c Canvas, geo Geometry, title, text string) *Layout {
	l := NewLayout(c, geo)
	l.Begin(title)
	for _, b := range Blocks(text) {
		l.Place(b)
	}
	l.Finish()
	return l
}

// Render writes text as a paginated PDF to w with title as both the
// document metadata title and the heading of the first page.
func Render(w io.Writer, geo Geometry, title, text string) error {
	c := NewPDFCanvas(geo, title)
	Draw(c, geo, title, text)
	return c.Close(w)
}

// RenderFile renders to path. The PDF is written to a temporary file in
// the same directory and renamed into place, so a failed render leaves
// nothing at path.
func RenderFile(path string, geo Geometry, title, text string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".litreview-*.pdf")
	if err != nil {
		return fmt.Errorf("creating temporary PDF: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := Render(tmp, geo, title, text); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary PDF: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("setting PDF permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("moving PDF into place: %w", err)
	}
	return nil
}

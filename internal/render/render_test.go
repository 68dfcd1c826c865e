// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reviewText = `### 1. Attention Is All You Need
**Authors**: Ashish Vaswani, Noam Shazeer
**Publication Date**: 2017
**Keywords**: transformers, attention
**Review**: *The paper introduces the transformer, a network based solely on attention.*
* Source: https://arxiv.org/abs/1706.03762
  - Résumé of findings • naïve baselines
### Conclusion
Both approaches matter.`

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, DefaultGeometry(), "Literature Review: Transformers", reviewText)
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "%PDF-"), "output should be a PDF")
	assert.Contains(t, out, "Literature Review: Transformers", "title metadata")
	assert.Contains(t, out, "/Count 2", "heading forces a second page")
	assert.Contains(t, out, "litreview", "creator metadata")
}

func TestRender_EmptyDocumentIsOnePage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, DefaultGeometry(), "Literature Review: Empty", ""))
	assert.Contains(t, buf.String(), "/Count 1")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRender_WriterFailure(t *testing.T) {
	err := Render(failingWriter{}, DefaultGeometry(), "T", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestRenderFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "literature_reviews")
	path := filepath.Join(dir, "Transformers_literature_review.pdf")

	require.NoError(t, RenderFile(path, DefaultGeometry(), "Literature Review: Transformers", reviewText))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file must not remain")
	assert.Equal(t, "Transformers_literature_review.pdf", entries[0].Name())
}

func TestRenderFile_UnwritableDirectory(t *testing.T) {
	base := t.TempDir()
	blocker := filepath.Join(base, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := RenderFile(filepath.Join(blocker, "out.pdf"), DefaultGeometry(), "T", "body")
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(blocker, "out.pdf"))
	assert.Error(t, statErr)
}

func TestLookupPageSize(t *testing.T) {
	geo, err := LookupPageSize("")
	require.NoError(t, err)
	assert.Equal(t, Geometry{Width: 612, Height: 792, Margin: 72}, geo)
	assert.Equal(t, 468.0, geo.ContentWidth())

	geo, err = LookupPageSize("A4")
	require.NoError(t, err)
	assert.Equal(t, 595.28, geo.Width)

	_, err = LookupPageSize("tabloid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a4, legal, letter")
}

func TestEncodeText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain ascii", "plain ascii"},
		{"café", "caf\xe9"},
		{"e\u0301", "\xe9"},
		{"• item", "\x95 item"},
		{"naïve — ok", "na\xefve \x97 ok"},
		{"日本", "??"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeText(tt.in))
		})
	}
}

func TestPDFCanvas_MeasuresCoreFonts(t *testing.T) {
	c := NewPDFCanvas(DefaultGeometry(), "T")
	c.AddPage()

	c.SetFont(Regular, 12)
	regular := c.StringWidth("Literature")
	c.SetFont(Bold, 12)
	bold := c.StringWidth("Literature")
	c.SetFont(Regular, 24)
	large := c.StringWidth("Literature")

	assert.Greater(t, regular, 0.0)
	assert.Greater(t, bold, regular, "bold glyphs are wider")
	assert.InDelta(t, 2*regular, large, 1e-6)
	require.NoError(t, c.Close(&bytes.Buffer{}))
}

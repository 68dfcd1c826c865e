// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

func sampleRecords() []types.PaperMetadata {
	return []types.PaperMetadata{
		{
			Title:           "Paper A",
			Authors:         "X, Y",
			PublicationDate: "2024",
			Keywords:        []string{"a", "b"},
			SourceLink:      "http://example.com",
		},
		{Title: "Paper B", Keywords: []string{}},
	}
}

func TestSave(t *testing.T) {
	tests := []struct {
		name     string
		format   types.MetadataFormat
		wantFile string
		contains string
	}{
		{name: "json default", format: "", wantFile: "Deep Learning_papers.json", contains: `    "title": "Paper A"`},
		{name: "json", format: types.FormatJSON, wantFile: "Deep Learning_papers.json", contains: `"publication_date": "2024"`},
		{name: "yaml", format: types.FormatYAML, wantFile: "Deep Learning_papers.yaml", contains: "source_link: http://example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "papers_metadata")

			path, err := Save(dir, "Deep Learning", tt.format, sampleRecords())
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.wantFile), path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(data), tt.contains)
		})
	}
}

func TestSave_UnsupportedFormat(t *testing.T) {
	_, err := Save(t.TempDir(), "topic", "xml", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported metadata format")
}

func TestWriteJSON_EmptyKeywordsAndRecords(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, WriteJSON(empty, nil))
	data, err := os.ReadFile(empty)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))

	one := filepath.Join(dir, "one.json")
	require.NoError(t, WriteJSON(one, []types.PaperMetadata{{Title: "T", Keywords: []string{}}}))
	data, err = os.ReadFile(one)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"keywords": []`)
}

func TestLoad_RoundTrip(t *testing.T) {
	for _, format := range []types.MetadataFormat{types.FormatJSON, types.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			path, err := Save(t.TempDir(), "topic", format, sampleRecords())
			require.NoError(t, err)

			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, sampleRecords(), got)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "reading metadata")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	assert.ErrorContains(t, err, "parsing metadata")
}

func TestEncode(t *testing.T) {
	var js bytes.Buffer
	require.NoError(t, Encode(&js, "", sampleRecords()))
	assert.True(t, strings.HasPrefix(js.String(), "[\n    {"))
	assert.Contains(t, js.String(), `"source_link": "http://example.com"`)

	var ym bytes.Buffer
	require.NoError(t, Encode(&ym, types.FormatYAML, sampleRecords()))
	assert.Contains(t, ym.String(), "- title: Paper A")
	assert.Contains(t, ym.String(), "publication_date: \"2024\"")

	err := Encode(&bytes.Buffer{}, "toml", nil)
	assert.Error(t, err)
}

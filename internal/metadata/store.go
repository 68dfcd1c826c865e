// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metadata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litreview/pkg/types"
)

// FileName returns the metadata file name for a topic: "<topic>_papers.<ext>".
func FileName(topic string, format types.MetadataFormat) string {
	return fmt.Sprintf("%s_papers.%s", topic, format)
}

// Save writes records to dir/<topic>_papers.<format>, creating dir if
// needed, and returns the written path.
func Save(dir, topic string, format types.MetadataFormat, records []types.PaperMetadata) (string, error) {
	if format == "" {
		format = types.FormatJSON
	}
	if format != types.FormatJSON && format != types.FormatYAML {
		return "", fmt.Errorf("unsupported metadata format %q: use json or yaml", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating metadata directory: %w", err)
	}

	path := filepath.Join(dir, FileName(topic, format))
	var err error
	switch format {
	case types.FormatYAML:
		err = WriteYAML(path, records)
	default:
		err = WriteJSON(path, records)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteJSON writes records as a JSON array indented with four spaces.
func WriteJSON(path string, records []types.PaperMetadata) error {
	return writeFile(path, types.FormatJSON, records)
}

// WriteYAML writes records as a YAML sequence.
func WriteYAML(path string, records []types.PaperMetadata) error {
	return writeFile(path, types.FormatYAML, records)
}

// Encode writes records to w in format. An empty format means JSON.
func Encode(w io.Writer, format types.MetadataFormat, records []types.PaperMetadata) error {
	data, err := marshal(format, records)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing records: %w", err)
	}
	return nil
}

func writeFile(path string, format types.MetadataFormat, records []types.PaperMetadata) error {
	data, err := marshal(format, records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func marshal(format types.MetadataFormat, records []types.PaperMetadata) ([]byte, error) {
	switch format {
	case types.FormatYAML:
		data, err := yaml.Marshal(nonNil(records))
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.FormatJSON, "":
		data, err := json.MarshalIndent(nonNil(records), "", "    ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported metadata format %q: use json or yaml", format)
	}
}

// Load reads a records file written by Save. The format is chosen from
// the file extension: .yaml and .yml are YAML, everything else JSON.
func Load(path string) ([]types.PaperMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading metadata %s: %w", path, err)
	}

	var records []types.PaperMetadata
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		err = json.Unmarshal(data, &records)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing metadata %s: %w", path, err)
	}

	for i := range records {
		if records[i].Keywords == nil {
			records[i].Keywords = []string{}
		}
	}
	return records, nil
}

// nonNil keeps an empty record list serialized as [] rather than null.
func nonNil(records []types.PaperMetadata) []types.PaperMetadata {
	if records == nil {
		return []types.PaperMetadata{}
	}
	return records
}

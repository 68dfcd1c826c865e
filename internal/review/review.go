// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package review turns one generated literature review into its saved
// artifacts: the metadata records file and the rendered PDF.
// Implements: the generation flow behind the review command;
//
//	extraction (internal/metadata) and rendering (internal/render) stay
//	independent and only meet here.
package review

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/litreview/internal/catalog"
	"github.com/pdiddy/litreview/internal/metadata"
	"github.com/pdiddy/litreview/internal/render"
	"github.com/pdiddy/litreview/pkg/types"
)

var (
	// ErrEmptyTopic is returned when no topic is given.
	ErrEmptyTopic = errors.New("topic is required")

	// ErrInvalidTopic is returned when the topic cannot be used in a file name.
	ErrInvalidTopic = errors.New("topic must not contain path separators")
)

// Indexer stores extracted records. *catalog.Store implements it.
type Indexer interface {
	Ingest(ctx context.Context, topic string, records []types.PaperMetadata, w io.Writer) (catalog.IngestSummary, error)
}

// Result describes the artifacts produced by Generate.
type Result struct {
	// Papers is the number of metadata records extracted.
	Papers int

	// MetadataPath is where the records were saved.
	MetadataPath string

	// PDFPath is where the rendered review was written.
	PDFPath string

	// Indexed reports the catalog ingest, or nil when no indexer was given.
	Indexed *catalog.IngestSummary
}

// Title returns the document title used for a topic.
func Title(topic string) string {
	return "Literature Review: " + topic
}

// PDFFileName returns the PDF file name for a topic, with spaces replaced
// by underscores.
func PDFFileName(topic string) string {
	return strings.ReplaceAll(topic, " ", "_") + "_literature_review.pdf"
}

// ValidateTopic checks that topic is usable as a file name component.
func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return ErrEmptyTopic
	}
	if strings.ContainsAny(topic, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidTopic, topic)
	}
	return nil
}

// Generate extracts metadata records from content, saves them, renders the
// PDF, and, when idx is non-nil, indexes the records under topic. Progress
// lines are written to w.
func Generate(ctx context.Context, cfg types.ReviewConfig, topic, content string, idx Indexer, w io.Writer) (Result, error) {
	if err := ValidateTopic(topic); err != nil {
		return Result{}, err
	}
	geo, err := render.LookupPageSize(cfg.PageSize)
	if err != nil {
		return Result{}, err
	}

	records := metadata.Extract(content)
	metaPath, err := metadata.Save(cfg.MetadataDir, topic, cfg.MetadataFormat, records)
	if err != nil {
		return Result{}, fmt.Errorf("saving metadata: %w", err)
	}
	fmt.Fprintf(w, "Saved %d paper record(s): %s\n", len(records), metaPath)

	pdfPath := filepath.Join(cfg.ReviewsDir, PDFFileName(topic))
	fmt.Fprintln(w, "Generating PDF...")
	if err := render.RenderFile(pdfPath, geo, Title(topic), content); err != nil {
		return Result{}, fmt.Errorf("rendering PDF: %w", err)
	}
	fmt.Fprintf(w, "PDF successfully generated: %s\n", pdfPath)

	res := Result{
		Papers:       len(records),
		MetadataPath: metaPath,
		PDFPath:      pdfPath,
	}

	if idx != nil {
		summary, err := idx.Ingest(ctx, topic, records, w)
		if err != nil {
			return res, fmt.Errorf("indexing papers: %w", err)
		}
		res.Indexed = &summary
	}

	return res, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/render"
	"github.com/pdiddy/litreview/internal/review"
)

var renderCmd = &cobra.Command{
	Use:   "render <markup>",
	Short: "Render a review as a paginated PDF",
	Long: `Render lays out the review on pages with a bold title, section headings
with a rule beneath, bold lines, numbered and bulleted list items, and a
"Page N" footer. Inline **bold**, *italic*, and http(s) links are styled.

The PDF is written to <reviews-dir>/<topic>_literature_review.pdf unless
--output names another path.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topic, _ := cmd.Flags().GetString("topic")
	output, _ := cmd.Flags().GetString("output")

	if err := review.ValidateTopic(topic); err != nil {
		return err
	}
	geo, err := render.LookupPageSize(cfg.Review.PageSize)
	if err != nil {
		return err
	}

	content, err := readMarkup(args[0])
	if err != nil {
		return err
	}

	if output == "" {
		output = filepath.Join(cfg.Review.ReviewsDir, review.PDFFileName(topic))
	}
	fmt.Fprintln(os.Stdout, "Generating PDF...")
	if err := render.RenderFile(output, geo, review.Title(topic), content); err != nil {
		return fmt.Errorf("rendering PDF: %w", err)
	}
	fmt.Fprintf(os.Stdout, "PDF successfully generated: %s\n", output)
	return nil
}

func init() {
	renderCmd.Flags().String("topic", "", "review topic, used in the document title and file name")
	renderCmd.Flags().String("reviews-dir", "", "directory for rendered PDFs (default literature_reviews)")
	renderCmd.Flags().String("page-size", "", "page size: letter, legal, or a4 (default letter)")
	renderCmd.Flags().StringP("output", "o", "", "write the PDF to this path instead")

	rootCmd.AddCommand(renderCmd)
}

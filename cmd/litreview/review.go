// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/catalog"
	"github.com/pdiddy/litreview/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review <markup>",
	Short: "Extract metadata and render the PDF in one pass",
	Long: `Review runs the whole post-processing flow on a generated review: it
saves the per-paper metadata records, renders the PDF, and with --index adds
the records to the local paper catalog under the topic.`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topic, _ := cmd.Flags().GetString("topic")
	index, _ := cmd.Flags().GetBool("index")

	if err := review.ValidateTopic(topic); err != nil {
		return err
	}
	content, err := readMarkup(args[0])
	if err != nil {
		return err
	}

	var idx review.Indexer
	if index {
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()
		idx = store
	}

	_, err = review.Generate(context.Background(), cfg.Review, topic, content, idx, os.Stdout)
	return err
}

func init() {
	addReviewFlags(reviewCmd.Flags())
	reviewCmd.Flags().Bool("index", false, "also index the records in the paper catalog")
	reviewCmd.Flags().String("catalog-dir", "", "base directory for the catalog (default catalog)")

	rootCmd.AddCommand(reviewCmd)
}

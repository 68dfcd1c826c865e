// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/metadata"
)

var extractCmd = &cobra.Command{
	Use:   "extract <markup>",
	Short: "Extract per-paper metadata records from a review",
	Long: `Extract splits the review into "## " sections and builds one metadata
record per paper section (title, authors, publication date, keywords, source
link). Conclusion and References sections are skipped.

With --topic the records are saved to <metadata-dir>/<topic>_papers.<format>.
Without a topic, or with --stdout, they are printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	topic, _ := cmd.Flags().GetString("topic")
	toStdout, _ := cmd.Flags().GetBool("stdout")

	content, err := readMarkup(args[0])
	if err != nil {
		return err
	}
	records := metadata.Extract(content)

	if toStdout || topic == "" {
		return metadata.Encode(os.Stdout, cfg.Review.MetadataFormat, records)
	}

	path, err := metadata.Save(cfg.Review.MetadataDir, topic, cfg.Review.MetadataFormat, records)
	if err != nil {
		return fmt.Errorf("saving metadata: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Saved %d paper record(s): %s\n", len(records), path)
	return nil
}

func init() {
	extractCmd.Flags().String("topic", "", "review topic, used in the output file name")
	extractCmd.Flags().String("metadata-dir", "", "directory for saved metadata records (default papers_metadata)")
	extractCmd.Flags().String("format", "", "metadata file format: json or yaml (default json)")
	extractCmd.Flags().Bool("stdout", false, "print records instead of saving them")

	rootCmd.AddCommand(extractCmd)
}

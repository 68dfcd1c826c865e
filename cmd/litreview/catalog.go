// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/litreview/internal/catalog"
	"github.com/pdiddy/litreview/internal/metadata"
	"github.com/pdiddy/litreview/internal/review"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the paper catalog (index, search, export)",
	Long: `Catalog manages a local SQLite index of every paper record extracted
from past reviews. Use subcommands to index a records file, search it, or
export it.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index <records-file>",
	Short: "Index a saved metadata records file under a topic",
	Long: `Index reads a records file written by extract or review (JSON or YAML,
chosen by extension) and stores every record under --topic. Records already
in the catalog are updated in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if err := review.ValidateTopic(topic); err != nil {
		return err
	}

	records, err := metadata.Load(args[0])
	if err != nil {
		return err
	}

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.Ingest(context.Background(), topic, records, os.Stdout)
	return err
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog by text, keyword, or topic",
	Long: `Search matches the query as a substring of paper titles, authors, and
keywords. --keyword and --topic narrow the results to an exact keyword
(ignoring case) or a review topic.`,
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --keyword, or --topic")
	}

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []catalog.Result, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if results == nil {
			results = []catalog.Result{}
		}
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-12s  %-40s  %-24s  %-10s  %s\n",
		"Rank", "ID", "Title", "Authors", "Date", "Topic")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-12s  %-40s  %-24s  %-10s  %s\n",
			i+1, r.ID, truncate(r.Title, 40), truncate(r.Authors, 24),
			truncate(r.PublicationDate, 10), r.Topic)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the whole catalog (or a filtered subset) to
<catalog-dir>/index/export.yaml or export.json. Supports the same filter
flags as search for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background(), opts)
	case "json":
		path, err = store.ExportJSON(context.Background(), opts)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

// --- shared helpers ---

func openCatalog(cmd *cobra.Command) (*catalog.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(cfg.Catalog)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}
	keyword, _ := cmd.Flags().GetString("keyword")
	topic, _ := cmd.Flags().GetString("topic")
	limit, _ := cmd.Flags().GetInt("limit")

	return catalog.QueryOptions{
		Query:      queryText,
		Keyword:    keyword,
		Topic:      topic,
		MaxResults: limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "", "base directory for the catalog (default catalog)")
	catalogCmd.PersistentFlags().Int("max-results", 0, "default maximum number of search results (default 20)")

	catalogIndexCmd.Flags().String("topic", "", "review topic the records belong to")

	catalogSearchCmd.Flags().String("query", "", "substring matched against title, authors, and keywords")
	catalogSearchCmd.Flags().String("keyword", "", "filter by keyword")
	catalogSearchCmd.Flags().String("topic", "", "filter by review topic")
	catalogSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")

	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	catalogExportCmd.Flags().String("query", "", "substring filter for partial export")
	catalogExportCmd.Flags().String("keyword", "", "filter by keyword for partial export")
	catalogExportCmd.Flags().String("topic", "", "filter by topic for partial export")
	catalogExportCmd.Flags().Int("limit", 0, "maximum papers to export (0 = all)")

	catalogCmd.AddCommand(catalogIndexCmd)
	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litreview CLI.
// Implements: metadata extraction, PDF rendering, the combined review
// flow, and the paper catalog (CLI surface).
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/litreview/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the litreview CLI.
var rootCmd = &cobra.Command{
	Use:   "litreview",
	Short: "Turn generated literature reviews into metadata records and PDFs",
	Long: `litreview post-processes the Markdown-flavored literature review written by
a research agent. It extracts one metadata record per reviewed paper, renders
the review as a paginated PDF, and keeps a local catalog of every paper seen.

Each stage is a subcommand: extract, render, review (both at once), and
catalog. Review text is read from a file, or from stdin when the path is "-".`,
	SilenceUsage: true,
}

// configKeys maps viper keys to the flag names that may override them.
var configKeys = map[string]string{
	"metadata_dir":    "metadata-dir",
	"metadata_format": "format",
	"reviews_dir":     "reviews-dir",
	"page_size":       "page-size",
	"catalog_dir":     "catalog-dir",
	"max_results":     "max-results",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litreview.yaml or ~/.config/litreview/config.yaml)")
}

func initConfig() {
	defaults := types.DefaultConfig()
	viper.SetDefault("metadata_dir", defaults.Review.MetadataDir)
	viper.SetDefault("metadata_format", string(defaults.Review.MetadataFormat))
	viper.SetDefault("reviews_dir", defaults.Review.ReviewsDir)
	viper.SetDefault("page_size", defaults.Review.PageSize)
	viper.SetDefault("catalog_dir", defaults.Catalog.Dir)
	viper.SetDefault("max_results", defaults.Catalog.MaxResults)

	viper.SetEnvPrefix("LITREVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile == "" {
		cfgFile = findConfigFile()
	}
	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: reading config %s: %v\n", cfgFile, err)
		return
	}
	fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
}

// findConfigFile returns ./litreview.yaml or ~/.config/litreview/config.yaml,
// whichever exists first, or "".
func findConfigFile() string {
	candidates := []string{"litreview.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "litreview", "config.yaml"))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// loadConfig resolves the configuration for cmd. Flags the user set on
// the command line win over environment variables, which win over the
// config file and the built-in defaults.
func loadConfig(cmd *cobra.Command) (types.Config, error) {
	for key, flag := range configKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return types.Config{}, fmt.Errorf("binding flag --%s: %w", flag, err)
		}
	}

	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	return cfg, nil
}

// addReviewFlags registers the flags shared by commands that write review
// artifacts.
func addReviewFlags(fs *pflag.FlagSet) {
	fs.String("topic", "", "review topic, used in the document title and output file names")
	fs.String("metadata-dir", "", "directory for saved metadata records (default papers_metadata)")
	fs.String("format", "", "metadata file format: json or yaml (default json)")
	fs.String("reviews-dir", "", "directory for rendered PDFs (default literature_reviews)")
	fs.String("page-size", "", "page size: letter, legal, or a4 (default letter)")
}

// readMarkup returns the review text at path, or stdin when path is "-".
func readMarkup(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading review %s: %w", path, err)
	}
	return string(data), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

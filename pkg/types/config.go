// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MetadataFormat selects the serialization used for saved metadata records.
type MetadataFormat string

const (
	FormatJSON MetadataFormat = "json"
	FormatYAML MetadataFormat = "yaml"
)

// ReviewConfig holds settings for the review stage, which extracts
// metadata and renders the PDF for one topic.
type ReviewConfig struct {
	// MetadataDir is the directory for saved metadata records (e.g. "papers_metadata").
	MetadataDir string `json:"metadata_dir" yaml:"metadata_dir" mapstructure:"metadata_dir"`

	// MetadataFormat selects json or yaml for saved metadata records.
	MetadataFormat MetadataFormat `json:"metadata_format" yaml:"metadata_format" mapstructure:"metadata_format"`

	// ReviewsDir is the directory for rendered PDFs (e.g. "literature_reviews").
	ReviewsDir string `json:"reviews_dir" yaml:"reviews_dir" mapstructure:"reviews_dir"`

	// PageSize names the page geometry: letter, legal, or a4.
	PageSize string `json:"page_size" yaml:"page_size" mapstructure:"page_size"`
}

// CatalogConfig holds settings for the paper catalog.
type CatalogConfig struct {
	// Dir is the base directory for the catalog (contains index/).
	Dir string `json:"catalog_dir" yaml:"catalog_dir" mapstructure:"catalog_dir"`

	// MaxResults is the default maximum number of search results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// Config groups every stage configuration.
type Config struct {
	Review  ReviewConfig  `json:"review" yaml:"review" mapstructure:",squash"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog" mapstructure:",squash"`
}

// DefaultConfig returns the directory layout the CLI uses when nothing is
// configured.
func DefaultConfig() Config {
	return Config{
		Review: ReviewConfig{
			MetadataDir:    "papers_metadata",
			MetadataFormat: FormatJSON,
			ReviewsDir:     "literature_reviews",
			PageSize:       "letter",
		},
		Catalog: CatalogConfig{
			Dir:        "catalog",
			MaxResults: 20,
		},
	}
}

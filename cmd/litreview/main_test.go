// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/litreview/pkg/types"
)

func freshConfig(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()
}

func TestLoadConfig_Defaults(t *testing.T) {
	freshConfig(t)

	cfg, err := loadConfig(&cobra.Command{Use: "x"})
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_FlagWins(t *testing.T) {
	t.Setenv("LITREVIEW_PAGE_SIZE", "legal")
	freshConfig(t)

	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().String("page-size", "", "")
	cmd.Flags().Int("max-results", 0, "")
	require.NoError(t, cmd.Flags().Set("page-size", "a4"))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "a4", cfg.Review.PageSize)
	assert.Equal(t, 20, cfg.Catalog.MaxResults, "unset flag keeps the default")
}

func TestLoadConfig_EnvAndFile(t *testing.T) {
	t.Setenv("LITREVIEW_REVIEWS_DIR", "pdfs")
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("litreview.yaml",
		[]byte("metadata_format: yaml\ncatalog_dir: papers_db\n"), 0o644))
	viper.Reset()
	t.Cleanup(viper.Reset)
	initConfig()

	cfg, err := loadConfig(&cobra.Command{Use: "x"})
	require.NoError(t, err)
	assert.Equal(t, "pdfs", cfg.Review.ReviewsDir)
	assert.Equal(t, types.FormatYAML, cfg.Review.MetadataFormat)
	assert.Equal(t, "papers_db", cfg.Catalog.Dir)
	assert.Equal(t, "papers_metadata", cfg.Review.MetadataDir)
}

func TestReadMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.md")
	require.NoError(t, os.WriteFile(path, []byte("## Paper\n"), 0o644))

	got, err := readMarkup(path)
	require.NoError(t, err)
	assert.Equal(t, "## Paper\n", got)

	_, err = readMarkup(filepath.Join(t.TempDir(), "missing.md"))
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ééé...", truncate("éééééééé", 6))
}

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordcards/internal/config"
	"github.com/abhisek/wordcards/internal/source"
)

func TestFetcherFor(t *testing.T) {
	assert.IsType(t, source.DirFetcher{}, fetcherFor(config.SourceConfig{Dir: "data", URL: "https://example.com"}))
	assert.IsType(t, &source.HTTPFetcher{}, fetcherFor(config.SourceConfig{URL: "https://example.com"}))
	assert.Equal(t, source.Builtin(), fetcherFor(config.SourceConfig{}))
}

func TestResolveDBPath(t *testing.T) {
	dir := t.TempDir()

	newCmd := func() *cobra.Command {
		c := &cobra.Command{}
		c.Flags().String("db", "", "")
		return c
	}

	c := newCmd()
	require.NoError(t, c.Flags().Set("db", filepath.Join(dir, "flag", "a.db")))
	p, err := resolveDBPath(c, &config.Config{DBPath: filepath.Join(dir, "cfg.db")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "flag", "a.db"), p)
	assert.DirExists(t, filepath.Join(dir, "flag"))

	p, err = resolveDBPath(newCmd(), &config.Config{DBPath: filepath.Join(dir, "cfg", "b.db")})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "cfg", "b.db"), p)

	t.Setenv("WORDCARDS_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = resolveDBPath(newCmd(), &config.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wordcards", "wordcards.db"), p)
}

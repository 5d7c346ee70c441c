package importer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/wordcards/internal/vocab"
)

type memoryStorer struct {
	stored map[vocab.Mode][]byte
}

func (m *memoryStorer) Store(_ context.Context, mode vocab.Mode, raw []byte) error {
	if m.stored == nil {
		m.stored = make(map[vocab.Mode][]byte)
	}
	m.stored[mode] = raw
	return nil
}

func writeWorkbook(t *testing.T, rows [][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, v := range row {
			name, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", name, v))
		}
	}
	path := filepath.Join(t.TempDir(), "words.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImport_Excel(t *testing.T) {
	path := writeWorkbook(t, [][]string{
		{"Word", "Meaning", "Phonetic", "POS"},
		{"apple", "a fruit", "[ˈæpl]", "n."},
		{"", "no text"},
		{"brave", "showing courage", "", "adj."},
		{"apple", "again"},
	})

	st := &memoryStorer{}
	res, err := Import(context.Background(), DefaultConfig(path, vocab.ModeWords), st)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Processed)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 2, res.Skipped)
	assert.Len(t, res.Errors, 1)

	items, err := vocab.Normalize(vocab.ModeWords, st.stored[vocab.ModeWords])
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, vocab.NewWord("apple", "[ˈæpl]", "n.", "a fruit"), items[0])
	assert.Equal(t, "adj. showing courage", items[1].Meaning())
}

func TestImport_CSVPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.csv")
	require.NoError(t, os.WriteFile(path, []byte("phrase,translation\n\"give up\",stop trying\nlook after,take care of\n"), 0o644))

	st := &memoryStorer{}
	res, err := Import(context.Background(), DefaultConfig(path, vocab.ModePhrases), st)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	items, err := vocab.Normalize(vocab.ModePhrases, st.stored[vocab.ModePhrases])
	require.NoError(t, err)
	assert.Equal(t, []vocab.Item{
		vocab.NewPhrase("give up", "stop trying"),
		vocab.NewPhrase("look after", "take care of"),
	}, items)
}

func TestImport_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.json")
	require.NoError(t, os.WriteFile(path, []byte(`["alpha", {"word": "beta"}, {"foo": 1}]`), 0o644))

	st := &memoryStorer{}
	res, err := Import(context.Background(), DefaultConfig(path, vocab.ModeWords), st)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
}

func TestImport_ColumnsByHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.csv")
	require.NoError(t, os.WriteFile(path, []byte("Notes,Definition,Word\nx,a fruit,apple\ny,a colour,red\n"), 0o644))

	cfg := DefaultConfig(path, vocab.ModeWords)
	cfg.TextColumn = "word"
	cfg.MeaningColumn = "DEFINITION"
	cfg.PhoneticColumn = ""
	cfg.POSColumn = ""

	st := &memoryStorer{}
	res, err := Import(context.Background(), cfg, st)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	items, err := vocab.Normalize(vocab.ModeWords, st.stored[vocab.ModeWords])
	require.NoError(t, err)
	assert.Equal(t, []vocab.Item{
		vocab.NewWord("apple", "", "", "a fruit"),
		vocab.NewWord("red", "", "", "a colour"),
	}, items)
}

func TestResolveColumns(t *testing.T) {
	header := []string{"Phrase", " Translation "}
	tests := []struct {
		name   string
		text   string
		header []string
		want   int
	}{
		{"letter", "C", header, 2},
		{"header name", "translation", header, 1},
		{"header beats letter reading", "phrase", header, 0},
		{"letter without header row", "B", nil, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := resolveColumns(Config{TextColumn: tt.text}, tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cols.text)
			assert.Equal(t, -1, cols.meaning)
		})
	}

	_, err := resolveColumns(Config{TextColumn: "word 1"}, header)
	assert.Error(t, err)
}

func TestImport_Errors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("header\n"), 0o644))

	tests := []struct {
		name string
		cfg  Config
	}{
		{"unsupported extension", DefaultConfig(filepath.Join(dir, "words.txt"), vocab.ModeWords)},
		{"review mode", DefaultConfig(empty, vocab.ModeReview)},
		{"no records", DefaultConfig(empty, vocab.ModeWords)},
		{"missing file", DefaultConfig(filepath.Join(dir, "nope.xlsx"), vocab.ModeWords)},
		{"bad column", func() Config {
			c := DefaultConfig(empty, vocab.ModeWords)
			c.TextColumn = "1"
			return c
		}()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &memoryStorer{}
			_, err := Import(context.Background(), tt.cfg, st)
			assert.Error(t, err)
			assert.Empty(t, st.stored)
		})
	}
}

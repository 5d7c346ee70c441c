// Package importer converts spreadsheet, CSV and JSON word lists into
// dataset payloads.
package importer

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/wordcards/internal/vocab"
)

// Config defines the import configuration.
type Config struct {
	FilePath string     // Path to the xlsx, csv or json file
	Mode     vocab.Mode // Dataset the rows become
	Sheet    string     // Sheet to read; the first sheet if empty

	// Columns, each either a header name (matched case-insensitively
	// against the row above StartRow) or a column letter. Meaning is the
	// definition for words and the translation for phrases.
	TextColumn     string
	MeaningColumn  string
	PhoneticColumn string
	POSColumn      string

	StartRow int // First data row (1-based)
}

// DefaultConfig returns the default layout: text, meaning, phonetic and
// part of speech in columns A to D below a header row.
func DefaultConfig(path string, mode vocab.Mode) Config {
	return Config{
		FilePath:       path,
		Mode:           mode,
		TextColumn:     "A",
		MeaningColumn:  "B",
		PhoneticColumn: "C",
		POSColumn:      "D",
		StartRow:       2,
	}
}

// Result holds the outcome of an import.
type Result struct {
	Processed int
	Imported  int
	Skipped   int
	Errors    []string
}

// Storer accepts a validated dataset payload. *source.Cache satisfies it.
type Storer interface {
	Store(ctx context.Context, mode vocab.Mode, raw []byte) error
}

// Import reads cfg.FilePath and stores the result as the dataset for
// cfg.Mode, replacing the cached one.
func Import(ctx context.Context, cfg Config, st Storer) (*Result, error) {
	raw, res, err := Read(cfg)
	if err != nil {
		return nil, err
	}
	if res.Imported == 0 {
		return res, errors.New("no records to import")
	}
	if err := st.Store(ctx, cfg.Mode, raw); err != nil {
		return res, fmt.Errorf("store dataset: %w", err)
	}
	return res, nil
}

// Read converts the file at cfg.FilePath into a dataset payload.
func Read(cfg Config) ([]byte, *Result, error) {
	if cfg.Mode != vocab.ModeWords && cfg.Mode != vocab.ModePhrases {
		return nil, nil, fmt.Errorf("cannot import into mode %q", cfg.Mode)
	}

	switch strings.ToLower(filepath.Ext(cfg.FilePath)) {
	case ".json":
		return readJSON(cfg)
	case ".csv":
		rows, err := readCSV(cfg.FilePath)
		if err != nil {
			return nil, nil, err
		}
		return fromRows(cfg, rows)
	case ".xlsx", ".xlsm":
		rows, err := readExcel(cfg)
		if err != nil {
			return nil, nil, err
		}
		return fromRows(cfg, rows)
	}
	return nil, nil, fmt.Errorf("unsupported file type %q", filepath.Ext(cfg.FilePath))
}

func readJSON(cfg Config) ([]byte, *Result, error) {
	raw, err := os.ReadFile(cfg.FilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	items, err := vocab.Normalize(cfg.Mode, raw)
	if err != nil {
		return nil, nil, err
	}
	res := &Result{Processed: len(items)}
	for _, it := range items {
		if it.Kind == vocab.KindMalformed {
			res.Skipped++
			continue
		}
		res.Imported++
	}
	return raw, res, nil
}

func readExcel(cfg Config) ([][]string, error) {
	f, err := excelize.OpenFile(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	return rows, nil
}

func readCSV(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type columns struct {
	text, meaning, phonetic, pos int
}

// resolveColumns maps each configured column to a row index. A name that
// matches a header cell wins over its reading as a column letter, so a
// header called "word" is never taken for column WORD.
func resolveColumns(cfg Config, header []string) (columns, error) {
	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{cfg.TextColumn, &cols.text},
		{cfg.MeaningColumn, &cols.meaning},
		{cfg.PhoneticColumn, &cols.phonetic},
		{cfg.POSColumn, &cols.pos},
	} {
		name := strings.TrimSpace(c.name)
		if name == "" {
			*c.dst = -1
			continue
		}
		if i := headerIndex(header, name); i >= 0 {
			*c.dst = i
			continue
		}
		n, err := excelize.ColumnNameToNumber(name)
		if err != nil {
			return cols, fmt.Errorf("column %q is neither a header nor a column letter: %w", name, err)
		}
		*c.dst = n - 1
	}
	if cols.text < 0 {
		return cols, errors.New("text column is required")
	}
	return cols, nil
}

func headerIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func fromRows(cfg Config, rows [][]string) ([]byte, *Result, error) {
	start := cfg.StartRow
	if start < 1 {
		start = 1
	}

	var header []string
	if start >= 2 && start-2 < len(rows) {
		header = rows[start-2]
	}
	cols, err := resolveColumns(cfg, header)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{}
	seen := make(map[string]bool)
	records := make([]map[string]string, 0, len(rows))
	for i, row := range rows {
		if i < start-1 {
			continue
		}
		res.Processed++

		text := cell(row, cols.text)
		if text == "" {
			res.Skipped++
			continue
		}
		if seen[text] {
			res.Skipped++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: duplicate %q", i+1, text))
			continue
		}
		seen[text] = true

		records = append(records, record(cfg.Mode, row, cols, text))
		res.Imported++
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return nil, nil, fmt.Errorf("encode dataset: %w", err)
	}
	return raw, res, nil
}

func record(mode vocab.Mode, row []string, cols columns, text string) map[string]string {
	if mode == vocab.ModePhrases {
		return map[string]string{
			"phrase":      text,
			"translation": cell(row, cols.meaning),
		}
	}
	rec := map[string]string{
		"word":       text,
		"definition": cell(row, cols.meaning),
	}
	if p := cell(row, cols.phonetic); p != "" {
		rec["phonetic"] = p
	}
	if p := cell(row, cols.pos); p != "" {
		rec["pos"] = p
	}
	return rec
}

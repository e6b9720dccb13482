package excel

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/vocabulary"
)

// ExamplesSeparator splits several usage examples kept in one cell
const ExamplesSeparator = "|"

var errDuplicate = errors.New("word already exists")

// ImportConfig defines the import configuration
type ImportConfig struct {
	FilePath            string // Path to the Excel or CSV file
	SheetName           string // Sheet to read; empty means the first sheet
	WordColumn          string // Column with the word
	DefinitionColumn    string // Column with the definition
	PronunciationColumn string // Column with the pronunciation
	DifficultyColumn    string // Column with the level (beginner/intermediate/advanced or 1-3)
	CategoryColumn      string // Column with the category
	ExamplesColumn      string // Column with examples separated by "|"
	StartRow            int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:            path,
		WordColumn:          "A",
		DefinitionColumn:    "B",
		PronunciationColumn: "C",
		DifficultyColumn:    "D",
		CategoryColumn:      "E",
		ExamplesColumn:      "F",
		StartRow:            2, // skip the header
	}
}

// ImportResult holds the result of an import operation
type ImportResult struct {
	TotalProcessed int
	Created        int
	Skipped        int
	Errors         []string
}

// ImportWords imports words from an Excel or CSV file into repo.
// Rows that fail validation or repeat an existing word are skipped and reported.
func ImportWords(ctx context.Context, config ImportConfig, repo vocabulary.Repository) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	if strings.ToLower(filepath.Ext(config.FilePath)) == ".csv" {
		rows, err = readCSV(config.FilePath)
	} else {
		rows, err = readExcel(config.FilePath, config.SheetName)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: make([]string, 0)}
	pending := make(map[learning.Level][]*vocabulary.Word)

	for i, row := range rows {
		rowNum := i + 1
		if rowNum < config.StartRow || isBlank(row) {
			continue
		}
		result.TotalProcessed++

		level, word, err := parseRow(row, config)
		if err == nil {
			err = checkDuplicate(ctx, repo, pending[level], level, word)
		}
		if err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		pending[level] = append(pending[level], word)
	}

	for _, level := range learning.Levels() {
		words := pending[level]
		if len(words) == 0 {
			continue
		}
		if err := repo.AddBatch(ctx, level, words); err != nil {
			return result, fmt.Errorf("failed to store %s words: %w", level, err)
		}
		result.Created += len(words)
	}

	return result, nil
}

func readExcel(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
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
	reader.FieldsPerRecord = -1 // Allow variable number of fields
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

func parseRow(row []string, config ImportConfig) (learning.Level, *vocabulary.Word, error) {
	cell := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	level, err := parseDifficulty(cell(config.DifficultyColumn))
	if err != nil {
		return "", nil, err
	}

	var examples []string
	if raw := cell(config.ExamplesColumn); raw != "" {
		examples = strings.Split(raw, ExamplesSeparator)
	}

	word, err := vocabulary.NewWord(
		cell(config.WordColumn),
		cell(config.DefinitionColumn),
		cell(config.PronunciationColumn),
		examples,
		vocabulary.Category(strings.ToLower(cell(config.CategoryColumn))),
	)
	if err != nil {
		return "", nil, fmt.Errorf("missing word or definition: %w", err)
	}
	return level, word, nil
}

func checkDuplicate(ctx context.Context, repo vocabulary.Repository, pending []*vocabulary.Word, level learning.Level, word *vocabulary.Word) error {
	exists, err := repo.Exists(ctx, level, word.Text())
	if err != nil {
		return fmt.Errorf("failed to check %q: %w", word.Text(), err)
	}
	if exists {
		return fmt.Errorf("%w: %q (%s)", errDuplicate, word.Text(), level)
	}
	for _, p := range pending {
		if p.SameAs(word) {
			return fmt.Errorf("%w: %q repeated in file", errDuplicate, word.Text())
		}
	}
	return nil
}

// parseDifficulty accepts a level name or its menu number
func parseDifficulty(s string) (learning.Level, error) {
	switch s {
	case "1":
		return learning.LevelBeginner, nil
	case "2":
		return learning.LevelIntermediate, nil
	case "3":
		return learning.LevelAdvanced, nil
	}
	return learning.ParseLevel(s)
}

// columnToIndex converts a column letter (A, B, ..., AA) to a 0-based index
func columnToIndex(column string) int {
	idx, err := excelize.ColumnNameToNumber(strings.ToUpper(column))
	if err != nil {
		return -1
	}
	return idx - 1
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Package importer reads object definitions and floor-plan outlines from
// CSV, Excel and DXF files. Column recognition is fuzzy: headers are
// matched case-insensitively by substring against ordered keyword lists,
// and dimension cells accept feet-inches text (4'6"), bare feet (4') or
// plain decimals.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"roomsketch/internal/model"

	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of a definition import operation.
type ImportResult struct {
	Definitions []model.ObjectDefinition
	Errors      []string
	Warnings    []string
}

// ColumnRule binds a semantic role to an ordered keyword list. Earlier
// keywords are preferred; a header cell matches when it contains the
// keyword, compared case-insensitively.
type ColumnRule struct {
	Role     string
	Keywords []string
}

// DefaultColumnRules returns the standard column recognition rules for
// object imports: a name column, then length, then width.
func DefaultColumnRules() []ColumnRule {
	return []ColumnRule{
		{Role: "name", Keywords: []string{"name", "object", "item"}},
		{Role: "length", Keywords: []string{"length", "len", "l"}},
		{Role: "width", Keywords: []string{"width", "wid", "w"}},
	}
}

// ColumnMapping maps semantic column roles to their indices in the data.
// An index of -1 means the column was not found.
type ColumnMapping struct {
	Name   int
	Length int
	Width  int
}

// DetectColumns resolves a header row against the given rules. Rules are
// applied in order; within a rule, keywords are tried in order and the
// first matching cell wins.
func DetectColumns(header []string, rules []ColumnRule) ColumnMapping {
	mapping := ColumnMapping{Name: -1, Length: -1, Width: -1}

	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = strings.ToLower(strings.TrimSpace(cell))
	}

	for _, rule := range rules {
		idx := -1
	search:
		for _, kw := range rule.Keywords {
			for i, cell := range normalized {
				if cell != "" && strings.Contains(cell, kw) {
					idx = i
					break search
				}
			}
		}
		switch rule.Role {
		case "name":
			mapping.Name = idx
		case "length":
			mapping.Length = idx
		case "width":
			mapping.Width = idx
		}
	}

	return mapping
}

// DetectCSVDelimiter determines the most likely CSV delimiter by trying
// comma, semicolon, tab and pipe; the one producing the most consistent
// multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports object definitions from a CSV file. The delimiter is
// auto-detected and columns are resolved from the header row via the
// default rules.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	return importCSVData(bytes.NewReader(data), delimiter, result.Warnings)
}

// ImportCSVFromReader imports object definitions from a CSV reader with a
// known delimiter. Useful for tests.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	return importCSVData(reader, delimiter, nil)
}

func importCSVData(reader io.Reader, delimiter rune, warnings []string) ImportResult {
	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read CSV: %v", err)}, Warnings: warnings}
	}

	return importFromRows(records, "Line", DefaultColumnRules(), warnings)
}

// ImportExcel imports object definitions from the first sheet of an
// Excel (.xlsx) file, using the same header recognition as CSV import.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	return importFromRows(rows, "Row", DefaultColumnRules(), nil)
}

// importFromRows is the shared import pipeline for CSV and Excel data.
// The first row is the header; data rows missing any required field, or
// whose length/width fail to parse, are dropped with a warning rather
// than failing the import.
func importFromRows(rows [][]string, rowPrefix string, rules []ColumnRule, warnings []string) ImportResult {
	result := ImportResult{Warnings: warnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping := DetectColumns(rows[0], rules)
	var missing []string
	if mapping.Name == -1 {
		missing = append(missing, "Name")
	}
	if mapping.Length == -1 {
		missing = append(missing, "Length")
	}
	if mapping.Width == -1 {
		missing = append(missing, "Width")
	}
	if len(missing) > 0 {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
		return result
	}

	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)

		name := getCell(row, mapping.Name)
		lengthStr := getCell(row, mapping.Length)
		widthStr := getCell(row, mapping.Width)
		if name == "" || lengthStr == "" || widthStr == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: missing required field, skipped", rowLabel))
			continue
		}

		length, ok := model.ParseFeetInches(lengthStr)
		if !ok || length <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid length %q, skipped", rowLabel, lengthStr))
			continue
		}
		width, ok := model.ParseFeetInches(widthStr)
		if !ok || width <= 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: invalid width %q, skipped", rowLabel, widthStr))
			continue
		}

		result.Definitions = append(result.Definitions, model.NewObjectDefinition(name, width, length))
	}

	return result
}

package catalog

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation. Stickers that
// imported cleanly but have no printable size appear in Stickers with a
// matching warning; they cannot be placed until a size is set.
type ImportResult struct {
	Stickers []Sticker
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name   int
	Width  int
	Height int
	Image  int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":   {"name", "label", "sticker", "design", "title", "description", "desc"},
	"width":  {"width", "w", "width mm", "width_mm", "widthmm", "x"},
	"height": {"height", "h", "height mm", "height_mm", "heightmm", "y"},
	"image":  {"image", "img", "image url", "image_ref", "url", "file", "artwork"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
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

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:   -1,
		Width:  -1,
		Height: -1,
		Image:  -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "image":
						if mapping.Image == -1 {
							mapping.Image = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Width, Height, Image
		return ColumnMapping{
			Name:   0,
			Width:  1,
			Height: 2,
			Image:  3,
		}, false
	}

	return mapping, true
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts a Sticker from a row using the given column mapping.
// A missing or unusable size is tolerated: the sticker imports with a
// warning and stays ineligible for placement. A value that fails to parse
// as a number is an error.
// Returns the sticker, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, stickerCount int) (Sticker, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Sticker %d", stickerCount+1)
	}

	var width, height float64
	widthStr := getCell(row, mapping.Width)
	if widthStr != "" {
		w, err := strconv.ParseFloat(widthStr, 64)
		if err != nil {
			return Sticker{}, fmt.Sprintf("%s: Invalid width '%s'", rowLabel, widthStr), ""
		}
		width = w
	}

	heightStr := getCell(row, mapping.Height)
	if heightStr != "" {
		h, err := strconv.ParseFloat(heightStr, 64)
		if err != nil {
			return Sticker{}, fmt.Sprintf("%s: Invalid height '%s'", rowLabel, heightStr), ""
		}
		height = h
	}

	sticker := NewSticker(name, width, height)
	sticker.ImageRef = getCell(row, mapping.Image)

	var warning string
	if !sticker.HasPrintableSize() {
		warning = fmt.Sprintf("%s: '%s' has no printable size and cannot be placed", rowLabel, name)
	}

	return sticker, "", warning
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

// ImportCSV imports stickers from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
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

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports stickers from a CSV reader with a specific
// delimiter. This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportXLSX imports stickers from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportXLSX(path string) ImportResult {
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

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// ImportJSON imports stickers from a JSON file holding either a bare array
// of records or an object with a "stickers" field. Records keep their IDs
// when present; missing IDs are generated.
func ImportJSON(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	var stickers []Sticker
	if err := json.Unmarshal(data, &stickers); err != nil {
		var wrapped struct {
			Stickers []Sticker `json:"stickers"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Cannot parse JSON: %v", err))
			return result
		}
		stickers = wrapped.Stickers
	}

	if len(stickers) == 0 {
		result.Errors = append(result.Errors, "No sticker records found")
		return result
	}

	for _, sticker := range stickers {
		if sticker.ID == "" {
			sticker.ID = uuid.New().String()[:8]
		}
		if sticker.Name == "" {
			sticker.Name = fmt.Sprintf("Sticker %d", len(result.Stickers)+1)
		}
		if !sticker.HasPrintableSize() {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("'%s': no printable size, cannot be placed", sticker.Name))
		}
		result.Stickers = append(result.Stickers, sticker)
	}

	return result
}

// LoadFile imports a catalog file, dispatching on the file extension.
// CSV, XLSX, JSON and DXF are supported.
func LoadFile(path string) ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ImportCSV(path)
	case ".xlsx", ".xls":
		return ImportXLSX(path)
	case ".json":
		return ImportJSON(path)
	case ".dxf":
		return ImportDXF(path)
	default:
		return ImportResult{
			Errors: []string{fmt.Sprintf("Unsupported file type '%s'", filepath.Ext(path))},
		}
	}
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into stickers.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns from first row
	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		// Size columns must exist even though individual values may be blank
		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 3 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after the name is not numeric - might be an
				// unrecognized header. Skip it but keep positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		sticker, errMsg, warning := parseRow(row, mapping, rowLabel, len(result.Stickers))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Stickers = append(result.Stickers, sticker)
	}

	return result
}

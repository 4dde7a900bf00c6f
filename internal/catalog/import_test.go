package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Height\nFlower,50,30\nStar,40,40\n")
	if got := DetectCSVDelimiter(data); got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Height\nFlower;50;30\nStar;40;40\n")
	if got := DetectCSVDelimiter(data); got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tHeight\nFlower\t50\t30\n")
	if got := DetectCSVDelimiter(data); got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Width|Height\nFlower|50|30\n")
	if got := DetectCSVDelimiter(data); got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Name", "Width", "Height", "Image"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Image != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_CaseInsensitiveAliases(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"DESIGN", "w", "h", "Artwork"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Image != 3 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
}

func TestDetectColumns_Reordered(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"width_mm", "height_mm", "label"})

	if !isHeader {
		t.Fatal("expected header to be detected")
	}
	if mapping.Width != 0 || mapping.Height != 1 || mapping.Name != 2 {
		t.Errorf("unexpected mapping: %+v", mapping)
	}
	if mapping.Image != -1 {
		t.Errorf("expected no image column, got %d", mapping.Image)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	mapping, isHeader := DetectColumns([]string{"Flower", "50", "30"})

	if isHeader {
		t.Fatal("expected no header")
	}
	// Positional fallback: Name, Width, Height, Image.
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 || mapping.Image != 3 {
		t.Errorf("unexpected positional mapping: %+v", mapping)
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Width,Height,Image\nFlower,50,30,flower.png\nStar,40,40,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d", len(result.Stickers))
	}

	if result.Stickers[0].Name != "Flower" {
		t.Errorf("expected name 'Flower', got %q", result.Stickers[0].Name)
	}
	if result.Stickers[0].WidthMm != 50 {
		t.Errorf("expected width 50, got %f", result.Stickers[0].WidthMm)
	}
	if result.Stickers[0].HeightMm != 30 {
		t.Errorf("expected height 30, got %f", result.Stickers[0].HeightMm)
	}
	if result.Stickers[0].ImageRef != "flower.png" {
		t.Errorf("expected image 'flower.png', got %q", result.Stickers[0].ImageRef)
	}
	if len(result.Stickers[0].ID) != 8 {
		t.Errorf("expected a generated 8-character ID, got %q", result.Stickers[0].ID)
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Flower,50,30\nStar,40,40\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}
	if result.Stickers[0].Name != "Flower" {
		t.Errorf("expected name 'Flower', got %q", result.Stickers[0].Name)
	}
	if result.Stickers[0].WidthMm != 50 {
		t.Errorf("expected width 50, got %f", result.Stickers[0].WidthMm)
	}
}

func TestImportCSVFromReader_MissingSizeImportsWithWarning(t *testing.T) {
	// Blank size cells are tolerated: the sticker imports but cannot be
	// placed until a size is set.
	data := "Name,Width,Height\nFlower,50,30\nDraft,,\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d", len(result.Stickers))
	}
	if result.Stickers[1].HasPrintableSize() {
		t.Error("expected the sizeless sticker to be unplaceable")
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "no printable size") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 'no printable size' warning, got: %v", result.Warnings)
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	data := "Name,Width,Height\nFlower,abc,30\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Stickers) != 0 {
		t.Errorf("expected no stickers, got %d", len(result.Stickers))
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if !strings.Contains(result.Errors[0], "Invalid width 'abc'") {
		t.Errorf("unexpected error message: %q", result.Errors[0])
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Name,Width,Height\nGood,50,30\nBad,abc,30\nAlsoGood,40,40\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Stickers) != 2 {
		t.Errorf("expected 2 valid stickers, got %d", len(result.Stickers))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	data := "Name,Width,Height\nFlower,50,30\n\n\nStar,40,40\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Stickers) != 2 {
		t.Errorf("expected 2 stickers (skipping empty rows), got %d (errors: %v)", len(result.Stickers), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyNameGetsGenerated(t *testing.T) {
	data := "Name,Width,Height\n,50,30\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Stickers) != 1 {
		t.Fatalf("expected 1 sticker, got %d", len(result.Stickers))
	}
	if result.Stickers[0].Name != "Sticker 1" {
		t.Errorf("expected auto-generated name 'Sticker 1', got %q", result.Stickers[0].Name)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Name,Width\nFlower,50\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Fatal("expected error for missing Height column")
	}
	if !strings.Contains(result.Errors[0], "Required columns not found") {
		t.Errorf("unexpected error message: %q", result.Errors[0])
	}
}

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stickers.csv")
	content := "Name,Width,Height\nFlower,50,30\nStar,40,40\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d", len(result.Stickers))
	}
}

func TestImportCSV_SemicolonFileWarns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stickers.csv")
	content := "Name;Width;Height\nFlower;50;30\nStar;40;40\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a delimiter warning, got: %v", result.Warnings)
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/stickers.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "stickers.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportXLSX_WithHeaders(t *testing.T) {
	path := createTestXLSX(t, [][]interface{}{
		{"Name", "Width", "Height"},
		{"Flower", 50, 30},
		{"Star", 40, 40},
	})

	result := ImportXLSX(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 2 {
		t.Fatalf("expected 2 stickers, got %d", len(result.Stickers))
	}
	if result.Stickers[0].Name != "Flower" {
		t.Errorf("expected 'Flower', got %q", result.Stickers[0].Name)
	}
	if result.Stickers[0].WidthMm != 50 {
		t.Errorf("expected width 50, got %f", result.Stickers[0].WidthMm)
	}
}

func TestImportXLSX_ReorderedColumns(t *testing.T) {
	path := createTestXLSX(t, [][]interface{}{
		{"Width", "Label", "Height"},
		{50, "Flower", 30},
	})

	result := ImportXLSX(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 1 {
		t.Fatalf("expected 1 sticker, got %d", len(result.Stickers))
	}
	if result.Stickers[0].Name != "Flower" || result.Stickers[0].WidthMm != 50 {
		t.Errorf("unexpected sticker: %+v", result.Stickers[0])
	}
}

func TestImportXLSX_FileNotFound(t *testing.T) {
	result := ImportXLSX("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

// ─── JSON Import Tests ─────────────────────────────────────

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestImportJSON_BareArray(t *testing.T) {
	path := writeTestFile(t, "stickers.json",
		`[{"id":"fl1","name":"Flower","width_mm":50,"height_mm":30,"image_ref":"flower.png"}]`)

	result := ImportJSON(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 1 {
		t.Fatalf("expected 1 sticker, got %d", len(result.Stickers))
	}
	s := result.Stickers[0]
	if s.ID != "fl1" || s.Name != "Flower" || s.WidthMm != 50 || s.ImageRef != "flower.png" {
		t.Errorf("unexpected sticker: %+v", s)
	}
}

func TestImportJSON_WrappedObject(t *testing.T) {
	path := writeTestFile(t, "stickers.json",
		`{"stickers":[{"name":"Flower","width_mm":50,"height_mm":30}]}`)

	result := ImportJSON(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Stickers) != 1 {
		t.Fatalf("expected 1 sticker, got %d", len(result.Stickers))
	}
	if len(result.Stickers[0].ID) != 8 {
		t.Errorf("expected a generated ID, got %q", result.Stickers[0].ID)
	}
}

func TestImportJSON_SizelessRecordWarns(t *testing.T) {
	path := writeTestFile(t, "stickers.json",
		`[{"name":"Draft","width_mm":0,"height_mm":30}]`)

	result := ImportJSON(path)

	if len(result.Stickers) != 1 {
		t.Fatalf("expected 1 sticker, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the sizeless record")
	}
}

func TestImportJSON_EmptyArray(t *testing.T) {
	path := writeTestFile(t, "stickers.json", `[]`)

	result := ImportJSON(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty record list")
	}
}

func TestImportJSON_Malformed(t *testing.T) {
	path := writeTestFile(t, "stickers.json", `{not json`)

	result := ImportJSON(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for malformed JSON")
	}
}

// ─── LoadFile Tests ────────────────────────────────────────

func TestLoadFile_DispatchesOnExtension(t *testing.T) {
	csvPath := writeTestFile(t, "stickers.csv", "Name,Width,Height\nFlower,50,30\n")
	result := LoadFile(csvPath)
	if len(result.Stickers) != 1 {
		t.Errorf("CSV: expected 1 sticker, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}

	jsonPath := writeTestFile(t, "stickers.json", `[{"name":"Flower","width_mm":50,"height_mm":30}]`)
	result = LoadFile(jsonPath)
	if len(result.Stickers) != 1 {
		t.Errorf("JSON: expected 1 sticker, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}

	xlsxPath := createTestXLSX(t, [][]interface{}{
		{"Name", "Width", "Height"},
		{"Flower", 50, 30},
	})
	result = LoadFile(xlsxPath)
	if len(result.Stickers) != 1 {
		t.Errorf("XLSX: expected 1 sticker, got %d (errors: %v)", len(result.Stickers), result.Errors)
	}
}

func TestLoadFile_UnsupportedExtension(t *testing.T) {
	result := LoadFile("stickers.txt")

	if len(result.Errors) == 0 {
		t.Fatal("expected error for unsupported file type")
	}
	if !strings.Contains(result.Errors[0], "Unsupported file type") {
		t.Errorf("unexpected error message: %q", result.Errors[0])
	}
}

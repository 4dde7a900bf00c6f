package export

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/stickerlab/sheetkit/internal/geom"
)

func writeTestDXF(t *testing.T, profile CutterProfile) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "cut.dxf")

	cfg, placements, _ := buildTestLayout()
	if err := WriteCutDXF(path, cfg, placements, profile); err != nil {
		t.Fatalf("WriteCutDXF returned error: %v", err)
	}
	return path
}

// readPolylines parses the written drawing back and returns its LWPOLYLINE
// entities.
func readPolylines(t *testing.T, path string) []*entity.LwPolyline {
	t.Helper()
	drawing, err := dxf.Open(path)
	if err != nil {
		t.Fatalf("cannot parse DXF: %v", err)
	}

	var out []*entity.LwPolyline
	for _, ent := range drawing.Entities() {
		if lw, ok := ent.(*entity.LwPolyline); ok {
			out = append(out, lw)
		}
	}
	return out
}

func hasVertexNear(polys []*entity.LwPolyline, x, y float64) bool {
	for _, lw := range polys {
		for _, v := range lw.Vertices {
			if math.Abs(v[0]-x) < 1e-6 && math.Abs(v[1]-y) < 1e-6 {
				return true
			}
		}
	}
	return false
}

func TestWriteCutDXF_GenericProfile(t *testing.T) {
	path := writeTestDXF(t, GetCutterProfile("Generic"))

	// Generic draws no sheet outline: one contour per placement.
	polys := readPolylines(t, path)
	if len(polys) != 3 {
		t.Fatalf("expected 3 contours, got %d", len(polys))
	}

	// Sheet y flips into DXF world coordinates: the first placement's
	// top-left corner (7, 7) lands at (7, 290) on A4.
	if !hasVertexNear(polys, 7, 290) {
		t.Error("expected a vertex at (7, 290)")
	}
}

func TestWriteCutDXF_OutlineProfile(t *testing.T) {
	// Summa wants the paper boundary as a registration reference, and a
	// 1 mm overcut on every contour.
	path := writeTestDXF(t, GetCutterProfile("Summa"))

	polys := readPolylines(t, path)
	if len(polys) != 4 {
		t.Fatalf("expected outline plus 3 contours, got %d", len(polys))
	}
	if !hasVertexNear(polys, 210, 297) {
		t.Error("expected the paper corner (210, 297) on the outline")
	}

	// Overcut contours re-trace the first corner and push past it: six
	// vertices against the outline's four.
	outlines, contours := 0, 0
	for _, lw := range polys {
		switch len(lw.Vertices) {
		case 4:
			outlines++
		case 6:
			contours++
		}
	}
	if outlines != 1 || contours != 3 {
		t.Errorf("expected 1 closed outline and 3 overcut contours, got %d and %d", outlines, contours)
	}
}

func TestWriteCutDXF_CustomLayerName(t *testing.T) {
	path := writeTestDXF(t, GetCutterProfile("Zund"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read DXF: %v", err)
	}
	if !strings.Contains(string(data), "THRU-CUT") {
		t.Error("expected the THRU-CUT layer")
	}
}

func TestWriteCutDXF_MirroredProfile(t *testing.T) {
	// Cut-from-back media mirror x against the paper width: the corner at
	// x = 7 lands at x = 203.
	profile := CutterProfile{Name: "BackCut", Layer: "CUT", MirrorX: true}
	path := writeTestDXF(t, profile)

	polys := readPolylines(t, path)
	if !hasVertexNear(polys, 203, 290) {
		t.Error("expected the mirrored vertex at (203, 290)")
	}
	if hasVertexNear(polys, 7, 290) {
		t.Error("unmirrored vertex present at (7, 290)")
	}
}

func TestWriteCutDXF_EmptyLayerFallsBack(t *testing.T) {
	path := writeTestDXF(t, CutterProfile{Name: "Bare"})

	polys := readPolylines(t, path)
	if len(polys) != 3 {
		t.Errorf("expected 3 contours, got %d", len(polys))
	}
}

func TestWriteCutDXF_EmptyLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	cfg, _, _ := buildTestLayout()
	if err := WriteCutDXF(path, cfg, nil, GetCutterProfile("Generic")); err == nil {
		t.Fatal("expected error for empty layout, got nil")
	}
}

func TestOvercutPoint(t *testing.T) {
	got := overcutPoint(geom.Point{X: 10, Y: 10}, geom.Point{X: 20, Y: 10}, 2)
	if got.X != 12 || got.Y != 10 {
		t.Errorf("overcutPoint = %+v, want (12, 10)", got)
	}

	// Direction is normalized, not scaled by the edge length.
	got = overcutPoint(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 100}, 1.5)
	if got.X != 0 || got.Y != 1.5 {
		t.Errorf("overcutPoint = %+v, want (0, 1.5)", got)
	}

	// Degenerate zero-length edge stays put.
	got = overcutPoint(geom.Point{X: 5, Y: 5}, geom.Point{X: 5, Y: 5}, 2)
	if got.X != 5 || got.Y != 5 {
		t.Errorf("overcutPoint = %+v, want (5, 5)", got)
	}
}

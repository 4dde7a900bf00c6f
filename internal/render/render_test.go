package render

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stickerlab/sheetkit/internal/layout"
)

func testRequest() Request {
	cfg := layout.DefaultConfig()
	placements := []layout.Placement{
		{ID: "p1", StickerID: "fl1", XMm: 7, YMm: 7, WidthMm: 50, HeightMm: 30},
		{ID: "p2", StickerID: "st1", XMm: 63, YMm: 7, RotationDeg: 90, WidthMm: 40, HeightMm: 40},
	}
	return NewRequest(cfg, placements)
}

func TestNewRequest(t *testing.T) {
	req := testRequest()

	if req.PaperSize != "A4" {
		t.Errorf("PaperSize = %q, want A4", req.PaperSize)
	}
	if req.MarginMm != 7 {
		t.Errorf("MarginMm = %v, want 7", req.MarginMm)
	}
	if len(req.Placements) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(req.Placements))
	}
	if req.Placements[0].StickerID != "fl1" {
		t.Errorf("StickerID = %q, want fl1", req.Placements[0].StickerID)
	}
	if req.Placements[1].RotationDeg != 90 {
		t.Errorf("RotationDeg = %v, want 90", req.Placements[1].RotationDeg)
	}
}

func TestRequestWireFormat(t *testing.T) {
	// The payload names are the service's, not this module's: camelCase,
	// no placement IDs, no dimensions, and never the gap.
	data, err := json.Marshal(testRequest())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	s := string(data)
	for _, want := range []string{`"paperSize":"A4"`, `"marginMm":7`, `"stickerId":"fl1"`, `"xMm":63`, `"rotationDeg":90`} {
		if !strings.Contains(s, want) {
			t.Errorf("payload missing %s: %s", want, s)
		}
	}
	for _, reject := range []string{"gap", "width", "height", `"id"`} {
		if strings.Contains(s, reject) {
			t.Errorf("payload must not carry %q: %s", reject, s)
		}
	}
}

func TestHTTPServiceRender(t *testing.T) {
	var gotMethod, gotContentType, gotAuth string
	var gotBody Request

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"pdfUrl":      "https://cdn.example.com/sheet.pdf",
			"pdfPublicId": "sheet-42",
		})
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL)
	svc.SetAuthToken("secret-token")

	result, err := svc.Render(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if result.PDFURL != "https://cdn.example.com/sheet.pdf" {
		t.Errorf("PDFURL = %q", result.PDFURL)
	}
	if result.PDFPublicID != "sheet-42" {
		t.Errorf("PDFPublicID = %q", result.PDFPublicID)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("content type = %q", gotContentType)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if len(gotBody.Placements) != 2 {
		t.Errorf("server saw %d placements, want 2", len(gotBody.Placements))
	}
}

func TestHTTPServiceRender_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]string{"pdfUrl": "https://cdn.example.com/sheet.pdf"})
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL)
	if _, err := svc.Render(context.Background(), testRequest()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestHTTPServiceRender_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unknown sticker id"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL)
	_, err := svc.Render(context.Background(), testRequest())

	if !errors.Is(err, ErrRenderRejected) {
		t.Fatalf("expected ErrRenderRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown sticker id") {
		t.Errorf("error should carry the response body, got %v", err)
	}
}

func TestHTTPServiceRender_ServerFault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL)
	_, err := svc.Render(context.Background(), testRequest())

	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}

func TestHTTPServiceRender_MissingPDFURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"pdfPublicId": "sheet-42"})
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL)
	_, err := svc.Render(context.Background(), testRequest())

	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}

func TestHTTPServiceRender_ServiceDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	svc := NewHTTPService(server.URL)
	_, err := svc.Render(context.Background(), testRequest())

	if !errors.Is(err, ErrRenderFailed) {
		t.Fatalf("expected ErrRenderFailed, got %v", err)
	}
}

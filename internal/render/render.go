// Package render submits finished sheet layouts to a remote PDF render
// service and returns the hosted document handles. The wire format carries
// only what the service needs to draw: sticker identities with their
// resolved geometry, plus the paper size and margin. The gap is a
// layout-time constraint and never travels.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/stickerlab/sheetkit/internal/layout"
)

// Common errors
var (
	ErrRenderFailed   = errors.New("render request failed")
	ErrRenderRejected = errors.New("render request rejected")
)

// PlacementRef is one placed sticker as the render service sees it.
type PlacementRef struct {
	StickerID   string  `json:"stickerId"`
	XMm         float64 `json:"xMm"`
	YMm         float64 `json:"yMm"`
	RotationDeg float64 `json:"rotationDeg"`
}

// Request is the render job payload.
type Request struct {
	PaperSize  string         `json:"paperSize"`
	MarginMm   float64        `json:"marginMm"`
	Placements []PlacementRef `json:"placements"`
}

// Result holds the handles of the rendered document.
type Result struct {
	PDFURL      string `json:"pdfUrl"`
	PDFPublicID string `json:"pdfPublicId"`
}

// NewRequest builds a render request from a sheet configuration and its
// committed placements.
func NewRequest(cfg layout.SheetConfig, placements []layout.Placement) Request {
	req := Request{
		PaperSize:  string(cfg.Paper),
		MarginMm:   cfg.MarginMm,
		Placements: make([]PlacementRef, 0, len(placements)),
	}
	for _, p := range placements {
		req.Placements = append(req.Placements, PlacementRef{
			StickerID:   p.StickerID,
			XMm:         p.XMm,
			YMm:         p.YMm,
			RotationDeg: p.RotationDeg,
		})
	}
	return req
}

// Service renders sheet layouts to hosted PDFs.
type Service interface {
	// Render submits the layout and blocks until the service answers.
	Render(ctx context.Context, req Request) (Result, error)
}

// HTTPService implements Service against an HTTP endpoint.
type HTTPService struct {
	URL        string
	HTTPClient *http.Client
	AuthToken  string
}

// NewHTTPService creates a render client for the given endpoint.
func NewHTTPService(url string) *HTTPService {
	return &HTTPService{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetAuthToken sets a bearer token sent with every request.
func (s *HTTPService) SetAuthToken(token string) {
	s.AuthToken = token
}

// Render implements Service.
func (s *HTTPService) Render(ctx context.Context, req Request) (Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if s.AuthToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.AuthToken)
	}

	resp, err := s.HTTPClient.Do(httpReq)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	// 4xx means the service understood and refused the job; everything else
	// non-OK is a transport or server fault.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return Result{}, fmt.Errorf("%w: HTTP %d: %s", ErrRenderRejected, resp.StatusCode, trimBody(respData))
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("%w: HTTP %d", ErrRenderFailed, resp.StatusCode)
	}

	var result Result
	if err := json.Unmarshal(respData, &result); err != nil {
		return Result{}, fmt.Errorf("%w: invalid response: %v", ErrRenderFailed, err)
	}
	if result.PDFURL == "" {
		return Result{}, fmt.Errorf("%w: response carries no pdfUrl", ErrRenderFailed)
	}
	return result, nil
}

// trimBody keeps error messages readable when a service answers with a page
// of HTML.
func trimBody(data []byte) string {
	const max = 200
	s := string(bytes.TrimSpace(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

package scan

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wrenfield/scan-inbox/internal/scanning"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Scan Inbox</title></head>
<body>
<h1>Scan Inbox</h1>
<p>POST an image to /api/scan or recognized text to /api/scan/text.</p>
</body>
</html>
`

// setCORSHeaders sets CORS headers on a response.
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

// writeJSON writes a JSON response with CORS headers set.
func writeJSON(w http.ResponseWriter, status int, v any) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

// writeError writes a JSON error object with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// statusFor maps a scan failure to an HTTP status: configuration errors are
// the server's fault, bad input is the caller's, parse failures are
// unprocessable, and everything else is an upstream failure.
func statusFor(cause error) int {
	switch {
	case errors.Is(cause, scanning.ErrNoCredentials):
		return http.StatusInternalServerError
	case errors.Is(cause, scanning.ErrNoImage), errors.Is(cause, scanning.ErrBadImage):
		return http.StatusBadRequest
	case errors.Is(cause, scanning.ErrBadReply):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// handleIndex serves the HTML interface.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

type scanImageRequest struct {
	Image    string `json:"image"`
	MimeType string `json:"mimeType"`
}

// handleScanImage runs a smart scan over a base64-encoded image.
func (s *Server) handleScanImage(w http.ResponseWriter, r *http.Request) {
	var req scanImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Image == "" {
		writeError(w, http.StatusBadRequest, "image is required")
		return
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		writeError(w, http.StatusBadRequest, "image must be base64 encoded")
		return
	}

	mimeType := req.MimeType
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	result := s.service.ScanImage(r.Context(), data, mimeType)

	// The client is gone; a canceled scan resolves into nothing.
	if r.Context().Err() != nil {
		return
	}

	if !result.Success {
		writeError(w, statusFor(result.Cause()), result.Error)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items":   result.Items,
		"rawText": result.RawText,
	})
}

type scanTextRequest struct {
	Text string `json:"text"`
}

// handleScanText runs a quick scan over recognized text.
func (s *Server) handleScanText(w http.ResponseWriter, r *http.Request) {
	var req scanTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	result := s.service.ScanText(req.Text)
	writeJSON(w, http.StatusOK, result)
}

// handleRecentScans returns the most recent scan envelopes.
func (s *Server) handleRecentScans(w http.ResponseWriter, r *http.Request) {
	results, err := s.service.Recent(50)
	if err != nil {
		slog.Error("Error listing scans", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

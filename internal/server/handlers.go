package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/npillmayer/sinhala/internal/metrics"
	"github.com/npillmayer/sinhala/preview"
)

// Conversion directions, as named in batch requests.
const (
	DirSinglish = "singlish" // Singlish → Unicode
	DirEncode   = "encode"   // Unicode → legacy
	DirDecode   = "decode"   // legacy → Unicode
)

type textRequest struct {
	Text string `json:"text"`
}

type singlishResponse struct {
	Unicode string `json:"unicode"`
	Legacy  string `json:"legacy"`
}

type previewRequest struct {
	Text string `json:"text"`
	Mode string `json:"mode"`
}

// converter returns the conversion for a batch direction.
func (s *Server) converter(direction string) (func(string) string, bool) {
	switch direction {
	case DirSinglish:
		return s.conv.SinglishToUnicode, true
	case DirEncode:
		return s.conv.UnicodeToLegacy, true
	case DirDecode:
		return func(text string) string {
			return preview.DecodePasted(s.conv, text)
		}, true
	}
	return nil, false
}

// convert applies fn to text and counts the conversion under direction.
func convert(direction string, fn func(string) string, text string) string {
	metrics.ConversionsTotal.WithLabelValues(direction).Inc()
	metrics.ConvertedRunes.WithLabelValues(direction).Add(float64(utf8.RuneCountInString(text)))
	return fn(text)
}

func (s *Server) handleSinglish(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u := convert(DirSinglish, s.conv.SinglishToUnicode, req.Text)
	l := convert(DirEncode, s.conv.UnicodeToLegacy, u)
	writeJSON(w, http.StatusOK, singlishResponse{Unicode: u, Legacy: l})
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	l := convert(DirEncode, s.conv.UnicodeToLegacy, req.Text)
	writeJSON(w, http.StatusOK, map[string]string{"legacy": l})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if !decodeBody(w, r, &req) {
		return
	}
	u := convert(DirDecode, func(text string) string {
		return preview.DecodePasted(s.conv, text)
	}, req.Text)
	writeJSON(w, http.StatusOK, map[string]string{"unicode": u})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if !decodeBody(w, r, &req) {
		return
	}
	mode, err := preview.ParseMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	metrics.ConversionsTotal.WithLabelValues("preview").Inc()
	writeJSON(w, http.StatusOK, preview.Compute(s.conv, req.Text, mode))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeBody reads a JSON request body into v. On failure it writes the
// error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		metrics.RequestBodyTooLarge.Inc()
		writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
		return false
	}
	tracer().Debugf("invalid request body: %v", err)
	writeError(w, http.StatusBadRequest, "invalid JSON body")
	return false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"unicode/utf8"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/zephyrtronium/wordcalc"
)

type textRequest struct {
	Text string `json:"text"`
}

type numberResponse struct {
	Text   string   `json:"text"`
	Value  *float64 `json:"value,omitempty"`
	Result string   `json:"result"`
}

type evaluateResponse struct {
	Text       string   `json:"text"`
	Normalized string   `json:"normalized"`
	Value      *float64 `json:"value,omitempty"`
	Result     string   `json:"result"`
}

type normalizeResponse struct {
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
}

func (s *Server) handleNumber(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	v, err := wordcalc.ParseNumber(text)
	if err != nil {
		s.calcError(w, r, err)
		return
	}
	writeJSON(w, numberResponse{Text: text, Value: finiteOrNil(v), Result: format(v)})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	norm := s.calc.Normalize(text)
	v, err := s.calc.Evaluate(norm)
	if err != nil {
		s.calcError(w, r, err)
		return
	}
	s.log.Debug("evaluated", "normalized", norm, "result", v, "request_id", middleware.GetReqID(r.Context()))
	writeJSON(w, evaluateResponse{Text: text, Normalized: norm, Value: finiteOrNil(v), Result: format(v)})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	text, ok := s.readText(w, r)
	if !ok {
		return
	}
	writeJSON(w, normalizeResponse{Text: text, Normalized: s.calc.Normalize(text)})
}

// readText decodes the request body. On failure it writes the error response
// and returns false.
func (s *Server) readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			jsonError(w, fmt.Sprintf("request exceeds max size (%d bytes)", tooBig.Limit), http.StatusRequestEntityTooLarge)
			return "", false
		}
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return "", false
	}
	if n := utf8.RuneCountInString(req.Text); n > s.cfg.MaxTextRunes {
		jsonError(w, fmt.Sprintf("text exceeds max length (%d characters)", s.cfg.MaxTextRunes), http.StatusRequestEntityTooLarge)
		return "", false
	}
	return req.Text, true
}

// parseErrorResponse locates the word a calculation failed on. Col counts
// runes in the normalized text for /api/evaluate and is omitted when unknown.
type parseErrorResponse struct {
	Error string `json:"error"`
	Word  string `json:"word"`
	Col   int    `json:"col,omitempty"`
}

// calcError reports an error from the calculator. Parse errors are the
// client's fault; anything else is ours.
func (s *Server) calcError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *wordcalc.ParseError
	if errors.As(err, &perr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(parseErrorResponse{Error: perr.Error(), Word: perr.Word, Col: perr.Col})
		return
	}
	s.log.Error("calculation failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
	jsonError(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// format formats a result so that NaN and infinities survive JSON.
func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

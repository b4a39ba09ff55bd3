package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/wordnum/wordnum"
)

// ---- JSON response types ------------------------------------------------

type convertResponse struct {
	Text    string        `json:"text"`
	Locale  string        `json:"locale"`
	Value   wordnum.Value `json:"value"`
	Decimal bool          `json:"decimal"`
	Ordinal bool          `json:"ordinal"`
}

type batchRequest struct {
	Texts  []string `json:"texts"`
	Locale string   `json:"locale"`
}

type batchItem struct {
	Text    string         `json:"text"`
	Value   *wordnum.Value `json:"value,omitempty"`
	Decimal bool           `json:"decimal,omitempty"`
	Ordinal bool           `json:"ordinal,omitempty"`
	Error   string         `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

type localesResponse struct {
	Locales []string `json:"locales"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// newConverter resolves the request locale, falling back to the
// configured default when the request does not name one.
func newConverter(locale, fallback string) (*wordnum.Converter, error) {
	if locale == "" {
		locale = fallback
	}
	return wordnum.New(wordnum.Locale(locale))
}

// convertStatus maps a conversion failure to an HTTP status: unknown
// locales are a client configuration problem, everything else is
// unprocessable input.
func convertStatus(err error) int {
	var le *wordnum.LocaleError
	if errors.As(err, &le) {
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

// ---- handlers -----------------------------------------------------------

func handleConvert(defaultLocale string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text := r.URL.Query().Get("text")
		if text == "" {
			writeError(w, http.StatusBadRequest, "missing 'text' query parameter")
			return
		}
		locale := r.URL.Query().Get("locale")

		conv, err := newConverter(locale, defaultLocale)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		v, err := conv.Convert(text)
		if err != nil {
			writeError(w, convertStatus(err), err.Error())
			return
		}
		writeJSON(w, http.StatusOK, convertResponse{
			Text:    text,
			Locale:  string(conv.Locale()),
			Value:   v,
			Decimal: v.IsDecimal(),
			Ordinal: v.IsOrdinal(),
		})
	}
}

func handleConvertBatch(defaultLocale string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body batchRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Texts) == 0 {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'texts' array")
			return
		}

		conv, err := newConverter(body.Locale, defaultLocale)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		results := make([]batchItem, 0, len(body.Texts))
		for _, text := range body.Texts {
			item := batchItem{Text: text}
			v, err := conv.Convert(text)
			if err != nil {
				item.Error = err.Error()
			} else {
				item.Value = &v
				item.Decimal = v.IsDecimal()
				item.Ordinal = v.IsOrdinal()
			}
			results = append(results, item)
		}
		writeJSON(w, http.StatusOK, batchResponse{Results: results})
	}
}

func handleLocales() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locales := wordnum.Locales()
		out := make([]string, len(locales))
		for i, loc := range locales {
			out[i] = string(loc)
		}
		writeJSON(w, http.StatusOK, localesResponse{Locales: out})
	}
}

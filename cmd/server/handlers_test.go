package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &Config{
		DefaultLocale: "en",
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newRouter(cfg, logger)
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandleConvert(t *testing.T) {
	h := testRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/convert?text=twenty-three", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Text    string      `json:"text"`
		Locale  string      `json:"locale"`
		Value   json.Number `json:"value"`
		Decimal bool        `json:"decimal"`
		Ordinal bool        `json:"ordinal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "twenty-three", resp.Text)
	assert.Equal(t, "en", resp.Locale)
	assert.Equal(t, json.Number("23"), resp.Value)
	assert.False(t, resp.Decimal)
	assert.False(t, resp.Ordinal)
}

func TestHandleConvertDecimal(t *testing.T) {
	h := testRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/convert?text=twenty+point+zero+five", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Value   json.Number `json:"value"`
		Decimal bool        `json:"decimal"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, json.Number("20.05"), resp.Value)
	assert.True(t, resp.Decimal)
}

func TestHandleConvertErrors(t *testing.T) {
	h := testRouter(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"missing text", "/api/convert", http.StatusBadRequest},
		{"unknown word", "/api/convert?text=banana", http.StatusUnprocessableEntity},
		{"bad grammar", "/api/convert?text=thousand+one+million", http.StatusUnprocessableEntity},
		{"unknown locale", "/api/convert?text=one&locale=xx", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, http.MethodGet, tt.target, "")
			assert.Equal(t, tt.status, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleConvertBatch(t *testing.T) {
	h := testRouter(t)

	body := `{"texts":["twenty-one","banana","one point five"]}`
	rec := doRequest(t, h, http.MethodPost, "/api/convert/batch", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Results []struct {
			Text  string      `json:"text"`
			Value json.Number `json:"value"`
			Error string      `json:"error"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 3)

	assert.Equal(t, json.Number("21"), resp.Results[0].Value)
	assert.Empty(t, resp.Results[0].Error)

	assert.NotEmpty(t, resp.Results[1].Error)

	assert.Equal(t, json.Number("1.5"), resp.Results[2].Value)
}

func TestHandleConvertBatchBadBody(t *testing.T) {
	h := testRouter(t)

	rec := doRequest(t, h, http.MethodPost, "/api/convert/batch", `{"texts":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleLocales(t *testing.T) {
	h := testRouter(t)

	rec := doRequest(t, h, http.MethodGet, "/api/locales", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp localesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Locales, "en")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

package router_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Totarae/TranslateApp/internal/handlers"
	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/router"
	"github.com/Totarae/TranslateApp/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixedTranslator string

func (f fixedTranslator) Translate(ctx context.Context, text string, pair model.LangPair) (string, error) {
	return string(f), nil
}

func newServer(t *testing.T, gzipOn bool) *httptest.Server {
	t.Helper()
	logger := zap.NewNop()
	h := handlers.NewHandler(service.NewTranslationService(fixedTranslator("Hello World"), logger), logger)
	srv := httptest.NewServer(router.NewRouter(h, logger, gzipOn))
	t.Cleanup(srv.Close)
	return srv
}

func TestRouter_Translate(t *testing.T) {
	srv := newServer(t, false)

	resp, err := http.Post(srv.URL+"/api/translate", "application/json",
		strings.NewReader(`{"text":"হ্যালো বিশ্ব","direction":"bn|en"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))

	var got model.TranslateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "hello-world → Hello World", got.Combined)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := newServer(t, false)

	resp, err := http.Get(srv.URL + "/api/translate")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_Ping(t *testing.T) {
	srv := newServer(t, false)

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestRouter_Gzip(t *testing.T) {
	srv := newServer(t, true)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	zw.Write([]byte(`{"text":"Hello World"}`))
	zw.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/translate", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	req.Header.Set("Accept-Encoding", "gzip")

	// явный Accept-Encoding отключает прозрачную распаковку в транспорте
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))
	zr, err := gzip.NewReader(resp.Body)
	require.NoError(t, err)

	var got model.TranslateResponse
	require.NoError(t, json.NewDecoder(zr).Decode(&got))
	assert.Equal(t, "hello-world", got.Formatted)
}

func TestRouter_GzipCorruptBody(t *testing.T) {
	srv := newServer(t, true)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/translate", strings.NewReader("not gzip"))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var got model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Translation failed", got.Error)
}

package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestMyMemory(t *testing.T, h http.HandlerFunc) *MyMemory {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	return NewMyMemory(server.URL+"/get", "", 2*time.Second, zap.NewNop())
}

func TestMyMemory_Translate_Success(t *testing.T) {
	var gotQuery, gotPair string
	svc := newTestMyMemory(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotPair = r.URL.Query().Get("langpair")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"responseData":{"translatedText":"হ্যালো বিশ্ব","match":1},"responseStatus":200}`))
	})

	got, err := svc.Translate(context.Background(), "Hello   World", model.EnToBn.Pair())
	require.NoError(t, err)
	assert.Equal(t, "হ্যালো বিশ্ব", got)
	assert.Equal(t, "Hello   World", gotQuery)
	assert.Equal(t, "en|bn", gotPair)
}

func TestMyMemory_Translate_SendsEmail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "dev@example.com", r.URL.Query().Get("de"))
		assert.Equal(t, "bn|en", r.URL.Query().Get("langpair"))
		w.Write([]byte(`{"responseData":{"translatedText":"Hello"}}`))
	}))
	defer server.Close()

	svc := NewMyMemory(server.URL, "dev@example.com", time.Second, zap.NewNop())
	got, err := svc.Translate(context.Background(), "হ্যালো", model.BnToEn.Pair())
	require.NoError(t, err)
	assert.Equal(t, "Hello", got)
}

func TestMyMemory_Translate_IgnoresResponseStatusField(t *testing.T) {
	svc := newTestMyMemory(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseData":{"translatedText":"QUOTA EXCEEDED"},"responseStatus":429}`))
	})

	got, err := svc.Translate(context.Background(), "hi", model.EnToBn.Pair())
	require.NoError(t, err)
	assert.Equal(t, "QUOTA EXCEEDED", got)
}

func TestMyMemory_Translate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"non-2xx", http.StatusServiceUnavailable, `{"responseData":{"translatedText":"x"}}`, ErrUpstreamStatus},
		{"not json", http.StatusOK, `<html>oops</html>`, ErrMalformedResponse},
		{"missing responseData", http.StatusOK, `{"foo":1}`, ErrMalformedResponse},
		{"missing translatedText", http.StatusOK, `{"responseData":{}}`, ErrMalformedResponse},
		{"null translatedText", http.StatusOK, `{"responseData":{"translatedText":null}}`, ErrMalformedResponse},
		{"null body", http.StatusOK, `null`, ErrMalformedResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestMyMemory(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			got, err := svc.Translate(context.Background(), "hi", model.EnToBn.Pair())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestMyMemory_Translate_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	svc := NewMyMemory(url, "", time.Second, zap.NewNop())
	_, err := svc.Translate(context.Background(), "hi", model.EnToBn.Pair())
	assert.Error(t, err)
}

func TestMyMemory_Translate_Timeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(done)

	svc := NewMyMemory(server.URL, "", 50*time.Millisecond, zap.NewNop())
	_, err := svc.Translate(context.Background(), "hi", model.EnToBn.Pair())
	assert.Error(t, err)
}

func TestNewMyMemory_DefaultURL(t *testing.T) {
	svc := NewMyMemory("", "", time.Second, zap.NewNop())
	assert.Equal(t, DefaultMyMemoryURL, svc.baseURL)
}

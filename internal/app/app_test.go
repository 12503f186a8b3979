package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Totarae/TranslateApp/internal/config"
	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewTranslationService(t *testing.T) {
	var calls int
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "ops@example.com", r.URL.Query().Get("de"))
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer upstream.Close()

	cfg := &config.Config{
		UpstreamURL:        upstream.URL,
		UpstreamEmail:      "ops@example.com",
		UpstreamTimeout:    time.Second,
		BreakerMaxFailures: 2,
		BreakerOpenTimeout: time.Minute,
	}
	svc := NewTranslationService(cfg, zap.NewNop())

	for i := 0; i < 3; i++ {
		_, err := svc.Translate(context.Background(), model.TranslateRequest{Text: "hi"})
		require.ErrorIs(t, err, service.ErrTranslationFailed)
	}
	// после двух отказов цепь разомкнута и третий запрос не уходит наружу
	assert.Equal(t, 2, calls)
}

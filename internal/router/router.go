package router

import (
	"github.com/Totarae/TranslateApp/internal/handlers"
	"github.com/Totarae/TranslateApp/internal/middleware"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewRouter создаёт и настраивает маршрутизатор
func NewRouter(handler *handlers.Handler, logger *zap.Logger, enableGzip bool) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(logger)) // Подключаем логирование
	if enableGzip {
		r.Use(middleware.GzipMiddleware)
	}

	r.Post("/api/translate", handler.Translate)
	r.Get("/ping", handler.Ping)
	return r
}

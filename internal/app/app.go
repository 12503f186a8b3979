// Package app собирает сервис перевода из конфигурации.
package app

import (
	"github.com/Totarae/TranslateApp/internal/config"
	"github.com/Totarae/TranslateApp/internal/service"
	"github.com/Totarae/TranslateApp/internal/translator"
	"go.uber.org/zap"
)

// NewTranslationService MyMemory-клиент за circuit breaker'ом.
func NewTranslationService(cfg *config.Config, logger *zap.Logger) *service.TranslationService {
	mm := translator.NewMyMemory(cfg.UpstreamURL, cfg.UpstreamEmail, cfg.UpstreamTimeout, logger)
	tr := translator.NewBreakerTranslator(mm, cfg.BreakerMaxFailures, cfg.BreakerOpenTimeout, logger)
	return service.NewTranslationService(tr, logger)
}

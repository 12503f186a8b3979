// Package main точка входа AWS Lambda. Обрабатывает события API Gateway
// proxy с тем же контрактом, что и POST /api/translate.
package main

import (
	"log"

	"github.com/Totarae/TranslateApp/internal/app"
	"github.com/Totarae/TranslateApp/internal/config"
	"github.com/Totarae/TranslateApp/internal/logger"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/viper"
)

func main() {
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	h := newHandler(app.NewTranslationService(cfg, zl), zl, selfInvoke)
	lambda.Start(h.Handle)
}

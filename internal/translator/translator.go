// Package translator содержит клиентов внешних сервисов перевода.
package translator

import (
	"context"
	"errors"

	"github.com/Totarae/TranslateApp/internal/model"
)

//go:generate mockgen -source=translator.go -destination=mocks/translator_mock.go -package=mocks

// Translator переводит текст для одной языковой пары.
type Translator interface {
	Translate(ctx context.Context, text string, pair model.LangPair) (string, error)
}

var (
	// ErrUpstreamStatus сервис ответил не-2xx статусом.
	ErrUpstreamStatus = errors.New("upstream returned non-2xx status")
	// ErrMalformedResponse в ответе нет responseData.translatedText.
	ErrMalformedResponse = errors.New("malformed upstream response")
)

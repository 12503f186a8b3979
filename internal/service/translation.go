package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/translator"
	"github.com/Totarae/TranslateApp/internal/util"
	"go.uber.org/zap"
)

// Тексты ошибок отдаются клиенту как есть.
var (
	//lint:ignore ST1005 публичное сообщение API
	ErrNoText = errors.New("No text provided")
	//lint:ignore ST1005 публичное сообщение API
	ErrTranslationFailed = errors.New("Translation failed")
)

// TranslationService переводит текст и строит слаг из английского варианта.
type TranslationService struct {
	Translator translator.Translator
	Logger     *zap.Logger
}

func NewTranslationService(t translator.Translator, logger *zap.Logger) *TranslationService {
	return &TranslationService{
		Translator: t,
		Logger:     logger,
	}
}

// Translate делает ровно один вызов переводчика.
// Для en|bn английский текст это вход, для bn|en результат перевода.
// Возвращает ErrNoText для пустого текста (без обрезки пробелов)
// и ошибку, оборачивающую ErrTranslationFailed, во всех прочих случаях.
func (s *TranslationService) Translate(ctx context.Context, req model.TranslateRequest) (*model.TranslateResponse, error) {
	if req.Text == "" {
		return nil, ErrNoText
	}

	pair := req.Direction.Pair()
	translated, err := s.Translator.Translate(ctx, req.Text, pair)
	if err != nil {
		s.Logger.Error("Translation error",
			zap.String("langpair", pair.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", ErrTranslationFailed, err)
	}

	english := req.Text
	if !pair.EnglishIsSource {
		english = translated
	}

	formatted := util.Slugify(english)
	return &model.TranslateResponse{
		Formatted:  formatted,
		Translated: translated,
		Combined:   util.Combine(formatted, translated),
	}, nil
}

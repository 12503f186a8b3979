package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/Totarae/TranslateApp/internal/model"
	"go.uber.org/zap"
)

// DefaultMyMemoryURL публичный эндпоинт MyMemory.
const DefaultMyMemoryURL = "https://api.mymemory.translated.net/get"

type myMemoryResponse struct {
	ResponseData *struct {
		TranslatedText *string `json:"translatedText"`
	} `json:"responseData"`
}

// MyMemory клиент API api.mymemory.translated.net.
type MyMemory struct {
	baseURL string
	email   string
	client  *http.Client
	logger  *zap.Logger
}

// NewMyMemory создаёт клиента. Пустой baseURL означает публичный эндпоинт,
// email (необязательный) передаётся в параметре de для увеличения квоты.
func NewMyMemory(baseURL, email string, timeout time.Duration, logger *zap.Logger) *MyMemory {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}
	return &MyMemory{
		baseURL: baseURL,
		email:   email,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Translate выполняет GET ?q=<text>&langpair=<src|dst> и возвращает
// responseData.translatedText без изменений.
func (m *MyMemory) Translate(ctx context.Context, text string, pair model.LangPair) (string, error) {
	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", pair.String())
	if m.email != "" {
		params.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("ошибка создания запроса: %w", err)
	}

	start := time.Now()
	resp, err := m.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	m.logger.Debug("MyMemory response",
		zap.String("langpair", pair.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// тело читаем только для диагностики
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: %d %s", ErrUpstreamStatus, resp.StatusCode, body)
	}

	var res myMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if res.ResponseData == nil || res.ResponseData.TranslatedText == nil {
		return "", fmt.Errorf("%w: responseData.translatedText missing", ErrMalformedResponse)
	}

	return *res.ResponseData.TranslatedText, nil
}

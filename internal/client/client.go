// Package client обращается к HTTP API переводчика и хранит состояние
// интерфейса в виде неизменяемых снимков.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Totarae/TranslateApp/internal/model"
)

// APIError ответ сервера с кодом, отличным от 200.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("translate API: %d %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Translate отправляет POST /api/translate.
func (c *Client) Translate(ctx context.Context, text string, direction model.Direction) (*model.TranslateResponse, error) {
	payload, err := json.Marshal(model.TranslateRequest{Text: text, Direction: direction})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/translate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e model.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}

	var out model.TranslateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &out, nil
}

package main

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"go.uber.org/zap"
)

const (
	// WarmupSource признак события прогрева от планировщика.
	WarmupSource = "warmup"

	// WarmupDelay удерживает экземпляр, чтобы параллельные вызовы не попали в него же.
	WarmupDelay = 75 * time.Millisecond

	// MaxWarmupConcurrency верхняя граница числа самовызовов за одно событие.
	MaxWarmupConcurrency = 10
)

// WarmupEvent событие прогрева.
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

// WarmupResponse ответ на событие прогрева.
type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
}

// warmFunc поднимает count дополнительных экземпляров.
type warmFunc func(ctx context.Context, count int) error

// IsWarmupEvent проверяет, является ли событие прогревом.
// Concurrency приводится к диапазону [0, MaxWarmupConcurrency].
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var w WarmupEvent
	if err := json.Unmarshal(event, &w); err != nil || w.Source != WarmupSource {
		return nil, false
	}
	w.Concurrency = min(max(w.Concurrency, 0), MaxWarmupConcurrency)
	return &w, true
}

func (h *handler) handleWarmup(ctx context.Context, warmup *WarmupEvent) WarmupResponse {
	warmed := 1
	if warmup.Concurrency > 0 && h.warmer != nil {
		if err := h.warmer(ctx, warmup.Concurrency); err != nil {
			h.logger.Warn("Ошибка самовызова при прогреве", zap.Error(err))
		} else {
			warmed += warmup.Concurrency
		}
	}

	time.Sleep(WarmupDelay)
	return WarmupResponse{Status: "warm", InstancesWarmed: warmed}
}

// selfInvoke асинхронно вызывает эту же функцию count раз.
func selfInvoke(ctx context.Context, count int) error {
	count = min(count, MaxWarmupConcurrency)
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return err
	}
	client := lambdasdk.NewFromConfig(cfg)

	// concurrency 0, чтобы вызванные экземпляры не прогревали дальше
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(os.Getenv("AWS_LAMBDA_FUNCTION_NAME")),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

package translator

import (
	"context"
	"errors"
	"time"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerTranslator размыкает цепь после серии отказов переводчика,
// чтобы не ждать таймаута на каждом запросе, пока сервис недоступен.
type BreakerTranslator struct {
	next Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator оборачивает next. maxFailures == 0 отключает размыкание.
func NewBreakerTranslator(next Translator, maxFailures uint32, openTimeout time.Duration, logger *zap.Logger) *BreakerTranslator {
	settings := gobreaker.Settings{
		Name:    "mymemory",
		Timeout: openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return maxFailures > 0 && counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		// отключившийся клиент не должен размыкать цепь
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &BreakerTranslator{next: next, cb: gobreaker.NewCircuitBreaker(settings)}
}

func (b *BreakerTranslator) Translate(ctx context.Context, text string, pair model.LangPair) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Translate(ctx, text, pair)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// State текущее состояние цепи, для логов и тестов.
func (b *BreakerTranslator) State() gobreaker.State {
	return b.cb.State()
}

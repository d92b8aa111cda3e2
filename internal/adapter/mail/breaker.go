package mail

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
	"github.com/heartmarshall/yamdb-backend/internal/metrics"
)

// ErrUnavailable is returned while the breaker rejects deliveries.
var ErrUnavailable = errors.New("mail transport unavailable")

// Sender delivers one email message.
type Sender interface {
	Send(ctx context.Context, msg domain.EmailMessage) error
}

// BreakerConfig configures BreakerSender.
type BreakerConfig struct {
	Name string
	// Failures is the number of consecutive failures that opens the breaker.
	Failures uint32
	// OpenDelay is how long the breaker stays open before probing again.
	OpenDelay time.Duration
}

// BreakerSender guards a Sender with a circuit breaker. Deliveries are never
// retried: a failure is reported to the caller immediately.
type BreakerSender struct {
	next    Sender
	cb      *gobreaker.CircuitBreaker[struct{}]
	name    string
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewBreakerSender(next Sender, cfg BreakerConfig, m *metrics.Metrics, logger *slog.Logger) *BreakerSender {
	if cfg.Name == "" {
		cfg.Name = "mail"
	}
	if cfg.Failures == 0 {
		cfg.Failures = 5
	}
	log := logger.With("sender", "breaker", "breaker", cfg.Name)

	m.CircuitBreakerState.WithLabelValues(cfg.Name).Set(stateValue(gobreaker.StateClosed))

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenDelay,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.Failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
			m.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
			m.CircuitBreakerTrans.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})

	return &BreakerSender{next: next, cb: cb, name: cfg.Name, metrics: m, log: log}
}

// Send delivers msg through the breaker.
func (s *BreakerSender) Send(ctx context.Context, msg domain.EmailMessage) error {
	_, err := s.cb.Execute(func() (struct{}, error) {
		return struct{}{}, s.next.Send(ctx, msg)
	})
	switch {
	case err == nil:
		s.metrics.MailDeliveries.WithLabelValues("sent").Inc()
		return nil
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		s.metrics.MailDeliveries.WithLabelValues("rejected").Inc()
		s.log.WarnContext(ctx, "mail delivery rejected", slog.String("to", msg.To))
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	default:
		s.metrics.MailDeliveries.WithLabelValues("failed").Inc()
		return err
	}
}

// State returns the current breaker state.
func (s *BreakerSender) State() gobreaker.State {
	return s.cb.State()
}

func stateValue(st gobreaker.State) float64 {
	switch st {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	}
	return -1
}

// Package rating maintains the derived rating of titles.
package rating

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/metrics"
)

type reviewRepo interface {
	AverageScore(ctx context.Context, titleID int64) (*float64, error)
}

type titleRepo interface {
	SetRating(ctx context.Context, id int64, rating *float64) error
}

// Trigger names the review mutation that caused a recomputation.
type Trigger string

const (
	TriggerCreate     Trigger = "create"
	TriggerUpdate     Trigger = "update"
	TriggerDelete     Trigger = "delete"
	TriggerUserDelete Trigger = "user_delete"
)

// Aggregator recomputes a title's rating as the mean score of its reviews.
// Callers run Recompute inside the transaction that changed the reviews, so
// the rating commits or rolls back together with the change.
type Aggregator struct {
	reviews reviewRepo
	titles  titleRepo
	metrics *metrics.Metrics
	log     *slog.Logger
}

func NewAggregator(logger *slog.Logger, reviews reviewRepo, titles titleRepo, m *metrics.Metrics) *Aggregator {
	return &Aggregator{
		reviews: reviews,
		titles:  titles,
		metrics: m,
		log:     logger.With("service", "rating"),
	}
}

// Recompute stores the mean review score of the title and returns it.
// A title without reviews gets a nil rating.
func (a *Aggregator) Recompute(ctx context.Context, titleID int64, trigger Trigger) (*float64, error) {
	avg, err := a.reviews.AverageScore(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("rating.Recompute average: %w", err)
	}
	if err := a.titles.SetRating(ctx, titleID, avg); err != nil {
		return nil, fmt.Errorf("rating.Recompute store: %w", err)
	}

	a.metrics.RatingRecomputes.WithLabelValues(string(trigger)).Inc()
	a.log.DebugContext(ctx, "rating recomputed",
		slog.Int64("title_id", titleID),
		slog.String("trigger", string(trigger)),
		slog.Any("rating", avg),
	)
	return avg, nil
}

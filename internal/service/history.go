package service

import (
	"context"
	"errors"
	"time"

	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
)

type HistoryService struct {
	broadcastRepo repository.BroadcastRepo
}

func NewHistoryService(broadcastRepo repository.BroadcastRepo) *HistoryService {
	return &HistoryService{broadcastRepo: broadcastRepo}
}

// ErrInvalidTimeRange is returned when From is after To.
var ErrInvalidTimeRange = errors.New("invalid time range: 'from' must be <= 'to'")

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func (s *HistoryService) List(ctx context.Context, f HistoryFilter) ([]models.Broadcast, error) {
	from := normalizeToUTC(f.From)
	to := normalizeToUTC(f.To)
	if !from.IsZero() && !to.IsZero() && from.After(to) {
		return nil, ErrInvalidTimeRange
	}
	return s.broadcastRepo.List(ctx, from, to, f.Effect)
}

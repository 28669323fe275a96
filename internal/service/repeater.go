package service

import (
	"context"
	"time"

	"neopixel_controller/internal/logger"
)

type resender interface {
	Resend(ctx context.Context) (int, error)
}

// RepeaterService keeps late-joining or glitched receivers in sync by
// replaying the current record on a fixed tick.
type RepeaterService struct {
	resender resender
	log      *logger.Logger
}

func NewRepeaterService(r resender, log *logger.Logger) *RepeaterService {
	return &RepeaterService{resender: r, log: log}
}

// Run ticks at the given interval until ctx is canceled. A non-positive
// tick disables the loop.
func (s *RepeaterService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		return
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := s.resender.Resend(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.log.Warnw("resend_failed", "err", err)
				continue
			}
			if n > 0 {
				s.log.Debugw("resend_done", "peers", n)
			}
		}
	}
}

package transport

import (
	"context"
	"encoding/hex"
	"sync"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/logger"
)

// LogLink is the dry-run driver: frames are logged instead of transmitted.
type LogLink struct {
	mu     sync.Mutex
	log    *logger.Logger
	sent   int
	closed bool
}

func NewLogLink(log *logger.Logger) *LogLink {
	return &LogLink{log: log}
}

func (l *LogLink) Send(ctx context.Context, addr neopixel.PeerAddr, record []byte) error {
	frame, err := EncodeFrame(addr, record)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.sent++
	l.log.Infow("gateway_frame_dry_run", "peer", addr.String(), "frame", hex.EncodeToString(frame))
	return nil
}

// Sent returns how many frames were accepted.
func (l *LogLink) Sent() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sent
}

func (l *LogLink) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	return nil
}

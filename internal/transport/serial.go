package transport

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/config"
	"neopixel_controller/internal/logger"

	"github.com/tarm/serial"
)

// SerialLink writes gateway frames to the sender board over USB serial.
type SerialLink struct {
	mu      sync.Mutex
	port    io.WriteCloser
	name    string
	timeout time.Duration
	log     *logger.Logger
	closed  bool
	// pending is closed when an abandoned write finally returns; nil when idle.
	pending chan struct{}
}

// OpenSerial opens cfg.Port at cfg.Baud. cfg.WriteTimeout bounds each frame
// write; zero waits for ctx only.
func OpenSerial(cfg config.GatewayConfig, log *logger.Logger) (*SerialLink, error) {
	log.Infow("opening gateway serial port", "port", cfg.Port, "baud", cfg.Baud, "write_timeout", cfg.WriteTimeout)
	port, err := serial.OpenPort(&serial.Config{
		Name: cfg.Port,
		Baud: cfg.Baud,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Port, err)
	}
	return newSerialLink(port, cfg.Port, cfg.WriteTimeout, log), nil
}

func newSerialLink(port io.WriteCloser, name string, timeout time.Duration, log *logger.Logger) *SerialLink {
	return &SerialLink{port: port, name: name, timeout: timeout, log: log}
}

// Send writes one frame. Frames from concurrent callers never interleave.
// A write that outlives the timeout or ctx is abandoned and the link reports
// ErrWriteTimeout until the port accepts it.
func (l *SerialLink) Send(ctx context.Context, addr neopixel.PeerAddr, record []byte) error {
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
	if l.pending != nil {
		select {
		case <-l.pending:
			l.pending = nil
		default:
			return fmt.Errorf("%w: %s still busy with an earlier frame", ErrWriteTimeout, l.name)
		}
	}

	var (
		n    int
		werr error
		done = make(chan struct{})
	)
	go func() {
		n, werr = l.port.Write(frame)
		close(done)
	}()

	var expired <-chan time.Time
	if l.timeout > 0 {
		timer := time.NewTimer(l.timeout)
		defer timer.Stop()
		expired = timer.C
	}

	select {
	case <-done:
	case <-expired:
		l.pending = done
		l.log.Warnw("gateway_write_timeout", "port", l.name, "peer", addr.String(), "timeout", l.timeout)
		return fmt.Errorf("%w: %s after %s", ErrWriteTimeout, l.name, l.timeout)
	case <-ctx.Done():
		l.pending = done
		return ctx.Err()
	}

	if werr != nil {
		return fmt.Errorf("write %s: %w", l.name, werr)
	}
	if n != len(frame) {
		return fmt.Errorf("%w: %d of %d bytes", ErrShortWrite, n, len(frame))
	}
	l.log.Debugw("gateway_frame_sent", "peer", addr.String(), "record", fmt.Sprintf("%x", record))
	return nil
}

func (l *SerialLink) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	return l.port.Close()
}

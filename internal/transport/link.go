package transport

import (
	"context"
	"errors"
	"fmt"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/config"
	"neopixel_controller/internal/logger"
)

// FrameSize is the size of one gateway frame: peer address then the record.
const FrameSize = len(neopixel.PeerAddr{}) + neopixel.RecordSize

var (
	ErrClosed       = errors.New("link is closed")
	ErrShortWrite   = errors.New("short write to gateway")
	ErrWriteTimeout = errors.New("gateway write timed out")
)

// Link hands a serialized record to the sender board for one peer.
type Link interface {
	Send(ctx context.Context, addr neopixel.PeerAddr, record []byte) error
	Close() error
}

// EncodeFrame builds the fixed-size gateway frame. record must already be
// in wire form; it is copied through unchanged.
func EncodeFrame(addr neopixel.PeerAddr, record []byte) ([]byte, error) {
	if len(record) != neopixel.RecordSize {
		return nil, fmt.Errorf("%w: got %d", neopixel.ErrRecordSize, len(record))
	}
	frame := make([]byte, 0, FrameSize)
	frame = append(frame, addr[:]...)
	return append(frame, record...), nil
}

// DecodeFrame splits a gateway frame back into address and record.
func DecodeFrame(frame []byte) (neopixel.PeerAddr, neopixel.CommandRecord, error) {
	var addr neopixel.PeerAddr
	if len(frame) != FrameSize {
		return addr, neopixel.CommandRecord{}, fmt.Errorf("gateway frame must be %d bytes, got %d", FrameSize, len(frame))
	}
	copy(addr[:], frame[:len(addr)])
	rec, err := neopixel.DecodeCommandRecord(frame[len(addr):])
	return addr, rec, err
}

// New opens the link selected by cfg.Driver.
func New(cfg config.GatewayConfig, log *logger.Logger) (Link, error) {
	switch cfg.Driver {
	case config.DriverSerial:
		return OpenSerial(cfg, log)
	case config.DriverLog, "":
		return NewLogLink(log), nil
	default:
		return nil, fmt.Errorf("%w: got %q", config.ErrUnknownDriver, cfg.Driver)
	}
}

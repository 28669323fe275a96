package neopixel_controller

import (
	"errors"
	"fmt"
)

// Radio deployment constants shared by every sender and receiver build.
// Changing either one means rebuilding all participating firmware at once.
const (
	Channel  = 1  // wireless channel all devices listen on
	MaxPeers = 20 // capacity of the sender's peer table
)

const (
	// RecordSize is the exact on-air size of a CommandRecord.
	RecordSize = 5

	// SchemaVersion identifies the record layout below. It is not transmitted;
	// builds compare it out-of-band before mixing firmware images.
	SchemaVersion = 1
)

// Byte offsets of the record fields on the wire.
const (
	offsetEffect = iota
	offsetDisplay
	offsetHue
	offsetSaturation
	offsetValue
)

// Defaults applied by NewCommandRecord for fields the caller leaves out.
const (
	DefaultDisplay    = true
	DefaultHue        = 42
	DefaultSaturation = 255
	DefaultValue      = 255
)

// ErrRecordSize is returned when a payload is not exactly RecordSize bytes.
var ErrRecordSize = errors.New("command record must be exactly 5 bytes")

// CommandRecord is the payload broadcast to every receiver.
type CommandRecord struct {
	Effect     uint8 `json:"effect"`
	Display    bool  `json:"display"`
	Hue        uint8 `json:"hue"`
	Saturation uint8 `json:"saturation"`
	Value      uint8 `json:"value"`
}

// RecordOption overrides one defaulted field of a new record.
type RecordOption func(*CommandRecord)

func WithDisplay(display bool) RecordOption {
	return func(r *CommandRecord) { r.Display = display }
}

func WithHue(hue uint8) RecordOption {
	return func(r *CommandRecord) { r.Hue = hue }
}

func WithSaturation(saturation uint8) RecordOption {
	return func(r *CommandRecord) { r.Saturation = saturation }
}

func WithValue(value uint8) RecordOption {
	return func(r *CommandRecord) { r.Value = value }
}

// NewCommandRecord builds a record for effect with display on, hue 42 and full
// saturation/brightness, then applies opts in order.
func NewCommandRecord(effect uint8, opts ...RecordOption) CommandRecord {
	r := CommandRecord{
		Effect:     effect,
		Display:    DefaultDisplay,
		Hue:        DefaultHue,
		Saturation: DefaultSaturation,
		Value:      DefaultValue,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// AppendBinary appends the 5-byte wire form of r to dst.
func (r CommandRecord) AppendBinary(dst []byte) ([]byte, error) {
	var display byte
	if r.Display {
		display = 1
	}
	return append(dst, r.Effect, display, r.Hue, r.Saturation, r.Value), nil
}

// MarshalBinary returns the 5-byte wire form of r.
func (r CommandRecord) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, RecordSize))
}

// UnmarshalBinary decodes a wire record. Any nonzero display byte reads as true.
func (r *CommandRecord) UnmarshalBinary(data []byte) error {
	if len(data) != RecordSize {
		return fmt.Errorf("%w: got %d", ErrRecordSize, len(data))
	}
	*r = CommandRecord{
		Effect:     data[offsetEffect],
		Display:    data[offsetDisplay] != 0,
		Hue:        data[offsetHue],
		Saturation: data[offsetSaturation],
		Value:      data[offsetValue],
	}
	return nil
}

// DecodeCommandRecord is a convenience wrapper around UnmarshalBinary.
func DecodeCommandRecord(data []byte) (CommandRecord, error) {
	var r CommandRecord
	err := r.UnmarshalBinary(data)
	return r, err
}

func (r CommandRecord) String() string {
	return fmt.Sprintf("effect=%d display=%t hsv=(%d,%d,%d)", r.Effect, r.Display, r.Hue, r.Saturation, r.Value)
}

package service

import (
	"time"

	neopixel "neopixel_controller"
)

// EffectParams describes a record to broadcast. Nil fields take the record
// defaults (display on, hue 42, full saturation and value).
type EffectParams struct {
	OperatorID int // who asked; 0 when not an operator request
	Effect     uint8
	Display    *bool
	Hue        *uint8
	Saturation *uint8
	Value      *uint8
}

// Record builds the command record for p.
func (p EffectParams) Record() neopixel.CommandRecord {
	var opts []neopixel.RecordOption
	if p.Display != nil {
		opts = append(opts, neopixel.WithDisplay(*p.Display))
	}
	if p.Hue != nil {
		opts = append(opts, neopixel.WithHue(*p.Hue))
	}
	if p.Saturation != nil {
		opts = append(opts, neopixel.WithSaturation(*p.Saturation))
	}
	if p.Value != nil {
		opts = append(opts, neopixel.WithValue(*p.Value))
	}
	return neopixel.NewCommandRecord(p.Effect, opts...)
}

// HistoryFilter narrows the broadcast history.
type HistoryFilter struct {
	From   time.Time // inclusive; zero means no lower bound
	To     time.Time // inclusive; zero means no upper bound
	Effect *uint8    // nil means any effect
}

package models

import (
	"time"

	neopixel "neopixel_controller"
)

// Broadcast is one command record fanned out to the peer table.
type Broadcast struct {
	ID         string                 `json:"id"`
	SentAt     time.Time              `json:"sent_at"`
	Record     neopixel.CommandRecord `json:"record"`
	PayloadHex string                 `json:"payload_hex"` // 5-byte wire form
	Peers      int                    `json:"peers"`       // peers addressed
	Failed     []string               `json:"failed,omitempty"`
	OperatorID int                    `json:"operator_id"` // 0 when not sent by an operator
}

// Delivered is the number of peers the link accepted the record for.
func (b Broadcast) Delivered() int {
	return b.Peers - len(b.Failed)
}

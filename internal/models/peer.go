package models

import "time"

// Peer is a receiver registered with the sender.
type Peer struct {
	ID        int       `json:"id"`
	Addr      string    `json:"addr"` // aa:bb:cc:dd:ee:ff
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	AddedBy   int       `json:"added_by"` // operator ID; 0 for the seed file
}

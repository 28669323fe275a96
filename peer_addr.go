package neopixel_controller

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// PeerAddr is the 6-byte hardware address of a receiver board.
type PeerAddr [6]byte

// BroadcastAddr reaches every board on the channel; it is never a registered peer.
var BroadcastAddr = PeerAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

var ErrInvalidPeerAddr = errors.New("invalid peer address")

// ParsePeerAddr accepts "aa:bb:cc:dd:ee:ff" and "aa-bb-cc-dd-ee-ff", any case.
func ParsePeerAddr(s string) (PeerAddr, error) {
	var a PeerAddr
	hw, err := net.ParseMAC(strings.TrimSpace(s))
	if err != nil {
		return a, fmt.Errorf("%w %q: %v", ErrInvalidPeerAddr, s, err)
	}
	if len(hw) != len(a) {
		return a, fmt.Errorf("%w %q: want 6 bytes, got %d", ErrInvalidPeerAddr, s, len(hw))
	}
	copy(a[:], hw)
	return a, nil
}

func (a PeerAddr) String() string {
	return net.HardwareAddr(a[:]).String()
}

func (a PeerAddr) IsBroadcast() bool { return a == BroadcastAddr }

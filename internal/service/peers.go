package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/config"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
)

var (
	ErrPeerTableFull = fmt.Errorf("peer table full: at most %d peers", neopixel.MaxPeers)
	ErrPeerExists    = errors.New("peer already registered")
	ErrPeerNotFound  = errors.New("peer not registered")
)

type PeerService struct {
	// mu serializes the count-then-insert in Register.
	mu       sync.Mutex
	peerRepo repository.PeerRepo
}

func NewPeerService(peerRepo repository.PeerRepo) *PeerService {
	return &PeerService{peerRepo: peerRepo}
}

// Register adds a receiver on behalf of operatorID (0 for the seed file).
// The address is stored in canonical lower-case colon form so "AA-BB-..."
// and "aa:bb:..." are the same peer.
func (s *PeerService) Register(ctx context.Context, addr, name string, operatorID int) (models.Peer, error) {
	parsed, err := neopixel.ParsePeerAddr(addr)
	if err != nil {
		return models.Peer{}, err
	}
	if parsed.IsBroadcast() {
		return models.Peer{}, fmt.Errorf("%w: broadcast address cannot be registered", neopixel.ErrInvalidPeerAddr)
	}
	canonical := parsed.String()

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.peerRepo.GetByAddr(ctx, canonical)
	if err != nil {
		return models.Peer{}, err
	}
	if existing != nil {
		return models.Peer{}, fmt.Errorf("%w: %s", ErrPeerExists, canonical)
	}

	n, err := s.peerRepo.Count(ctx)
	if err != nil {
		return models.Peer{}, err
	}
	if n >= neopixel.MaxPeers {
		return models.Peer{}, ErrPeerTableFull
	}

	p := models.Peer{
		Addr:      canonical,
		Name:      strings.TrimSpace(name),
		CreatedAt: time.Now().UTC(),
		AddedBy:   operatorID,
	}
	id, err := s.peerRepo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePeer) {
			return models.Peer{}, fmt.Errorf("%w: %s", ErrPeerExists, canonical)
		}
		return models.Peer{}, err
	}
	p.ID = id
	return p, nil
}

func (s *PeerService) Remove(ctx context.Context, addr string) error {
	parsed, err := neopixel.ParsePeerAddr(addr)
	if err != nil {
		return err
	}
	ok, err := s.peerRepo.Delete(ctx, parsed.String())
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrPeerNotFound, parsed)
	}
	return nil
}

func (s *PeerService) List(ctx context.Context) ([]models.Peer, error) {
	return s.peerRepo.List(ctx)
}

// Seed registers entries from the peers file, skipping ones already known.
// It returns how many were added.
func (s *PeerService) Seed(ctx context.Context, entries []config.PeerEntry) (int, error) {
	added := 0
	for _, e := range entries {
		if _, err := s.Register(ctx, e.Addr, e.Name, 0); err != nil {
			if errors.Is(err, ErrPeerExists) {
				continue
			}
			return added, fmt.Errorf("seed peer %q: %w", e.Addr, err)
		}
		added++
	}
	return added, nil
}

package service

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/logger"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
	"neopixel_controller/internal/transport"

	"github.com/google/uuid"
)

var ErrNoPeers = errors.New("no peers registered")

type BroadcastService struct {
	peerRepo      repository.PeerRepo
	broadcastRepo repository.BroadcastRepo
	link          transport.Link
	log           *logger.Logger
}

func NewBroadcastService(peerRepo repository.PeerRepo, broadcastRepo repository.BroadcastRepo, link transport.Link, log *logger.Logger) *BroadcastService {
	return &BroadcastService{peerRepo: peerRepo, broadcastRepo: broadcastRepo, link: link, log: log}
}

// Broadcast builds the record for p, sends the same 5 bytes to every peer and
// logs the result. A failing peer does not stop the fan-out; it is listed in
// Broadcast.Failed.
func (s *BroadcastService) Broadcast(ctx context.Context, p EffectParams) (models.Broadcast, error) {
	rec := p.Record()
	b, err := s.fanOut(ctx, rec)
	if err != nil {
		return models.Broadcast{}, err
	}
	b.OperatorID = p.OperatorID
	if err := s.broadcastRepo.Append(ctx, b); err != nil {
		return models.Broadcast{}, fmt.Errorf("store broadcast: %w", err)
	}
	return b, nil
}

// Resend repeats the latest broadcast record to the current peer table
// without adding a history entry. It returns the number of peers reached;
// with no history or no peers it does nothing.
func (s *BroadcastService) Resend(ctx context.Context) (int, error) {
	last, err := s.broadcastRepo.Latest(ctx)
	if err != nil {
		return 0, err
	}
	if last.ID == "" {
		return 0, nil
	}
	b, err := s.fanOut(ctx, last.Record)
	if err != nil {
		if errors.Is(err, ErrNoPeers) {
			return 0, nil
		}
		return 0, err
	}
	return b.Delivered(), nil
}

func (s *BroadcastService) fanOut(ctx context.Context, rec neopixel.CommandRecord) (models.Broadcast, error) {
	peers, err := s.peerRepo.List(ctx)
	if err != nil {
		return models.Broadcast{}, err
	}
	if len(peers) == 0 {
		return models.Broadcast{}, ErrNoPeers
	}

	payload, err := rec.MarshalBinary()
	if err != nil {
		return models.Broadcast{}, err
	}

	var failed []string
	for _, p := range peers {
		addr, err := neopixel.ParsePeerAddr(p.Addr)
		if err == nil {
			err = s.link.Send(ctx, addr, payload)
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return models.Broadcast{}, ctxErr
			}
			s.log.Warnw("peer_send_failed", "peer", p.Addr, "err", err)
			failed = append(failed, p.Addr)
		}
	}

	return models.Broadcast{
		ID:         uuid.NewString(),
		SentAt:     time.Now().UTC(),
		Record:     rec,
		PayloadHex: hex.EncodeToString(payload),
		Peers:      len(peers),
		Failed:     failed,
	}, nil
}

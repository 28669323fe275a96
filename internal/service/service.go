package service

import (
	"context"
	"time"

	"neopixel_controller/internal/config"
	"neopixel_controller/internal/logger"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
	"neopixel_controller/internal/transport"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Peers manages the sender's peer table (at most MaxPeers entries).
type Peers interface {
	Register(ctx context.Context, addr, name string, operatorID int) (models.Peer, error)
	Remove(ctx context.Context, addr string) error
	List(ctx context.Context) ([]models.Peer, error)
	Seed(ctx context.Context, entries []config.PeerEntry) (int, error)
}

// Broadcaster fans a command record out to every registered peer.
type Broadcaster interface {
	Broadcast(ctx context.Context, p EffectParams) (models.Broadcast, error)
	Resend(ctx context.Context) (int, error)
}

// Monitoring exposes the record receivers should currently be showing.
type Monitoring interface {
	GetCurrent(ctx context.Context) (models.Broadcast, error)
}

// History exposes the append-only broadcast log.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]models.Broadcast, error)
}

// Repeater periodically resends the current record until ctx is canceled.
type Repeater interface {
	Run(ctx context.Context, tick time.Duration)
}

type Service struct {
	Peers
	Broadcaster
	Monitoring
	History
	Repeater
	Authorization
}

type Options struct {
	SigningKey string
	TokenTTL   time.Duration
}

func NewService(repos *repository.Repository, link transport.Link, log *logger.Logger, opts Options) *Service {
	broadcaster := NewBroadcastService(repos.PeerRepo, repos.BroadcastRepo, link, log)
	return &Service{
		Peers:         NewPeerService(repos.PeerRepo),
		Broadcaster:   broadcaster,
		Monitoring:    NewMonitoringService(repos.BroadcastRepo),
		History:       NewHistoryService(repos.BroadcastRepo),
		Repeater:      NewRepeaterService(broadcaster, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}

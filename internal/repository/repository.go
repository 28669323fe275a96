package repository

import (
	"context"
	"database/sql"
	"time"

	"neopixel_controller/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.Operator, error)
}

type PeerRepo interface {
	Create(ctx context.Context, p models.Peer) (int, error)
	GetByAddr(ctx context.Context, addr string) (*models.Peer, error)
	List(ctx context.Context) ([]models.Peer, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, addr string) (bool, error)
}

type BroadcastRepo interface {
	Append(ctx context.Context, b models.Broadcast) error
	Latest(ctx context.Context) (models.Broadcast, error)
	List(ctx context.Context, from, to time.Time, effect *uint8) ([]models.Broadcast, error)
}

type Repository struct {
	PeerRepo      PeerRepo
	BroadcastRepo BroadcastRepo
	Auth          Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		PeerRepo:      NewPeerSQLite(db),
		BroadcastRepo: NewBroadcastSQLite(db),
		Auth:          NewOperatorRepository(db),
	}
}

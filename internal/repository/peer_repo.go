package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"neopixel_controller/internal/models"
)

// ErrDuplicatePeer is returned by Create when the address is already stored.
var ErrDuplicatePeer = errors.New("peer address already registered")

type PeerSQLite struct {
	db *sql.DB
}

func NewPeerSQLite(db *sql.DB) *PeerSQLite {
	return &PeerSQLite{db: db}
}

var _ PeerRepo = (*PeerSQLite)(nil)

const (
	insertPeerSQL  = `INSERT INTO peers (addr, name, created_at, added_by) VALUES (?, ?, ?, ?)`
	selectPeerSQL  = `SELECT id, addr, name, created_at, added_by FROM peers WHERE addr = ?`
	selectPeersSQL = `SELECT id, addr, name, created_at, added_by FROM peers ORDER BY id ASC`
	countPeersSQL  = `SELECT COUNT(*) FROM peers`
	deletePeerSQL  = `DELETE FROM peers WHERE addr = ?`
)

// Create inserts a peer and returns its ID. CreatedAt defaults to now (UTC).
func (r *PeerSQLite) Create(ctx context.Context, p models.Peer) (int, error) {
	ts := p.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertPeerSQL, p.Addr, p.Name, ts, p.AddedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert peer %q: %w", p.Addr, ErrDuplicatePeer)
		}
		return 0, fmt.Errorf("insert peer %q: %w", p.Addr, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for peer %q: %w", p.Addr, err)
	}
	return int(id), nil
}

// GetByAddr returns (nil, nil) if the address is not registered.
func (r *PeerSQLite) GetByAddr(ctx context.Context, addr string) (*models.Peer, error) {
	var p models.Peer
	err := r.db.QueryRowContext(ctx, selectPeerSQL, addr).Scan(&p.ID, &p.Addr, &p.Name, &p.CreatedAt, &p.AddedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select peer %q: %w", addr, err)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// List returns peers in registration order.
func (r *PeerSQLite) List(ctx context.Context) ([]models.Peer, error) {
	rows, err := r.db.QueryContext(ctx, selectPeersSQL)
	if err != nil {
		return nil, fmt.Errorf("select peers: %w", err)
	}
	defer rows.Close()

	out := make([]models.Peer, 0, 8)
	for rows.Next() {
		var p models.Peer
		if err := rows.Scan(&p.ID, &p.Addr, &p.Name, &p.CreatedAt, &p.AddedBy); err != nil {
			return nil, err
		}
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PeerSQLite) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countPeersSQL).Scan(&n); err != nil {
		return 0, fmt.Errorf("count peers: %w", err)
	}
	return n, nil
}

// Delete reports whether a row was removed.
func (r *PeerSQLite) Delete(ctx context.Context, addr string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deletePeerSQL, addr)
	if err != nil {
		return false, fmt.Errorf("delete peer %q: %w", addr, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for peer %q: %w", addr, err)
	}
	return n > 0, nil
}

package repository

import (
	"context"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/models"

	"github.com/google/uuid"
)

type BroadcastSQLite struct {
	db *sql.DB
}

func NewBroadcastSQLite(db *sql.DB) *BroadcastSQLite { return &BroadcastSQLite{db: db} }

var _ BroadcastRepo = (*BroadcastSQLite)(nil)

const (
	insertBroadcastSQL = `
		INSERT INTO broadcasts (id, sent_at, effect, payload, peers, failed, operator_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	selectBroadcastColumns = `SELECT id, sent_at, payload, peers, failed, operator_id FROM broadcasts`
	selectLatestSQL        = selectBroadcastColumns + ` ORDER BY sent_at DESC LIMIT 1`

	// SentAtLayout is the stored form of sent_at: UTC with a fixed nine-digit
	// fraction, so lexical order matches time order.
	SentAtLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

func formatSentAt(t time.Time) string {
	return t.UTC().Format(SentAtLayout)
}

// Append stores b. Empty ID and zero SentAt are filled in.
func (r *BroadcastSQLite) Append(ctx context.Context, b models.Broadcast) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.SentAt.IsZero() {
		b.SentAt = time.Now().UTC()
	} else {
		b.SentAt = b.SentAt.UTC()
	}

	payload, err := b.Record.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}

	var failedPtr *string
	if len(b.Failed) > 0 {
		raw, err := json.Marshal(b.Failed)
		if err != nil {
			return fmt.Errorf("marshal failed peers: %w", err)
		}
		s := string(raw)
		failedPtr = &s
	}

	_, err = r.db.ExecContext(ctx, insertBroadcastSQL,
		b.ID,
		formatSentAt(b.SentAt),
		int(b.Record.Effect),
		payload,
		b.Peers,
		failedPtr,
		b.OperatorID,
	)
	return err
}

// Latest returns the most recent broadcast, or a zero value (empty ID) if none.
func (r *BroadcastSQLite) Latest(ctx context.Context) (models.Broadcast, error) {
	b, err := scanBroadcast(r.db.QueryRowContext(ctx, selectLatestSQL))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Broadcast{}, nil
		}
		return models.Broadcast{}, err
	}
	return b, nil
}

// List returns broadcasts within [from, to] (zero bounds are open), optionally
// restricted to one effect, oldest first.
func (r *BroadcastSQLite) List(ctx context.Context, from, to time.Time, effect *uint8) ([]models.Broadcast, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "sent_at >= ?")
		args = append(args, formatSentAt(from))
	}
	if !to.IsZero() {
		conds = append(conds, "sent_at <= ?")
		args = append(args, formatSentAt(to))
	}
	if effect != nil {
		conds = append(conds, "effect = ?")
		args = append(args, int(*effect))
	}

	q := selectBroadcastColumns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY sent_at ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Broadcast, 0, 64)
	for rows.Next() {
		b, err := scanBroadcast(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBroadcast(row rowScanner) (models.Broadcast, error) {
	var (
		b         models.Broadcast
		sentAt    string
		payload   []byte
		failedStr sql.NullString
	)
	if err := row.Scan(&b.ID, &sentAt, &payload, &b.Peers, &failedStr, &b.OperatorID); err != nil {
		return models.Broadcast{}, err
	}
	ts, err := time.Parse(SentAtLayout, sentAt)
	if err != nil {
		return models.Broadcast{}, fmt.Errorf("broadcast %s: parse sent_at: %w", b.ID, err)
	}
	b.SentAt = ts.UTC()
	rec, err := neopixel.DecodeCommandRecord(payload)
	if err != nil {
		return models.Broadcast{}, fmt.Errorf("broadcast %s: %w", b.ID, err)
	}
	b.Record = rec
	b.PayloadHex = hex.EncodeToString(payload)

	if failedStr.Valid && failedStr.String != "" {
		if err := json.Unmarshal([]byte(failedStr.String), &b.Failed); err != nil {
			return models.Broadcast{}, fmt.Errorf("broadcast %s: decode failed peers: %w", b.ID, err)
		}
	}
	return b, nil
}

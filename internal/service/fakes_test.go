package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
)

// fakePeerRepo is an in-memory repository.PeerRepo.
type fakePeerRepo struct {
	mu       sync.Mutex
	peers    map[string]models.Peer
	nextID   int
	listErr  error
	countErr error
}

func newFakePeerRepo(addrs ...string) *fakePeerRepo {
	r := &fakePeerRepo{peers: map[string]models.Peer{}}
	for _, a := range addrs {
		_, _ = r.Create(context.Background(), models.Peer{Addr: a})
	}
	return r
}

func (r *fakePeerRepo) Create(ctx context.Context, p models.Peer) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.peers[p.Addr]; ok {
		return 0, repository.ErrDuplicatePeer
	}
	r.nextID++
	p.ID = r.nextID
	r.peers[p.Addr] = p
	return p.ID, nil
}

func (r *fakePeerRepo) GetByAddr(ctx context.Context, addr string) (*models.Peer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.peers[addr]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *fakePeerRepo) List(ctx context.Context) ([]models.Peer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]models.Peer, 0, len(r.peers))
	for _, p := range r.peers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakePeerRepo) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return len(r.peers), nil
}

func (r *fakePeerRepo) Delete(ctx context.Context, addr string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.peers[addr]
	delete(r.peers, addr)
	return ok, nil
}

// fakeBroadcastRepo keeps broadcasts in append order.
type fakeBroadcastRepo struct {
	mu        sync.Mutex
	items     []models.Broadcast
	appendErr error
	latestErr error

	lastFrom, lastTo time.Time
	lastEffect       *uint8
}

func (r *fakeBroadcastRepo) Append(ctx context.Context, b models.Broadcast) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.appendErr != nil {
		return r.appendErr
	}
	r.items = append(r.items, b)
	return nil
}

func (r *fakeBroadcastRepo) Latest(ctx context.Context) (models.Broadcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.latestErr != nil {
		return models.Broadcast{}, r.latestErr
	}
	if len(r.items) == 0 {
		return models.Broadcast{}, nil
	}
	return r.items[len(r.items)-1], nil
}

func (r *fakeBroadcastRepo) List(ctx context.Context, from, to time.Time, effect *uint8) ([]models.Broadcast, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFrom, r.lastTo, r.lastEffect = from, to, effect
	var out []models.Broadcast
	for _, b := range r.items {
		if effect == nil || b.Record.Effect == *effect {
			out = append(out, b)
		}
	}
	return out, nil
}

type sentFrame struct {
	addr   neopixel.PeerAddr
	record []byte
}

// fakeLink records frames and fails for addresses listed in failFor.
type fakeLink struct {
	mu      sync.Mutex
	sent    []sentFrame
	failFor map[neopixel.PeerAddr]bool
}

func (l *fakeLink) Send(ctx context.Context, addr neopixel.PeerAddr, record []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.failFor[addr] {
		return errors.New("no ack")
	}
	l.sent = append(l.sent, sentFrame{addr: addr, record: append([]byte(nil), record...)})
	return nil
}

func (l *fakeLink) Close() error { return nil }

func (l *fakeLink) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.sent)
}

func mustAddr(s string) neopixel.PeerAddr {
	a, err := neopixel.ParsePeerAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}

func u8(v uint8) *uint8 { return &v }

func boolp(v bool) *bool { return &v }

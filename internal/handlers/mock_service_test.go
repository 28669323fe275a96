package handlers

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"neopixel_controller/internal/config"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

// mockAuth accepts any bearer token as operator parseID. Auth flows are
// tested against the real service in auth_test.go.
type mockAuth struct {
	parseID  int
	parseErr error
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	return 0, errors.New("not implemented")
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	return "", errors.New("not implemented")
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	return m.parseID, m.parseErr
}

type mockPeers struct {
	peers       []models.Peer
	registerErr error
	removeErr   error
	listErr     error

	lastRegisterAddr     string
	lastRegisterName     string
	lastRegisterOperator int
	lastRemoveAddr       string
}

func (m *mockPeers) Register(ctx context.Context, addr, name string, operatorID int) (models.Peer, error) {
	m.lastRegisterAddr = addr
	m.lastRegisterName = name
	m.lastRegisterOperator = operatorID
	if m.registerErr != nil {
		return models.Peer{}, m.registerErr
	}
	p := models.Peer{ID: len(m.peers) + 1, Addr: addr, Name: name, CreatedAt: time.Now().UTC(), AddedBy: operatorID}
	m.peers = append(m.peers, p)
	return p, nil
}
func (m *mockPeers) Remove(ctx context.Context, addr string) error {
	m.lastRemoveAddr = addr
	return m.removeErr
}
func (m *mockPeers) List(ctx context.Context) ([]models.Peer, error) {
	return m.peers, m.listErr
}
func (m *mockPeers) Seed(ctx context.Context, entries []config.PeerEntry) (int, error) {
	return 0, nil
}

type mockBroadcaster struct {
	err        error
	lastParams service.EffectParams
	calls      int
}

func (m *mockBroadcaster) Broadcast(ctx context.Context, p service.EffectParams) (models.Broadcast, error) {
	m.calls++
	m.lastParams = p
	if m.err != nil {
		return models.Broadcast{}, m.err
	}
	rec := p.Record()
	wire, _ := rec.MarshalBinary()
	return models.Broadcast{ID: "b-test", SentAt: time.Now().UTC(), Record: rec, PayloadHex: hex.EncodeToString(wire), Peers: 2, OperatorID: p.OperatorID}, nil
}
func (m *mockBroadcaster) Resend(ctx context.Context) (int, error) {
	return 0, nil
}

type mockMonitoring struct {
	current models.Broadcast
	err     error
}

func (m *mockMonitoring) GetCurrent(ctx context.Context) (models.Broadcast, error) {
	return m.current, m.err
}

type mockHistory struct {
	resp   []models.Broadcast
	err    error
	last   service.HistoryFilter
	called bool
}

func (m *mockHistory) List(ctx context.Context, f service.HistoryFilter) ([]models.Broadcast, error) {
	m.called = true
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// doJSON sends a request authorized with the token mockAuth accepts.
func doJSON(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	return doAs(r, "valid", method, target, body)
}

// doAs sends a request with an optional JSON body and bearer token.
func doAs(r http.Handler, token, method, target, body string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

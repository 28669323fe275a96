package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
	"neopixel_controller/internal/service"
)

const testKey = "handlers-test-key"

// operatorStore is an in-memory repository.Authorization.
type operatorStore struct {
	mu        sync.Mutex
	ops       map[string]models.Operator
	createErr error
}

func newOperatorStore() *operatorStore {
	return &operatorStore{ops: map[string]models.Operator{}}
}

func (s *operatorStore) Create(username, hash string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return 0, s.createErr
	}
	if _, ok := s.ops[username]; ok {
		return 0, repository.ErrDuplicateOperator
	}
	o := models.Operator{ID: len(s.ops) + 1, Username: username, PasswordHash: hash}
	s.ops[username] = o
	return o.ID, nil
}

func (s *operatorStore) GetByUsername(username string) (*models.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o, ok := s.ops[username]; ok {
		return &o, nil
	}
	return nil, nil
}

func signUpAndIn(t *testing.T, r http.Handler, user, pass string) (int, string) {
	t.Helper()
	body := `{"username":"` + user + `","password":"` + pass + `"}`

	w := doAs(r, "", http.MethodPost, "/auth/sign-up", body)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-up %s: status=%d body=%s", user, w.Code, w.Body.String())
	}
	var up struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &up); err != nil || up.ID == 0 {
		t.Fatalf("sign-up %s: body=%s err=%v", user, w.Body.String(), err)
	}

	w = doAs(r, "", http.MethodPost, "/auth/sign-in", body)
	if w.Code != http.StatusOK {
		t.Fatalf("sign-in %s: status=%d body=%s", user, w.Code, w.Body.String())
	}
	var in struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &in); err != nil || in.Token == "" {
		t.Fatalf("sign-in %s: body=%s err=%v", user, w.Body.String(), err)
	}
	return up.ID, in.Token
}

func TestAuthFlow_OperatorIsRecordedOnBroadcastAndPeer(t *testing.T) {
	b := &mockBroadcaster{}
	peers := &mockPeers{}
	r := newTestRouter(&service.Service{
		Authorization: service.NewAuthService(newOperatorStore(), testKey, time.Hour),
		Broadcaster:   b,
		Peers:         peers,
	})

	aliceID, aliceTok := signUpAndIn(t, r, "alice", "s3cr3t")
	bobID, bobTok := signUpAndIn(t, r, "bob", "hunter2")
	if aliceID == bobID {
		t.Fatalf("operators share id %d", aliceID)
	}

	w := doAs(r, aliceTok, http.MethodPost, "/api/v1/effects", `{"effect":3}`)
	if w.Code != http.StatusOK {
		t.Fatalf("broadcast: status=%d body=%s", w.Code, w.Body.String())
	}
	if b.lastParams.OperatorID != aliceID {
		t.Fatalf("broadcast attributed to %d, want %d", b.lastParams.OperatorID, aliceID)
	}
	var sent models.Broadcast
	_ = json.Unmarshal(w.Body.Bytes(), &sent)
	if sent.OperatorID != aliceID {
		t.Fatalf("response operator_id=%d, want %d", sent.OperatorID, aliceID)
	}

	w = doAs(r, bobTok, http.MethodPost, "/api/v1/peers", `{"addr":"24:6f:28:aa:bb:01"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status=%d body=%s", w.Code, w.Body.String())
	}
	if peers.lastRegisterOperator != bobID {
		t.Fatalf("peer added by %d, want %d", peers.lastRegisterOperator, bobID)
	}

	if w := doAs(r, "", http.MethodPost, "/api/v1/effects", `{"effect":3}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous broadcast: status=%d", w.Code)
	}
	if b.calls != 1 {
		t.Fatalf("broadcaster called %d times, want 1", b.calls)
	}
}

func TestAuthFlow_SignUpErrors(t *testing.T) {
	store := newOperatorStore()
	r := newTestRouter(&service.Service{Authorization: service.NewAuthService(store, testKey, time.Hour)})
	signUpAndIn(t, r, "alice", "s3cr3t")

	cases := []struct {
		name string
		body string
		code int
	}{
		{"taken", `{"username":"alice","password":"other"}`, http.StatusConflict},
		{"taken with padding", `{"username":" alice ","password":"other"}`, http.StatusConflict},
		{"blank username", `{"username":"   ","password":"pw"}`, http.StatusBadRequest},
		{"missing password", `{"username":"carol"}`, http.StatusBadRequest},
		{"wrong type", `{"username":1,"password":"pw"}`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if w := doAs(r, "", http.MethodPost, "/auth/sign-up", tc.body); w.Code != tc.code {
				t.Fatalf("status=%d body=%s, want %d", w.Code, w.Body.String(), tc.code)
			}
		})
	}

	store.createErr = errors.New("database is locked")
	w := doAs(r, "", http.MethodPost, "/auth/sign-up", `{"username":"dave","password":"pw"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("store failure: status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAuthFlow_SignInRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: service.NewAuthService(newOperatorStore(), testKey, time.Hour)})
	signUpAndIn(t, r, "alice", "s3cr3t")

	for _, body := range []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"mallory","password":"s3cr3t"}`,
	} {
		w := doAs(r, "", http.MethodPost, "/auth/sign-in", body)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status=%d", body, w.Code)
		}
		var out struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &out)
		if out.Error != errInvalidCredentials {
			t.Fatalf("%s: error=%q", body, out.Error)
		}
	}
}

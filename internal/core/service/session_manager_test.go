package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/core/ports"
	"github.com/edusync/schoolclient/internal/infrastructure/keystore"
	"github.com/edusync/schoolclient/internal/wire"
)

func loginStub(resp wire.Record, err error) *stubGateway {
	return &stubGateway{postResp: resp, postErr: err}
}

func TestSessionManager_Login_Success(t *testing.T) {
	gw := loginStub(wire.Record{
		"token": "t1",
		"user": map[string]any{
			"_id":   "9",
			"nome":  "Ana",
			"email": "professor@escola.com",
			"role":  "teacher",
		},
	}, nil)
	keys := keystore.NewMemory()
	m := NewSessionManager(gw, keys, zerolog.Nop())

	if !m.Login(context.Background(), "professor@escola.com", "x") {
		t.Fatalf("login should succeed")
	}
	if gw.lastPath != "/api/auth/login" {
		t.Fatalf("unexpected path %q", gw.lastPath)
	}
	if gw.lastBody["email"] != "professor@escola.com" || gw.lastBody["senha"] != "x" {
		t.Fatalf("credentials payload wrong: %v", gw.lastBody)
	}

	if m.State() != domain.StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", m.State())
	}
	u, ok := m.Current()
	if !ok {
		t.Fatalf("no current user")
	}
	want := domain.User{ID: "9", Name: "Ana", Email: "professor@escola.com", Role: domain.RoleProfessor}
	if u != want {
		t.Fatalf("want %+v, got %+v", want, u)
	}

	token, ok, _ := keys.Get(ports.TokenKey)
	if !ok || token != "t1" {
		t.Fatalf("persisted token wrong: %q", token)
	}
	if _, ok, _ := keys.Get(ports.UserKey); !ok {
		t.Fatalf("user not persisted")
	}
}

func TestSessionManager_Login_FailureLeavesSessionUnchanged(t *testing.T) {
	gw := loginStub(nil, errors.New("network down"))
	m := NewSessionManager(gw, keystore.NewMemory(), zerolog.Nop())

	if m.Login(context.Background(), "a@b.com", "x") {
		t.Fatalf("login should fail, not throw")
	}
	if m.State() != domain.StateAnonymous {
		t.Fatalf("expected anonymous, got %s", m.State())
	}
}

func TestSessionManager_Login_MalformedResponse(t *testing.T) {
	cases := []wire.Record{
		{"user": map[string]any{"_id": "9"}},      // no token
		{"token": "t1"},                           // no user
		{"token": "t1", "user": map[string]any{}}, // user without id
		{"token": "t1", "user": "not-an-object"},  // wrong shape
	}
	for i, resp := range cases {
		m := NewSessionManager(loginStub(resp, nil), keystore.NewMemory(), zerolog.Nop())
		if m.Login(context.Background(), "a@b.com", "x") {
			t.Fatalf("case %d: malformed response should fail login", i)
		}
	}
}

func TestSessionManager_RestoreFromPersistedState(t *testing.T) {
	keys := keystore.NewMemory()
	_ = keys.Set(ports.TokenKey, "t1")
	_ = keys.Set(ports.UserKey, `{"id":"9","name":"Ana","email":"a@e.com","role":"professor"}`)

	m := NewSessionManager(&stubGateway{}, keys, zerolog.Nop())
	m.Restore()

	if m.State() != domain.StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", m.State())
	}
	u, _ := m.Current()
	if u.ID != "9" || u.Role != domain.RoleProfessor {
		t.Fatalf("restored user wrong: %+v", u)
	}
}

func TestSessionManager_Restore_MissingOrCorruptIsAnonymous(t *testing.T) {
	// Nothing persisted.
	m := NewSessionManager(&stubGateway{}, keystore.NewMemory(), zerolog.Nop())
	m.Restore()
	if m.State() != domain.StateAnonymous {
		t.Fatalf("expected anonymous, got %s", m.State())
	}

	// Token without user.
	keys := keystore.NewMemory()
	_ = keys.Set(ports.TokenKey, "t1")
	m = NewSessionManager(&stubGateway{}, keys, zerolog.Nop())
	m.Restore()
	if m.State() != domain.StateAnonymous {
		t.Fatalf("token alone must not authenticate")
	}

	// Unparsable user is "no session", not an error.
	_ = keys.Set(ports.UserKey, "{broken json")
	m = NewSessionManager(&stubGateway{}, keys, zerolog.Nop())
	m.Restore()
	if m.State() != domain.StateAnonymous {
		t.Fatalf("corrupt user must restore to anonymous")
	}
}

func TestSessionManager_Logout_Idempotent(t *testing.T) {
	keys := keystore.NewMemory()
	_ = keys.Set(ports.TokenKey, "t1")
	_ = keys.Set(ports.UserKey, `{"id":"9"}`)

	m := NewSessionManager(&stubGateway{}, keys, zerolog.Nop())
	m.Restore()

	m.Logout()
	m.Logout() // second call is a no-op

	if _, ok, _ := keys.Get(ports.TokenKey); ok {
		t.Fatalf("token still persisted")
	}
	if _, ok, _ := keys.Get(ports.UserKey); ok {
		t.Fatalf("user still persisted")
	}

	m.Restore()
	if m.State() != domain.StateAnonymous {
		t.Fatalf("restore after logout must be anonymous")
	}
}

func TestSessionManager_EvictDropsSession(t *testing.T) {
	keys := keystore.NewMemory()
	gw := loginStub(wire.Record{
		"token": "t1",
		"user":  map[string]any{"_id": "9", "nome": "Ana", "role": "teacher"},
	}, nil)
	m := NewSessionManager(gw, keys, zerolog.Nop())
	if !m.Login(context.Background(), "a@e.com", "x") {
		t.Fatalf("seed login failed")
	}

	m.Evict() // what the transport calls on any 401

	if m.State() != domain.StateAnonymous {
		t.Fatalf("expected anonymous after eviction")
	}
	if _, ok := m.Current(); ok {
		t.Fatalf("principal survived eviction")
	}
	if _, ok, _ := keys.Get(ports.TokenKey); ok {
		t.Fatalf("token survived eviction")
	}
}

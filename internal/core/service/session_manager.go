package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/edusync/schoolclient/internal/core/domain"
	"github.com/edusync/schoolclient/internal/core/ports"
	"github.com/edusync/schoolclient/internal/wire"
)

const loginPath = "/api/auth/login"

// SessionManager owns the authenticated principal and the persisted
// token/user pair. The transport reads the token from the same key store on
// each outbound call and reports a 401 by calling Evict.
type SessionManager struct {
	gw   ports.Gateway
	keys ports.KeyStore
	log  zerolog.Logger

	mu    sync.RWMutex
	state domain.SessionState
	user  *domain.User
}

func NewSessionManager(gw ports.Gateway, keys ports.KeyStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{
		gw:    gw,
		keys:  keys,
		log:   log,
		state: domain.StateAnonymous,
	}
}

// Restore rebuilds the session from persisted storage at process start. A
// missing or unparsable entry means no session, never an error: the manager
// simply stays anonymous.
func (m *SessionManager) Restore() {
	m.setState(domain.StateRestoring, nil)

	token, okT, errT := m.keys.Get(ports.TokenKey)
	rawUser, okU, errU := m.keys.Get(ports.UserKey)
	if errT != nil || errU != nil {
		m.log.Warn().AnErr("token_err", errT).AnErr("user_err", errU).Msg("session restore failed")
		m.setState(domain.StateAnonymous, nil)
		return
	}
	if !okT || token == "" || !okU {
		m.setState(domain.StateAnonymous, nil)
		return
	}

	var u domain.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		m.log.Warn().Err(err).Msg("persisted user unparsable, treating as no session")
		m.setState(domain.StateAnonymous, nil)
		return
	}

	m.setState(domain.StateAuthenticated, &u)
	m.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("session restored")
}

// Login authenticates against the service. On success it persists the token
// and the normalized user and returns true. It never returns an error:
// network faults, rejected credentials, and malformed responses all log and
// return false, leaving the current session unchanged.
func (m *SessionManager) Login(ctx context.Context, email, password string) bool {
	resp, err := m.gw.Post(ctx, loginPath, wire.Record{"email": email, "senha": password})
	if err != nil {
		m.log.Warn().Err(err).Msg("login rejected")
		return false
	}

	token, _ := resp["token"].(string)
	rawUser, ok := resp["user"].(map[string]any)
	if token == "" || !ok {
		m.log.Warn().Msg("login response missing token or user")
		return false
	}

	u, err := wire.UserFromWire(wire.Record(rawUser))
	if err != nil {
		m.log.Warn().Err(err).Msg("login response user unmappable")
		return false
	}

	buf, err := json.Marshal(u)
	if err != nil {
		return false
	}
	if err := m.keys.Set(ports.TokenKey, token); err != nil {
		m.log.Error().Err(err).Msg("persisting token failed")
		return false
	}
	if err := m.keys.Set(ports.UserKey, string(buf)); err != nil {
		m.log.Error().Err(err).Msg("persisting user failed")
		return false
	}

	m.setState(domain.StateAuthenticated, &u)
	m.log.Info().Str("user_id", u.ID).Str("role", u.Role).Msg("logged in")
	return true
}

// Logout clears the persisted pair and returns to anonymous. Idempotent.
func (m *SessionManager) Logout() {
	m.Evict()
	m.log.Info().Msg("logged out")
}

// Evict drops the session unconditionally. The transport calls this when any
// response comes back 401, regardless of which store triggered the request.
// Clearing an already-clear store is a no-op.
func (m *SessionManager) Evict() {
	if err := m.keys.Delete(ports.TokenKey); err != nil {
		m.log.Error().Err(err).Msg("clearing token failed")
	}
	if err := m.keys.Delete(ports.UserKey); err != nil {
		m.log.Error().Err(err).Msg("clearing user failed")
	}
	m.setState(domain.StateAnonymous, nil)
}

// Current returns the authenticated principal, if any.
func (m *SessionManager) Current() (domain.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.user == nil {
		return domain.User{}, false
	}
	return *m.user, true
}

// State reports the session lifecycle state.
func (m *SessionManager) State() domain.SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *SessionManager) setState(s domain.SessionState, u *domain.User) {
	m.mu.Lock()
	m.state = s
	m.user = u
	m.mu.Unlock()
}

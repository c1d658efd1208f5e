package server

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const adminCookieName = "admin_session"

const adminSessionTTL = 7 * 24 * time.Hour

var (
	errAdminDisabled    = errors.New("admin access is not configured")
	errBadAdminPassword = errors.New("invalid credentials")
)

// adminAuth verifies the operator password against a bcrypt hash from
// the environment and tracks cookie sessions in memory. Sessions do not
// survive a restart, which is fine for an operator console.
type adminAuth struct {
	passwordHash string

	mu       sync.Mutex
	sessions map[string]time.Time
}

func newAdminAuth(passwordHash string) *adminAuth {
	return &adminAuth{
		passwordHash: passwordHash,
		sessions:     make(map[string]time.Time),
	}
}

// login checks the password and returns a new session ID.
func (a *adminAuth) login(password string) (string, error) {
	if a.passwordHash == "" {
		return "", errAdminDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
		return "", errBadAdminPassword
	}

	id := newID()
	a.mu.Lock()
	a.sessions[id] = time.Now().Add(adminSessionTTL)
	a.mu.Unlock()
	return id, nil
}

// valid reports whether the session exists and has not expired.
func (a *adminAuth) valid(sessionID string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	expires, ok := a.sessions[sessionID]
	if !ok {
		return false
	}
	if time.Now().After(expires) {
		delete(a.sessions, sessionID)
		return false
	}
	return true
}

func (a *adminAuth) logout(sessionID string) {
	a.mu.Lock()
	delete(a.sessions, sessionID)
	a.mu.Unlock()
}

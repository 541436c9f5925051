package services

import (
	"net/http"

	"storefront_client/internal/storefront/session"
)

// AuthEngine decorates outgoing requests with credentials.
type AuthEngine interface {
	Authorize(request *http.Request)
}

// SessionAuth reads the current session token on every request, so a login
// that happens mid-session takes effect immediately. Requests made before any
// login go out unauthenticated.
type SessionAuth struct {
	sessions session.Store
}

func NewSessionAuth(sessions session.Store) *SessionAuth {
	return &SessionAuth{sessions: sessions}
}

func (a *SessionAuth) Authorize(request *http.Request) {
	token, ok := a.sessions.Token()
	if !ok {
		return
	}
	request.Header.Set("Authorization", "Bearer "+token)
}

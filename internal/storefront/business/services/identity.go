package services

import (
	"context"
	"net/http"

	"storefront_client/internal/storefront/session"
)

// IdentityClient wraps the /users endpoints. Login is the single writer of
// the session store.
type IdentityClient struct {
	engine   *RequestEngine
	sessions session.Store
}

func NewIdentityClient(engine *RequestEngine, sessions session.Store) *IdentityClient {
	return &IdentityClient{engine: engine, sessions: sessions}
}

// CreateAccount registers a new user. Success is strictly 201; every other
// outcome is one undifferentiated account-creation failure.
func (c *IdentityClient) CreateAccount(ctx context.Context, email, birthDate, password string) error {
	body := struct {
		Email     string `json:"email"`
		BirthDate string `json:"data_nasc"`
		Password  string `json:"password"`
	}{Email: email, BirthDate: birthDate, Password: password}
	return c.engine.DoJSON(ctx, http.MethodPost, "/users/novouser", body, nil, http.StatusCreated)
}

// Login authenticates and hands the returned token to the session store.
// Transport failures and bad credentials are indistinguishable to the
// caller, matching what the backend exposes.
func (c *IdentityClient) Login(ctx context.Context, email, password string) (string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}
	var resp struct {
		Token string `json:"Token"`
	}
	if err := c.engine.DoJSON(ctx, http.MethodPost, "/users/login", body, &resp, http.StatusOK); err != nil {
		return "", err
	}
	if err := c.sessions.SetToken(resp.Token); err != nil {
		return "", err
	}
	return resp.Token, nil
}

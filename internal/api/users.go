package api

import (
	"context"
	"net/url"

	"mindfulreader/internal/session"
)

// Credentials for login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup is the registration payload.
type Signup struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Nationality string `json:"nationality,omitempty"`
}

// SignUp registers a new account.
func (c *Client) SignUp(ctx context.Context, payload Signup) (User, error) {
	var user User
	err := c.post(ctx, "/auth/register", payload, &user, "signing up")
	return user, err
}

// LoginUser exchanges credentials for a session payload. The caller decides
// whether to persist it via the session store.
func (c *Client) LoginUser(ctx context.Context, creds Credentials) (session.Record, error) {
	var rec session.Record
	err := c.post(ctx, "/auth/login", creds, &rec, "signing in")
	return rec, err
}

// GetUser fetches a profile (credentialed).
func (c *Client) GetUser(ctx context.Context, userID string) (User, error) {
	var user User
	err := c.getPrivate(ctx, "/users/"+url.PathEscape(userID), nil, &user, "fetching your profile")
	return user, err
}

// UpdateUser updates a profile (credentialed).
func (c *Client) UpdateUser(ctx context.Context, userID string, user User) (User, error) {
	var saved User
	err := c.putPrivate(ctx, "/users/"+url.PathEscape(userID), user, &saved, "updating your profile")
	return saved, err
}

package client

import (
	"context"
	"net/http"
)

// Credentials identify a user for login.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

// AuthResponse is the backend's answer to login and register.
type AuthResponse struct {
	Token string `json:"token"`
}

// Login authenticates and stores the returned token on the client.
func (c *Client) Login(ctx context.Context, username, password string) (AuthResponse, error) {
	var resp AuthResponse
	creds := Credentials{Username: username, Password: password}
	if err := c.call(ctx, http.MethodPost, "/users/login", creds, &resp); err != nil {
		return AuthResponse{}, err
	}
	c.SetToken(resp.Token)
	return resp, nil
}

// Register creates a user account and stores the returned token.
func (c *Client) Register(ctx context.Context, username, email, password string) (AuthResponse, error) {
	var resp AuthResponse
	creds := Credentials{Username: username, Email: email, Password: password}
	if err := c.call(ctx, http.MethodPost, "/users/register", creds, &resp); err != nil {
		return AuthResponse{}, err
	}
	c.SetToken(resp.Token)
	return resp, nil
}

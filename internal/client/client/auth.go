package client

import (
	"context"
	"fmt"
	"net/http"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type googleCallbackRequest struct {
	Code string `json:"code"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Username: username, Password: password}, &resp); err != nil {
		return err
	}
	return c.storeToken(ctx, resp)
}

func (c *HTTPClient) Register(ctx context.Context, email, username, password string) error {
	var resp tokenResponse
	req := registerRequest{Email: email, Username: username, Password: password}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/register", nil, req, &resp); err != nil {
		return err
	}
	return c.storeToken(ctx, resp)
}

// LoginWithGoogle exchanges an authorization code from Google's consent
// screen. A code belonging to no account yields a short-lived token without
// a username claim and no refresh cookie.
func (c *HTTPClient) LoginWithGoogle(ctx context.Context, code string) error {
	var resp tokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/google/callback", nil, googleCallbackRequest{Code: code}, &resp); err != nil {
		return err
	}
	return c.storeToken(ctx, resp)
}

// Logout asks the server to revoke the refresh cookie and always clears the
// local token. The server's error, if any, is returned for logging.
func (c *HTTPClient) Logout(ctx context.Context) error {
	err := c.doJSON(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := c.tokens.Clear(ctx); clearErr != nil {
		c.log.Error(ctx, "failed to clear access token", "error", clearErr)
	}
	return err
}

func (c *HTTPClient) storeToken(ctx context.Context, resp tokenResponse) error {
	if resp.AccessToken == "" {
		return fmt.Errorf("%w: no access token", ErrBadResponse)
	}
	// A persistence failure is logged by the store; memory already holds the token.
	_ = c.tokens.Set(ctx, resp.AccessToken)
	return nil
}

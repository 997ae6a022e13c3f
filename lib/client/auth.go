package client

import (
	"context"
	"net/http"

	authapimodels "talentflow-backend/models/api/auth"
)

// Signup registers the user and installs the returned token on the client.
func (c *Client) Signup(ctx context.Context, req authapimodels.SignupRequest) (*authapimodels.JWTResponse, error) {
	resp, err := call[authapimodels.JWTResponse](ctx, c, http.MethodPost, "/auth/signup", nil, req)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		c.SetToken(resp.Token)
	}
	return resp, nil
}

func (c *Client) Signin(ctx context.Context, req authapimodels.SigninRequest) (*authapimodels.JWTResponse, error) {
	resp, err := call[authapimodels.JWTResponse](ctx, c, http.MethodPost, "/auth/signin", nil, req)
	if err != nil {
		return nil, err
	}
	if resp != nil {
		c.SetToken(resp.Token)
	}
	return resp, nil
}

// Logout tells the backend and drops the local token. Tokens are stateless,
// so the call is best-effort.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.SetToken("")
	return err
}

func (c *Client) Verify(ctx context.Context) (*authapimodels.UserView, error) {
	return call[authapimodels.UserView](ctx, c, http.MethodGet, "/auth/verify", nil, nil)
}

package api

import (
	"context"
	"net/http"
)

// Credentials are the sign-in inputs.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up payload.
type Registration struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type authResponse struct {
	Token string `json:"token"`
}

// SignIn posts credentials and returns the issued bearer token.
func (c *HTTPClient) SignIn(ctx context.Context, creds Credentials) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, c.endpoints.SignIn, nil, creds, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// SignUp registers a new account and returns the issued bearer token.
func (c *HTTPClient) SignUp(ctx context.Context, reg Registration) (string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, c.endpoints.SignUp, nil, reg, &resp, false); err != nil {
		return "", err
	}
	return resp.Token, nil
}

// DeleteAccount removes the authenticated user's account.
func (c *HTTPClient) DeleteAccount(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, c.endpoints.DeleteAccount, nil, nil, nil, true)
}

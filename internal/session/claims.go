package session

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the user identity decoded from the bearer token.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

// FullName joins the name claims the way the backend expects them on
// terrain payloads.
func (i Identity) FullName() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

type tokenClaims struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	jwt.RegisteredClaims
}

// DecodeIdentity extracts the identity claims from a bearer token. The
// signature is the server's concern; the client only reads claims, so the
// token is parsed without verification. Any decode failure or a missing
// subject yields ok == false and the caller must treat the user as
// anonymous.
func DecodeIdentity(token string) (Identity, bool) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}
	if claims.Subject == "" {
		return Identity{}, false
	}
	return Identity{
		Email:     claims.Subject,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, true
}

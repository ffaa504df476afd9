package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to a field device.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to the jwt
// parser as the claims destination. The "sub" claim carries the service
// provider the device works for.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"-"`

	// ServiceProviderID is a parsed copy of the "sub" claim.
	ServiceProviderID string `json:"-"`
}

// GetServiceProviderID returns the "sub" claim, or an error when it is absent.
func (t *Token) GetServiceProviderID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting service provider from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting service provider from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// Package service declares contracts for external collaborators the domain
// depends on but does not implement: identity verification, image hosting,
// event publishing and QR generation.
package service

import "context"

// IdentityUser is the session user object exposed by the identity provider.
type IdentityUser struct {
	UID           string
	Email         string
	Name          string
	Picture       string
	Provider      string
	EmailVerified bool
}

// IdentityService verifies identity-provider session tokens. Session
// management itself (sign-in, sign-up, sign-out) is fully delegated to the
// provider; this service only validates the resulting ID token.
type IdentityService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityUser, error)
}

package identity

import (
	"context"
	"log/slog"

	"maison/config"
	"maison/internal/domain/service"

	"go.uber.org/fx"
)

// VerifierParams holds dependencies for the identity verifier, injected by Fx.
type VerifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewVerifier picks the identity verifier from configuration: the Firebase
// Admin SDK when credentials are present, the unverified dev parser otherwise.
func NewVerifier(params VerifierParams) (service.IdentityService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		return NewUnverifiedParser(params.Logger), nil
	}

	return NewFirebaseVerifier(params.Ctx, cfg, params.Logger)
}

// Package identity verifies session tokens minted by the external identity
// provider. The provider owns sign-in, sign-up and session lifetime; this
// package only validates the resulting ID tokens.
package identity

import (
	"context"
	"log/slog"

	"maison/config"
	"maison/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *auth.Client
	logger *slog.Logger
}

// NewFirebaseVerifier creates an IdentityService backed by the Firebase
// Admin SDK.
func NewFirebaseVerifier(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.IdentityService, error) {
	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get firebase auth client")
	}

	return &firebaseVerifier{
		client: client,
		logger: logger,
	}, nil
}

func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityUser, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "verify ID token")
	}

	user := &service.IdentityUser{
		UID:      token.UID,
		Provider: token.Firebase.SignInProvider,
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		user.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		user.Picture = picture
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	v.logger.Debug("ID token verified",
		slog.String("uid", user.UID),
		slog.String("provider", user.Provider),
	)

	return user, nil
}

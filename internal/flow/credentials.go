package flow

import (
	"context"
	"errors"
	"net/http"

	"github.com/iqbal-singh-1/ideathon/internal/authclient"
)

// The demo account and the token written for it. These stand in for a real
// credential store; use RemoteCredentials to verify against the backend.
const (
	ValidID      = "123456"
	ValidSecret  = "password123"
	SessionToken = "your-auth-token"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier checks an id/secret pair and returns the token to persist.
// It returns ErrInvalidCredentials on a mismatch.
type CredentialVerifier interface {
	Verify(ctx context.Context, id, secret string) (string, error)
}

// FixedCredentials accepts exactly one pair and always yields the same token.
type FixedCredentials struct {
	ID     string
	Secret string
	Token  string
}

var DefaultCredentials = FixedCredentials{
	ID:     ValidID,
	Secret: ValidSecret,
	Token:  SessionToken,
}

func (f FixedCredentials) Verify(_ context.Context, id, secret string) (string, error) {
	if id != f.ID || secret != f.Secret {
		return "", ErrInvalidCredentials
	}
	return f.Token, nil
}

type LoginAPI interface {
	Login(ctx context.Context, uid, password string) (string, error)
}

// RemoteCredentials verifies against POST /auth/login and persists the
// server-issued access token.
type RemoteCredentials struct {
	API LoginAPI
}

func (r RemoteCredentials) Verify(ctx context.Context, id, secret string) (string, error) {
	token, err := r.API.Login(ctx, id, secret)
	if err != nil {
		var apiErr *authclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	return token, nil
}

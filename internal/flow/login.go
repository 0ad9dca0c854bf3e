// Package flow implements the login and signup form workflows: validate the
// fields, verify or submit them, persist what must be persisted, then ask
// the navigator for the next screen.
package flow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iqbal-singh-1/ideathon/internal/tokenstore"
)

var errMissingFields = errors.New("missing fields")

type LoginCredentials struct {
	ID     string
	Secret string
}

type LoginFlow struct {
	store    tokenstore.Store
	verifier CredentialVerifier
	opts     options
	machine
}

// NewLoginFlow returns a flow writing to store. A nil verifier uses
// DefaultCredentials.
func NewLoginFlow(store tokenstore.Store, verifier CredentialVerifier, opts ...Option) *LoginFlow {
	if verifier == nil {
		verifier = DefaultCredentials
	}
	o := buildOptions(opts)
	return &LoginFlow{
		store:    store,
		verifier: verifier,
		opts:     o,
		machine:  machine{onTransition: o.onTransition},
	}
}

// Attempt runs one login. On success the token is stored under
// tokenstore.TokenKey before the navigator is asked for MainApp.
func (f *LoginFlow) Attempt(ctx context.Context, creds LoginCredentials) (Destination, error) {
	if err := f.begin(); err != nil {
		return None, err
	}
	logger := f.opts.logger.With(slog.String("flow", "login"))

	if creds.ID == "" || creds.Secret == "" {
		f.finish(Rejected)
		return None, validationError("login", errMissingFields)
	}

	token, err := f.verifier.Verify(ctx, creds.ID, creds.Secret)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			logger.Info("login rejected", "uid", creds.ID)
			f.finish(Rejected)
			return None, &Error{Kind: KindAuth, Op: "login", Message: err.Error(), Err: err}
		}
		logger.Warn("credential verification failed", "uid", creds.ID, "error", err)
		f.finish(Failed)
		return None, &Error{Kind: KindRemote, Op: "login", Message: "unable to verify credentials", Err: err}
	}

	if err := f.store.Set(ctx, tokenstore.TokenKey, token); err != nil {
		logger.Error("failed to persist session token", "error", err)
		f.finish(Failed)
		return None, &Error{Kind: KindStorage, Op: "login", Message: "failed to save session", Err: err}
	}

	logger.Info("login succeeded", "uid", creds.ID)
	f.finish(Succeeded)
	f.opts.navigate(MainApp)
	return MainApp, nil
}

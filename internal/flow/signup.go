package flow

import (
	"context"
	"errors"
	"log/slog"

	"github.com/iqbal-singh-1/ideathon/internal/authclient"
	"github.com/iqbal-singh-1/ideathon/internal/models"
	"github.com/iqbal-singh-1/ideathon/internal/validation"
)

// FallbackSignupMessage is shown when the server gives no detail.
const FallbackSignupMessage = "Signup failed. Please try again."

type SignupAPI interface {
	Signup(ctx context.Context, req models.SignupRequest) error
}

type SignupFlow struct {
	api       SignupAPI
	validator *validation.Validator
	opts      options
	machine
}

func NewSignupFlow(api SignupAPI, opts ...Option) *SignupFlow {
	o := buildOptions(opts)
	return &SignupFlow{
		api:       api,
		validator: validation.New(),
		opts:      o,
		machine:   machine{onTransition: o.onTransition},
	}
}

// Attempt validates req and, if it passes, submits it exactly once. It
// blocks until the request completes; a concurrent call on the same flow
// gets ErrSubmitInProgress.
func (f *SignupFlow) Attempt(ctx context.Context, req models.SignupRequest) (Destination, error) {
	if err := f.begin(); err != nil {
		return None, err
	}
	logger := f.opts.logger.With(slog.String("flow", "signup"))

	if err := f.validator.Signup(req); err != nil {
		f.finish(Rejected)
		if !validation.IsRuleError(err) {
			logger.Error("unexpected validation failure", "error", err)
		}
		return None, validationError("signup", err)
	}

	f.to(Submitting)
	if err := f.api.Signup(ctx, req); err != nil {
		logger.Warn("signup request failed", "uid", req.UID, "error", err)
		f.finish(Failed)
		return None, &Error{Kind: KindRemote, Op: "signup", Message: remoteMessage(err), Err: err}
	}

	logger.Info("signup succeeded", "uid", req.UID)
	f.finish(Succeeded)
	f.opts.navigate(Login)
	return Login, nil
}

func remoteMessage(err error) string {
	var apiErr *authclient.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return FallbackSignupMessage
}

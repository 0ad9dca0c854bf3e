package flow

import (
	"io"
	"log/slog"
)

// Destination names a screen the flow asks the navigator to show.
type Destination string

const (
	None    Destination = ""
	Login   Destination = "Login"
	MainApp Destination = "MainApp"
)

// Navigator switches screens. It is only called after a flow succeeds.
type Navigator interface {
	Navigate(to Destination)
}

type NavigatorFunc func(to Destination)

func (f NavigatorFunc) Navigate(to Destination) { f(to) }

type options struct {
	logger       *slog.Logger
	navigator    Navigator
	onTransition func(from, to State)
}

type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithNavigator(n Navigator) Option {
	return func(o *options) {
		o.navigator = n
	}
}

// WithTransitionHook registers fn to observe every state change, e.g. to
// show a loading indicator while Submitting.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(o *options) {
		o.onTransition = fn
	}
}

func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

func (o options) navigate(to Destination) {
	if o.navigator != nil {
		o.navigator.Navigate(to)
	}
}

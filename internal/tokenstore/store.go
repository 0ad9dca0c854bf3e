// Package tokenstore is the device-local key/value storage the login flow
// writes its session token to.
package tokenstore

import (
	"context"
	"errors"
)

// TokenKey is the key the session token is stored under.
const TokenKey = "token"

var ErrNotFound = errors.New("key not found")

type Store interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
}

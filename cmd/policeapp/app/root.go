// Package app wires the login and signup flows into the policeapp command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iqbal-singh-1/ideathon/internal/authclient"
	"github.com/iqbal-singh-1/ideathon/internal/flow"
	applog "github.com/iqbal-singh-1/ideathon/internal/logger"
	"github.com/iqbal-singh-1/ideathon/internal/tokenstore"
)

const envPrefix = "POLICEAPP"

// ErrFlowFailed is returned after the alert has been printed, so callers
// should not print it again.
var ErrFlowFailed = errors.New("flow failed")

type app struct {
	v   *viper.Viper
	out io.Writer
	err io.Writer
}

func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "policeapp",
		Short:         "Personnel login and signup",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.out = cmd.OutOrStdout()
			a.err = cmd.ErrOrStderr()
			return a.loadConfig(cmd)
		},
	}

	fs := cmd.PersistentFlags()
	fs.StringP("config", "c", "", "Path to config file")
	fs.String("server", authclient.DefaultBaseURL, "Signup backend base URL")
	fs.String("store", "file", "Token storage backend: file or redis")
	fs.String("store-path", "", "Token file path (default ~/.policeapp/storage.json)")
	fs.String("redis-addr", "localhost:6379", "Redis address for the redis store")
	fs.String("redis-namespace", "policeapp", "Key namespace for the redis store")
	fs.String("log-level", "warn", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		a.newLoginCommand(),
		a.newSignupCommand(),
		a.newTokenCommand(),
	)
	return cmd
}

func (a *app) loadConfig(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func (a *app) logger() *slog.Logger {
	return applog.New(a.err, "development", a.v.GetString("log-level"))
}

// openStore returns the configured token store and a func that releases it.
func (a *app) openStore(ctx context.Context) (tokenstore.Store, func(), error) {
	noop := func() {}

	switch a.v.GetString("store") {
	case "file":
		path := a.v.GetString("store-path")
		if path == "" {
			var err error
			if path, err = tokenstore.DefaultPath(); err != nil {
				return nil, noop, err
			}
		}
		return tokenstore.NewFileStore(path), noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{Addr: a.v.GetString("redis-addr")})
		store := tokenstore.NewRedisStore(client, a.v.GetString("redis-namespace"))
		if err := store.Ping(ctx); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("redis connection failed: %w", err)
		}
		return store, func() { _ = client.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("unknown store %q", a.v.GetString("store"))
	}
}

func (a *app) client() *authclient.Client {
	return authclient.New(a.v.GetString("server"), nil)
}

func (a *app) flowOptions() []flow.Option {
	return []flow.Option{
		flow.WithLogger(a.logger()),
		flow.WithNavigator(flow.NavigatorFunc(func(to flow.Destination) {
			fmt.Fprintf(a.out, "→ %s\n", to)
		})),
		flow.WithTransitionHook(func(_, to flow.State) {
			if to == flow.Submitting {
				fmt.Fprintln(a.err, "Submitting...")
			}
		}),
	}
}

func (a *app) showAlert(alert flow.Alert) {
	fmt.Fprintf(a.out, "%s: %s\n", alert.Title, alert.Body)
}

// finish prints the alert for a flow result.
func (a *app) finish(err error, success flow.Alert) error {
	if err != nil {
		a.showAlert(flow.AlertFor(err))
		return ErrFlowFailed
	}
	a.showAlert(success)
	return nil
}

package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iqbal-singh-1/ideathon/internal/flow"
	"github.com/iqbal-singh-1/ideathon/internal/models"
	"github.com/iqbal-singh-1/ideathon/internal/tokenstore"
)

func (a *app) newLoginCommand() *cobra.Command {
	var creds flow.LoginCredentials
	var remote bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with a personnel ID and password",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			var verifier flow.CredentialVerifier = flow.DefaultCredentials
			if remote {
				verifier = flow.RemoteCredentials{API: a.client()}
			}

			_, err = flow.NewLoginFlow(store, verifier, a.flowOptions()...).Attempt(ctx, creds)
			return a.finish(err, flow.LoginSucceeded)
		},
	}

	cmd.Flags().StringVar(&creds.ID, "uid", "", "Personnel ID")
	cmd.Flags().StringVar(&creds.Secret, "password", "", "Password")
	cmd.Flags().BoolVar(&remote, "remote-login", false, "Verify credentials against the backend instead of the built-in account")
	return cmd
}

func (a *app) newSignupCommand() *cobra.Command {
	var req models.SignupRequest

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Register a new personnel account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := flow.NewSignupFlow(a.client(), a.flowOptions()...).Attempt(cmd.Context(), req)
			return a.finish(err, flow.SignupSucceeded)
		},
	}

	cmd.Flags().StringVar(&req.FullName, "full-name", "", "Full name")
	cmd.Flags().StringVar(&req.UID, "uid", "", "Personnel ID")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "10-digit mobile number")
	cmd.Flags().StringVar(&req.Password, "password", "", "Password, at least 6 characters")
	return cmd
}

func (a *app) newTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Print the stored session token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			token, err := store.Get(ctx, tokenstore.TokenKey)
			if errors.Is(err, tokenstore.ErrNotFound) {
				return errors.New("not logged in")
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, token)
			return nil
		},
	}
}

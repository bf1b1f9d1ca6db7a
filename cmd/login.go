package cmd

import (
	"fmt"

	"github.com/bnema/stitchutils/internal/application"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var (
		appID    string
		baseURL  string
		provider string
		input    domain.CredentialInput
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to an App Services application",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolvedBaseURL, err := domain.ValidateBaseURL(baseURL, app.allowedBaseURLs)
			if err != nil {
				return err
			}

			input.Provider, err = domain.ParseProvider(provider)
			if err != nil {
				return err
			}
			credential, err := input.Credential()
			if err != nil {
				return err
			}

			session, err := app.sessions.Login(cmd.Context(), application.LoginCommand{
				Credential: credential,
				AppID:      appID,
				BaseURL:    resolvedBaseURL,
			})
			if err != nil {
				return err
			}

			return writeSession(cmd, app, application.StatusOf(session))
		},
	}

	cmd.Flags().StringVar(&appID, "app-id", "", "Client App ID, e.g. myapp-abcde")
	cmd.Flags().StringVar(&baseURL, "base-url", domain.DefaultBaseURL, "App Services base URL")
	cmd.Flags().StringVar(&provider, "provider", string(domain.ProviderAnonymous), "Auth provider: username/password, anonymous or apikey")
	cmd.Flags().StringVar(&input.Username, "username", "", "Username for the username/password provider")
	cmd.Flags().StringVar(&input.Password, "password", "", "Password for the username/password provider")
	cmd.Flags().StringVar(&input.APIKey, "api-key", "", "API key for the apikey provider")
	_ = cmd.MarkFlagRequired("app-id")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app.sessions.Restore(cmd.Context())
			if err := app.sessions.Logout(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, _ := app.sessions.Restore(cmd.Context())
			status := application.StatusOf(session)

			write := writeSession
			if asJSON {
				write = func(cmd *cobra.Command, _ *app, status application.SessionStatus) error {
					return writeJSON(cmd, status)
				}
			}
			if err := write(cmd, app, status); err != nil {
				return err
			}
			if !status.LoggedIn {
				return application.ErrNoSession
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func writeSession(cmd *cobra.Command, app *app, status application.SessionStatus) error {
	rendered, err := app.sessionRenderer(status)
	if err != nil {
		return fmt.Errorf("render session: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

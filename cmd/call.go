package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/stitchutils/internal/adapters/console"
	"github.com/bnema/stitchutils/internal/adapters/render/report"
	"github.com/bnema/stitchutils/internal/application"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/spf13/cobra"
)

func newCallCmd(app *app) *cobra.Command {
	var (
		rawArgs string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "call [function]",
		Short: "Call a server-side function with JSON arguments",
		Long:  "Call a server-side function. --args is parsed as JSON before anything is sent: an array is the argument list, any other value is passed as the single argument.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			functionName := console.DefaultFunctionName
			if len(args) == 1 {
				functionName = args[0]
			}

			session, ok := app.sessions.Restore(cmd.Context())
			if !ok {
				return application.ErrNoSession
			}

			record, err := runCallProgress(cmd.Context(), cmd.ErrOrStderr(), functionName,
				func(ctx context.Context) (domain.InvocationRecord, error) {
					return app.harness.Invoke(ctx, session, application.InvokeCommand{
						FunctionName: functionName,
						RawArguments: rawArgs,
					})
				})
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, record)
			}

			rendered, err := app.ledgerRenderer([]domain.InvocationRecord{record}, report.JSONOptions{})
			if err != nil {
				return fmt.Errorf("render result: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&rawArgs, "args", console.DefaultArguments, "Function arguments (extended JSON)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newConsoleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Open the interactive function console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, ok := app.sessions.Restore(cmd.Context())
			if !ok {
				return application.ErrNoSession
			}

			return app.runConsole(cmd.Context(), session, app.harness, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

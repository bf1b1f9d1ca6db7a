package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/spf13/cobra"
)

const stdinArg = "-"

const inputHelp = "Input is the positional argument, or stdin when it is \"-\" or omitted. " +
	"Trailing line breaks are stripped from stdin so piped text matches typed text; " +
	"a positional argument is passed to the codec unchanged."

func newRQLCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rql [query|-]",
		Short: "Translate an RQL query to MQL",
		Long:  "Translate an RQL query to MQL. " + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return writeExchange(cmd, app, app.codec.TranslateQuery(cmd.Context(), query), false)
		},
	}
}

func newChangesetCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "changeset",
		Short: "Decode or encode sync changesets",
	}

	cmd.AddCommand(newChangesetDecodeCmd(app), newChangesetEncodeCmd(app))

	return cmd
}

func newChangesetDecodeCmd(app *app) *cobra.Command {
	var copyOutput bool

	cmd := &cobra.Command{
		Use:   "decode [changeset|-]",
		Short: "Decode a Base64 or hex changeset to JSON",
		Long:  "Decode a Base64 or hex changeset to JSON. " + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			encoded, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return writeExchange(cmd, app, app.codec.DecodeChangeset(cmd.Context(), encoded), copyOutput)
		},
	}

	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the decoded changeset to the clipboard")

	return cmd
}

func newChangesetEncodeCmd(app *app) *cobra.Command {
	var copyOutput bool

	cmd := &cobra.Command{
		Use:   "encode [json|-]",
		Short: "Encode a JSON changeset",
		Long:  "Encode a JSON changeset. " + inputHelp,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changeset, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			return writeExchange(cmd, app, app.codec.EncodeChangeset(cmd.Context(), changeset), copyOutput)
		},
	}

	cmd.Flags().BoolVar(&copyOutput, "copy", false, "Copy the encoded changeset to the clipboard")

	return cmd
}

// readInput returns the positional argument verbatim, or stdin without its
// trailing line breaks for "-" or no argument.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != stdinArg {
		return args[0], nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}

	return strings.TrimRight(string(data), "\r\n"), nil
}

func writeExchange(cmd *cobra.Command, app *app, exchange domain.CodecExchange, copyOutput bool) error {
	if exchange.Failed() {
		return errors.New(exchange.Error)
	}

	rendered, err := app.exchangeRenderer(exchange)
	if err != nil {
		return fmt.Errorf("render %s output: %w", exchange.Operation, err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	if copyOutput {
		if err := app.copyToClipboard(exchange.Output); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		_, err := fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard.")
		return err
	}

	return nil
}

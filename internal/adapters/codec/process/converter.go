package process

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

const DefaultCommand = "realm-codec"

var ErrUnavailable = errors.New("codec converter unavailable")

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

// Converter runs an external codec program once per conversion. The program
// reads the raw text on stdin and prints a single JSON object.
type Converter struct {
	command string
	run     runFunc
	logger  *zap.Logger
}

var _ ports.Converter = (*Converter)(nil)

func NewConverter(command string, logger *zap.Logger) *Converter {
	command = strings.TrimSpace(command)
	if command == "" {
		command = DefaultCommand
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Converter{command: command, logger: logger}
	c.run = c.runCommand
	return c
}

type conversionResponse struct {
	MQL     *string `json:"mql"`
	Decoded *string `json:"decoded"`
	Encoded *string `json:"encoded"`
	Error   string  `json:"error"`
}

func (c *Converter) RQLToMQL(ctx context.Context, rql string) (domain.ConversionOutput, error) {
	resp, err := c.convert(ctx, rql, string(domain.CodecTranslateQuery))
	if err != nil {
		return domain.ConversionOutput{}, err
	}

	return resp.output(c.command, domain.CodecTranslateQuery, "mql", resp.MQL)
}

func (c *Converter) DecodeChangeset(ctx context.Context, changeset string, jsonFormat bool) (domain.ConversionOutput, error) {
	args := []string{string(domain.CodecDecodeChangeset)}
	if jsonFormat {
		args = append(args, "--json")
	}

	resp, err := c.convert(ctx, changeset, args...)
	if err != nil {
		return domain.ConversionOutput{}, err
	}

	return resp.output(c.command, domain.CodecDecodeChangeset, "decoded", resp.Decoded)
}

func (c *Converter) EncodeChangeset(ctx context.Context, changesetJSON string) (domain.ConversionOutput, error) {
	resp, err := c.convert(ctx, changesetJSON, string(domain.CodecEncodeChangeset))
	if err != nil {
		return domain.ConversionOutput{}, err
	}

	return resp.output(c.command, domain.CodecEncodeChangeset, "encoded", resp.Encoded)
}

// output requires either the operation's field or a non-empty error.
func (r conversionResponse) output(command string, op domain.CodecOperation, field string, value *string) (domain.ConversionOutput, error) {
	if r.Error != "" {
		return domain.ConversionOutput{Error: r.Error}, nil
	}
	if value == nil {
		return domain.ConversionOutput{}, fmt.Errorf("%s %s: output has no %q field", command, op, field)
	}
	return domain.ConversionOutput{Output: *value}, nil
}

func (c *Converter) convert(ctx context.Context, input string, args ...string) (conversionResponse, error) {
	if err := ctx.Err(); err != nil {
		return conversionResponse{}, err
	}

	stdout, stderr, err := c.run(ctx, input, args...)
	if err != nil {
		return conversionResponse{}, formatError(c.command, args[0], err, stderr)
	}

	var resp conversionResponse
	if err := json.Unmarshal([]byte(stdout), &resp); err != nil {
		return conversionResponse{}, fmt.Errorf("%s %s: decode output: %w", c.command, args[0], err)
	}

	c.logger.Debug("converter finished", zap.String("operation", args[0]), zap.Bool("failed", resp.Error != ""))
	return resp, nil
}

func (c *Converter) runCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := osexec.LookPath(c.command)
	if err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			return "", "", fmt.Errorf("%w: %q not found in PATH", ErrUnavailable, c.command)
		}
		return "", "", fmt.Errorf("locate converter command: %w", err)
	}

	cmd := osexec.CommandContext(ctx, path, args...)
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(command string, op string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s %s: %w", command, op, err)
	}

	return fmt.Errorf("%s %s: %w: %s", command, op, err, stderr)
}

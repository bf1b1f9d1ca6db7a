package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

var ErrUnavailable = errors.New("pass command unavailable")

// pass prints this on stderr when an entry is missing.
const missingEntryMarker = "is not in the password store"

type passCommand struct {
	args  []string
	stdin string
	env   []string
}

type runFunc func(ctx context.Context, cmd passCommand) (stdout string, stderr string, err error)

// Store keeps user tokens in pass(1). An empty storeDir uses the user's
// default password store.
type Store struct {
	storeDir string
	logger   *zap.Logger
	run      runFunc
}

var _ ports.KeyValueStore = (*Store)(nil)

type Option func(*Store)

// WithStoreDir points pass at a dedicated store through PASSWORD_STORE_DIR.
func WithStoreDir(dir string) Option {
	return func(s *Store) { s.storeDir = strings.TrimSpace(dir) }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{logger: zap.NewNop(), run: runPassCommand}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, s.command(value+"\n", "insert", "--multiline", "--force", key))
	if err != nil {
		return formatError("set", key, err, stderr)
	}

	s.logger.Debug("pass entry written", zap.String("key", key))
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, s.command("", "show", key))
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return "", fmt.Errorf("pass entry %q: %w", key, domain.ErrKeyNotFound)
		}
		return "", formatError("get", key, err, stderr)
	}

	// insert --multiline keeps the trailing newline we wrote.
	return strings.TrimRight(stdout, "\r\n"), nil
}

func (s *Store) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, s.command("", "rm", "--force", key))
	if err != nil {
		if strings.Contains(stderr, missingEntryMarker) {
			return nil
		}
		return formatError("remove", key, err, stderr)
	}

	s.logger.Debug("pass entry removed", zap.String("key", key))
	return nil
}

func (s *Store) command(stdin string, args ...string) passCommand {
	cmd := passCommand{args: args, stdin: stdin}
	if s.storeDir != "" {
		cmd.env = []string{"PASSWORD_STORE_DIR=" + s.storeDir}
	}
	return cmd
}

func runPassCommand(ctx context.Context, pc passCommand) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, pc.args...)
	if pc.stdin != "" {
		cmd.Stdin = strings.NewReader(pc.stdin)
	}
	if len(pc.env) > 0 {
		cmd.Env = append(os.Environ(), pc.env...)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, key string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s %q: %w", op, key, err)
	}

	return fmt.Errorf("pass %s %q: %w: %s", op, key, err, stderr)
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/bnema/stitchutils/internal/adapters/appservices"
	"github.com/bnema/stitchutils/internal/adapters/codec/process"
	"github.com/bnema/stitchutils/internal/adapters/console"
	"github.com/bnema/stitchutils/internal/adapters/render/report"
	tomlrepo "github.com/bnema/stitchutils/internal/adapters/repo/toml"
	chainstore "github.com/bnema/stitchutils/internal/adapters/secrets/chain"
	filestore "github.com/bnema/stitchutils/internal/adapters/secrets/file"
	passstore "github.com/bnema/stitchutils/internal/adapters/secrets/pass"
	"github.com/bnema/stitchutils/internal/application"
	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envPrefix = "STITCH"

	secretsBackendKey = "secrets.backend"
	secretsDirKey     = "secrets.dir"
	secretsPassDirKey = "secrets.pass_dir"
	codecCommandKey   = "codec.command"
	extraBaseURLsKey  = "base_urls.extra"
	httpTimeoutKey    = "http.timeout"
	logLevelKey       = "log.level"
)

// Terminal programs that need a real terminal or desktop session.
var (
	consoleRunner   = console.Run
	clipboardWriter = clipboard.WriteAll
)

type app struct {
	logger          *zap.Logger
	sessions        *application.SessionService
	harness         *application.Harness
	codec           *application.CodecBridge
	allowedBaseURLs []string

	sessionRenderer  func(application.SessionStatus) (string, error)
	ledgerRenderer   func([]domain.InvocationRecord, report.JSONOptions) (string, error)
	exchangeRenderer func(domain.CodecExchange) (string, error)
	runConsole       func(context.Context, *application.Session, console.Harness, io.Reader, io.Writer) error
	copyToClipboard  func(string) error
}

func wireApp(logOutput io.Writer, verbose bool) (*app, error) {
	cfg := viper.New()
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(secretsBackendKey, "chain")
	cfg.SetDefault(secretsDirKey, filepath.Join(homeDir, ".stitchutils", "tokens"))
	cfg.SetDefault(codecCommandKey, process.DefaultCommand)
	cfg.SetDefault(httpTimeoutKey, 30*time.Second)
	cfg.SetDefault(logLevelKey, "warn")

	// Reads the optional config file as well.
	stateStore, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	logger, err := newLogger(logOutput, cfg.GetString(logLevelKey), verbose)
	if err != nil {
		return nil, err
	}

	tokens, err := newTokenStore(
		cfg.GetString(secretsBackendKey),
		cfg.GetString(secretsDirKey),
		passstore.WithStoreDir(cfg.GetString(secretsPassDirKey)),
		passstore.WithLogger(logger.Named("pass")),
	)
	if err != nil {
		return nil, fmt.Errorf("wire token store: %w", err)
	}

	client := appservices.NewClient(tokens, &http.Client{}, cfg.GetDuration(httpTimeoutKey), logger.Named("appservices"))
	converter := process.NewConverter(cfg.GetString(codecCommandKey), logger.Named("codec"))

	return &app{
		logger:          logger,
		sessions:        application.NewSessionService(client, stateStore, logger.Named("session")),
		harness:         application.NewHarness(domain.NewLedger(), ports.SystemClock{}, logger.Named("harness")),
		codec:           application.NewCodecBridge(converter, logger.Named("codec")),
		allowedBaseURLs: domain.AllowedBaseURLs(splitList(cfg.GetStringSlice(extraBaseURLsKey))...),

		sessionRenderer:  report.RenderSession,
		ledgerRenderer:   report.RenderLedger,
		exchangeRenderer: report.RenderExchange,
		runConsole:       consoleRunner,
		copyToClipboard:  clipboardWriter,
	}, nil
}

func newTokenStore(backend string, dir string, passOpts ...passstore.Option) (ports.KeyValueStore, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", "chain":
		return chainstore.NewPassFirstWithFileFallback(dir, passOpts...)
	case "file":
		return filestore.NewStore(dir), nil
	case "pass":
		return passstore.NewStore(passOpts...), nil
	default:
		return nil, fmt.Errorf("unknown %s %q (want chain, file or pass)", secretsBackendKey, backend)
	}
}

func newLogger(w io.Writer, level string, verbose bool) (*zap.Logger, error) {
	sink := zapcore.AddSync(w)

	if verbose {
		encoderCfg := zap.NewDevelopmentEncoderConfig()
		core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), sink, zapcore.DebugLevel)
		return zap.New(core, zap.AddCaller()), nil
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", logLevelKey, err)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), sink, lvl)
	return zap.New(core), nil
}

// splitList accepts both TOML arrays and comma or space separated strings.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		out = append(out, strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		})...)
	}
	return out
}

package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

// Session is an authenticated handle to a live remote user.
type Session struct {
	AppID   string
	BaseURL string
	User    ports.User
}

func (s *Session) CurrentUser() domain.User {
	if s == nil || s.User == nil {
		return domain.User{}
	}

	return domain.User{ID: s.User.ID(), AccessToken: s.User.AccessToken()}
}

func (s *Session) Descriptor() domain.SessionDescriptor {
	return domain.SessionDescriptor{AppID: s.AppID, BaseURL: s.BaseURL}
}

type SessionService struct {
	apps    ports.AppFactory
	store   ports.KeyValueStore
	logger  *zap.Logger
	pending atomic.Bool

	mu      sync.RWMutex
	current *Session
}

func NewSessionService(apps ports.AppFactory, store ports.KeyValueStore, logger *zap.Logger) *SessionService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionService{
		apps:   apps,
		store:  store,
		logger: logger,
	}
}

func (s *SessionService) Current() (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.current, s.current != nil
}

func (s *SessionService) Login(ctx context.Context, cmd LoginCommand) (*Session, error) {
	appID := strings.TrimSpace(cmd.AppID)
	if appID == "" {
		return nil, ErrAppIDRequired
	}
	if cmd.Credential == nil {
		return nil, domain.ErrUnsupportedProvider
	}
	if err := cmd.Credential.Validate(); err != nil {
		return nil, err
	}

	if !s.pending.CompareAndSwap(false, true) {
		return nil, ErrOperationInFlight
	}
	defer s.pending.Store(false)

	app, err := s.apps.NewApp(appID, cmd.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("create app: %w", err)
	}

	user, err := app.LogIn(ctx, cmd.Credential)
	if err != nil {
		s.logger.Debug("login rejected",
			zap.String("app_id", appID),
			zap.String("provider", string(cmd.Credential.Provider())),
			zap.Error(err))
		return nil, err
	}

	session := &Session{AppID: appID, BaseURL: cmd.BaseURL, User: user}
	if err := s.persist(ctx, session.Descriptor()); err != nil {
		if rollbackErr := user.LogOut(ctx); rollbackErr != nil {
			return nil, fmt.Errorf("persist session and roll back login: %w", errors.Join(err, rollbackErr))
		}
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	s.logger.Info("logged in",
		zap.String("app_id", appID),
		zap.String("base_url", cmd.BaseURL),
		zap.String("user_id", user.ID()))

	return session, nil
}

// Restore reconnects from the persisted descriptor. Failures are treated as
// "logged out" and never reported to the caller.
func (s *SessionService) Restore(ctx context.Context) (*Session, bool) {
	raw, err := s.store.Get(ctx, domain.SessionDescriptorKey)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			s.logger.Debug("read session descriptor", zap.Error(err))
		}
		return nil, false
	}

	descriptor, err := domain.DecodeSessionDescriptor(raw)
	if err != nil {
		s.logger.Debug("discarding session descriptor", zap.Error(err))
		s.forget(ctx)
		return nil, false
	}

	app, err := s.apps.NewApp(descriptor.AppID, descriptor.BaseURL)
	if err != nil {
		s.logger.Debug("recreate app", zap.String("app_id", descriptor.AppID), zap.Error(err))
		return nil, false
	}

	user, err := app.CurrentUser(ctx)
	if err != nil {
		s.logger.Debug("load current user", zap.String("app_id", descriptor.AppID), zap.Error(err))
		return nil, false
	}
	if user == nil {
		s.logger.Debug("no active user, discarding session descriptor", zap.String("app_id", descriptor.AppID))
		s.forget(ctx)
		return nil, false
	}

	session := &Session{AppID: descriptor.AppID, BaseURL: descriptor.BaseURL, User: user}

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	return session, true
}

// Logout signs out remotely on a best-effort basis; local state is always
// cleared.
func (s *SessionService) Logout(ctx context.Context) error {
	if !s.pending.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer s.pending.Store(false)

	s.mu.Lock()
	session := s.current
	s.current = nil
	s.mu.Unlock()

	if session != nil && session.User != nil {
		if err := session.User.LogOut(ctx); err != nil {
			s.logger.Warn("remote sign-out failed", zap.String("app_id", session.AppID), zap.Error(err))
		}
	}

	if err := s.store.Remove(ctx, domain.SessionDescriptorKey); err != nil {
		return fmt.Errorf("remove session descriptor: %w", err)
	}

	if session == nil {
		return ErrNoSession
	}

	s.logger.Info("logged out", zap.String("app_id", session.AppID))
	return nil
}

func (s *SessionService) persist(ctx context.Context, descriptor domain.SessionDescriptor) error {
	encoded, err := descriptor.Encode()
	if err != nil {
		return err
	}

	return s.store.Set(ctx, domain.SessionDescriptorKey, encoded)
}

func (s *SessionService) forget(ctx context.Context) {
	if err := s.store.Remove(ctx, domain.SessionDescriptorKey); err != nil {
		s.logger.Debug("remove session descriptor", zap.Error(err))
	}
}

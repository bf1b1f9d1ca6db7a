package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"github.com/bnema/stitchutils/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSessionServiceLoginAnonymousPersistsDescriptor(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	user := mocks.NewMockUser(t)
	store := newInMemoryStore()
	service := NewSessionService(apps, store, zaptest.NewLogger(t))

	apps.EXPECT().NewApp("myapp-abc", "http://localhost:8080").Return(app, nil).Once()
	app.EXPECT().LogIn(mockAnyContext(), domain.AnonymousCredential{}).Return(user, nil).Once()
	user.EXPECT().ID().Return("user-1").Maybe()
	user.EXPECT().AccessToken().Return("access-1").Maybe()

	session, err := service.Login(context.Background(), LoginCommand{
		Credential: domain.AnonymousCredential{},
		AppID:      "myapp-abc",
		BaseURL:    "http://localhost:8080",
	})
	require.NoError(t, err)
	assert.Equal(t, "myapp-abc", session.AppID)
	assert.Equal(t, domain.User{ID: "user-1", AccessToken: "access-1"}, session.CurrentUser())

	stored, err := store.Get(context.Background(), domain.SessionDescriptorKey)
	require.NoError(t, err)
	assert.Equal(t, `{"appID":"myapp-abc","baseURL":"http://localhost:8080"}`, stored)

	current, ok := service.Current()
	require.True(t, ok)
	assert.Same(t, session, current)
}

func TestSessionServiceLoginRejectedKeepsPriorSession(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	firstUser := mocks.NewMockUser(t)
	store := newInMemoryStore()
	service := NewSessionService(apps, store, nil)

	apps.EXPECT().NewApp("first-app", domain.DefaultBaseURL).Return(app, nil).Once()
	app.EXPECT().LogIn(mockAnyContext(), domain.AnonymousCredential{}).Return(firstUser, nil).Once()
	firstUser.EXPECT().ID().Return("user-1").Maybe()

	first, err := service.Login(context.Background(), LoginCommand{
		Credential: domain.AnonymousCredential{},
		AppID:      "first-app",
		BaseURL:    domain.DefaultBaseURL,
	})
	require.NoError(t, err)

	rejectedApp := mocks.NewMockApp(t)
	rejected := errors.New("invalid username/password")
	credential := domain.UsernamePasswordCredential{Username: "dev@example.com", Password: "wrong"}
	apps.EXPECT().NewApp("second-app", domain.DefaultBaseURL).Return(rejectedApp, nil).Once()
	rejectedApp.EXPECT().LogIn(mockAnyContext(), credential).Return(nil, rejected).Once()

	session, err := service.Login(context.Background(), LoginCommand{
		Credential: credential,
		AppID:      "second-app",
		BaseURL:    domain.DefaultBaseURL,
	})
	require.ErrorIs(t, err, rejected)
	assert.Equal(t, "invalid username/password", err.Error())
	assert.Nil(t, session)

	current, ok := service.Current()
	require.True(t, ok)
	assert.Same(t, first, current)

	stored, err := store.Get(context.Background(), domain.SessionDescriptorKey)
	require.NoError(t, err)
	assert.Contains(t, stored, "first-app")
}

func TestSessionServiceLoginRejectsMissingInputBeforeRemoteCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     LoginCommand
		wantErr error
	}{
		{
			name:    "empty app id",
			cmd:     LoginCommand{Credential: domain.AnonymousCredential{}, AppID: "  ", BaseURL: domain.DefaultBaseURL},
			wantErr: ErrAppIDRequired,
		},
		{
			name:    "missing credential",
			cmd:     LoginCommand{AppID: "myapp-abc", BaseURL: domain.DefaultBaseURL},
			wantErr: domain.ErrUnsupportedProvider,
		},
		{
			name:    "api key without key",
			cmd:     LoginCommand{Credential: domain.APIKeyCredential{}, AppID: "myapp-abc", BaseURL: domain.DefaultBaseURL},
			wantErr: domain.ErrInvalidCredential,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			apps := mocks.NewMockAppFactory(t)
			store := newInMemoryStore()
			service := NewSessionService(apps, store, nil)

			session, err := service.Login(context.Background(), tc.cmd)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, session)
			assert.False(t, store.has(domain.SessionDescriptorKey))
		})
	}
}

func TestSessionServiceLoginRollsBackWhenPersistFails(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	user := mocks.NewMockUser(t)
	store := newInMemoryStore()
	store.setErr = errors.New("disk full")
	service := NewSessionService(apps, store, nil)

	apps.EXPECT().NewApp("myapp-abc", domain.DefaultBaseURL).Return(app, nil).Once()
	app.EXPECT().LogIn(mockAnyContext(), domain.AnonymousCredential{}).Return(user, nil).Once()
	user.EXPECT().LogOut(mockAnyContext()).Return(nil).Once()

	session, err := service.Login(context.Background(), LoginCommand{
		Credential: domain.AnonymousCredential{},
		AppID:      "myapp-abc",
		BaseURL:    domain.DefaultBaseURL,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.Nil(t, session)

	_, ok := service.Current()
	assert.False(t, ok)
}

func TestSessionServiceRestoreWithoutDescriptor(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	service := NewSessionService(apps, newInMemoryStore(), nil)

	session, ok := service.Restore(context.Background())
	assert.False(t, ok)
	assert.Nil(t, session)
}

func TestSessionServiceRestoreIsIdempotent(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	user := mocks.NewMockUser(t)
	store := newInMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.SessionDescriptorKey, `{"appID":"myapp-abc","baseURL":"http://localhost:8080"}`))
	service := NewSessionService(apps, store, zaptest.NewLogger(t))

	apps.EXPECT().NewApp("myapp-abc", "http://localhost:8080").Return(app, nil).Twice()
	app.EXPECT().CurrentUser(mockAnyContext()).Return(user, nil).Twice()
	user.EXPECT().ID().Return("user-1")
	user.EXPECT().AccessToken().Return("")

	first, ok := service.Restore(context.Background())
	require.True(t, ok)
	second, ok := service.Restore(context.Background())
	require.True(t, ok)

	assert.Equal(t, first.Descriptor(), second.Descriptor())
	assert.Equal(t, first.CurrentUser(), second.CurrentUser())
	assert.Equal(t, domain.User{ID: "user-1"}, second.CurrentUser())
}

func TestSessionServiceRestoreWithoutActiveUserRemovesDescriptor(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	store := newInMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.SessionDescriptorKey, `{"appID":"myapp-abc","baseURL":"http://localhost:8080"}`))
	service := NewSessionService(apps, store, nil)

	apps.EXPECT().NewApp("myapp-abc", "http://localhost:8080").Return(app, nil).Once()
	app.EXPECT().CurrentUser(mockAnyContext()).Return(nil, nil).Once()

	_, ok := service.Restore(context.Background())
	assert.False(t, ok)
	assert.False(t, store.has(domain.SessionDescriptorKey))

	_, ok = service.Restore(context.Background())
	assert.False(t, ok)

	// The second restore finds no descriptor and never reaches the factory.
	apps.AssertNumberOfCalls(t, "NewApp", 1)
}

func TestSessionServiceRestoreSwallowsErrors(t *testing.T) {
	t.Run("malformed descriptor is discarded", func(t *testing.T) {
		apps := mocks.NewMockAppFactory(t)
		store := newInMemoryStore()
		require.NoError(t, store.Set(context.Background(), domain.SessionDescriptorKey, `{"appID":`))
		service := NewSessionService(apps, store, nil)

		_, ok := service.Restore(context.Background())
		assert.False(t, ok)
		assert.False(t, store.has(domain.SessionDescriptorKey))
	})

	t.Run("reconstruction failure keeps descriptor", func(t *testing.T) {
		apps := mocks.NewMockAppFactory(t)
		app := mocks.NewMockApp(t)
		store := newInMemoryStore()
		require.NoError(t, store.Set(context.Background(), domain.SessionDescriptorKey, `{"appID":"myapp-abc","baseURL":"http://localhost:8080"}`))
		service := NewSessionService(apps, store, nil)

		apps.EXPECT().NewApp("myapp-abc", "http://localhost:8080").Return(app, nil).Once()
		app.EXPECT().CurrentUser(mockAnyContext()).Return(nil, errors.New("token vault locked")).Once()

		_, ok := service.Restore(context.Background())
		assert.False(t, ok)
		assert.True(t, store.has(domain.SessionDescriptorKey))
	})
}

func TestSessionServiceLogoutClearsStateEvenWhenRemoteFails(t *testing.T) {
	for _, remoteErr := range []error{nil, errors.New("network unreachable")} {
		apps := mocks.NewMockAppFactory(t)
		app := mocks.NewMockApp(t)
		user := mocks.NewMockUser(t)
		store := newInMemoryStore()
		service := NewSessionService(apps, store, zaptest.NewLogger(t))

		apps.EXPECT().NewApp("myapp-abc", domain.DefaultBaseURL).Return(app, nil).Once()
		app.EXPECT().LogIn(mockAnyContext(), domain.AnonymousCredential{}).Return(user, nil).Once()
		user.EXPECT().ID().Return("user-1").Maybe()
		user.EXPECT().LogOut(mockAnyContext()).Return(remoteErr).Once()

		_, err := service.Login(context.Background(), LoginCommand{
			Credential: domain.AnonymousCredential{},
			AppID:      "myapp-abc",
			BaseURL:    domain.DefaultBaseURL,
		})
		require.NoError(t, err)
		require.True(t, store.has(domain.SessionDescriptorKey))

		require.NoError(t, service.Logout(context.Background()))

		assert.False(t, store.has(domain.SessionDescriptorKey))
		_, ok := service.Current()
		assert.False(t, ok)
	}
}

func TestSessionServiceLogoutWithoutSession(t *testing.T) {
	store := newInMemoryStore()
	require.NoError(t, store.Set(context.Background(), domain.SessionDescriptorKey, `{"appID":"stale","baseURL":"http://localhost:8080"}`))
	service := NewSessionService(mocks.NewMockAppFactory(t), store, nil)

	err := service.Logout(context.Background())
	require.ErrorIs(t, err, ErrNoSession)
	assert.False(t, store.has(domain.SessionDescriptorKey))
}

func TestSessionServiceRejectsConcurrentOperations(t *testing.T) {
	apps := mocks.NewMockAppFactory(t)
	app := mocks.NewMockApp(t)
	user := mocks.NewMockUser(t)
	service := NewSessionService(apps, newInMemoryStore(), nil)

	entered := make(chan struct{})
	release := make(chan struct{})
	apps.EXPECT().NewApp("myapp-abc", domain.DefaultBaseURL).Return(app, nil).Once()
	app.EXPECT().LogIn(mockAnyContext(), domain.AnonymousCredential{}).
		RunAndReturn(func(context.Context, domain.Credential) (ports.User, error) {
			close(entered)
			<-release
			return user, nil
		}).Once()
	user.EXPECT().ID().Return("user-1").Maybe()

	done := make(chan error, 1)
	go func() {
		_, err := service.Login(context.Background(), LoginCommand{
			Credential: domain.AnonymousCredential{},
			AppID:      "myapp-abc",
			BaseURL:    domain.DefaultBaseURL,
		})
		done <- err
	}()

	<-entered
	_, err := service.Login(context.Background(), LoginCommand{
		Credential: domain.AnonymousCredential{},
		AppID:      "myapp-abc",
		BaseURL:    domain.DefaultBaseURL,
	})
	assert.ErrorIs(t, err, ErrOperationInFlight)
	assert.ErrorIs(t, service.Logout(context.Background()), ErrOperationInFlight)

	close(release)
	require.NoError(t, <-done)
}

package kratos

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"session-manager/app/domain"
	"session-manager/app/mocks"
)

type watcherMocks struct {
	provider *mocks.MockProviderClient
	tokens   *mocks.MockCredentialStore
}

func newTestWatcher(t *testing.T) (*SessionWatcher, *watcherMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &watcherMocks{
		provider: mocks.NewMockProviderClient(ctrl),
		tokens:   mocks.NewMockCredentialStore(ctrl),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	watcher := NewSessionWatcher(m.provider, m.tokens, 10*time.Millisecond, logger)

	return watcher, m
}

func collectEvents(watcher *SessionWatcher) *[]domain.AuthEvent {
	events := &[]domain.AuthEvent{}
	watcher.Subscribe(func(event domain.AuthEvent) {
		*events = append(*events, event)
	})
	return events
}

func TestWatcherTickNoToken(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	m.tokens.EXPECT().Token(gomock.Any()).Return("", nil)

	watcher.tick(context.Background())

	assert.Empty(t, *events, "no transition without a prior session")
}

func TestWatcherTickSignIn(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	m.tokens.EXPECT().Token(gomock.Any()).Return("token-1", nil).Times(2)
	m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(identity, nil).Times(2)

	watcher.tick(context.Background())
	watcher.tick(context.Background())

	require.Len(t, *events, 1, "steady state emits nothing after the first transition")
	event := (*events)[0]
	assert.Equal(t, domain.EventSignedIn, event.Kind)
	require.True(t, event.HasSession())
	assert.Equal(t, identity.ID, event.Session.Identity.ID)
	assert.Equal(t, "token-1", event.Session.Token)
}

func TestWatcherTickTokenRotation(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	gomock.InOrder(
		m.tokens.EXPECT().Token(gomock.Any()).Return("token-1", nil),
		m.tokens.EXPECT().Token(gomock.Any()).Return("token-2", nil),
	)
	m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(identity, nil)
	m.provider.EXPECT().GetUser(gomock.Any(), "token-2").Return(identity, nil)

	watcher.tick(context.Background())
	watcher.tick(context.Background())

	require.Len(t, *events, 2)
	assert.Equal(t, domain.EventSignedIn, (*events)[0].Kind)

	refreshed := (*events)[1]
	assert.Equal(t, domain.EventTokenRefreshed, refreshed.Kind)
	require.True(t, refreshed.HasSession())
	assert.Equal(t, "token-2", refreshed.Session.Token)
}

func TestWatcherTickTokenInvalid(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	m.tokens.EXPECT().Token(gomock.Any()).Return("stale-token", nil)
	m.provider.EXPECT().GetUser(gomock.Any(), "stale-token").
		Return(nil, domain.NewAuthError(domain.ErrCodeTokenInvalid, "Session credentials are no longer valid", nil))

	watcher.tick(context.Background())

	require.Len(t, *events, 1)
	event := (*events)[0]
	assert.Equal(t, domain.EventTokenRefreshed, event.Kind)
	assert.False(t, event.HasSession(), "refresh without session signals the reset condition")
}

func TestWatcherTickSignOutOnError(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	m.tokens.EXPECT().Token(gomock.Any()).Return("token-1", nil).Times(3)
	gomock.InOrder(
		m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(identity, nil),
		m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(nil, errors.New("session not found")).Times(2),
	)

	watcher.tick(context.Background())
	watcher.tick(context.Background())
	watcher.tick(context.Background())

	require.Len(t, *events, 2, "repeated failures emit a single sign-out")
	assert.Equal(t, domain.EventSignedIn, (*events)[0].Kind)
	assert.Equal(t, domain.EventSignedOut, (*events)[1].Kind)
}

func TestWatcherTickTokenReadFailure(t *testing.T) {
	watcher, m := newTestWatcher(t)
	events := collectEvents(watcher)

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	gomock.InOrder(
		m.tokens.EXPECT().Token(gomock.Any()).Return("token-1", nil),
		m.tokens.EXPECT().Token(gomock.Any()).Return("", errors.New("redis unavailable")),
	)
	m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(identity, nil)

	watcher.tick(context.Background())
	watcher.tick(context.Background())

	require.Len(t, *events, 2, "an unreadable store is treated as signed out")
	assert.Equal(t, domain.EventSignedOut, (*events)[1].Kind)
}

func TestWatcherSubscribeDispose(t *testing.T) {
	watcher, m := newTestWatcher(t)

	var count int
	dispose := watcher.Subscribe(func(domain.AuthEvent) {
		count++
	})

	identity := &domain.Identity{ID: uuid.New(), Email: "user@example.com"}

	gomock.InOrder(
		m.tokens.EXPECT().Token(gomock.Any()).Return("token-1", nil),
		m.tokens.EXPECT().Token(gomock.Any()).Return("", nil),
	)
	m.provider.EXPECT().GetUser(gomock.Any(), "token-1").Return(identity, nil)

	watcher.tick(context.Background())
	assert.Equal(t, 1, count)

	dispose()

	watcher.tick(context.Background())
	assert.Equal(t, 1, count, "disposed listener receives no further events")
}

func TestWatcherStartStop(t *testing.T) {
	watcher, m := newTestWatcher(t)

	m.tokens.EXPECT().Token(gomock.Any()).Return("", nil).AnyTimes()

	watcher.Start(context.Background())
	time.Sleep(50 * time.Millisecond)
	watcher.Stop()

	// Stop is idempotent
	watcher.Stop()
}

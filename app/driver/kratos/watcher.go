package kratos

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"session-manager/app/domain"
	"session-manager/app/port"
)

// SessionWatcher implements port.AuthStateSource by polling the provider
// session state, so that transitions made outside this process (another
// client holding the same token, remote expiry) are observed.
type SessionWatcher struct {
	provider port.ProviderClient
	tokens   port.CredentialStore
	interval time.Duration
	logger   *slog.Logger

	mu        sync.Mutex
	listeners map[int]func(domain.AuthEvent)
	nextID    int
	state     watchState

	cancel context.CancelFunc
	done   chan struct{}
}

type watchState struct {
	active     bool
	token      string
	identityID uuid.UUID
}

// NewSessionWatcher creates a new session watcher
func NewSessionWatcher(provider port.ProviderClient, tokens port.CredentialStore, interval time.Duration, logger *slog.Logger) *SessionWatcher {
	return &SessionWatcher{
		provider:  provider,
		tokens:    tokens,
		interval:  interval,
		listeners: make(map[int]func(domain.AuthEvent)),
		logger:    logger.With("component", "session_watcher"),
	}
}

// Subscribe registers a listener for session transitions and returns a
// disposer that removes it.
func (w *SessionWatcher) Subscribe(listener func(domain.AuthEvent)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.listeners[id] = listener

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.listeners, id)
	}
}

// Start begins polling until the context is cancelled or Stop is called
func (w *SessionWatcher) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)

	w.mu.Lock()
	w.cancel = cancel
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	go func() {
		defer close(done)

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info("session watcher started", "interval", w.interval)

		for {
			select {
			case <-ctx.Done():
				w.logger.Info("session watcher stopped")
				return
			case <-ticker.C:
				w.tick(ctx)
			}
		}
	}()
}

// Stop halts polling and waits for the poll loop to exit
func (w *SessionWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	done := w.done
	w.cancel = nil
	w.done = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

// tick observes the current provider session state and emits transitions
func (w *SessionWatcher) tick(ctx context.Context) {
	token, err := w.tokens.Token(ctx)
	if err != nil {
		w.logger.Debug("failed to read cached token", "error", err)
		token = ""
	}

	if token == "" {
		if w.swapState(watchState{}) {
			w.emit(domain.AuthEvent{Kind: domain.EventSignedOut})
		}
		return
	}

	identity, err := w.provider.GetUser(ctx, token)
	if err != nil {
		if domain.IsTokenInvalid(err) {
			// Refresh produced no session; the manager turns this into a
			// full local reset.
			w.swapState(watchState{})
			w.emit(domain.AuthEvent{Kind: domain.EventTokenRefreshed})
			return
		}

		if w.swapState(watchState{}) {
			w.emit(domain.AuthEvent{Kind: domain.EventSignedOut})
		}
		return
	}

	session := &domain.Session{
		Token:    token,
		Identity: identity,
		Active:   true,
	}

	w.mu.Lock()
	previous := w.state
	w.state = watchState{active: true, token: token, identityID: identity.ID}
	w.mu.Unlock()

	switch {
	case !previous.active:
		w.emit(domain.AuthEvent{Kind: domain.EventSignedIn, Session: session})
	case previous.token != token || previous.identityID != identity.ID:
		w.emit(domain.AuthEvent{Kind: domain.EventTokenRefreshed, Session: session})
	}
}

// swapState replaces the tracked state and reports whether a session was
// previously active.
func (w *SessionWatcher) swapState(next watchState) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	wasActive := w.state.active
	w.state = next
	return wasActive
}

// emit delivers an event to all registered listeners
func (w *SessionWatcher) emit(event domain.AuthEvent) {
	w.mu.Lock()
	listeners := make([]func(domain.AuthEvent), 0, len(w.listeners))
	for _, listener := range w.listeners {
		listeners = append(listeners, listener)
	}
	w.mu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// Package session holds the client's authentication state: the bearer token,
// the status of the last auth attempt, and the durable copy of the token.
//
// State machine: Idle → Loading → {Idle on success, Failed on failure}.
// Logout is reachable from any state and returns to Idle with no token.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/gestorverde/gestorverde/internal/api"
	"github.com/gestorverde/gestorverde/internal/logging"
	"github.com/gestorverde/gestorverde/internal/tokens"
)

// Status is the auth lifecycle state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusFailed  Status = "failed"
)

// ErrorKind distinguishes why an attempt failed.
type ErrorKind string

const (
	// ErrorKindTransport: the request never produced a server response.
	ErrorKindTransport ErrorKind = "transport"
	// ErrorKindApplication: the server rejected the attempt.
	ErrorKindApplication ErrorKind = "application"
)

// AttemptError describes the failure of one sign-in/sign-up attempt. It is
// scoped to the attempt: a failed attempt never disturbs a token obtained
// earlier.
type AttemptError struct {
	Kind    ErrorKind
	Message string
}

// genericErrorMessage is shown when the server supplied no usable message.
const genericErrorMessage = "Ocurrió un error inesperado"

// ErrAttemptInFlight is returned when a sign-in/sign-up is started while
// another one is still pending.
var ErrAttemptInFlight = errors.New("authentication attempt already in progress")

// AuthAPI is the slice of the backend client the store needs.
type AuthAPI interface {
	SignIn(ctx context.Context, creds api.Credentials) (string, error)
	SignUp(ctx context.Context, reg api.Registration) (string, error)
}

// Store is the single source of truth for "is a user authenticated".
// Safe for concurrent use; it also implements api.TokenSource.
type Store struct {
	mu      sync.Mutex
	token   string
	status  Status
	lastErr *AttemptError

	auth AuthAPI
	repo tokens.Repository
	log  logging.Logger
}

func NewStore(auth AuthAPI, repo tokens.Repository, log logging.Logger) *Store {
	return &Store{status: StatusIdle, auth: auth, repo: repo, log: log}
}

// Token returns the current bearer token, or "" when anonymous.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Status returns the current lifecycle state.
func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the last attempt's error, or nil.
func (s *Store) Err() *AttemptError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr == nil {
		return nil
	}
	e := *s.lastErr
	return &e
}

// IsAuthenticated reports whether a token is present. Presence only means
// "possibly authenticated": an expired token will surface as 401s later.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Identity decodes the current token's claims, failing closed: any decode
// problem means anonymous.
func (s *Store) Identity() (Identity, bool) {
	token := s.Token()
	if token == "" {
		return Identity{}, false
	}
	return DecodeIdentity(token)
}

// SignIn authenticates with the backend. On success the token is stored in
// memory and persisted; on failure the attempt error is recorded and any
// previously stored token is left untouched.
func (s *Store) SignIn(ctx context.Context, creds api.Credentials) error {
	if err := s.begin(); err != nil {
		return err
	}
	token, err := s.auth.SignIn(ctx, creds)
	return s.finish(ctx, token, err)
}

// SignUp registers a new account; same contract as SignIn.
func (s *Store) SignUp(ctx context.Context, reg api.Registration) error {
	if err := s.begin(); err != nil {
		return err
	}
	token, err := s.auth.SignUp(ctx, reg)
	return s.finish(ctx, token, err)
}

// Logout resets the session and removes the persisted token. It never calls
// the network; a persistence error is logged and returned but the in-memory
// state is reset regardless.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.status = StatusIdle
	s.lastErr = nil
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		s.log.Error(ctx, "failed to remove persisted token", "error", err)
		return err
	}
	return nil
}

// Rehydrate loads a previously persisted token into memory. No network call
// and no expiry check happen here; a stale token simply fails on first use.
func (s *Store) Rehydrate(ctx context.Context) error {
	token, err := s.repo.Get(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to load persisted token", "error", err)
		return err
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.status = StatusIdle
	s.mu.Unlock()
	return nil
}

// ClearError resets the attempt error without affecting the token.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = nil
	if s.status == StatusFailed {
		s.status = StatusIdle
	}
}

// begin transitions Idle/Failed → Loading, refusing concurrent attempts.
func (s *Store) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == StatusLoading {
		return ErrAttemptInFlight
	}
	s.status = StatusLoading
	s.lastErr = nil
	return nil
}

// finish settles a Loading attempt. On success the token replaces the
// current one in memory and in durable storage; on failure the previous
// token survives and only the attempt error is recorded.
func (s *Store) finish(ctx context.Context, token string, err error) error {
	if err != nil {
		attempt := classify(err)
		s.mu.Lock()
		s.status = StatusFailed
		s.lastErr = &attempt
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.token = token
	s.status = StatusIdle
	s.lastErr = nil
	s.mu.Unlock()

	if perr := s.repo.Set(ctx, token); perr != nil {
		// The session is usable for this run; only persistence is degraded.
		s.log.Warn(ctx, "failed to persist token", "error", perr)
	}
	return nil
}

// classify maps an API error to an attempt error, preferring the server's
// message when one exists.
func classify(err error) AttemptError {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = genericErrorMessage
		}
		return AttemptError{Kind: ErrorKindApplication, Message: msg}
	}
	return AttemptError{Kind: ErrorKindTransport, Message: genericErrorMessage}
}

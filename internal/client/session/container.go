// Package session holds the client-side authentication state: the
// persisted bearer credential, the one-shot startup resolver, and the
// container every other component reads session state through.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campuscli/internal/client/api"
	"campuscli/internal/client/models"
	"campuscli/internal/logging"
)

// Container is the process-wide owner of the session. All credential and
// user mutations funnel through its operations; every reader gets
// snapshots taken under the same lock, so a guard never observes a
// half-updated state.
type Container struct {
	api            api.Client
	tokens         *TokenStore
	log            logging.Logger
	resolveTimeout time.Duration

	resolveOnce sync.Once

	mu      sync.Mutex
	user    *models.User
	loading bool
}

// NewContainer builds a Container in the Resolving phase. resolveTimeout
// is the hard ceiling on the startup identity lookup.
func NewContainer(apiClient api.Client, tokens *TokenStore, resolveTimeout time.Duration, log logging.Logger) *Container {
	return &Container{
		api:            apiClient,
		tokens:         tokens,
		log:            log.With("component", "session"),
		resolveTimeout: resolveTimeout,
		loading:        true,
	}
}

// Snapshot returns the current session state.
func (c *Container) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stateFor(c.loading, c.user)
}

// setState publishes a new (loading, user) pair atomically.
func (c *Container) setState(loading bool, user *models.User) {
	c.mu.Lock()
	c.loading = loading
	c.user = user
	c.mu.Unlock()
}

// Resolve exchanges the stored credential for a user identity. It runs at
// most once per process; a second caller blocks until the first attempt
// finishes and then sees its result. Every exit path ends the loading
// window.
func (c *Container) Resolve(ctx context.Context) State {
	c.resolveOnce.Do(func() { c.resolve(ctx) })
	return c.Snapshot()
}

func (c *Container) resolve(ctx context.Context) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		c.log.Error(ctx, "credential read failed", "error", err)
		c.setState(false, nil)
		return
	}
	if token == "" {
		c.setState(false, nil)
		return
	}

	// Bounded lookup: past the deadline the session is treated as
	// unauthenticated instead of hanging the whole UI.
	lookupCtx, cancel := context.WithTimeout(ctx, c.resolveTimeout)
	defer cancel()

	user, err := c.api.Me(lookupCtx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			// Backend unreachable: the credential may still be good, keep
			// it for the next start.
			c.log.Warn(ctx, "session resolution unreachable", "error", err)
		} else {
			// Definitive rejection: the credential is dead, destroy it.
			c.log.Info(ctx, "stored credential rejected, clearing", "error", err)
			if clearErr := c.tokens.Clear(ctx); clearErr != nil {
				c.log.Error(ctx, "credential clear failed", "error", clearErr)
			}
		}
		c.setState(false, nil)
		return
	}

	c.log.Info(ctx, "session resolved", "user", user.DisplayName(), "role", user.Role)
	c.setState(false, user)
}

// Login exchanges credentials for a token. On success the credential is
// persisted and the session reflects the returned user before Login
// returns. On failure the backend's message comes back verbatim and the
// session is untouched. Beyond non-emptiness the credentials go through
// unchecked; accounts may predate the current registration rules.
func (c *Container) Login(ctx context.Context, email, password string) error {
	if err := models.Validate(models.LoginCredentials{Email: email, Password: password}); err != nil {
		return err
	}
	return c.exchange(ctx, func() (*api.AuthResult, error) {
		return c.api.Login(ctx, email, password)
	})
}

// Register creates an account. The only client-side checks are a
// well-formed email and the minimum secret length; the rest is the
// backend's job.
func (c *Container) Register(ctx context.Context, email, password string) error {
	if err := models.Validate(models.Credentials{Email: email, Password: password}); err != nil {
		return err
	}
	return c.exchange(ctx, func() (*api.AuthResult, error) {
		return c.api.Register(ctx, email, password)
	})
}

// exchange runs a credential exchange under the loading flag, guaranteeing
// loading ends false on every exit path.
func (c *Container) exchange(ctx context.Context, call func() (*api.AuthResult, error)) error {
	prev := c.Snapshot()
	c.setState(true, prev.User)

	res, err := call()
	if err != nil {
		c.setState(false, prev.User)
		return err
	}
	if res.Token == "" || res.User == nil {
		c.setState(false, prev.User)
		return fmt.Errorf("malformed auth response")
	}

	if err := c.tokens.Set(ctx, res.Token); err != nil {
		c.setState(false, prev.User)
		return fmt.Errorf("persist credential: %w", err)
	}

	c.setState(false, res.User)
	return nil
}

// Logout destroys the credential and resets the session. It completes
// from the client's perspective without any backend round-trip and is
// idempotent: a second call lands in the same terminal state.
func (c *Container) Logout(ctx context.Context) error {
	c.setState(false, nil)
	if err := c.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

// SetRole asks the backend for a role. Outcome (a): immediate assignment,
// the session reflects the new role. Outcome (b): a pending role request;
// not an error — the returned outcome carries the backend's message and
// the session reflects whatever role the backend chose in the meantime.
func (c *Container) SetRole(ctx context.Context, role models.Role, managerType, reason string) (*api.RoleOutcome, error) {
	if !role.Requestable() {
		return nil, fmt.Errorf("role %q cannot be requested", role)
	}

	out, err := c.api.SetRole(ctx, role, managerType, reason)
	if err != nil {
		return nil, err
	}

	// Refresh the cached identity before returning so a guard checking
	// right after SetRole sees the new state, not the stale one.
	if out.User != nil {
		c.mu.Lock()
		c.user = out.User
		c.mu.Unlock()
	}

	if out.Pending {
		c.log.Info(ctx, "role request pending", "role", role, "request_id", out.RequestID)
	} else {
		c.log.Info(ctx, "role assigned", "role", role)
	}
	return out, nil
}

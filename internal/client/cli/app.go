// Package cli is the terminal front end: a REPL whose commands are gated
// by the session guards and rendered from backend list endpoints.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"campuscli/internal/client/api"
	"campuscli/internal/client/config"
	"campuscli/internal/client/models"
	"campuscli/internal/client/session"
	"campuscli/internal/client/store"
	"campuscli/internal/logging"
)

// sessionIface is the slice of the session container the commands need.
// The real *session.Container satisfies it; tests provide a stub.
type sessionIface interface {
	Resolve(ctx context.Context) session.State
	Snapshot() session.State
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error
	SetRole(ctx context.Context, role models.Role, managerType, reason string) (*api.RoleOutcome, error)
}

type App struct {
	config  *config.Config
	session sessionIface
	api     api.Client
	store   *store.Store
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	tokens := session.NewTokenStore(st)
	apiClient := api.NewHTTPClient(c.APIBaseURL, &http.Client{Timeout: c.RequestTimeout}, tokens)
	sess := session.NewContainer(apiClient, tokens, c.ResolveTimeout, log)

	return &App{
		config:  c,
		session: sess,
		api:     apiClient,
		store:   st,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run resolves the stored session once and hands control to the REPL.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if a.store != nil {
			_ = a.store.Close()
		}
	}()

	st := a.session.Resolve(ctx)
	if st.User != nil {
		fmt.Fprintf(a.out, "Welcome back, %s\n", st.User.DisplayName())
	}

	a.Root(ctx)
}

// status renders the prompt suffix from the current session snapshot.
func (a *App) status() string {
	st := a.session.Snapshot()
	switch st.Phase {
	case session.PhaseResolving:
		return "(resolving)"
	case session.PhaseAnonymous:
		return ""
	case session.PhaseAuthenticatedNoRole:
		return fmt.Sprintf("(%s no-role)", st.User.DisplayName())
	default:
		return fmt.Sprintf("(%s %s)", st.User.DisplayName(), st.User.Role)
	}
}

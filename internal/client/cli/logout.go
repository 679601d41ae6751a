package cli

import (
	"context"
	"fmt"
)

// Logout is synchronous from the client's perspective: the credential and
// the session are gone when it returns, backend or no backend.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

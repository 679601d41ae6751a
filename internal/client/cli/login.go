package cli

import (
	"context"
	"errors"
	"fmt"

	"campuscli/internal/client/api"
	"campuscli/internal/common"
)

// Login prompts for credentials and authenticates. Backend rejections are
// shown verbatim; an unreachable backend gets the friendlier "cannot
// connect" wording. There is no silent registration fallback: a typo in an
// existing password must fail, not mint a fresh account.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Fprintln(a.out, "Cannot connect to the campus backend")
			return nil
		}
		fmt.Fprintln(a.out, "Login failed:", err.Error())
		return nil
	}

	st := a.session.Snapshot()
	fmt.Fprintf(a.out, "Logged in as %s\n", st.User.DisplayName())
	if !st.User.HasRole() {
		fmt.Fprintln(a.out, "No role assigned yet, type 'roles' to choose one")
	}
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"campuscli/internal/client/api"
	"campuscli/internal/common"
)

// Register creates an account and logs the session in with the returned
// credential.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Register(ctx, email, string(password)); err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Fprintln(a.out, "Cannot connect to the campus backend")
			return nil
		}
		fmt.Fprintln(a.out, "Registration failed:", err.Error())
		return nil
	}

	fmt.Fprintln(a.out, "Account created, type 'roles' to choose your role")
	return nil
}

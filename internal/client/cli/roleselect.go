package cli

import (
	"context"
	"fmt"

	"campuscli/internal/client/models"
)

// Roles runs role selection. Student is self-service; lecturer and
// manager go through the approval workflow, in which case the backend's
// pending message is relayed as information, not as a failure.
func (a *App) Roles(ctx context.Context) error {
	fmt.Fprintln(a.out, "Roles: student (self-service), lecturer (needs approval), manager (needs approval)")

	input, err := getSimpleText(a.reader, "Enter role", a.out)
	if err != nil {
		return err
	}
	role := models.Role(input)
	if !role.Requestable() {
		return fmt.Errorf("role %q cannot be requested", input)
	}

	var managerType, reason string
	if role == models.RoleManager {
		if managerType, err = getSimpleText(a.reader, "Manager type (e.g. facilities, library)", a.out); err != nil {
			return err
		}
	}
	if role != models.RoleStudent {
		if reason, err = getSimpleText(a.reader, "Reason for the request", a.out); err != nil {
			return err
		}
	}

	out, err := a.session.SetRole(ctx, role, managerType, reason)
	if err != nil {
		return err
	}

	if out.Pending {
		fmt.Fprintln(a.out, out.Message)
		return nil
	}
	fmt.Fprintf(a.out, "Role set to %s\n", a.session.Snapshot().User.Role)
	return nil
}

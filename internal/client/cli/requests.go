package cli

import (
	"context"
	"fmt"
)

// RoleRequests lists role elevation requests awaiting a decision.
func (a *App) RoleRequests(ctx context.Context) error {
	reqs, err := a.api.RoleRequests(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No role requests")
		return nil
	}
	fmt.Fprintln(a.out, "Role requests:")
	for _, r := range reqs {
		fmt.Fprintf(a.out, "  [%d] %-28s wants %-10s %s\n", r.ID, r.UserEmail, r.RequestedRole, r.Status)
		if r.Reason != "" {
			fmt.Fprintf(a.out, "      reason: %s\n", r.Reason)
		}
	}
	return nil
}

// ApproveRequest approves a role request by id.
func (a *App) ApproveRequest(ctx context.Context) error {
	id, err := a.getInt("Request id")
	if err != nil {
		return err
	}
	if err := a.api.ApproveRoleRequest(ctx, int64(id)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request #%d approved\n", id)
	return nil
}

// RejectRequest rejects a role request by id with an optional reason.
func (a *App) RejectRequest(ctx context.Context) error {
	id, err := a.getInt("Request id")
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Rejection reason (optional)", a.out)
	if err != nil {
		return err
	}
	if err := a.api.RejectRoleRequest(ctx, int64(id), reason); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Request #%d rejected\n", id)
	return nil
}

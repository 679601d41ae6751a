package cli

import (
	"context"
	"fmt"
)

// Stats prints the admin dashboard counters.
func (a *App) Stats(ctx context.Context) error {
	s, err := a.api.AdminStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Users: %d total (%d students, %d lecturers, %d managers, %d admins)\n",
		s.Users.Total, s.Users.Students, s.Users.Lecturers, s.Users.Managers, s.Users.Admins)
	fmt.Fprintf(a.out, "Pending role requests: %d\n", s.PendingRoleRequests)
	fmt.Fprintf(a.out, "Faults: %d total, %d open\n", s.Faults.Total, s.Faults.Open)
	return nil
}

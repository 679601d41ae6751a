package cli

import (
	"context"
	"fmt"
	"strings"

	"campuscli/internal/client/guard"
	"campuscli/internal/client/models"
)

// command binds a REPL verb to a route and its allow-list. Commands with
// an empty route bypass the guard (auth verbs must stay reachable while
// anonymous).
type command struct {
	route guard.Route
	allow []models.Role
	run   func(ctx context.Context) error
	help  string
}

var managersOnly = []models.Role{models.RoleManager, models.RoleAdmin}
var adminsOnly = []models.Role{models.RoleAdmin}

func (a *App) commands() map[string]command {
	return map[string]command{
		"register":  {run: a.Register, help: "create an account"},
		"login":     {run: a.Login, help: "authenticate"},
		"logout":    {run: a.Logout, help: "log out"},
		"roles":     {route: guard.RouteRoleSelect, run: a.Roles, help: "choose or request a role"},
		"status":    {route: guard.RouteHome, run: a.LibraryStatus, help: "main library status"},
		"libraries": {route: guard.RouteHome, run: a.Libraries, help: "library occupancy overview"},
		"labs":      {route: guard.RouteHome, run: a.Labs, help: "lab occupancy"},
		"occupancy": {route: "occupancy", run: a.Occupancy, help: "report current occupancy"},
		"rooms":     {route: guard.RouteHome, run: a.Rooms, help: "list bookable rooms"},
		"book":      {route: "bookings", run: a.Book, help: "request a room booking"},
		"bookings":  {route: "bookings", run: a.Bookings, help: "list room booking requests"},
		"assign":    {route: "bookings", allow: managersOnly, run: a.AssignBooking, help: "approve a booking, assigning a room"},
		"decline":   {route: "bookings", allow: managersOnly, run: a.DeclineBooking, help: "reject a booking request"},
		"faults":    {route: "faults", run: a.Faults, help: "list fault reports"},
		"report":    {route: "faults", run: a.ReportFault, help: "report a facility fault"},
		"triage":    {route: "faults", allow: managersOnly, run: a.TriageFault, help: "update a fault report"},
		"requests":  {route: "requests", allow: managersOnly, run: a.RoleRequests, help: "list role requests"},
		"approve":   {route: "requests", allow: managersOnly, run: a.ApproveRequest, help: "approve a role request"},
		"reject":    {route: "requests", allow: managersOnly, run: a.RejectRequest, help: "reject a role request"},
		"stats":     {route: "stats", allow: adminsOnly, run: a.Stats, help: "campus-wide counters"},
		"watch":     {route: guard.RouteHome, run: a.Watch, help: "auto-refreshing dashboard"},
	}
}

// dispatch runs the guard for the command's route and either executes it
// or explains the redirect. Guarded commands never run outside an
// allowed session state.
func (a *App) dispatch(ctx context.Context, name string, cmd command) {
	if cmd.route != "" {
		switch guard.Decide(a.session.Snapshot(), cmd.route, cmd.allow) {
		case guard.Defer:
			fmt.Fprintln(a.out, "Session still resolving, try again in a moment")
			return
		case guard.RedirectLogin:
			fmt.Fprintln(a.out, "Please login first")
			return
		case guard.RedirectRoleSelect:
			fmt.Fprintln(a.out, "Choose a role first (type 'roles')")
			return
		case guard.RedirectHome:
			fmt.Fprintln(a.out, "Not available for your role")
			return
		}
	}

	if err := cmd.run(ctx); err != nil {
		fmt.Fprintln(a.out, "Error:", err.Error())
	}
}

// Root starts the read–eval–print loop. It exits on EOF, on context
// cancellation, or when the user types "exit" or "quit". Command errors
// are reported inline; nothing in the loop is fatal. All input goes
// through a.reader so the loop and the commands share one buffer.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Campus facilities client (type 'help' for commands)")

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(a.out, "campus %s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := parts[0]

		switch name {
		case "help":
			a.help()
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			cmd, ok := a.commands()[name]
			if !ok {
				fmt.Fprintln(a.out, "Unknown command:", name)
				continue
			}
			a.dispatch(ctx, name, cmd)
		}
	}
}

func (a *App) help() {
	st := a.session.Snapshot()
	if st.User == nil {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
		return
	}
	if !st.User.HasRole() {
		fmt.Fprintln(a.out, "Available commands: roles, logout, exit")
		return
	}

	names := []string{"status", "libraries", "labs", "occupancy", "rooms", "book", "bookings", "faults", "report", "watch"}
	if st.User.Role.In(managersOnly) {
		names = append(names, "assign", "decline", "triage", "requests", "approve", "reject")
	}
	if st.User.Role == models.RoleAdmin {
		names = append(names, "stats")
	}
	names = append(names, "roles", "logout", "exit")
	fmt.Fprintln(a.out, "Available commands:", strings.Join(names, ", "))
}

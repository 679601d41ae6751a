package cli

import (
	"context"
	"fmt"
	"strconv"
)

// getInt reads an integer through the text seam.
func (a *App) getInt(prompt string) (int, error) {
	s, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// Occupancy submits a head-count update for a library or a lab. Managers
// see it applied immediately; everyone else gets a pending approval
// request, which is information rather than an error.
func (a *App) Occupancy(ctx context.Context) error {
	kind, err := getSimpleText(a.reader, "Update 'library' or 'lab'?", a.out)
	if err != nil {
		return err
	}

	switch kind {
	case "library":
		id, err := a.getInt("Library id")
		if err != nil {
			return err
		}
		count, err := a.getInt("Current occupancy")
		if err != nil {
			return err
		}
		out, err := a.api.UpdateLibrary(ctx, int64(id), &count, nil)
		if err != nil {
			return err
		}
		if out.Pending {
			fmt.Fprintln(a.out, out.Message)
			return nil
		}
		fmt.Fprintln(a.out, "Library updated")

	case "lab":
		id, err := a.getInt("Lab id")
		if err != nil {
			return err
		}
		count, err := a.getInt("Current occupancy")
		if err != nil {
			return err
		}
		out, err := a.api.UpdateLab(ctx, int64(id), &count, nil)
		if err != nil {
			return err
		}
		if out.Pending {
			fmt.Fprintln(a.out, out.Message)
			return nil
		}
		fmt.Fprintln(a.out, "Lab updated")

	default:
		return fmt.Errorf("unknown facility kind %q", kind)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"campuscli/internal/client/models"
)

// Faults lists fault reports visible to the current user.
func (a *App) Faults(ctx context.Context) error {
	faults, err := a.api.Faults(ctx)
	if err != nil {
		return err
	}
	if len(faults) == 0 {
		fmt.Fprintln(a.out, "No fault reports")
		return nil
	}
	fmt.Fprintln(a.out, "Fault reports:")
	for _, f := range faults {
		fmt.Fprintf(a.out, "  [%d] %-30s %-10s %-10s %s\n", f.ID, f.Title, f.Severity, f.Status, f.LocationType)
		if f.AssignedTo != "" {
			fmt.Fprintf(a.out, "      assigned to %s\n", f.AssignedTo)
		}
	}
	return nil
}

// ReportFault collects a fault draft, validates it locally and submits it.
// Validation failures never reach the backend.
func (a *App) ReportFault(ctx context.Context) error {
	var draft models.FaultDraft
	var err error

	if draft.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if draft.Description, err = getSimpleText(a.reader, "Description", a.out); err != nil {
		return err
	}
	if draft.LocationType, err = getSimpleText(a.reader, "Location type (library/lab/classroom/other)", a.out); err != nil {
		return err
	}
	if draft.Building, err = getSimpleText(a.reader, "Building (optional)", a.out); err != nil {
		return err
	}
	if draft.RoomNumber, err = getSimpleText(a.reader, "Room number (optional)", a.out); err != nil {
		return err
	}
	if draft.Category, err = getSimpleText(a.reader, "Category (optional)", a.out); err != nil {
		return err
	}
	if draft.Severity, err = getSimpleText(a.reader, "Severity (low/medium/high/critical, optional)", a.out); err != nil {
		return err
	}

	if err := models.Validate(draft); err != nil {
		return err
	}

	created, err := a.api.CreateFault(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Fault #%d reported (%s)\n", created.ID, created.Status)
	return nil
}

// TriageFault updates status/assignment on an existing fault. Blank
// answers leave the corresponding field untouched.
func (a *App) TriageFault(ctx context.Context) error {
	id, err := a.getInt("Fault id")
	if err != nil {
		return err
	}

	var update models.FaultUpdate
	status, err := getSimpleText(a.reader, "Status (open/in_progress/resolved/closed, blank to keep)", a.out)
	if err != nil {
		return err
	}
	if status != "" {
		update.Status = &status
	}
	assignee, err := getSimpleText(a.reader, "Assign to (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if assignee != "" {
		update.AssignedTo = &assignee
	}
	notes, err := getSimpleText(a.reader, "Resolution notes (blank to keep)", a.out)
	if err != nil {
		return err
	}
	if notes != "" {
		update.ResolutionNotes = &notes
	}

	if err := models.Validate(update); err != nil {
		return err
	}
	if err := a.api.UpdateFault(ctx, int64(id), update); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Fault #%d updated\n", id)
	return nil
}

package cli

import (
	"context"
	"fmt"
	"io"

	"campuscli/internal/client/models"
)

func renderLibrary(w io.Writer, l models.Library) {
	open := "open"
	if !l.IsOpen {
		open = "closed"
	}
	pct := l.OccupancyPercentage
	if pct == 0 {
		pct = models.OccupancyPercent(l.CurrentOccupancy, l.MaxCapacity)
	}
	fmt.Fprintf(w, "  [%d] %-24s %4d/%-4d %5.1f%% %-8s %s\n",
		l.ID, l.Name, l.CurrentOccupancy, l.MaxCapacity, pct, l.Level(), open)
}

func renderLab(w io.Writer, l models.Lab) {
	avail := "available"
	if !l.IsAvailable {
		avail = "unavailable"
	}
	fmt.Fprintf(w, "  [%d] %-20s %s %-6s %4d/%-4d %-8s %s\n",
		l.ID, l.Name, l.Building, l.RoomNumber, l.CurrentOccupancy, l.MaxCapacity, l.Level(), avail)
	if l.EquipmentStatus != "" {
		fmt.Fprintf(w, "      equipment: %s\n", l.EquipmentStatus)
	}
}

// LibraryStatus shows the main library's current status.
func (a *App) LibraryStatus(ctx context.Context) error {
	lib, err := a.api.LibraryStatus(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Library:")
	renderLibrary(a.out, *lib)
	return nil
}

// Libraries lists every library with its occupancy bucket.
func (a *App) Libraries(ctx context.Context) error {
	libs, err := a.api.Libraries(ctx)
	if err != nil {
		return err
	}
	if len(libs) == 0 {
		fmt.Fprintln(a.out, "No libraries registered")
		return nil
	}
	fmt.Fprintln(a.out, "Libraries:")
	for _, l := range libs {
		renderLibrary(a.out, l)
	}
	return nil
}

// Labs lists every lab with its occupancy and availability.
func (a *App) Labs(ctx context.Context) error {
	labs, err := a.api.Labs(ctx)
	if err != nil {
		return err
	}
	if len(labs) == 0 {
		fmt.Fprintln(a.out, "No labs registered")
		return nil
	}
	fmt.Fprintln(a.out, "Labs:")
	for _, l := range labs {
		renderLab(a.out, l)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"campuscli/internal/client/models"
)

// Rooms lists the bookable rooms.
func (a *App) Rooms(ctx context.Context) error {
	rooms, err := a.api.Rooms(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, "No rooms registered")
		return nil
	}
	fmt.Fprintln(a.out, "Rooms:")
	for _, r := range rooms {
		fmt.Fprintf(a.out, "  [%d] %-20s %-14s %-12s seats %d\n", r.ID, r.Name, r.Type, r.Building, r.Capacity)
	}
	return nil
}

// Bookings lists room booking requests. The backend scopes the list to
// the caller, so students only ever see their own.
func (a *App) Bookings(ctx context.Context) error {
	reqs, err := a.api.RoomRequests(ctx)
	if err != nil {
		return err
	}
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No booking requests")
		return nil
	}
	fmt.Fprintln(a.out, "Booking requests:")
	for _, r := range reqs {
		fmt.Fprintf(a.out, "  [%d] %-14s %s %s-%s %-10s %s\n",
			r.ID, r.RoomType, r.Date, r.StartTime, r.EndTime, r.Status, r.RequesterEmail)
		if r.ApprovedRoomName != "" {
			fmt.Fprintf(a.out, "      assigned: %s\n", r.ApprovedRoomName)
		}
		if r.RejectionReason != "" {
			fmt.Fprintf(a.out, "      rejected: %s\n", r.RejectionReason)
		}
	}
	return nil
}

// Book collects a booking draft, validates it locally and submits it.
// Students always get a partial booking; the full-booking choice is only
// offered to lecturers and above.
func (a *App) Book(ctx context.Context) error {
	var draft models.BookingDraft
	var err error

	if draft.RoomType, err = getSimpleText(a.reader, "Room type (classroom/lecture_hall/meeting_room/seminar_room/lab)", a.out); err != nil {
		return err
	}
	if draft.Date, err = getSimpleText(a.reader, "Date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if draft.StartTime, err = getSimpleText(a.reader, "Start time (HH:MM)", a.out); err != nil {
		return err
	}
	if draft.EndTime, err = getSimpleText(a.reader, "End time (HH:MM)", a.out); err != nil {
		return err
	}
	if draft.Purpose, err = getSimpleText(a.reader, "Purpose", a.out); err != nil {
		return err
	}
	if draft.ExpectedAttendees, err = a.getInt("Seats needed"); err != nil {
		return err
	}
	equipment, err := getSimpleText(a.reader, "Equipment needed (comma-separated, optional)", a.out)
	if err != nil {
		return err
	}
	for _, item := range strings.Split(equipment, ",") {
		if item = strings.TrimSpace(item); item != "" {
			draft.EquipmentNeeded = append(draft.EquipmentNeeded, item)
		}
	}

	draft.BookingType = models.BookingPartial
	st := a.session.Snapshot()
	if st.User != nil && st.User.Role != models.RoleStudent {
		full, err := getSimpleText(a.reader, "Book the entire room? (y/N)", a.out)
		if err != nil {
			return err
		}
		if strings.EqualFold(full, "y") {
			draft.BookingType = models.BookingFull
		}
	}

	if err := models.Validate(draft); err != nil {
		return err
	}

	created, err := a.api.CreateRoomRequest(ctx, draft)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking request #%d submitted (%s)\n", created.ID, created.Status)
	return nil
}

// AssignBooking approves a booking request and assigns a concrete room.
func (a *App) AssignBooking(ctx context.Context) error {
	id, err := a.getInt("Booking request id")
	if err != nil {
		return err
	}
	roomID, err := a.getInt("Room id to assign")
	if err != nil {
		return err
	}
	if err := a.api.ApproveRoomRequest(ctx, int64(id), int64(roomID)); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d approved, room %d assigned\n", id, roomID)
	return nil
}

// DeclineBooking rejects a booking request. A reason is required so the
// requester knows why.
func (a *App) DeclineBooking(ctx context.Context) error {
	id, err := a.getInt("Booking request id")
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Rejection reason", a.out)
	if err != nil {
		return err
	}
	if reason == "" {
		return fmt.Errorf("a rejection reason is required")
	}
	if err := a.api.RejectRoomRequest(ctx, int64(id), reason); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Booking #%d declined\n", id)
	return nil
}

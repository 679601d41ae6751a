package models

// BookingType distinguishes booking a whole room from reserving seats in
// one. Students always book partially; full bookings are for staff.
type BookingType string

const (
	BookingPartial BookingType = "partial_booking"
	BookingFull    BookingType = "full_booking"
)

// Room is a bookable space as the backend returns it.
type Room struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Building string `json:"building,omitempty"`
	Capacity int    `json:"capacity"`
}

// RoomRequest is a room booking request. The reviewer fields are set by
// the backend once a manager decides; the client never computes them.
type RoomRequest struct {
	ID                int64       `json:"id"`
	RoomType          string      `json:"room_type"`
	Date              string      `json:"date"`
	StartTime         string      `json:"start_time"`
	EndTime           string      `json:"end_time"`
	Purpose           string      `json:"purpose"`
	ExpectedAttendees int         `json:"expected_attendees"`
	EquipmentNeeded   []string    `json:"equipment_needed,omitempty"`
	BookingType       BookingType `json:"booking_type"`
	Status            string      `json:"status"`
	RequesterEmail    string      `json:"requester_email"`
	RequesterName     string      `json:"requester_name,omitempty"`
	ApprovedRoomID    int64       `json:"approved_room_id,omitempty"`
	ApprovedRoomName  string      `json:"approved_room_name,omitempty"`
	ReviewedBy        string      `json:"reviewed_by,omitempty"`
	ReviewedAt        string      `json:"reviewed_at,omitempty"`
	RejectionReason   string      `json:"rejection_reason,omitempty"`
	CreatedAt         string      `json:"created_at,omitempty"`
}

// BookingDraft is the client-side input for a new room request.
type BookingDraft struct {
	RoomType          string      `json:"room_type" validate:"required,oneof=classroom lecture_hall meeting_room seminar_room lab"`
	Date              string      `json:"date" validate:"required"`
	StartTime         string      `json:"start_time" validate:"required"`
	EndTime           string      `json:"end_time" validate:"required"`
	Purpose           string      `json:"purpose" validate:"required"`
	ExpectedAttendees int         `json:"expected_attendees" validate:"omitempty,min=1"`
	EquipmentNeeded   []string    `json:"equipment_needed,omitempty"`
	BookingType       BookingType `json:"booking_type" validate:"omitempty,oneof=partial_booking full_booking"`
}

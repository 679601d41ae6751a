package models

// FaultReport is a facility fault as the backend returns it.
type FaultReport struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	LocationType    string `json:"location_type"`
	Building        string `json:"building"`
	RoomNumber      string `json:"room_number"`
	Category        string `json:"category"`
	Severity        string `json:"severity"`
	Status          string `json:"status"`
	AssignedTo      string `json:"assigned_to,omitempty"`
	ResolutionNotes string `json:"resolution_notes,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	ReporterEmail   string `json:"reporter_email"`
}

// FaultDraft is the client-side input for creating a fault report.
// Everything beyond these checks is validated server-side.
type FaultDraft struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description" validate:"required"`
	LocationType string `json:"location_type" validate:"required,oneof=library lab classroom other"`
	Building     string `json:"building"`
	RoomNumber   string `json:"room_number"`
	Category     string `json:"category" validate:"omitempty,oneof=electrical plumbing hvac equipment network furniture other"`
	Severity     string `json:"severity" validate:"omitempty,oneof=low medium high critical"`
}

// FaultUpdate carries a manager's triage changes. Nil fields are omitted
// from the request and left untouched by the backend.
type FaultUpdate struct {
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=open in_progress resolved closed"`
	AssignedTo      *string `json:"assigned_to,omitempty"`
	ResolutionNotes *string `json:"resolution_notes,omitempty"`
}

package models

// RoleRequestStatus is the server-owned lifecycle of an elevation request.
// The client only issues approve/reject intents; it never computes
// transitions.
type RoleRequestStatus string

const (
	RoleRequestPending  RoleRequestStatus = "pending"
	RoleRequestApproved RoleRequestStatus = "approved"
	RoleRequestRejected RoleRequestStatus = "rejected"
)

// RoleRequest is a pending/decided role elevation request.
type RoleRequest struct {
	ID              int64             `json:"id"`
	UserID          int64             `json:"user_id"`
	UserEmail       string            `json:"user_email"`
	UserUsername    string            `json:"user_username"`
	RequestedRole   Role              `json:"requested_role"`
	ManagerType     string            `json:"manager_type,omitempty"`
	Reason          string            `json:"reason,omitempty"`
	Status          RoleRequestStatus `json:"status"`
	RequestedAt     string            `json:"requested_at,omitempty"`
	ApprovedBy      string            `json:"approved_by,omitempty"`
	ApprovedAt      string            `json:"approved_at,omitempty"`
	RejectionReason string            `json:"rejection_reason,omitempty"`
}

// AdminStats is the dashboard counters endpoint payload.
type AdminStats struct {
	Users struct {
		Total     int `json:"total"`
		Students  int `json:"students"`
		Lecturers int `json:"lecturers"`
		Managers  int `json:"managers"`
		Admins    int `json:"admins"`
	} `json:"users"`
	PendingRoleRequests int `json:"pending_role_requests"`
	Faults              struct {
		Total int `json:"total"`
		Open  int `json:"open"`
	} `json:"faults"`
}

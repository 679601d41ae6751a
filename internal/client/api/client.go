// Package api is the HTTP JSON client for the campus facilities backend.
// All remote state flows through the Client interface; the concrete
// implementation lives in httpclient.go.
package api

import (
	"context"

	"campuscli/internal/client/models"
)

// TokenProvider supplies the current bearer credential. An empty token
// with a nil error means "no credential"; requests are then sent
// unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// AuthResult is the login/register response.
type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// RoleOutcome is the set-role response. Pending is the backend's
// machine-readable signal that a role request was queued instead of the
// role being assigned immediately; Message is its human-readable
// explanation and must be shown to the user, not treated as an error.
type RoleOutcome struct {
	User      *models.User `json:"user"`
	Pending   bool         `json:"pending_request"`
	RequestID int64        `json:"request_id,omitempty"`
	Message   string       `json:"message,omitempty"`
}

// UpdateOutcome is returned by occupancy update endpoints: managers get a
// direct update, students/lecturers get a pending approval request.
type UpdateOutcome struct {
	Pending   bool   `json:"-"`
	RequestID int64  `json:"request_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Message   string `json:"message,omitempty"`
}

// FaultCreated acknowledges a created fault report.
type FaultCreated struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// BookingCreated acknowledges a created room booking request.
type BookingCreated struct {
	ID      int64  `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Client defines every backend operation the views and the session
// container need. All methods honor context cancellation and map
// failures onto ErrUnavailable, ErrUnauthorized or *Error.
type Client interface {
	// Auth.
	Register(ctx context.Context, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context) (*models.User, error)
	SetRole(ctx context.Context, role models.Role, managerType, reason string) (*RoleOutcome, error)

	// Occupancy views.
	LibraryStatus(ctx context.Context) (*models.Library, error)
	Libraries(ctx context.Context) ([]models.Library, error)
	Labs(ctx context.Context) ([]models.Lab, error)
	UpdateLibrary(ctx context.Context, id int64, occupancy *int, isOpen *bool) (*UpdateOutcome, error)
	UpdateLab(ctx context.Context, id int64, occupancy *int, available *bool) (*UpdateOutcome, error)

	// Fault workflow.
	Faults(ctx context.Context) ([]models.FaultReport, error)
	CreateFault(ctx context.Context, draft models.FaultDraft) (*FaultCreated, error)
	UpdateFault(ctx context.Context, id int64, update models.FaultUpdate) error

	// Room booking workflow. The backend scopes the request list to the
	// caller: students see their own, managers and admins see everyone's.
	Rooms(ctx context.Context) ([]models.Room, error)
	RoomRequests(ctx context.Context) ([]models.RoomRequest, error)
	CreateRoomRequest(ctx context.Context, draft models.BookingDraft) (*BookingCreated, error)
	ApproveRoomRequest(ctx context.Context, id, roomID int64) error
	RejectRoomRequest(ctx context.Context, id int64, reason string) error

	// Role-request workflow.
	RoleRequests(ctx context.Context) ([]models.RoleRequest, error)
	ApproveRoleRequest(ctx context.Context, id int64) error
	RejectRoleRequest(ctx context.Context, id int64, reason string) error

	// Admin dashboard.
	AdminStats(ctx context.Context) (*models.AdminStats, error)
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"campuscli/internal/client/models"

	"github.com/google/uuid"
)

// HTTPClient talks to the campus backend over HTTP JSON. The bearer token
// is read through the TokenProvider on every request, so the client never
// holds a credential of its own.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

// noToken is used when the client is constructed without a provider.
type noToken struct{}

func (noToken) Token(context.Context) (string, error) { return "", nil }

func NewHTTPClient(baseURL string, httpClient *http.Client, tokens TokenProvider) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if tokens == nil {
		tokens = noToken{}
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
	}
}

// do performs one JSON request/response exchange. A nil body sends no
// payload; a nil out discards the response body. Failures come back as
// ErrUnavailable, ErrUnauthorized (wrapping the backend message) or *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapStatusError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// mapTransportError folds network failures and deadline expiry into
// ErrUnavailable so callers can treat "could not reach the backend" as one
// condition.
func (c *HTTPClient) mapTransportError(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// mapStatusError turns a non-2xx response into the error taxonomy. The
// backend sends {message} bodies; an absent body becomes an empty message.
func (c *HTTPClient) mapStatusError(resp *http.Response) error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		if body.Message == "" {
			return ErrUnauthorized
		}
		return fmt.Errorf("%w: %s", ErrUnauthorized, body.Message)
	default:
		return &Error{Status: resp.StatusCode, Message: body.Message}
	}
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var res AuthResult
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var res struct {
		User *models.User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return res.User, nil
}

func (c *HTTPClient) SetRole(ctx context.Context, role models.Role, managerType, reason string) (*RoleOutcome, error) {
	req := map[string]string{"role": string(role)}
	if managerType != "" {
		req["manager_type"] = managerType
	}
	if reason != "" {
		req["reason"] = reason
	}

	var res RoleOutcome
	if err := c.do(ctx, http.MethodPost, "/api/auth/set-role", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) LibraryStatus(ctx context.Context) (*models.Library, error) {
	var res models.Library
	if err := c.do(ctx, http.MethodGet, "/api/library/status", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Libraries(ctx context.Context) ([]models.Library, error) {
	var res struct {
		Libraries []models.Library `json:"libraries"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/library/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Libraries, nil
}

func (c *HTTPClient) Labs(ctx context.Context) ([]models.Lab, error) {
	var res struct {
		Labs []models.Lab `json:"labs"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/labs/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Labs, nil
}

func (c *HTTPClient) UpdateLibrary(ctx context.Context, id int64, occupancy *int, isOpen *bool) (*UpdateOutcome, error) {
	req := map[string]any{"library_id": id}
	if occupancy != nil {
		req["current_occupancy"] = *occupancy
	}
	if isOpen != nil {
		req["is_open"] = *isOpen
	}

	var res UpdateOutcome
	if err := c.do(ctx, http.MethodPost, "/api/library/update", req, &res); err != nil {
		return nil, err
	}
	res.Pending = res.Status == "pending"
	return &res, nil
}

func (c *HTTPClient) UpdateLab(ctx context.Context, id int64, occupancy *int, available *bool) (*UpdateOutcome, error) {
	req := map[string]any{}
	if occupancy != nil {
		req["current_occupancy"] = *occupancy
	}
	if available != nil {
		req["is_available"] = *available
	}

	var res UpdateOutcome
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/labs/%d/update", id), req, &res); err != nil {
		return nil, err
	}
	res.Pending = res.Status == "pending"
	return &res, nil
}

func (c *HTTPClient) Faults(ctx context.Context) ([]models.FaultReport, error) {
	var res struct {
		Reports []models.FaultReport `json:"reports"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/faults/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Reports, nil
}

func (c *HTTPClient) CreateFault(ctx context.Context, draft models.FaultDraft) (*FaultCreated, error) {
	var res FaultCreated
	if err := c.do(ctx, http.MethodPost, "/api/faults/create", draft, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateFault(ctx context.Context, id int64, update models.FaultUpdate) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/faults/%d/update", id), update, nil)
}

func (c *HTTPClient) Rooms(ctx context.Context) ([]models.Room, error) {
	var res struct {
		Rooms []models.Room `json:"rooms"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/rooms/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Rooms, nil
}

func (c *HTTPClient) RoomRequests(ctx context.Context) ([]models.RoomRequest, error) {
	var res struct {
		Requests []models.RoomRequest `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/room-requests/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Requests, nil
}

func (c *HTTPClient) CreateRoomRequest(ctx context.Context, draft models.BookingDraft) (*BookingCreated, error) {
	var res BookingCreated
	if err := c.do(ctx, http.MethodPost, "/api/room-requests/create", draft, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ApproveRoomRequest(ctx context.Context, id, roomID int64) error {
	body := map[string]int64{"room_id": roomID}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/room-requests/%d/approve", id), body, nil)
}

func (c *HTTPClient) RejectRoomRequest(ctx context.Context, id int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"rejection_reason": reason}
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/room-requests/%d/reject", id), body, nil)
}

func (c *HTTPClient) RoleRequests(ctx context.Context) ([]models.RoleRequest, error) {
	var res struct {
		Requests []models.RoleRequest `json:"requests"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/role-requests/list", nil, &res); err != nil {
		return nil, err
	}
	return res.Requests, nil
}

func (c *HTTPClient) ApproveRoleRequest(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/role-requests/%d/approve", id), nil, nil)
}

func (c *HTTPClient) RejectRoleRequest(ctx context.Context, id int64, reason string) error {
	var body any
	if reason != "" {
		body = map[string]string{"rejection_reason": reason}
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/api/role-requests/%d/reject", id), body, nil)
}

func (c *HTTPClient) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	var res models.AdminStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

var _ Client = (*HTTPClient)(nil)

package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campuscli/internal/client/api"
	"campuscli/internal/client/config"
	"campuscli/internal/client/models"
	"campuscli/internal/client/session"
	"campuscli/internal/logging"
)

var errNotImplemented = errors.New("not implemented in fake")

type fakeSession struct {
	state      session.State
	afterLogin session.State

	loginErr    error
	registerErr error
	roleOut     *api.RoleOutcome
	roleErr     error

	loginEmail    string
	loginPassword string
	registerCalls int
	logoutCalls   int
	roleArg       models.Role
	managerType   string
	reason        string
}

func (f *fakeSession) Resolve(ctx context.Context) session.State { return f.state }
func (f *fakeSession) Snapshot() session.State                   { return f.state }

func (f *fakeSession) Login(ctx context.Context, email, password string) error {
	f.loginEmail, f.loginPassword = email, password
	if f.loginErr != nil {
		return f.loginErr
	}
	f.state = f.afterLogin
	return nil
}

func (f *fakeSession) Register(ctx context.Context, email, password string) error {
	f.registerCalls++
	if f.registerErr != nil {
		return f.registerErr
	}
	f.state = f.afterLogin
	return nil
}

func (f *fakeSession) Logout(ctx context.Context) error {
	f.logoutCalls++
	f.state = session.State{Phase: session.PhaseAnonymous}
	return nil
}

func (f *fakeSession) SetRole(ctx context.Context, role models.Role, managerType, reason string) (*api.RoleOutcome, error) {
	f.roleArg, f.managerType, f.reason = role, managerType, reason
	if f.roleErr != nil {
		return nil, f.roleErr
	}
	if f.roleOut != nil && !f.roleOut.Pending && f.roleOut.User != nil {
		f.state = session.State{Phase: session.PhaseAuthenticatedWithRole, User: f.roleOut.User}
	}
	return f.roleOut, nil
}

type fakeAPI struct {
	library   *models.Library
	libraries []models.Library
	labs      []models.Lab
	faults    []models.FaultReport
	requests  []models.RoleRequest
	rooms     []models.Room
	bookings  []models.RoomRequest
	stats     *models.AdminStats
	updateOut *api.UpdateOutcome
	created   *api.FaultCreated
	booked    *api.BookingCreated
	err       error

	drafts        []models.FaultDraft
	bookingDrafts []models.BookingDraft
	faultUpdates  map[int64]models.FaultUpdate
	approved      []int64
	rejected      []int64
	rejectReason  string
	assigned      map[int64]int64
	declined      []int64
	declineReason string
}

func (f *fakeAPI) Register(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return nil, errNotImplemented
}
func (f *fakeAPI) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	return nil, errNotImplemented
}
func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) { return nil, errNotImplemented }
func (f *fakeAPI) SetRole(ctx context.Context, role models.Role, managerType, reason string) (*api.RoleOutcome, error) {
	return nil, errNotImplemented
}
func (f *fakeAPI) LibraryStatus(ctx context.Context) (*models.Library, error) {
	return f.library, f.err
}
func (f *fakeAPI) Libraries(ctx context.Context) ([]models.Library, error) {
	return f.libraries, f.err
}
func (f *fakeAPI) Labs(ctx context.Context) ([]models.Lab, error) { return f.labs, f.err }
func (f *fakeAPI) UpdateLibrary(ctx context.Context, id int64, occupancy *int, isOpen *bool) (*api.UpdateOutcome, error) {
	return f.updateOut, f.err
}
func (f *fakeAPI) UpdateLab(ctx context.Context, id int64, occupancy *int, available *bool) (*api.UpdateOutcome, error) {
	return f.updateOut, f.err
}
func (f *fakeAPI) Faults(ctx context.Context) ([]models.FaultReport, error) {
	return f.faults, f.err
}
func (f *fakeAPI) CreateFault(ctx context.Context, draft models.FaultDraft) (*api.FaultCreated, error) {
	f.drafts = append(f.drafts, draft)
	return f.created, f.err
}
func (f *fakeAPI) UpdateFault(ctx context.Context, id int64, update models.FaultUpdate) error {
	if f.faultUpdates == nil {
		f.faultUpdates = map[int64]models.FaultUpdate{}
	}
	f.faultUpdates[id] = update
	return f.err
}
func (f *fakeAPI) Rooms(ctx context.Context) ([]models.Room, error) { return f.rooms, f.err }
func (f *fakeAPI) RoomRequests(ctx context.Context) ([]models.RoomRequest, error) {
	return f.bookings, f.err
}
func (f *fakeAPI) CreateRoomRequest(ctx context.Context, draft models.BookingDraft) (*api.BookingCreated, error) {
	f.bookingDrafts = append(f.bookingDrafts, draft)
	return f.booked, f.err
}
func (f *fakeAPI) ApproveRoomRequest(ctx context.Context, id, roomID int64) error {
	if f.assigned == nil {
		f.assigned = map[int64]int64{}
	}
	f.assigned[id] = roomID
	return f.err
}
func (f *fakeAPI) RejectRoomRequest(ctx context.Context, id int64, reason string) error {
	f.declined = append(f.declined, id)
	f.declineReason = reason
	return f.err
}
func (f *fakeAPI) RoleRequests(ctx context.Context) ([]models.RoleRequest, error) {
	return f.requests, f.err
}
func (f *fakeAPI) ApproveRoleRequest(ctx context.Context, id int64) error {
	f.approved = append(f.approved, id)
	return f.err
}
func (f *fakeAPI) RejectRoleRequest(ctx context.Context, id int64, reason string) error {
	f.rejected = append(f.rejected, id)
	f.rejectReason = reason
	return f.err
}
func (f *fakeAPI) AdminStats(ctx context.Context) (*models.AdminStats, error) {
	return f.stats, f.err
}

var _ api.Client = (*fakeAPI)(nil)

func newTestApp(sess sessionIface, ac api.Client) (*App, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:  cfg,
		session: sess,
		api:     ac,
		log:     logging.NewTextLogger(io.Discard, slog.LevelError),
		reader:  bufio.NewReader(strings.NewReader("")),
		out:     out,
	}, out
}

func stubText(t *testing.T, answers ...string) {
	t.Helper()
	prev := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			return "", io.EOF
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = prev })
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	prev := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = prev })
}

func authenticated(role models.Role) session.State {
	u := &models.User{ID: 1, Email: "jo@campus.edu", Username: "jo", Role: role}
	if role == models.RoleUnset {
		return session.State{Phase: session.PhaseAuthenticatedNoRole, User: u}
	}
	return session.State{Phase: session.PhaseAuthenticatedWithRole, User: u}
}

func TestLoginSuccess(t *testing.T) {
	stubText(t, "jo@campus.edu")
	stubPassword(t, "secret1")

	sess := &fakeSession{
		state:      session.State{Phase: session.PhaseAnonymous},
		afterLogin: authenticated(models.RoleUnset),
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Login(context.Background()))
	assert.Equal(t, "jo@campus.edu", sess.loginEmail)
	assert.Equal(t, "secret1", sess.loginPassword)
	assert.Contains(t, out.String(), "Logged in as jo")
	assert.Contains(t, out.String(), "type 'roles'")
}

func TestLoginRejectionIsVerbatimAndFinal(t *testing.T) {
	stubText(t, "jo@campus.edu")
	stubPassword(t, "wrongpass")

	sess := &fakeSession{
		state:    session.State{Phase: session.PhaseAnonymous},
		loginErr: &api.Error{Status: 400, Message: "Invalid credentials"},
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Login failed: Invalid credentials")
	// a failed login must not fall back to registration
	assert.Equal(t, 0, sess.registerCalls)
	assert.Equal(t, session.PhaseAnonymous, sess.Snapshot().Phase)
}

func TestLoginBackendUnreachable(t *testing.T) {
	stubText(t, "jo@campus.edu")
	stubPassword(t, "secret1")

	sess := &fakeSession{
		state:    session.State{Phase: session.PhaseAnonymous},
		loginErr: fmt.Errorf("%w: connection refused", api.ErrUnavailable),
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Login(context.Background()))
	assert.Contains(t, out.String(), "Cannot connect to the campus backend")
}

func TestRegisterSuccess(t *testing.T) {
	stubText(t, "new@campus.edu")
	stubPassword(t, "secret1")

	sess := &fakeSession{
		state:      session.State{Phase: session.PhaseAnonymous},
		afterLogin: authenticated(models.RoleUnset),
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Register(context.Background()))
	assert.Equal(t, 1, sess.registerCalls)
	assert.Contains(t, out.String(), "Account created")
}

func TestLogout(t *testing.T) {
	sess := &fakeSession{state: authenticated(models.RoleStudent)}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Logout(context.Background()))
	assert.Equal(t, 1, sess.logoutCalls)
	assert.Contains(t, out.String(), "Logged out")
}

func TestRolesManagerGoesPending(t *testing.T) {
	stubText(t, "manager", "facilities", "I run the gym")

	sess := &fakeSession{
		state:   authenticated(models.RoleUnset),
		roleOut: &api.RoleOutcome{Pending: true, RequestID: 9, Message: "Manager role request submitted for admin approval"},
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Roles(context.Background()))
	assert.Equal(t, models.RoleManager, sess.roleArg)
	assert.Equal(t, "facilities", sess.managerType)
	assert.Equal(t, "I run the gym", sess.reason)
	assert.Contains(t, out.String(), "submitted for admin approval")
}

func TestRolesStudentIsImmediate(t *testing.T) {
	stubText(t, "student")

	u := &models.User{ID: 1, Username: "jo", Role: models.RoleStudent}
	sess := &fakeSession{
		state:   authenticated(models.RoleUnset),
		roleOut: &api.RoleOutcome{User: u},
	}
	app, out := newTestApp(sess, &fakeAPI{})

	require.NoError(t, app.Roles(context.Background()))
	assert.Equal(t, models.RoleStudent, sess.roleArg)
	assert.Empty(t, sess.managerType)
	assert.Contains(t, out.String(), "Role set to student")
}

func TestRolesAdminNotRequestable(t *testing.T) {
	stubText(t, "admin")

	sess := &fakeSession{state: authenticated(models.RoleUnset)}
	app, _ := newTestApp(sess, &fakeAPI{})

	err := app.Roles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be requested")
}

func TestDispatchGating(t *testing.T) {
	tests := []struct {
		name    string
		state   session.State
		command string
		want    string
	}{
		{"resolving defers", session.State{Phase: session.PhaseResolving, Loading: true}, "status", "Session still resolving"},
		{"anonymous redirected to login", session.State{Phase: session.PhaseAnonymous}, "status", "Please login first"},
		{"no role redirected to role selection", authenticated(models.RoleUnset), "status", "Choose a role first"},
		{"student blocked from stats", authenticated(models.RoleStudent), "stats", "Not available for your role"},
		{"student blocked from triage", authenticated(models.RoleStudent), "triage", "Not available for your role"},
		{"lecturer blocked from requests", authenticated(models.RoleLecturer), "requests", "Not available for your role"},
		{"student blocked from assign", authenticated(models.RoleStudent), "assign", "Not available for your role"},
		{"lecturer blocked from decline", authenticated(models.RoleLecturer), "decline", "Not available for your role"},
		{"student allowed on libraries", authenticated(models.RoleStudent), "libraries", "No libraries registered"},
		{"student allowed on bookings", authenticated(models.RoleStudent), "bookings", "No booking requests"},
		{"manager allowed on requests", authenticated(models.RoleManager), "requests", "No role requests"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &fakeSession{state: tt.state}
			app, out := newTestApp(sess, &fakeAPI{})
			cmd, ok := app.commands()[tt.command]
			require.True(t, ok)
			app.dispatch(context.Background(), tt.command, cmd)
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

func TestAuthVerbsBypassGuard(t *testing.T) {
	for _, name := range []string{"register", "login", "logout"} {
		app, _ := newTestApp(&fakeSession{}, &fakeAPI{})
		cmd := app.commands()[name]
		assert.Empty(t, cmd.route, name)
	}
}

func TestStatusPrompt(t *testing.T) {
	tests := []struct {
		state session.State
		want  string
	}{
		{session.State{Phase: session.PhaseResolving, Loading: true}, "(resolving)"},
		{session.State{Phase: session.PhaseAnonymous}, ""},
		{authenticated(models.RoleUnset), "(jo no-role)"},
		{authenticated(models.RoleManager), "(jo manager)"},
	}
	for _, tt := range tests {
		app, _ := newTestApp(&fakeSession{state: tt.state}, &fakeAPI{})
		assert.Equal(t, tt.want, app.status())
	}
}

func TestStatusShowsMainLibrary(t *testing.T) {
	ac := &fakeAPI{library: &models.Library{
		ID: 1, Name: "Main Library", CurrentOccupancy: 30, MaxCapacity: 100, IsOpen: true,
	}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.LibraryStatus(context.Background()))
	assert.Contains(t, out.String(), "Main Library")
	assert.Contains(t, out.String(), "low")
	assert.Contains(t, out.String(), "open")
}

func TestLibrariesRendersBuckets(t *testing.T) {
	ac := &fakeAPI{libraries: []models.Library{
		{ID: 1, Name: "Main Library", CurrentOccupancy: 30, MaxCapacity: 100, IsOpen: true},
		{ID: 2, Name: "Science Library", CurrentOccupancy: 95, MaxCapacity: 100, IsOpen: false},
	}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.Libraries(context.Background()))
	assert.Contains(t, out.String(), "Main Library")
	assert.Contains(t, out.String(), "low")
	assert.Contains(t, out.String(), "full")
	assert.Contains(t, out.String(), "closed")
}

func TestOccupancyUpdatePending(t *testing.T) {
	stubText(t, "library", "1", "25")

	ac := &fakeAPI{updateOut: &api.UpdateOutcome{Pending: true, Message: "Update request submitted for approval"}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.Occupancy(context.Background()))
	assert.Contains(t, out.String(), "submitted for approval")
	assert.NotContains(t, out.String(), "Library updated")
}

func TestOccupancyUpdateApplied(t *testing.T) {
	stubText(t, "lab", "3", "12")

	ac := &fakeAPI{updateOut: &api.UpdateOutcome{Status: "updated"}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleManager)}, ac)

	require.NoError(t, app.Occupancy(context.Background()))
	assert.Contains(t, out.String(), "Lab updated")
}

func TestOccupancyRejectsUnknownKind(t *testing.T) {
	stubText(t, "cafeteria")

	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, &fakeAPI{})
	err := app.Occupancy(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown facility kind")
}

func TestReportFaultValidatesBeforeSending(t *testing.T) {
	stubText(t, "Broken AC", "It is hot", "garage", "", "", "", "")

	ac := &fakeAPI{}
	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	err := app.ReportFault(context.Background())
	require.Error(t, err)
	assert.Empty(t, ac.drafts)
}

func TestReportFaultSubmits(t *testing.T) {
	stubText(t, "Broken AC", "It is hot in lab 3", "lab", "Engineering", "E-301", "hvac", "high")

	ac := &fakeAPI{created: &api.FaultCreated{ID: 12, Status: "open"}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.ReportFault(context.Background()))
	require.Len(t, ac.drafts, 1)
	assert.Equal(t, "hvac", ac.drafts[0].Category)
	assert.Contains(t, out.String(), "Fault #12 reported (open)")
}

func TestTriageFaultBlankKeepsFields(t *testing.T) {
	stubText(t, "7", "in_progress", "alice", "")

	ac := &fakeAPI{}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleManager)}, ac)

	require.NoError(t, app.TriageFault(context.Background()))
	up, ok := ac.faultUpdates[7]
	require.True(t, ok)
	require.NotNil(t, up.Status)
	assert.Equal(t, "in_progress", *up.Status)
	require.NotNil(t, up.AssignedTo)
	assert.Equal(t, "alice", *up.AssignedTo)
	assert.Nil(t, up.ResolutionNotes)
	assert.Contains(t, out.String(), "Fault #7 updated")
}

func TestRoleRequestDecisions(t *testing.T) {
	stubText(t, "4")
	ac := &fakeAPI{}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleManager)}, ac)

	require.NoError(t, app.ApproveRequest(context.Background()))
	assert.Equal(t, []int64{4}, ac.approved)
	assert.Contains(t, out.String(), "Request #4 approved")

	stubText(t, "5", "insufficient justification")
	require.NoError(t, app.RejectRequest(context.Background()))
	assert.Equal(t, []int64{5}, ac.rejected)
	assert.Equal(t, "insufficient justification", ac.rejectReason)
}

func TestStats(t *testing.T) {
	s := &models.AdminStats{PendingRoleRequests: 3}
	s.Users.Total = 42
	s.Faults.Open = 5
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleAdmin)}, &fakeAPI{stats: s})

	require.NoError(t, app.Stats(context.Background()))
	assert.Contains(t, out.String(), "42 total")
	assert.Contains(t, out.String(), "Pending role requests: 3")
	assert.Contains(t, out.String(), "5 open")
}

func TestBookStudentAlwaysPartialBooking(t *testing.T) {
	stubText(t, "classroom", "2026-09-01", "10:00", "12:00", "Study group", "4", "Whiteboard, Projector")

	ac := &fakeAPI{booked: &api.BookingCreated{ID: 3, Status: "pending"}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.Book(context.Background()))
	require.Len(t, ac.bookingDrafts, 1)
	draft := ac.bookingDrafts[0]
	assert.Equal(t, models.BookingPartial, draft.BookingType, "students never book whole rooms")
	assert.Equal(t, []string{"Whiteboard", "Projector"}, draft.EquipmentNeeded)
	assert.Contains(t, out.String(), "Booking request #3 submitted (pending)")
}

func TestBookLecturerMayBookFullRoom(t *testing.T) {
	stubText(t, "lecture_hall", "2026-09-01", "10:00", "12:00", "Algorithms lecture", "80", "", "y")

	ac := &fakeAPI{booked: &api.BookingCreated{ID: 4, Status: "pending"}}
	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleLecturer)}, ac)

	require.NoError(t, app.Book(context.Background()))
	require.Len(t, ac.bookingDrafts, 1)
	assert.Equal(t, models.BookingFull, ac.bookingDrafts[0].BookingType)
}

func TestBookValidatesBeforeSending(t *testing.T) {
	stubText(t, "dungeon", "2026-09-01", "10:00", "12:00", "Study group", "4", "")

	ac := &fakeAPI{}
	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	err := app.Book(context.Background())
	require.Error(t, err)
	assert.Empty(t, ac.bookingDrafts)
}

func TestBookingsList(t *testing.T) {
	ac := &fakeAPI{bookings: []models.RoomRequest{
		{ID: 1, RoomType: "classroom", Date: "2026-09-01", StartTime: "10:00", EndTime: "12:00",
			Status: "approved", RequesterEmail: "jo@campus.edu", ApprovedRoomName: "B-204"},
		{ID: 2, RoomType: "lab", Date: "2026-09-02", StartTime: "14:00", EndTime: "16:00",
			Status: "rejected", RequesterEmail: "jo@campus.edu", RejectionReason: "room under maintenance"},
	}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.Bookings(context.Background()))
	assert.Contains(t, out.String(), "assigned: B-204")
	assert.Contains(t, out.String(), "rejected: room under maintenance")
}

func TestRoomsList(t *testing.T) {
	ac := &fakeAPI{rooms: []models.Room{
		{ID: 1, Name: "B-204", Type: "classroom", Building: "Main", Capacity: 40},
	}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)

	require.NoError(t, app.Rooms(context.Background()))
	assert.Contains(t, out.String(), "B-204")
	assert.Contains(t, out.String(), "seats 40")
}

func TestAssignBooking(t *testing.T) {
	stubText(t, "3", "7")

	ac := &fakeAPI{}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleManager)}, ac)

	require.NoError(t, app.AssignBooking(context.Background()))
	assert.Equal(t, int64(7), ac.assigned[3])
	assert.Contains(t, out.String(), "Booking #3 approved, room 7 assigned")
}

func TestDeclineBookingRequiresReason(t *testing.T) {
	stubText(t, "3", "")

	ac := &fakeAPI{}
	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleManager)}, ac)

	err := app.DeclineBooking(context.Background())
	require.Error(t, err)
	assert.Empty(t, ac.declined)

	stubText(t, "3", "double-booked slot")
	require.NoError(t, app.DeclineBooking(context.Background()))
	assert.Equal(t, []int64{3}, ac.declined)
	assert.Equal(t, "double-booked slot", ac.declineReason)
}

func TestWatchStopsOnEnter(t *testing.T) {
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, &fakeAPI{})
	app.config.PollInterval = time.Hour
	app.reader = bufio.NewReader(strings.NewReader("\n"))

	done := make(chan error, 1)
	go func() { done <- app.Watch(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
	assert.Contains(t, out.String(), "Stopped watching")
}

// stuckReader never yields input until the test ends, so only context
// cancellation can end a watch that reads from it.
type stuckReader struct{ unblock chan struct{} }

func (r stuckReader) Read([]byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

func TestWatchStopsOnContextCancel(t *testing.T) {
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, &fakeAPI{})
	app.config.PollInterval = time.Hour
	unblock := make(chan struct{})
	t.Cleanup(func() { close(unblock) })
	app.reader = bufio.NewReader(stuckReader{unblock})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Watch(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop on cancellation")
	}
	assert.Contains(t, out.String(), "Stopped watching")
}

func TestRootExitsOnCancelledContext(t *testing.T) {
	app, _ := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, &fakeAPI{})
	app.reader = bufio.NewReader(strings.NewReader("labs\nlabs\nlabs\n"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		app.Root(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("REPL kept running on a cancelled context")
	}
}

func TestRootDispatchesAndExits(t *testing.T) {
	ac := &fakeAPI{labs: []models.Lab{{ID: 1, Name: "Lab A", CurrentOccupancy: 5, MaxCapacity: 20, IsAvailable: true}}}
	app, out := newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, ac)
	app.reader = bufio.NewReader(strings.NewReader("labs\nnope\nexit\n"))

	app.Root(context.Background())

	assert.Contains(t, out.String(), "Lab A")
	assert.Contains(t, out.String(), "Unknown command: nope")
	assert.Contains(t, out.String(), "Bye!")
}

func TestHelpVariesWithSession(t *testing.T) {
	app, out := newTestApp(&fakeSession{state: session.State{Phase: session.PhaseAnonymous}}, &fakeAPI{})
	app.help()
	assert.Contains(t, out.String(), "register, login")
	assert.NotContains(t, out.String(), "stats")

	app, out = newTestApp(&fakeSession{state: authenticated(models.RoleAdmin)}, &fakeAPI{})
	app.help()
	assert.Contains(t, out.String(), "stats")

	app, out = newTestApp(&fakeSession{state: authenticated(models.RoleStudent)}, &fakeAPI{})
	app.help()
	assert.NotContains(t, out.String(), "triage")
	assert.NotContains(t, out.String(), "assign")
	assert.Contains(t, out.String(), "book")
}

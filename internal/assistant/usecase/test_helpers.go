package usecase

import (
	"context"
	"time"

	"office-assistant/internal/intent"
	"office-assistant/internal/meeting"
	"office-assistant/internal/model"
	"office-assistant/internal/todo"
	"office-assistant/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockClassifier returns a fixed intent result.
type mockClassifier struct {
	result intent.Result
}

func (m *mockClassifier) Analyze(ctx context.Context, userMessage string) intent.Result {
	return m.result
}

// mockTodos stubs todo.UseCase with func fields.
type mockTodos struct {
	createFn      func(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error)
	smartCreateFn func(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.SmartCreateOutput, error)
	listFn        func(ctx context.Context, sc model.Scope) (todo.ListOutput, error)
	completeFn    func(ctx context.Context, sc model.Scope, input todo.CompleteInput) (todo.CompleteOutput, error)
	statsFn       func(ctx context.Context, sc model.Scope) (model.TodoStats, error)
}

func (m *mockTodos) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.CreateOutput, error) {
	if m.createFn != nil {
		return m.createFn(ctx, sc, input)
	}
	return todo.CreateOutput{Item: model.TodoItem{Content: input.Content}}, nil
}

func (m *mockTodos) SmartCreate(ctx context.Context, sc model.Scope, input todo.CreateInput) (todo.SmartCreateOutput, error) {
	if m.smartCreateFn != nil {
		return m.smartCreateFn(ctx, sc, input)
	}
	return todo.SmartCreateOutput{Created: true, Item: model.TodoItem{Content: input.Content}}, nil
}

func (m *mockTodos) List(ctx context.Context, sc model.Scope) (todo.ListOutput, error) {
	if m.listFn != nil {
		return m.listFn(ctx, sc)
	}
	return todo.ListOutput{}, nil
}

func (m *mockTodos) Complete(ctx context.Context, sc model.Scope, input todo.CompleteInput) (todo.CompleteOutput, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, sc, input)
	}
	return todo.CompleteOutput{}, nil
}

func (m *mockTodos) Stats(ctx context.Context, sc model.Scope) (model.TodoStats, error) {
	if m.statsFn != nil {
		return m.statsFn(ctx, sc)
	}
	return model.TodoStats{}, nil
}

// mockMeetings stubs meeting.UseCase with func fields.
type mockMeetings struct {
	rooms          []model.MeetingRoom
	bookFn         func(ctx context.Context, sc model.Scope, input meeting.BookInput) (meeting.BookOutput, error)
	listBookingsFn func(ctx context.Context, sc model.Scope, input meeting.ListBookingsInput) (meeting.ListBookingsOutput, error)
	cancelFn       func(ctx context.Context, sc model.Scope, eventID string) error
}

func (m *mockMeetings) ListRooms(ctx context.Context) []model.MeetingRoom {
	return m.rooms
}

func (m *mockMeetings) CheckAvailability(ctx context.Context, input meeting.AvailabilityInput) (meeting.AvailabilityOutput, error) {
	return meeting.AvailabilityOutput{Available: true}, nil
}

func (m *mockMeetings) Book(ctx context.Context, sc model.Scope, input meeting.BookInput) (meeting.BookOutput, error) {
	if m.bookFn != nil {
		return m.bookFn(ctx, sc, input)
	}
	return meeting.BookOutput{Booking: model.Booking{
		ID: "evt-1", RoomID: input.RoomID, Subject: input.Subject,
		StartTime: input.StartTime, EndTime: input.EndTime,
	}}, nil
}

func (m *mockMeetings) ListBookings(ctx context.Context, sc model.Scope, input meeting.ListBookingsInput) (meeting.ListBookingsOutput, error) {
	if m.listBookingsFn != nil {
		return m.listBookingsFn(ctx, sc, input)
	}
	return meeting.ListBookingsOutput{}, nil
}

func (m *mockMeetings) Cancel(ctx context.Context, sc model.Scope, eventID string) error {
	if m.cancelFn != nil {
		return m.cancelFn(ctx, sc, eventID)
	}
	return nil
}

// mockUsers stubs user.UseCase.
type mockUsers struct {
	profile     model.UserProfile
	setModelErr error
	setModel    string
}

func (m *mockUsers) GetProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	return m.profile, nil
}

func (m *mockUsers) TouchProfile(ctx context.Context, sc model.Scope) (model.UserProfile, error) {
	return m.profile, nil
}

func (m *mockUsers) SetPreferredModel(ctx context.Context, sc model.Scope, modelName string) (model.UserProfile, error) {
	if m.setModelErr != nil {
		return model.UserProfile{}, m.setModelErr
	}
	m.setModel = modelName
	profile := m.profile
	profile.PreferredModel = modelName
	return profile, nil
}

// mockChat stubs conversation.UseCase.
type mockChat struct {
	reply string
	err   error
	calls int
}

func (m *mockChat) Chat(ctx context.Context, sc model.Scope, message string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

func (m *mockChat) Reset(ctx context.Context, sc model.Scope) {}

type deps struct {
	classifier *mockClassifier
	todos      *mockTodos
	meetings   *mockMeetings
	users      *mockUsers
	chat       *mockChat
}

func newTestUseCase(d deps) *implUseCase {
	if d.classifier == nil {
		d.classifier = &mockClassifier{}
	}
	if d.todos == nil {
		d.todos = &mockTodos{}
	}
	if d.meetings == nil {
		d.meetings = &mockMeetings{rooms: []model.MeetingRoom{{ID: "room-a", Name: "大會議室", Mail: "room-a@example.com"}}}
	}
	if d.users == nil {
		d.users = &mockUsers{}
	}
	if d.chat == nil {
		d.chat = &mockChat{reply: "一般回覆"}
	}
	dates, _ := datemath.NewParser("UTC")
	return New(&mockLogger{}, d.classifier, d.todos, d.meetings, d.users, d.chat, dates)
}

func testScope() model.Scope {
	return model.Scope{UserMail: "alice@example.com", UserName: "Alice"}
}

var testTime = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

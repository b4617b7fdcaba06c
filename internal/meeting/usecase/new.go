package usecase

import (
	"context"
	"time"

	"office-assistant/internal/meeting"
	"office-assistant/internal/model"
	"office-assistant/pkg/gcalendar"
	pkgLog "office-assistant/pkg/log"
)

// Calendar is the calendar capability the meeting domain depends on.
// Satisfied by gcalendar.Client; stubbed in tests.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	FreeBusy(ctx context.Context, calendarIDs []string, timeMin, timeMax time.Time) (map[string][]gcalendar.BusyInterval, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	calendar Calendar
	rooms    []model.MeetingRoom
	timezone string
}

var _ meeting.UseCase = (*implUseCase)(nil)

// New creates a new meeting UseCase instance. rooms is the deployment's
// bookable room catalog, usually loaded from config. calendar may be
// nil when no backend is configured; booking operations then return
// meeting.ErrCalendarUnavailable while ListRooms keeps working.
func New(l pkgLog.Logger, calendar Calendar, rooms []model.MeetingRoom, timezone string) *implUseCase {
	return &implUseCase{
		l:        l,
		calendar: calendar,
		rooms:    rooms,
		timezone: timezone,
	}
}

func (uc *implUseCase) roomByID(id string) (model.MeetingRoom, bool) {
	for _, room := range uc.rooms {
		if room.ID == id {
			return room, true
		}
	}
	return model.MeetingRoom{}, false
}

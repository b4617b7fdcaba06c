package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"office-assistant/internal/meeting"
	"office-assistant/internal/model"
	"office-assistant/pkg/gcalendar"
)

func (uc *implUseCase) ListRooms(ctx context.Context) []model.MeetingRoom {
	rooms := make([]model.MeetingRoom, len(uc.rooms))
	copy(rooms, uc.rooms)
	return rooms
}

func (uc *implUseCase) CheckAvailability(ctx context.Context, input meeting.AvailabilityInput) (meeting.AvailabilityOutput, error) {
	if uc.calendar == nil {
		return meeting.AvailabilityOutput{}, meeting.ErrCalendarUnavailable
	}
	room, ok := uc.roomByID(input.RoomID)
	if !ok {
		return meeting.AvailabilityOutput{}, fmt.Errorf("%w: %s", meeting.ErrRoomNotFound, input.RoomID)
	}
	if !input.EndTime.After(input.StartTime) {
		return meeting.AvailabilityOutput{}, meeting.ErrInvalidTimeRange
	}

	busy, err := uc.calendar.FreeBusy(ctx, []string{room.Mail}, input.StartTime, input.EndTime)
	if err != nil {
		return meeting.AvailabilityOutput{}, fmt.Errorf("meeting.CheckAvailability: %w", err)
	}

	out := meeting.AvailabilityOutput{Room: room, Available: true}
	for _, interval := range busy[room.Mail] {
		if interval.Start.Before(input.EndTime) && interval.End.After(input.StartTime) {
			out.Available = false
			out.Conflicts = append(out.Conflicts, meeting.BusySlot{Start: interval.Start, End: interval.End})
		}
	}
	return out, nil
}

func (uc *implUseCase) Book(ctx context.Context, sc model.Scope, input meeting.BookInput) (meeting.BookOutput, error) {
	if strings.TrimSpace(input.Subject) == "" {
		return meeting.BookOutput{}, meeting.ErrEmptySubject
	}

	availability, err := uc.CheckAvailability(ctx, meeting.AvailabilityInput{
		RoomID:    input.RoomID,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
	})
	if err != nil {
		return meeting.BookOutput{}, err
	}
	if !availability.Available {
		return meeting.BookOutput{}, fmt.Errorf("%w: %s", meeting.ErrRoomBusy, availability.Room.Name)
	}

	room := availability.Room
	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     input.Subject,
		Description: bookingDescription(sc.UserMail, room.ID),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Timezone:    uc.timezone,
		Attendees:   []string{sc.UserMail},
		RoomMail:    room.Mail,
	})
	if err != nil {
		return meeting.BookOutput{}, fmt.Errorf("meeting.Book: %w", err)
	}

	uc.l.Infof(ctx, "meeting.Book: user=%s room=%s event=%s", sc.UserMail, room.ID, event.ID)
	return meeting.BookOutput{
		Booking: model.Booking{
			ID:        event.ID,
			RoomID:    room.ID,
			RoomName:  room.Name,
			Organizer: sc.UserMail,
			Subject:   input.Subject,
			StartTime: input.StartTime,
			EndTime:   input.EndTime,
			HTMLLink:  event.HtmlLink,
		},
	}, nil
}

func (uc *implUseCase) ListBookings(ctx context.Context, sc model.Scope, input meeting.ListBookingsInput) (meeting.ListBookingsOutput, error) {
	if uc.calendar == nil {
		return meeting.ListBookingsOutput{}, meeting.ErrCalendarUnavailable
	}

	from := input.From
	if from.IsZero() {
		from = time.Now()
	}
	to := input.To
	if to.IsZero() {
		to = from.AddDate(0, 0, 7)
	}

	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		TimeMin: from,
		TimeMax: to,
	})
	if err != nil {
		return meeting.ListBookingsOutput{}, fmt.Errorf("meeting.ListBookings: %w", err)
	}

	var out meeting.ListBookingsOutput
	for _, event := range events {
		organizer, roomID, ok := parseBookingDescription(event.Description)
		if !ok || organizer != sc.UserMail {
			continue
		}

		booking := model.Booking{
			ID:        event.ID,
			RoomID:    roomID,
			Organizer: organizer,
			Subject:   event.Summary,
			StartTime: event.StartTime,
			EndTime:   event.EndTime,
			HTMLLink:  event.HtmlLink,
		}
		if room, found := uc.roomByID(roomID); found {
			booking.RoomName = room.Name
		}
		out.Bookings = append(out.Bookings, booking)
	}
	return out, nil
}

func (uc *implUseCase) Cancel(ctx context.Context, sc model.Scope, eventID string) error {
	if uc.calendar == nil {
		return meeting.ErrCalendarUnavailable
	}
	if err := uc.calendar.DeleteEvent(ctx, "", eventID); err != nil {
		return fmt.Errorf("meeting.Cancel: %w", err)
	}
	uc.l.Infof(ctx, "meeting.Cancel: user=%s event=%s", sc.UserMail, eventID)
	return nil
}

// bookingDescription encodes ownership metadata into the event body so
// bookings can be attributed without a separate store.
func bookingDescription(organizer, roomID string) string {
	return fmt.Sprintf("organizer: %s\nroom: %s", organizer, roomID)
}

func parseBookingDescription(description string) (organizer, roomID string, ok bool) {
	for _, line := range strings.Split(description, "\n") {
		switch {
		case strings.HasPrefix(line, "organizer: "):
			organizer = strings.TrimPrefix(line, "organizer: ")
		case strings.HasPrefix(line, "room: "):
			roomID = strings.TrimPrefix(line, "room: ")
		}
	}
	return organizer, roomID, organizer != ""
}

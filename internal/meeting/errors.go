package meeting

import "errors"

// Domain-specific errors for the meeting package.
var (
	ErrRoomNotFound     = errors.New("meeting room not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrEmptySubject     = errors.New("meeting subject is empty")
	ErrRoomBusy         = errors.New("room is busy in the requested window")

	// ErrCalendarUnavailable is returned when the service runs without
	// a calendar backend; room listing still works, bookings do not.
	ErrCalendarUnavailable = errors.New("calendar backend not configured")
)

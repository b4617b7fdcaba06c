package meeting

import (
	"time"

	"office-assistant/internal/model"
)

// AvailabilityInput asks whether a room is free in a window.
type AvailabilityInput struct {
	RoomID    string
	StartTime time.Time
	EndTime   time.Time
}

// BusySlot is one conflicting reservation.
type BusySlot struct {
	Start time.Time
	End   time.Time
}

// AvailabilityOutput reports the result of an availability check.
type AvailabilityOutput struct {
	Room      model.MeetingRoom
	Available bool
	Conflicts []BusySlot
}

// BookInput is the input for reserving a room.
type BookInput struct {
	RoomID    string
	Subject   string
	StartTime time.Time
	EndTime   time.Time
}

// BookOutput is the result of a successful reservation.
type BookOutput struct {
	Booking model.Booking
}

// ListBookingsInput bounds the booking query window. A zero To means
// one week after From.
type ListBookingsInput struct {
	From time.Time
	To   time.Time
}

// ListBookingsOutput is the result of listing bookings.
type ListBookingsOutput struct {
	Bookings []model.Booking
}

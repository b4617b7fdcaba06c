package meeting

import (
	"context"

	"office-assistant/internal/model"
)

// UseCase defines the business logic interface for the meeting domain.
type UseCase interface {
	// ListRooms returns the bookable rooms configured for the
	// deployment.
	ListRooms(ctx context.Context) []model.MeetingRoom

	// CheckAvailability reports whether the room is free in the
	// window, with the conflicting busy slots when it is not.
	CheckAvailability(ctx context.Context, input AvailabilityInput) (AvailabilityOutput, error)

	// Book reserves a room when it is free in the window.
	Book(ctx context.Context, sc model.Scope, input BookInput) (BookOutput, error)

	// ListBookings returns the user's upcoming bookings.
	ListBookings(ctx context.Context, sc model.Scope, input ListBookingsInput) (ListBookingsOutput, error)

	// Cancel removes a booking by event ID.
	Cancel(ctx context.Context, sc model.Scope, eventID string) error
}

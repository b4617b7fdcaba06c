package model

import "time"

// MeetingRoom is a bookable room from deployment configuration.
type MeetingRoom struct {
	ID       string
	Name     string
	Mail     string // Room resource calendar address
	Capacity int
}

// Booking is a confirmed meeting-room reservation backed by a calendar
// event. ID is the provider's event ID and is required to cancel.
type Booking struct {
	ID        string
	RoomID    string
	RoomName  string
	Organizer string
	Subject   string
	StartTime time.Time
	EndTime   time.Time
	HTMLLink  string
}

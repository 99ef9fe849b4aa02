package entities

import "time"

// Booking is a reserved date range against a venue. Bookings are
// immutable once created; the client only reads and appends.
type Booking struct {
	ID       string    `json:"id"`
	DateFrom time.Time `json:"dateFrom"`
	DateTo   time.Time `json:"dateTo"`
	Guests   int       `json:"guests"`
	Created  time.Time `json:"created,omitempty"`
	Updated  time.Time `json:"updated,omitempty"`
	Venue    *Venue    `json:"venue,omitempty"`
}

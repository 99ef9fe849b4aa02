package api

import (
	"context"
	"net/http"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
)

// CreateBooking appends a booking to a venue. Overlap and capacity are
// checked client-side before this is called; the remote API enforces
// them authoritatively.
func (c *Client) CreateBooking(ctx context.Context, req entities.CreateBookingRequest) (*entities.Booking, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return nil, apierrors.Validation(err.Error())
	}
	var booked entities.Booking
	if err := c.do(ctx, http.MethodPost, "/holidaze/bookings", nil, req, &booked, "failed to create booking"); err != nil {
		return nil, err
	}
	return &booked, nil
}

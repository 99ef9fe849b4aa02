package api

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
)

func (c *Client) Profile(ctx context.Context, name string) (*entities.Profile, error) {
	var profile entities.Profile
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name, nil, nil, &profile, "failed to fetch profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, name string, req entities.UpdateProfileRequest) (*entities.Profile, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return nil, apierrors.Validation(err.Error())
	}
	var profile entities.Profile
	if err := c.do(ctx, http.MethodPut, "/holidaze/profiles/"+name, nil, req, &profile, "failed to update profile"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ProfileBookings lists a user's bookings, expanded with each booking's
// venue so lists can show what was booked.
func (c *Client) ProfileBookings(ctx context.Context, name string) ([]entities.Booking, error) {
	query := url.Values{"_venue": {"true"}}
	var bookings []entities.Booking
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name+"/bookings", query, nil, &bookings, "failed to fetch bookings"); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *Client) ProfileVenues(ctx context.Context, name string) ([]entities.Venue, error) {
	var venues []entities.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/profiles/"+name+"/venues", nil, nil, &venues, "failed to fetch venues"); err != nil {
		return nil, err
	}
	return venues, nil
}

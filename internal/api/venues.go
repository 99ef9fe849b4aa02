package api

import (
	"context"
	"net/http"
	"net/url"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
)

// Venues fetches the public venue list.
func (c *Client) Venues(ctx context.Context) ([]entities.Venue, error) {
	var venues []entities.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues", nil, nil, &venues, "failed to fetch venues"); err != nil {
		return nil, err
	}
	return venues, nil
}

// SearchVenues queries venues by free text.
func (c *Client) SearchVenues(ctx context.Context, q string) ([]entities.Venue, error) {
	query := url.Values{"q": {q}}
	var venues []entities.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/search", query, nil, &venues, "failed to search venues"); err != nil {
		return nil, err
	}
	return venues, nil
}

// Venue fetches a single venue, optionally expanded with its owner and
// its existing bookings. Booking expansion is what feeds the
// availability validator.
func (c *Client) Venue(ctx context.Context, id string, withOwner, withBookings bool) (*entities.Venue, error) {
	query := url.Values{}
	if withOwner {
		query.Set("_owner", "true")
	}
	if withBookings {
		query.Set("_bookings", "true")
	}
	var venue entities.Venue
	if err := c.do(ctx, http.MethodGet, "/holidaze/venues/"+id, query, nil, &venue, "failed to fetch venue"); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) CreateVenue(ctx context.Context, req entities.VenueRequest) (*entities.Venue, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return nil, apierrors.Validation(err.Error())
	}
	var venue entities.Venue
	if err := c.do(ctx, http.MethodPost, "/holidaze/venues", nil, req, &venue, "failed to create venue"); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) UpdateVenue(ctx context.Context, id string, req entities.VenueRequest) (*entities.Venue, error) {
	if err := entities.ValidateRequest(req); err != nil {
		return nil, apierrors.Validation(err.Error())
	}
	var venue entities.Venue
	if err := c.do(ctx, http.MethodPut, "/holidaze/venues/"+id, nil, req, &venue, "failed to update venue"); err != nil {
		return nil, err
	}
	return &venue, nil
}

func (c *Client) DeleteVenue(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/holidaze/venues/"+id, nil, nil, nil, "failed to delete venue")
}

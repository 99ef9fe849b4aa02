package service

import (
	"context"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

// VenueAPI is the venue slice of the API client.
type VenueAPI interface {
	Venues(ctx context.Context) ([]entities.Venue, error)
	SearchVenues(ctx context.Context, q string) ([]entities.Venue, error)
	Venue(ctx context.Context, id string, withOwner, withBookings bool) (*entities.Venue, error)
	CreateVenue(ctx context.Context, req entities.VenueRequest) (*entities.Venue, error)
	UpdateVenue(ctx context.Context, id string, req entities.VenueRequest) (*entities.Venue, error)
	DeleteVenue(ctx context.Context, id string) error
	Profile(ctx context.Context, name string) (*entities.Profile, error)
}

// VenueService exposes venue browsing to everyone and venue management
// to venue managers only: every mutating call first checks the current
// user's venueManager flag.
type VenueService struct {
	api      VenueAPI
	sessions *session.Store
}

func NewVenueService(api VenueAPI, sessions *session.Store) *VenueService {
	return &VenueService{api: api, sessions: sessions}
}

func (s *VenueService) Browse(ctx context.Context) ([]entities.Venue, error) {
	return s.api.Venues(ctx)
}

func (s *VenueService) Search(ctx context.Context, q string) ([]entities.Venue, error) {
	return s.api.SearchVenues(ctx, q)
}

// Detail fetches a venue with owner and booking expansion, which is the
// form the availability validator and the calendar need.
func (s *VenueService) Detail(ctx context.Context, id string) (*entities.Venue, error) {
	return s.api.Venue(ctx, id, true, true)
}

func (s *VenueService) Create(ctx context.Context, req entities.VenueRequest) (*entities.Venue, error) {
	if err := s.requireManager(ctx); err != nil {
		return nil, err
	}
	return s.api.CreateVenue(ctx, req)
}

func (s *VenueService) Update(ctx context.Context, id string, req entities.VenueRequest) (*entities.Venue, error) {
	if err := s.requireManager(ctx); err != nil {
		return nil, err
	}
	return s.api.UpdateVenue(ctx, id, req)
}

func (s *VenueService) Delete(ctx context.Context, id string) error {
	if err := s.requireManager(ctx); err != nil {
		return err
	}
	return s.api.DeleteVenue(ctx, id)
}

// requireManager refuses venue mutation unless the logged-in user's
// profile carries the venueManager flag.
func (s *VenueService) requireManager(ctx context.Context) error {
	sess, ok := s.sessions.Current()
	if !ok {
		return apierrors.AuthRequired("please log in to manage venues")
	}
	profile, err := s.api.Profile(ctx, sess.User.Name)
	if err != nil {
		return err
	}
	if !profile.VenueManager {
		return apierrors.Validation("access denied: you must be a venue manager to manage venues")
	}
	return nil
}

package service

import (
	"context"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

// ProfileAPI is the profile slice of the API client.
type ProfileAPI interface {
	Profile(ctx context.Context, name string) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, name string, req entities.UpdateProfileRequest) (*entities.Profile, error)
	ProfileBookings(ctx context.Context, name string) ([]entities.Booking, error)
	ProfileVenues(ctx context.Context, name string) ([]entities.Venue, error)
}

// ProfileChanges are the editable profile fields as entered by the user.
// Empty strings mean "not entered"; ClearBio distinguishes erasing the
// bio from leaving it alone.
type ProfileChanges struct {
	Bio          string
	ClearBio     bool
	AvatarURL    string
	AvatarAlt    string
	BannerURL    string
	BannerAlt    string
	VenueManager *bool
}

// ProfileService reads and updates the logged-in user's profile. The
// partial-update contract: a field is sent only when it differs from the
// currently loaded profile; when nothing differs, the update is a local
// no-op reported as success and no request is issued.
type ProfileService struct {
	api      ProfileAPI
	sessions *session.Store
}

func NewProfileService(api ProfileAPI, sessions *session.Store) *ProfileService {
	return &ProfileService{api: api, sessions: sessions}
}

func (s *ProfileService) Current(ctx context.Context) (*entities.Profile, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, apierrors.AuthRequired("please log in to view your profile")
	}
	return s.api.Profile(ctx, sess.User.Name)
}

func (s *ProfileService) Update(ctx context.Context, changes ProfileChanges) (*entities.Profile, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, apierrors.AuthRequired("please log in to update your profile")
	}
	current, err := s.api.Profile(ctx, sess.User.Name)
	if err != nil {
		return nil, err
	}

	req := diffProfile(*current, changes)
	if req.IsEmpty() {
		return current, nil
	}
	return s.api.UpdateProfile(ctx, sess.User.Name, req)
}

func (s *ProfileService) Bookings(ctx context.Context) ([]entities.Booking, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, apierrors.AuthRequired("please log in to view your bookings")
	}
	return s.api.ProfileBookings(ctx, sess.User.Name)
}

func (s *ProfileService) Venues(ctx context.Context) ([]entities.Venue, error) {
	sess, ok := s.sessions.Current()
	if !ok {
		return nil, apierrors.AuthRequired("please log in to view your venues")
	}
	return s.api.ProfileVenues(ctx, sess.User.Name)
}

// diffProfile builds the partial update body from what actually changed.
func diffProfile(current entities.Profile, changes ProfileChanges) entities.UpdateProfileRequest {
	var req entities.UpdateProfileRequest

	if changes.ClearBio {
		if current.Bio != "" {
			empty := ""
			req.Bio = &empty
		}
	} else if changes.Bio != "" && changes.Bio != current.Bio {
		bio := changes.Bio
		req.Bio = &bio
	}

	if changes.AvatarURL != "" {
		avatar := entities.Media{URL: changes.AvatarURL, Alt: changes.AvatarAlt}
		if avatar != current.Avatar {
			req.Avatar = &avatar
		}
	}
	if changes.BannerURL != "" {
		banner := entities.Media{URL: changes.BannerURL, Alt: changes.BannerAlt}
		if banner != current.Banner {
			req.Banner = &banner
		}
	}
	if changes.VenueManager != nil && *changes.VenueManager != current.VenueManager {
		req.VenueManager = changes.VenueManager
	}
	return req
}

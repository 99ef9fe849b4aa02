package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

type fakeVenueAPI struct {
	manager bool
	creates []entities.VenueRequest
	deletes []string
}

func (f *fakeVenueAPI) Venues(ctx context.Context) ([]entities.Venue, error) { return nil, nil }

func (f *fakeVenueAPI) SearchVenues(ctx context.Context, q string) ([]entities.Venue, error) {
	return nil, nil
}

func (f *fakeVenueAPI) Venue(ctx context.Context, id string, withOwner, withBookings bool) (*entities.Venue, error) {
	return &entities.Venue{ID: id}, nil
}

func (f *fakeVenueAPI) CreateVenue(ctx context.Context, req entities.VenueRequest) (*entities.Venue, error) {
	f.creates = append(f.creates, req)
	return &entities.Venue{ID: "v-new", Name: req.Name}, nil
}

func (f *fakeVenueAPI) UpdateVenue(ctx context.Context, id string, req entities.VenueRequest) (*entities.Venue, error) {
	return &entities.Venue{ID: id, Name: req.Name}, nil
}

func (f *fakeVenueAPI) DeleteVenue(ctx context.Context, id string) error {
	f.deletes = append(f.deletes, id)
	return nil
}

func (f *fakeVenueAPI) Profile(ctx context.Context, name string) (*entities.Profile, error) {
	return &entities.Profile{Name: name, VenueManager: f.manager}, nil
}

func cabinRequest() entities.VenueRequest {
	return entities.NewVenueRequest("Cabin", "A cabin", 120, 4, entities.Meta{Wifi: true}, "", "", "", "", "", "")
}

func TestCreateVenueRequiresManager(t *testing.T) {
	api := &fakeVenueAPI{manager: false}
	svc := NewVenueService(api, loggedIn(t))

	_, err := svc.Create(context.Background(), cabinRequest())
	require.Error(t, err)
	assert.Equal(t, apierrors.KindValidation, apierrors.KindOf(err))
	assert.Empty(t, api.creates)
}

func TestCreateVenueAsManager(t *testing.T) {
	api := &fakeVenueAPI{manager: true}
	svc := NewVenueService(api, loggedIn(t))

	venue, err := svc.Create(context.Background(), cabinRequest())
	require.NoError(t, err)
	assert.Equal(t, "Cabin", venue.Name)
	require.Len(t, api.creates, 1)
}

func TestDeleteVenueRequiresSession(t *testing.T) {
	api := &fakeVenueAPI{manager: true}
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"))
	svc := NewVenueService(api, store)

	err := svc.Delete(context.Background(), "v1")
	require.Error(t, err)
	assert.Equal(t, apierrors.KindAuthRequired, apierrors.KindOf(err))
	assert.Empty(t, api.deletes)
}

package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequestRules(t *testing.T) {
	valid := RegisterRequest{
		Name:     "alice_99",
		Email:    "alice@stud.noroff.no",
		Password: "password123",
	}

	tests := []struct {
		name    string
		mutate  func(*RegisterRequest)
		message string
	}{
		{"valid", func(r *RegisterRequest) {}, ""},
		{"name with punctuation", func(r *RegisterRequest) { r.Name = "alice smith!" }, "name must use only letters, numbers, and underscores"},
		{"wrong email domain", func(r *RegisterRequest) { r.Email = "alice@example.com" }, "email must be a valid stud.noroff.no address"},
		{"short password", func(r *RegisterRequest) { r.Password = "short" }, "password must be at least 8 characters"},
		{"missing name", func(r *RegisterRequest) { r.Name = "" }, "name is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateRequest(req)
			if tt.message == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.message, err.Error())
			}
		})
	}
}

func TestCreateBookingRequestRules(t *testing.T) {
	valid := CreateBookingRequest{
		VenueID:  "v1",
		DateFrom: "2025-06-06T00:00:00Z",
		DateTo:   "2025-06-10T00:00:00Z",
		Guests:   2,
	}
	assert.NoError(t, ValidateRequest(valid))

	noGuests := valid
	noGuests.Guests = 0
	err := ValidateRequest(noGuests)
	require.Error(t, err)
	assert.Equal(t, "guest count must be at least 1", err.Error())

	noVenue := valid
	noVenue.VenueID = ""
	require.Error(t, ValidateRequest(noVenue))
}

func TestNewVenueRequestAssembly(t *testing.T) {
	bare := NewVenueRequest("Cabin", "A cabin", 120, 4, Meta{}, "", "", "", "", "", "")
	assert.Empty(t, bare.Media)
	assert.Nil(t, bare.Location)
	assert.NoError(t, ValidateRequest(bare))

	withMedia := NewVenueRequest("Cabin", "A cabin", 120, 4, Meta{}, "https://img.example/cabin.jpg", "", "", "", "", "")
	require.Len(t, withMedia.Media, 1)
	assert.Equal(t, "Venue image", withMedia.Media[0].Alt)

	withLocation := NewVenueRequest("Cabin", "A cabin", 120, 4, Meta{}, "", "", "", "Bergen", "", "Norway")
	require.NotNil(t, withLocation.Location)
	assert.Equal(t, "Bergen", withLocation.Location.City)

	negativePrice := NewVenueRequest("Cabin", "A cabin", -1, 4, Meta{}, "", "", "", "", "", "")
	err := ValidateRequest(negativePrice)
	require.Error(t, err)
	assert.Equal(t, "price must not be negative", err.Error())
}

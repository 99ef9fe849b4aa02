package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holidaze/internal/entities"
	apierrors "holidaze/internal/errors"
	"holidaze/internal/session"
)

const testAPIKey = "test-api-key"

func newSessions(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func writeData(t *testing.T, w http.ResponseWriter, payload any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{"data": payload})
	require.NoError(t, err)
}

func writeErrors(t *testing.T, w http.ResponseWriter, status int, messages ...string) {
	t.Helper()
	var errs []map[string]string
	for _, m := range messages {
		errs = append(errs, map[string]string{"message": m})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(map[string]any{"errors": errs})
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, testAPIKey, r.Header.Get("X-Noroff-API-Key"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body entities.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice@stud.noroff.no", body.Email)

		writeData(t, w, map[string]any{
			"name":        "alice",
			"email":       body.Email,
			"accessToken": "token-123",
		})
	}).Methods(http.MethodPost)

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	sess, err := client.Login(context.Background(), entities.LoginRequest{
		Email:    "alice@stud.noroff.no",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-123", sess.Token)
	assert.Equal(t, "alice", sess.User.Name)
}

func TestLoginValidatesBeforeSending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be issued for an invalid login body")
	}))
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	_, err := client.Login(context.Background(), entities.LoginRequest{Email: "not-an-email", Password: "password123"})
	require.Error(t, err)
	assert.Equal(t, apierrors.KindValidation, apierrors.KindOf(err))
}

func TestVenueExpansionAndBearer(t *testing.T) {
	venueID := uuid.NewString()

	router := mux.NewRouter()
	router.HandleFunc("/holidaze/venues/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, venueID, mux.Vars(r)["id"])
		assert.Equal(t, "true", r.URL.Query().Get("_owner"))
		assert.Equal(t, "true", r.URL.Query().Get("_bookings"))
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		writeData(t, w, map[string]any{
			"id":        venueID,
			"name":      "Seaside Cabin",
			"maxGuests": 4,
			"owner":     map[string]any{"name": "bob"},
			"bookings": []map[string]any{
				{"id": uuid.NewString(), "dateFrom": "2025-06-01T00:00:00Z", "dateTo": "2025-06-05T00:00:00Z", "guests": 2},
			},
		})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	defer server.Close()

	sessions := newSessions(t)
	require.NoError(t, sessions.Login(entities.Session{
		Token: "token-123",
		User:  entities.UserIdentity{Name: "alice", Email: "alice@stud.noroff.no"},
	}))

	client := NewClient(server.URL, testAPIKey, sessions)
	venue, err := client.Venue(context.Background(), venueID, true, true)
	require.NoError(t, err)
	assert.Equal(t, "Seaside Cabin", venue.Name)
	require.NotNil(t, venue.Owner)
	assert.Equal(t, "bob", venue.Owner.Name)
	require.Len(t, venue.Bookings, 1)
	assert.Equal(t, 2, venue.Bookings[0].Guests)
}

func TestSearchVenuesQuery(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/holidaze/venues/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "cabin by the sea", r.URL.Query().Get("q"))
		writeData(t, w, []map[string]any{{"id": uuid.NewString(), "name": "Cabin"}})
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	venues, err := client.SearchVenues(context.Background(), "cabin by the sea")
	require.NoError(t, err)
	require.Len(t, venues, 1)
	assert.Equal(t, "Cabin", venues[0].Name)
}

func TestCreateBookingUpstreamMessage(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/holidaze/bookings", func(w http.ResponseWriter, r *http.Request) {
		writeErrors(t, w, http.StatusConflict, "Venue not available")
	}).Methods(http.MethodPost)

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	_, err := client.CreateBooking(context.Background(), entities.CreateBookingRequest{
		VenueID:  uuid.NewString(),
		DateFrom: "2025-06-03T00:00:00Z",
		DateTo:   "2025-06-06T00:00:00Z",
		Guests:   2,
	})
	require.Error(t, err)
	assert.Equal(t, "Venue not available", err.Error())
	assert.Equal(t, apierrors.KindUpstream, apierrors.KindOf(err))

	var typed *apierrors.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, http.StatusConflict, typed.Status)
}

func TestUpstreamFallbackMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	_, err := client.Venues(context.Background())
	require.Error(t, err)
	assert.Equal(t, "failed to fetch venues", err.Error())
	assert.Equal(t, apierrors.KindUpstream, apierrors.KindOf(err))
}

func TestNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	_, err := client.Venues(context.Background())
	require.Error(t, err)
	assert.Equal(t, apierrors.KindNetwork, apierrors.KindOf(err))
	assert.Equal(t, "failed to fetch venues", err.Error())
}

func TestDeleteVenueEmptyBody(t *testing.T) {
	router := mux.NewRouter()
	router.HandleFunc("/holidaze/venues/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	server := httptest.NewServer(router)
	defer server.Close()

	client := NewClient(server.URL, testAPIKey, newSessions(t))
	require.NoError(t, client.DeleteVenue(context.Background(), uuid.NewString()))
}

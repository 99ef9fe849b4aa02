package entities

type ProfileCount struct {
	Venues   int `json:"venues"`
	Bookings int `json:"bookings"`
}

// Profile is a registered user as returned by the remote API.
type Profile struct {
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	Bio          string       `json:"bio,omitempty"`
	Avatar       Media        `json:"avatar,omitempty"`
	Banner       Media        `json:"banner,omitempty"`
	VenueManager bool         `json:"venueManager"`
	Count        ProfileCount `json:"_count,omitempty"`
}

package entities

import "time"

// Media is an image reference with accessibility text.
type Media struct {
	URL string `json:"url" validate:"omitempty,url"`
	Alt string `json:"alt" validate:"omitempty,max=120"`
}

// Meta holds the facility flags of a venue.
type Meta struct {
	Wifi      bool `json:"wifi"`
	Parking   bool `json:"parking"`
	Breakfast bool `json:"breakfast"`
	Pets      bool `json:"pets"`
}

type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

// Owner is the profile that manages a venue, present only when the
// venue was fetched with owner expansion.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type VenueCount struct {
	Bookings int `json:"bookings"`
}

// Venue is a bookable listing as returned by the remote API.
type Venue struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Media       []Media    `json:"media"`
	Price       float64    `json:"price"`
	MaxGuests   int        `json:"maxGuests"`
	Meta        Meta       `json:"meta"`
	Location    *Location  `json:"location,omitempty"`
	Owner       *Owner     `json:"owner,omitempty"`
	Bookings    []Booking  `json:"bookings,omitempty"`
	Count       VenueCount `json:"_count,omitempty"`
	Created     time.Time  `json:"created,omitempty"`
	Updated     time.Time  `json:"updated,omitempty"`
}

package entities

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Request structs for every write operation. Each field's optionality
// and validation rule is declared once, on the struct, instead of being
// re-checked ad hoc at call sites.

var validate = validator.New(validator.WithRequiredStructEnabled())

var profileNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func init() {
	validate.RegisterValidation("profilename", func(fl validator.FieldLevel) bool {
		return profileNamePattern.MatchString(fl.Field().String())
	})
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type RegisterRequest struct {
	Name         string `json:"name" validate:"required,profilename"`
	Email        string `json:"email" validate:"required,email,endswith=@stud.noroff.no"`
	Password     string `json:"password" validate:"required,min=8"`
	Bio          string `json:"bio,omitempty" validate:"omitempty,max=160"`
	Avatar       *Media `json:"avatar,omitempty"`
	Banner       *Media `json:"banner,omitempty"`
	VenueManager bool   `json:"venueManager"`
}

type CreateBookingRequest struct {
	VenueID  string `json:"venueId" validate:"required"`
	DateFrom string `json:"dateFrom" validate:"required"`
	DateTo   string `json:"dateTo" validate:"required"`
	Guests   int    `json:"guests" validate:"required,min=1"`
}

// VenueRequest is the body of both venue creation and venue update; the
// remote API treats PUT as a full-resource replacement.
type VenueRequest struct {
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Media       []Media   `json:"media" validate:"omitempty,dive"`
	Price       float64   `json:"price" validate:"min=0"`
	MaxGuests   int       `json:"maxGuests" validate:"min=1"`
	Meta        Meta      `json:"meta"`
	Location    *Location `json:"location,omitempty"`
}

// NewVenueRequest assembles a venue body from form-level inputs: media is
// included only when a URL was supplied (alt text defaulting to a
// placeholder), location only when at least one location field is set.
func NewVenueRequest(name, description string, price float64, maxGuests int, meta Meta, mediaURL, mediaAlt, address, city, zip, country string) VenueRequest {
	req := VenueRequest{
		Name:        name,
		Description: description,
		Price:       price,
		MaxGuests:   maxGuests,
		Meta:        meta,
	}
	if mediaURL != "" {
		if mediaAlt == "" {
			mediaAlt = "Venue image"
		}
		req.Media = []Media{{URL: mediaURL, Alt: mediaAlt}}
	}
	if address != "" || city != "" || zip != "" || country != "" {
		req.Location = &Location{Address: address, City: city, Zip: zip, Country: country}
	}
	return req
}

// UpdateProfileRequest carries only the fields being changed; nil fields
// are omitted from the request body entirely.
type UpdateProfileRequest struct {
	Bio          *string `json:"bio,omitempty" validate:"omitempty,max=160"`
	Avatar       *Media  `json:"avatar,omitempty"`
	Banner       *Media  `json:"banner,omitempty"`
	VenueManager *bool   `json:"venueManager,omitempty"`
}

// IsEmpty reports whether the update would change nothing.
func (r UpdateProfileRequest) IsEmpty() bool {
	return r.Bio == nil && r.Avatar == nil && r.Banner == nil && r.VenueManager == nil
}

// ValidateRequest checks a request struct against its declared rules and
// returns a user-facing message for the first violation.
func ValidateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err
	}
	return fmt.Errorf("%s", describeViolation(errs[0]))
}

func describeViolation(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		if fe.Tag() == "profilename" {
			return "name must use only letters, numbers, and underscores"
		}
		return "name is required"
	case "Email":
		if fe.Tag() == "endswith" {
			return "email must be a valid stud.noroff.no address"
		}
		return "a valid email is required"
	case "Password":
		return "password must be at least 8 characters"
	case "Bio":
		return "bio must be 160 characters or less"
	case "Guests":
		return "guest count must be at least 1"
	case "MaxGuests":
		return "max guests must be at least 1"
	case "Price":
		return "price must not be negative"
	case "DateFrom":
		return "start date is required"
	case "DateTo":
		return "end date is required"
	case "VenueID":
		return "venue id is required"
	case "Description":
		return "description is required"
	case "URL":
		return "image URL must be a valid URL"
	case "Alt":
		return "alt text must be 120 characters or less"
	}
	return fmt.Sprintf("invalid value for %s", fe.Field())
}

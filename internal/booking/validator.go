package booking

import (
	"time"

	"holidaze/internal/entities"
)

// FailureReason identifies why a candidate booking was rejected before
// submission.
type FailureReason int

const (
	ReasonNone FailureReason = iota
	ReasonMissingStartDate
	ReasonMissingEndDate
	ReasonInvalidDateRange
	ReasonInvalidGuestCount
	ReasonGuestCountExceedsCapacity
	ReasonDateRangeOverlap
)

// Message returns the user-facing text for a rejection.
func (r FailureReason) Message() string {
	switch r {
	case ReasonMissingStartDate:
		return "please select a start date"
	case ReasonMissingEndDate:
		return "please select an end date"
	case ReasonInvalidDateRange:
		return "end date must not be before start date"
	case ReasonInvalidGuestCount:
		return "guest count must be at least 1"
	case ReasonGuestCountExceedsCapacity:
		return "guest count exceeds the venue's capacity"
	case ReasonDateRangeOverlap:
		return "the selected dates overlap an existing booking"
	}
	return ""
}

// Candidate is a proposed booking before submission. A zero DateFrom or
// DateTo means the user has not picked that date yet.
type Candidate struct {
	DateFrom time.Time
	DateTo   time.Time
	Guests   int
}

// Result is the outcome of validating a candidate. When OK, DateFrom and
// DateTo hold the candidate normalized to RFC 3339 UTC for interchange
// with the booking-creation endpoint.
type Result struct {
	OK       bool
	Reason   FailureReason
	DateFrom string
	DateTo   string
}

// Validate decides whether a candidate booking is submittable against a
// venue's capacity and its existing bookings. It is pure: no side
// effects, identical results for identical inputs.
//
// Overlap uses the inclusive test at calendar-day granularity:
// dateFrom <= existingTo && dateTo >= existingFrom. A candidate starting
// on an existing booking's checkout day is a conflict; same-day turnover
// is not allowed.
func Validate(c Candidate, venue entities.Venue) Result {
	if c.DateFrom.IsZero() {
		return Result{Reason: ReasonMissingStartDate}
	}
	if c.DateTo.IsZero() {
		return Result{Reason: ReasonMissingEndDate}
	}
	from, to := day(c.DateFrom), day(c.DateTo)
	if to.Before(from) {
		return Result{Reason: ReasonInvalidDateRange}
	}
	if c.Guests < 1 {
		return Result{Reason: ReasonInvalidGuestCount}
	}
	if c.Guests > venue.MaxGuests {
		return Result{Reason: ReasonGuestCountExceedsCapacity}
	}
	for _, b := range venue.Bookings {
		if overlaps(from, to, day(b.DateFrom), day(b.DateTo)) {
			return Result{Reason: ReasonDateRangeOverlap}
		}
	}
	return Result{
		OK:       true,
		DateFrom: from.Format(time.RFC3339),
		DateTo:   to.Format(time.RFC3339),
	}
}

// IsDateBlocked reports whether a single calendar day falls inside any
// existing booking's [dateFrom, dateTo] range, inclusive on both ends.
// Used to disable individual picker days; O(len(bookings)) per call.
func IsDateBlocked(date time.Time, bookings []entities.Booking) bool {
	d := day(date)
	for _, b := range bookings {
		if !d.Before(day(b.DateFrom)) && !d.After(day(b.DateTo)) {
			return true
		}
	}
	return false
}

func overlaps(fromA, toA, fromB, toB time.Time) bool {
	return !fromA.After(toB) && !toA.Before(fromB)
}

// day truncates a timestamp to UTC midnight so ranges compare at
// calendar-day granularity regardless of the source time zone offset.
func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

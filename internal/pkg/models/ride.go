package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DepartureType distinguishes fixed-time rides from flexible-window rides
type DepartureType string

const (
	DepartureScheduled DepartureType = "scheduled"
	DepartureWindow    DepartureType = "window"
)

// RideStatus represents the publication state of a ride
type RideStatus string

const (
	RideStatusActive   RideStatus = "active"
	RideStatusInactive RideStatus = "inactive"
)

// Ride represents a published ride offer. AvailableSeats is a stored counter
// that must always equal TotalSeats minus the ride's accepted requests; only
// the request lifecycle mutates it.
type Ride struct {
	ID                    uuid.UUID      `db:"id" json:"id"`
	DriverID              uuid.UUID      `db:"driver_id" json:"driver_id"`
	Source                pq.StringArray `db:"source" json:"source"`
	Destination           pq.StringArray `db:"destination" json:"destination"`
	DepartureType         DepartureType  `db:"departure_type" json:"departure_type"`
	RideTime              *time.Time     `db:"ride_time" json:"ride_time,omitempty"`
	FlexibleWindowMinutes *int           `db:"flexible_window_minutes" json:"flexible_window_minutes,omitempty"`
	WindowUpdatedAt       *time.Time     `db:"window_updated_at" json:"window_updated_at,omitempty"`
	TotalSeats            int            `db:"total_seats" json:"total_seats"`
	AvailableSeats        int            `db:"available_seats" json:"available_seats"`
	SeatLayout            *string        `db:"seat_layout" json:"seat_layout,omitempty"`
	PricePerPerson        *float64       `db:"price_per_person" json:"price_per_person,omitempty"`
	PaymentContact        *string        `db:"payment_contact" json:"payment_contact,omitempty"`
	CarInfo               *string        `db:"car_info" json:"car_info,omitempty"`
	ExtraNotes            *string        `db:"extra_notes" json:"extra_notes,omitempty"`
	Status                RideStatus     `db:"status" json:"status"`
	CreatedAt             time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time      `db:"updated_at" json:"updated_at"`
}

// CreateRideRequest is the payload for publishing a new ride
type CreateRideRequest struct {
	Source                []string   `json:"source"`
	Destination           []string   `json:"destination"`
	DepartureType         string     `json:"departure_type"`
	RideTime              *time.Time `json:"ride_time"`
	FlexibleWindowMinutes *int       `json:"flexible_window_minutes"`
	TotalSeats            int        `json:"total_seats"`
	SeatLayout            *string    `json:"seat_layout"`
	PricePerPerson        *float64   `json:"price_per_person"`
	PaymentContact        *string    `json:"payment_contact"`
	CarInfo               *string    `json:"car_info"`
	ExtraNotes            *string    `json:"extra_notes"`
}

// UpdateRideRequest is the partial-update payload for a ride. Nil fields are
// left untouched; seat counts are deliberately not part of the editable set.
type UpdateRideRequest struct {
	Source                []string   `json:"source"`
	Destination           []string   `json:"destination"`
	DepartureType         *string    `json:"departure_type"`
	RideTime              *time.Time `json:"ride_time"`
	FlexibleWindowMinutes *int       `json:"flexible_window_minutes"`
	SeatLayout            *string    `json:"seat_layout"`
	PricePerPerson        *float64   `json:"price_per_person"`
	PaymentContact        *string    `json:"payment_contact"`
	CarInfo               *string    `json:"car_info"`
	ExtraNotes            *string    `json:"extra_notes"`
	Status                *string    `json:"status"`
}

// IsEmpty reports whether the patch carries no updatable field at all.
func (r *UpdateRideRequest) IsEmpty() bool {
	return r.Source == nil && r.Destination == nil && r.DepartureType == nil &&
		r.RideTime == nil && r.FlexibleWindowMinutes == nil && r.SeatLayout == nil &&
		r.PricePerPerson == nil && r.PaymentContact == nil && r.CarInfo == nil &&
		r.ExtraNotes == nil && r.Status == nil
}

// RideSearchParams are the policed parameters for ride discovery
type RideSearchParams struct {
	SourceFilters      []string
	DestinationFilters []string
	Date               time.Time
	Page               int
	Limit              int
}

// RideSummary is a search result row: the ride joined with its driver
type RideSummary struct {
	ID                    uuid.UUID      `db:"id" json:"id"`
	Source                pq.StringArray `db:"source" json:"source"`
	Destination           pq.StringArray `db:"destination" json:"destination"`
	DepartureType         DepartureType  `db:"departure_type" json:"departure_type"`
	RideTime              *time.Time     `db:"ride_time" json:"ride_time,omitempty"`
	FlexibleWindowMinutes *int           `db:"flexible_window_minutes" json:"flexible_window_minutes,omitempty"`
	DepartureLabel        string         `db:"-" json:"departure_label"`
	AvailableSeats        int            `db:"available_seats" json:"available_seats"`
	PricePerPerson        *float64       `db:"price_per_person" json:"price_per_person,omitempty"`
	SeatLayout            *string        `db:"seat_layout" json:"seat_layout,omitempty"`
	CarInfo               *string        `db:"car_info" json:"car_info,omitempty"`
	ExtraNotes            *string        `db:"extra_notes" json:"extra_notes,omitempty"`
	DriverID              uuid.UUID      `db:"driver_id" json:"-"`
	DriverName            string         `db:"driver_name" json:"-"`
	Driver                *RideDriver    `db:"-" json:"driver"`
	EffectiveTime         time.Time      `db:"effective_time" json:"effective_time"`
}

// RideDriver is the driver block embedded in a search result
type RideDriver struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// RideSearchPage is a single page of search results
type RideSearchPage struct {
	Page    int           `json:"page"`
	Limit   int           `json:"limit"`
	Results []RideSummary `json:"results"`
}

// RideCreatedEvent is published when a driver publishes a new ride
type RideCreatedEvent struct {
	RideID        uuid.UUID     `json:"ride_id"`
	DriverID      uuid.UUID     `json:"driver_id"`
	DepartureType DepartureType `json:"departure_type"`
	TotalSeats    int           `json:"total_seats"`
	CreatedAt     time.Time     `json:"created_at"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// RequestStatus is the two-state machine of a seat request. Revoking an
// accepted request returns it to pending; nothing is ever deleted.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
)

// RideRequest represents a passenger's seat request on a ride. At most one
// request exists per (ride, passenger) pair regardless of status.
type RideRequest struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	RideID      uuid.UUID     `db:"ride_id" json:"ride_id"`
	PassengerID uuid.UUID     `db:"passenger_id" json:"passenger_id"`
	Status      RequestStatus `db:"status" json:"status"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// LockedRequest is a request row joined with its ride's ownership and seat
// fields, read under an exclusive row lock during accept/revoke.
type LockedRequest struct {
	ID             uuid.UUID     `db:"id"`
	RideID         uuid.UUID     `db:"ride_id"`
	PassengerID    uuid.UUID     `db:"passenger_id"`
	Status         RequestStatus `db:"status"`
	DriverID       uuid.UUID     `db:"driver_id"`
	AvailableSeats int           `db:"available_seats"`
	TotalSeats     int           `db:"total_seats"`
}

// PassengerRequestItem is a row of a passenger's request history
type PassengerRequestItem struct {
	RequestID   uuid.UUID      `db:"id" json:"id"`
	Status      RequestStatus  `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	RideID      uuid.UUID      `db:"ride_id" json:"ride_id"`
	Source      pq.StringArray `db:"source" json:"source"`
	Destination pq.StringArray `db:"destination" json:"destination"`
	RideTime    *time.Time     `db:"ride_time" json:"ride_time,omitempty"`
	DriverName  string         `db:"driver_name" json:"driver_name"`
}

// RideRequestItem is a row of a ride's request list as seen by its driver
type RideRequestItem struct {
	RequestID      uuid.UUID     `db:"request_id" json:"request_id"`
	Status         RequestStatus `db:"status" json:"status"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	PassengerID    uuid.UUID     `db:"passenger_id" json:"passenger_id"`
	PassengerName  string        `db:"passenger_name" json:"passenger_name"`
	PassengerPhone string        `db:"phone_number" json:"phone_number"`
}

// RequestLifecycleEvent is published after a request transition commits
type RequestLifecycleEvent struct {
	RequestID   uuid.UUID     `json:"request_id"`
	RideID      uuid.UUID     `json:"ride_id"`
	PassengerID uuid.UUID     `json:"passenger_id"`
	DriverID    uuid.UUID     `json:"driver_id"`
	Status      RequestStatus `json:"status"`
	Timestamp   time.Time     `json:"timestamp"`
}

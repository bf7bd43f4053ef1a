package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prasetyadi/nebeng/internal/pkg/apperrors"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/internal/utils"
	"github.com/prasetyadi/nebeng/services/rides"
)

// RideUC implements the rides business logic
type RideUC struct {
	cfg      *models.Config
	rideRepo rides.RideRepo
	rideGW   rides.RideGW
}

// NewRideUC creates a new ride usecase
func NewRideUC(cfg *models.Config, rideRepo rides.RideRepo, rideGW rides.RideGW) *RideUC {
	return &RideUC{
		cfg:      cfg,
		rideRepo: rideRepo,
		rideGW:   rideGW,
	}
}

// CreateRide validates and publishes a new ride offer. The available seat
// counter always starts at the declared total; clients never set it.
func (uc *RideUC) CreateRide(ctx context.Context, driverID uuid.UUID, req *models.CreateRideRequest) (*models.Ride, error) {
	source := utils.NormalizePlaces(req.Source)
	if len(source) == 0 {
		return nil, apperrors.InvalidInput("source must contain at least one place")
	}
	destination := utils.NormalizePlaces(req.Destination)
	if len(destination) == 0 {
		return nil, apperrors.InvalidInput("destination must contain at least one place")
	}
	if req.TotalSeats < 1 {
		return nil, apperrors.InvalidInput("total_seats must be at least 1")
	}

	now := time.Now()
	ride := &models.Ride{
		ID:             uuid.New(),
		DriverID:       driverID,
		Source:         source,
		Destination:    destination,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
		SeatLayout:     req.SeatLayout,
		PricePerPerson: req.PricePerPerson,
		PaymentContact: req.PaymentContact,
		CarInfo:        req.CarInfo,
		ExtraNotes:     req.ExtraNotes,
		Status:         models.RideStatusActive,
	}

	switch models.DepartureType(req.DepartureType) {
	case models.DepartureScheduled:
		if req.RideTime == nil {
			return nil, apperrors.InvalidInput("ride_time is required for scheduled departures")
		}
		ride.DepartureType = models.DepartureScheduled
		ride.RideTime = req.RideTime
	case models.DepartureWindow:
		if req.FlexibleWindowMinutes == nil || *req.FlexibleWindowMinutes <= 0 {
			return nil, apperrors.InvalidInput("flexible_window_minutes must be a positive number of minutes")
		}
		ride.DepartureType = models.DepartureWindow
		ride.FlexibleWindowMinutes = req.FlexibleWindowMinutes
		ride.WindowUpdatedAt = &now
	default:
		return nil, apperrors.InvalidInput("departure_type must be scheduled or window")
	}

	created, err := uc.rideRepo.Create(ctx, ride)
	if err != nil {
		return nil, err
	}

	event := &models.RideCreatedEvent{
		RideID:        created.ID,
		DriverID:      created.DriverID,
		DepartureType: created.DepartureType,
		TotalSeats:    created.TotalSeats,
		CreatedAt:     created.CreatedAt,
	}
	if err := uc.rideGW.PublishRideCreated(ctx, event); err != nil {
		logger.Error("failed to publish ride created event",
			logger.String("ride_id", created.ID.String()),
			logger.Err(err))
	}
	return created, nil
}

// UpdateRide applies a partial update after checking ownership. Changing the
// flexible window, or switching a ride to window departure, resets the
// window anchor so the departure countdown restarts from the edit.
func (uc *RideUC) UpdateRide(ctx context.Context, rideID, driverID uuid.UUID, req *models.UpdateRideRequest) (*models.Ride, error) {
	current, err := uc.rideRepo.Get(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if current.DriverID != driverID {
		return nil, apperrors.ErrNotRideOwner
	}
	if req.IsEmpty() {
		return nil, apperrors.InvalidInput("no valid fields to update")
	}

	if req.Source != nil {
		req.Source = utils.NormalizePlaces(req.Source)
		if len(req.Source) == 0 {
			return nil, apperrors.InvalidInput("source must contain at least one place")
		}
	}
	if req.Destination != nil {
		req.Destination = utils.NormalizePlaces(req.Destination)
		if len(req.Destination) == 0 {
			return nil, apperrors.InvalidInput("destination must contain at least one place")
		}
	}
	if req.Status != nil {
		switch models.RideStatus(*req.Status) {
		case models.RideStatusActive, models.RideStatusInactive:
		default:
			return nil, apperrors.InvalidInput("status must be active or inactive")
		}
	}

	effectiveType := current.DepartureType
	if req.DepartureType != nil {
		switch models.DepartureType(*req.DepartureType) {
		case models.DepartureScheduled, models.DepartureWindow:
			effectiveType = models.DepartureType(*req.DepartureType)
		default:
			return nil, apperrors.InvalidInput("departure_type must be scheduled or window")
		}
	}

	switch effectiveType {
	case models.DepartureScheduled:
		if req.RideTime == nil && current.RideTime == nil {
			return nil, apperrors.InvalidInput("ride_time is required for scheduled departures")
		}
	case models.DepartureWindow:
		if req.FlexibleWindowMinutes != nil && *req.FlexibleWindowMinutes <= 0 {
			return nil, apperrors.InvalidInput("flexible_window_minutes must be a positive number of minutes")
		}
		if req.FlexibleWindowMinutes == nil && current.FlexibleWindowMinutes == nil {
			return nil, apperrors.InvalidInput("flexible_window_minutes is required for window departures")
		}
	}

	typeChangedToWindow := req.DepartureType != nil && effectiveType == models.DepartureWindow &&
		current.DepartureType != models.DepartureWindow
	reanchor := effectiveType == models.DepartureWindow &&
		(typeChangedToWindow || req.FlexibleWindowMinutes != nil)

	return uc.rideRepo.Update(ctx, rideID, driverID, req, reanchor)
}

// SearchRides polices paging parameters, runs the search, and decorates each
// row with its driver block and a human departure label.
func (uc *RideUC) SearchRides(ctx context.Context, params models.RideSearchParams) (*models.RideSearchPage, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = uc.cfg.Search.DefaultLimit
	}
	if params.Limit > uc.cfg.Search.MaxLimit {
		params.Limit = uc.cfg.Search.MaxLimit
	}
	if params.Date.IsZero() {
		params.Date = time.Now()
	}

	results, err := uc.rideRepo.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].DepartureLabel = departureLabel(&results[i])
	}

	return &models.RideSearchPage{
		Page:    params.Page,
		Limit:   params.Limit,
		Results: results,
	}, nil
}

func departureLabel(s *models.RideSummary) string {
	if s.DepartureType == models.DepartureScheduled && s.RideTime != nil {
		return s.RideTime.Format("3:04 PM")
	}
	if s.FlexibleWindowMinutes == nil {
		return ""
	}
	if *s.FlexibleWindowMinutes <= 5 {
		return "Now"
	}
	return fmt.Sprintf("Leaving in %d mins", *s.FlexibleWindowMinutes)
}

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/internal/utils"
	"github.com/prasetyadi/nebeng/services/rides"
)

// RideHandler handles HTTP requests for ride operations
type RideHandler struct {
	rideUC rides.RideUC
}

// NewRideHandler creates a new ride handler
func NewRideHandler(rideUC rides.RideUC) *RideHandler {
	return &RideHandler{rideUC: rideUC}
}

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// CreateRide handles ride publication requests
func (h *RideHandler) CreateRide(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var req models.CreateRideRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("invalid ride creation payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), driverID, &req)
	if err != nil {
		logger.Error("failed to create ride",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// UpdateRide handles partial ride updates. The payload is decoded strictly:
// unrecognized fields, including any attempt to set seat counters, are
// rejected rather than silently dropped.
func (h *RideHandler) UpdateRide(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	rideID, err := uuid.Parse(c.Param("rideId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	var req models.UpdateRideRequest
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		logger.Warn("invalid ride update payload",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), rideID, driverID, &req)
	if err != nil {
		logger.Error("failed to update ride",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// SearchRides handles ride discovery requests
func (h *RideHandler) SearchRides(c echo.Context) error {
	params := models.RideSearchParams{
		SourceFilters:      utils.SplitFilterList(c.QueryParam("source")),
		DestinationFilters: utils.SplitFilterList(c.QueryParam("destination")),
	}

	if raw := c.QueryParam("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return utils.BadRequestResponse(c, "date must be in YYYY-MM-DD format")
		}
		params.Date = date
	}
	if raw := c.QueryParam("page"); raw != "" {
		params.Page, _ = strconv.Atoi(raw)
	}
	if raw := c.QueryParam("limit"); raw != "" {
		params.Limit, _ = strconv.Atoi(raw)
	}

	page, err := h.rideUC.SearchRides(c.Request().Context(), params)
	if err != nil {
		logger.Error("failed to search rides", logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", page)
}

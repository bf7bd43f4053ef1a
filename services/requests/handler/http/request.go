package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prasetyadi/nebeng/internal/pkg/logger"
	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/utils"
	"github.com/prasetyadi/nebeng/services/requests"
)

// RequestHandler handles HTTP requests for the seat request lifecycle
type RequestHandler struct {
	requestUC requests.RequestUC
}

// NewRequestHandler creates a new request handler
func NewRequestHandler(requestUC requests.RequestUC) *RequestHandler {
	return &RequestHandler{requestUC: requestUC}
}

type createRequestPayload struct {
	RideID uuid.UUID `json:"ride_id"`
}

func callerID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(middleware.ContextKeyUserID).(uuid.UUID)
	return userID, ok
}

// CreateRequest handles a passenger requesting a seat on a ride
func (h *RequestHandler) CreateRequest(c echo.Context) error {
	passengerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	var payload createRequestPayload
	if err := c.Bind(&payload); err != nil {
		logger.Warn("invalid request creation payload", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if payload.RideID == uuid.Nil {
		return utils.BadRequestResponse(c, "ride_id is required")
	}

	req, err := h.requestUC.CreateRequest(c.Request().Context(), payload.RideID, passengerID)
	if err != nil {
		logger.Error("failed to create ride request",
			logger.String("ride_id", payload.RideID.String()),
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Request created successfully", req)
}

// AcceptRequest handles a driver accepting a pending request
func (h *RequestHandler) AcceptRequest(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.requestUC.AcceptRequest(c.Request().Context(), requestID, driverID)
	if err != nil {
		logger.Error("failed to accept ride request",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request accepted successfully", req)
}

// RevokeRequest handles a driver revoking a previously accepted request
func (h *RequestHandler) RevokeRequest(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	requestID, err := uuid.Parse(c.Param("requestId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	req, err := h.requestUC.RevokeRequest(c.Request().Context(), requestID, driverID)
	if err != nil {
		logger.Error("failed to revoke ride request",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request revoked successfully", req)
}

// ListMyRequests handles a passenger listing their own requests
func (h *RequestHandler) ListMyRequests(c echo.Context) error {
	passengerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	items, err := h.requestUC.ListPassengerRequests(c.Request().Context(), passengerID)
	if err != nil {
		logger.Error("failed to list passenger requests",
			logger.String("passenger_id", passengerID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", items)
}

// ListRideRequests handles a driver listing the requests on their ride
func (h *RequestHandler) ListRideRequests(c echo.Context) error {
	driverID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Authentication required")
	}

	rideID, err := uuid.Parse(c.Param("rideId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid ride ID")
	}

	items, err := h.requestUC.ListRideRequests(c.Request().Context(), rideID, driverID)
	if err != nil {
		logger.Error("failed to list ride requests",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
		return utils.DomainErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Requests retrieved successfully", items)
}

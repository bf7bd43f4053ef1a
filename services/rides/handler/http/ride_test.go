package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/nebeng/internal/pkg/middleware"
	"github.com/prasetyadi/nebeng/internal/pkg/models"
	"github.com/prasetyadi/nebeng/services/rides/mocks"
)

func setupRideHandler(t *testing.T) (*RideHandler, *mocks.MockRideUC, func()) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockRideUC(ctrl)
	return NewRideHandler(mockUC), mockUC, ctrl.Finish
}

func TestCreateRideHandler_Success(t *testing.T) {
	handler, mockUC, finish := setupRideHandler(t)
	defer finish()

	e := echo.New()
	driverID := uuid.New()

	body := `{"source":["jakarta"],"destination":["bandung"],"departure_type":"window","flexible_window_minutes":30,"total_seats":3}`
	req := httptest.NewRequest(http.MethodPost, "/rides", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, driverID)

	created := &models.Ride{ID: uuid.New(), DriverID: driverID, TotalSeats: 3, AvailableSeats: 3}
	mockUC.EXPECT().CreateRide(gomock.Any(), driverID, gomock.Any()).Return(created, nil)

	err := handler.CreateRide(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateRideHandler_RejectsUnknownFields(t *testing.T) {
	// Seat counters are not editable; a payload naming them is rejected
	// outright instead of being silently ignored.
	handler, _, finish := setupRideHandler(t)
	defer finish()

	e := echo.New()
	rideID := uuid.New()

	body := `{"available_seats": 99}`
	req := httptest.NewRequest(http.MethodPut, "/rides/"+rideID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, uuid.New())
	c.SetParamNames("rideId")
	c.SetParamValues(rideID.String())

	err := handler.UpdateRide(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateRideHandler_Success(t *testing.T) {
	handler, mockUC, finish := setupRideHandler(t)
	defer finish()

	e := echo.New()
	driverID := uuid.New()
	rideID := uuid.New()

	body := `{"status":"inactive"}`
	req := httptest.NewRequest(http.MethodPut, "/rides/"+rideID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, driverID)
	c.SetParamNames("rideId")
	c.SetParamValues(rideID.String())

	updated := &models.Ride{ID: rideID, DriverID: driverID, Status: models.RideStatusInactive}
	mockUC.EXPECT().UpdateRide(gomock.Any(), rideID, driverID, gomock.Any()).Return(updated, nil)

	err := handler.UpdateRide(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchRidesHandler_ParsesParams(t *testing.T) {
	handler, mockUC, finish := setupRideHandler(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides/search?source=Jakarta,%20Depok&destination=bandung&date=2026-09-01&page=2&limit=10", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mockUC.EXPECT().SearchRides(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params models.RideSearchParams) (*models.RideSearchPage, error) {
			assert.Equal(t, []string{"jakarta", "depok"}, params.SourceFilters)
			assert.Equal(t, []string{"bandung"}, params.DestinationFilters)
			assert.Equal(t, "2026-09-01", params.Date.Format("2006-01-02"))
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, 10, params.Limit)
			return &models.RideSearchPage{Page: 2, Limit: 10, Results: []models.RideSummary{}}, nil
		})

	err := handler.SearchRides(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSearchRidesHandler_BadDate(t *testing.T) {
	handler, _, finish := setupRideHandler(t)
	defer finish()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/rides/search?date=tomorrow", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.SearchRides(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

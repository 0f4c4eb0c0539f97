package booking_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Astemirdum/car-rental-storefront/storefront/config"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/booking"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validToken = "valid"

func newService(t *testing.T) *booking.Service {
	t.Helper()
	e := echo.New()
	auth := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("Authorization") != "Bearer "+validToken {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			}
			return next(c)
		}
	}
	e.GET("/api/bookings", func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`[{"id":"b-1","carId":"1","startDate":"2025-05-01","endDate":"2025-05-05","totalPrice":160,"car":{"id":"1","brand":"Toyota","model":"Yaris","stock":3}}]`))
	}, auth)
	e.POST("/api/bookings", func(c echo.Context) error {
		var in model.BookingInput
		if err := json.NewDecoder(c.Request().Body).Decode(&in); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, model.BookingData{BookingInput: in, ID: "b-2"})
	}, auth)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	cfg := config.Config{Backend: config.Backend{BaseURL: srv.URL}}
	cfg.Backend.CB.RecordLength = 10
	cfg.Backend.CB.Percentile = 1
	return booking.NewService(zap.NewNop(), cfg)
}

func TestService_MyBookings(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	list, err := svc.MyBookings(context.Background(), validToken)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "b-1", list[0].ID)
	require.Equal(t, "Yaris", list[0].Car.Model)

	_, err = svc.MyBookings(context.Background(), "expired")
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestService_CreateBooking(t *testing.T) {
	t.Parallel()
	svc := newService(t)

	in := model.BookingInput{
		CarID:         "1",
		StartDate:     "2025-05-01T00:00:00.000Z",
		EndDate:       "2025-05-05T00:00:00.000Z",
		LicenseNumber: "DL12345678",
		LicenseExpiry: time.Date(2025, 5, 6, 0, 0, 0, 0, time.UTC),
		TotalPrice:    160,
		CustomerName:  "John Doe",
	}
	got, err := svc.CreateBooking(context.Background(), validToken, in)
	require.NoError(t, err)
	require.Equal(t, "b-2", got.ID)
	require.Equal(t, in, got.BookingInput)

	_, err = svc.CreateBooking(context.Background(), "", in)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

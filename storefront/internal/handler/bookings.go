package handler

import (
	"net/http"

	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/checkout"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/period"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	ctx := c.Request().Context()
	carID := c.Param("carId")
	startDate, endDate := c.QueryParam("start"), c.QueryParam("end")
	if carID == "" {
		return h.fail(ctx, errs.ErrInvalidBookingParams)
	}
	if _, _, err := parseRange(startDate, endDate, errs.ErrInvalidBookingParams); err != nil {
		return h.fail(ctx, err)
	}
	var form checkout.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	car, err := h.carSvc.GetCar(ctx, carID, startDate, endDate)
	if err != nil {
		return h.fail(ctx, err)
	}
	booked, err := h.checkoutSvc.Submit(ctx, checkout.Request{
		Car:       car,
		StartDate: startDate,
		EndDate:   endDate,
		Form:      form,
	})
	if err != nil {
		return h.fail(ctx, err)
	}

	h.event(kafka.EventBookingCreated, booked.CustomerEmail, map[string]any{
		"bookingId":  booked.ID,
		"carId":      booked.CarID,
		"totalPrice": booked.TotalPrice,
	})
	return c.JSON(http.StatusCreated, booked)
}

func (h *Handler) GetBookings(c echo.Context) error {
	ctx := c.Request().Context()
	s, _ := h.sessionSvc.Current()
	bookings, err := h.bookingSvc.MyBookings(ctx, s.Token)
	if err != nil {
		return h.fail(ctx, err)
	}

	now := h.now()
	views := make([]model.BookingView, 0, len(bookings))
	for _, b := range bookings {
		v := model.BookingView{BookingData: b}
		start, serr := model.ParseDate(b.StartDate)
		end, eerr := model.ParseDate(b.EndDate)
		if serr != nil || eerr != nil {
			h.log.Warn("booking with unparsable dates",
				zap.String("booking_id", b.ID),
				zap.String("start", b.StartDate),
				zap.String("end", b.EndDate),
			)
			views = append(views, v)
			continue
		}
		status := period.BookingStatus(start, end, now)
		v.Status = string(status)
		v.Cancelable = status.Cancelable()
		v.Days = period.DaysBetween(start, end)
		views = append(views, v)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetConfirmation(c echo.Context) error {
	d, err := h.draftSvc.Confirmation()
	if err != nil {
		return h.fail(c.Request().Context(), err)
	}
	resp := model.Confirmation{Booking: d}
	start, serr := model.ParseDate(d.StartDate)
	end, eerr := model.ParseDate(d.EndDate)
	if serr == nil && eerr == nil {
		resp.Days = period.DaysBetween(start, end)
	}
	return c.JSON(http.StatusOK, resp)
}

// LeaveConfirmation drops the draft once the confirmation has been seen.
func (h *Handler) LeaveConfirmation(c echo.Context) error {
	h.draftSvc.Clear()
	return c.NoContent(http.StatusNoContent)
}

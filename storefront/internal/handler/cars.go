package handler

import (
	"net/http"
	"time"

	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/listing"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/period"
	"github.com/labstack/echo/v4"
)

// parseRange checks a pickup/return pair; missing is returned when either is empty.
func parseRange(startDate, endDate string, missing error) (time.Time, time.Time, error) {
	if startDate == "" || endDate == "" {
		return time.Time{}, time.Time{}, missing
	}
	start, err := model.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid start date")
	}
	end, err := model.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "invalid end date")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errs.ErrInvalidRange
	}
	return start, end, nil
}

func (h *Handler) GetCars(c echo.Context) error {
	ctx := c.Request().Context()
	var (
		startDate, endDate, sortKey string
		f                           = listing.DefaultFilter()
	)
	if err := echo.QueryParamsBinder(c).
		String("start", &startDate).
		String("end", &endDate).
		String("search", &f.Term).
		Float64("minPrice", &f.MinPrice).
		Float64("maxPrice", &f.MaxPrice).
		String("sort", &sortKey).
		BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	key, err := listing.ParseSort(sortKey)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	f.Sort = key
	if _, _, err := parseRange(startDate, endDate, errs.ErrMissingDates); err != nil {
		return h.fail(ctx, err)
	}

	cars, err := h.carSvc.AvailableCars(ctx, startDate, endDate)
	if err != nil {
		return h.fail(ctx, err)
	}
	cards := listing.DecorateAll(listing.Apply(cars, f), h.rnd)

	var email string
	if s, ok := h.sessionSvc.Current(); ok {
		email = s.User.Email
	}
	h.event(kafka.EventSearch, email, map[string]any{
		"start":   startDate,
		"end":     endDate,
		"search":  f.Term,
		"results": len(cards),
	})
	return c.JSON(http.StatusOK, cards)
}

func (h *Handler) GetCar(c echo.Context) error {
	ctx := c.Request().Context()
	carID := c.Param("carId")
	startDate, endDate := c.QueryParam("start"), c.QueryParam("end")
	start, end, err := parseRange(startDate, endDate, errs.ErrMissingDates)
	if err != nil {
		return h.fail(ctx, err)
	}
	car, err := h.carSvc.GetCar(ctx, carID, startDate, endDate)
	if err != nil {
		return h.fail(ctx, err)
	}
	return c.JSON(http.StatusOK, model.CarDetails{
		AvailableCar: car,
		Days:         period.DaysBetween(start, end),
	})
}

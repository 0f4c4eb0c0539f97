package handler

import (
	"net/http"

	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := c.Validate(req); err != nil {
		return h.fail(ctx, errs.ErrEmptyCredentials)
	}
	user, err := h.sessionSvc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return h.fail(ctx, err)
	}
	h.event(kafka.EventLogin, user.Email, nil)
	return c.JSON(http.StatusOK, user)
}

func (h *Handler) Register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	ctx := c.Request().Context()
	if err := c.Validate(req); err != nil {
		return h.fail(ctx, errs.ErrEmptyCredentials)
	}
	if req.Password != req.ConfirmPassword {
		return h.fail(ctx, errs.ErrPasswordMismatch)
	}
	user, err := h.sessionSvc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return h.fail(ctx, err)
	}
	h.event(kafka.EventRegister, user.Email, nil)
	return c.JSON(http.StatusCreated, user)
}

// Logout always succeeds for the caller; the in-memory session is gone even
// when the store could not be cleared.
func (h *Handler) Logout(c echo.Context) error {
	s, wasSignedIn := h.sessionSvc.Current()
	if err := h.sessionSvc.Logout(c.Request().Context()); err != nil {
		h.log.Error("logout", zap.Error(err))
	}
	if wasSignedIn {
		h.event(kafka.EventLogout, s.User.Email, nil)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Session(c echo.Context) error {
	s, ok := h.sessionSvc.Current()
	if !ok {
		return h.signInRequired()
	}
	return c.JSON(http.StatusOK, s.User)
}

package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Astemirdum/car-rental-storefront/pkg/circuit_breaker"
	"github.com/Astemirdum/car-rental-storefront/pkg/kafka"
	md "github.com/Astemirdum/car-rental-storefront/pkg/middleware"
	"github.com/Astemirdum/car-rental-storefront/pkg/validate"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/listing"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	loginPath = "/auth/login"
	homePath  = "/"
)

type Handler struct {
	sessionSvc  SessionService
	carSvc      CarService
	bookingSvc  BookingService
	checkoutSvc CheckoutService
	draftSvc    DraftService
	stats       StatsLog
	validator   *validate.CustomValidator
	log         *zap.Logger

	now func() time.Time
	rnd listing.Randomizer
}

type Option func(h *Handler)

func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		h.now = now
	}
}

func WithRandomizer(rnd listing.Randomizer) Option {
	return func(h *Handler) {
		h.rnd = rnd
	}
}

type Deps struct {
	Session  SessionService
	Cars     CarService
	Bookings BookingService
	Checkout CheckoutService
	Drafts   DraftService
	Stats    StatsLog

	// Validator is shared with checkout; a fresh one is used when nil.
	Validator *validate.CustomValidator
}

func New(log *zap.Logger, deps Deps, opts ...Option) *Handler {
	h := &Handler{
		sessionSvc:  deps.Session,
		carSvc:      deps.Cars,
		bookingSvc:  deps.Bookings,
		checkoutSvc: deps.Checkout,
		draftSvc:    deps.Drafts,
		stats:       deps.Stats,
		validator:   deps.Validator,
		log:         log.Named("handler"),
		now:         time.Now,
		rnd:         listing.GlobalRand(),
	}
	if h.validator == nil {
		h.validator = validate.NewCustomValidator()
	}
	if h.stats == nil {
		h.stats = NewStatsLog(nil, kafka.StatsTopic)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = h.validator

	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)
	signedIn := md.RequireSession(h.signedIn, h.signInRequired)

	api.POST("/auth/login", h.Login)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/session", h.Session)

	api.GET("/cars", h.GetCars)
	api.GET("/cars/:carId", h.GetCar)
	api.POST("/cars/:carId/bookings", h.CreateBooking, signedIn)

	api.GET("/bookings", h.GetBookings, signedIn)
	api.GET("/bookings/confirmation", h.GetConfirmation)
	api.DELETE("/bookings/confirmation", h.LeaveConfirmation)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) signedIn() bool {
	_, ok := h.sessionSvc.Current()
	return ok
}

func (h *Handler) signInRequired() error {
	return echo.NewHTTPError(http.StatusUnauthorized, model.ErrorResponse{
		Message:  errs.ErrNotAuthenticated.Error(),
		Redirect: loginPath,
	})
}

// fail converts service errors into HTTP answers. A rejected token ends the
// session before the redirect to the login page.
func (h *Handler) fail(ctx context.Context, err error) error {
	var (
		apiErr  *errs.APIError
		valErr  *errs.ValidationError
		httpErr *echo.HTTPError
	)
	switch {
	case errors.As(err, &httpErr):
		return httpErr
	case errors.Is(err, errs.ErrInvalidToken):
		if lerr := h.sessionSvc.Logout(ctx); lerr != nil {
			h.log.Warn("logout after rejected token", zap.Error(lerr))
		}
		return echo.NewHTTPError(http.StatusUnauthorized, model.ErrorResponse{
			Message:  err.Error(),
			Redirect: loginPath,
		})
	case errors.Is(err, errs.ErrNotAuthenticated):
		return h.signInRequired()
	case errors.Is(err, errs.ErrNoActiveBooking):
		return echo.NewHTTPError(http.StatusNotFound, model.ErrorResponse{
			Message:  err.Error(),
			Redirect: homePath,
		})
	case errors.Is(err, errs.ErrInvalidBookingParams):
		return echo.NewHTTPError(http.StatusBadRequest, model.ErrorResponse{
			Message:  err.Error(),
			Redirect: homePath,
		})
	case errors.Is(err, errs.ErrMissingDates),
		errors.Is(err, errs.ErrInvalidRange),
		errors.Is(err, errs.ErrLicenseExpiry),
		errors.Is(err, errs.ErrEmptyCredentials),
		errors.Is(err, errs.ErrPasswordMismatch):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.As(err, &valErr):
		return echo.NewHTTPError(http.StatusBadRequest, model.ErrorResponse{
			Message: err.Error(),
			Fields:  valErr.Fields,
		})
	case errors.As(err, &apiErr):
		code := apiErr.Status
		if code < http.StatusBadRequest {
			code = http.StatusBadGateway
		}
		return echo.NewHTTPError(code, apiErr.Message)
	case errors.Is(err, circuit_breaker.ErrOpenCB):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
}

func (h *Handler) event(typ kafka.EventType, email string, data map[string]any) {
	ev := kafka.EventStats{
		Type:      typ,
		UserEmail: email,
		Data:      data,
		Timestamp: h.now(),
	}
	if err := h.stats.Log(ev); err != nil {
		h.log.Warn("stats log", zap.String("type", string(typ)), zap.Error(err))
	}
}

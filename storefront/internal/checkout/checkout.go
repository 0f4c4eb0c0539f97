package checkout

import (
	"context"

	"github.com/Astemirdum/car-rental-storefront/pkg/validate"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Request is one submission of the booking form for a priced car.
type Request struct {
	Car       model.AvailableCar
	StartDate string
	EndDate   string
	Form      Form
}

type Service struct {
	bookings BookingAPI
	session  SessionHolder
	drafts   DraftHolder
	validate *validate.CustomValidator
	log      *zap.Logger
}

func NewService(log *zap.Logger, v *validate.CustomValidator, bookings BookingAPI, session SessionHolder, drafts DraftHolder) *Service {
	return &Service{
		bookings: bookings,
		session:  session,
		drafts:   drafts,
		validate: v,
		log:      log.Named("checkout"),
	}
}

// Submit validates the form, creates the booking and stores it as the draft
// to confirm. An expired licence is rejected before any backend call.
func (s *Service) Submit(ctx context.Context, req Request) (model.BookingData, error) {
	sess, ok := s.session.Current()
	if !ok {
		return model.BookingData{}, errs.ErrNotAuthenticated
	}
	if req.Car.ID == "" || req.StartDate == "" || req.EndDate == "" {
		return model.BookingData{}, errs.ErrInvalidBookingParams
	}
	start, err := model.ParseDate(req.StartDate)
	if err != nil {
		return model.BookingData{}, errs.ErrInvalidBookingParams
	}
	end, err := model.ParseDate(req.EndDate)
	if err != nil {
		return model.BookingData{}, errs.ErrInvalidBookingParams
	}
	if !end.After(start) {
		return model.BookingData{}, errs.ErrInvalidRange
	}

	if err := validateForm(s.validate, req.Form); err != nil {
		return model.BookingData{}, err
	}
	expiry := req.Form.DrivingLicenseExpiry.Time
	if expiry.Before(end) {
		return model.BookingData{}, errs.ErrLicenseExpiry
	}

	input := model.BookingInput{
		CarID:             req.Car.ID,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		LicenseNumber:     req.Form.DrivingLicenseNumber,
		LicenseExpiry:     expiry,
		TotalPrice:        req.Car.TotalPrice,
		AverageDailyPrice: req.Car.AverageDailyPrice,
		CustomerName:      req.Form.FirstName + " " + req.Form.LastName,
		CustomerEmail:     req.Form.Email,
		CustomerPhone:     req.Form.Phone,
		CustomerAddress:   req.Form.Address,
	}

	booked, err := s.bookings.CreateBooking(ctx, sess.Token, input)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			if lerr := s.session.Logout(ctx); lerr != nil {
				s.log.Warn("logout after rejected token", zap.Error(lerr))
			}
		}
		return model.BookingData{}, err
	}

	d := model.BookingData{
		BookingInput: input,
		ID:           booked.ID,
		Car:          req.Car.Car,
	}
	s.drafts.Set(d)
	s.log.Info("booking created",
		zap.String("booking_id", d.ID),
		zap.String("car_id", d.CarID),
	)
	return d, nil
}

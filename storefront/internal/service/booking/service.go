package booking

import (
	"context"
	"net/http"

	"github.com/Astemirdum/car-rental-storefront/storefront/config"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/rest"
	"go.uber.org/zap"
)

type Service struct {
	log  *zap.Logger
	rest *rest.Client
}

func NewService(log *zap.Logger, cfg config.Config) *Service {
	return &Service{
		log:  log.Named("booking"),
		rest: rest.New(log.Named("booking"), cfg.Backend),
	}
}

func (s *Service) MyBookings(ctx context.Context, token string) ([]model.BookingData, error) {
	bookings := make([]model.BookingData, 0)
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		Path:     "/api/bookings",
		Token:    token,
		Fallback: "Failed to fetch bookings",
	}, &bookings)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Service) CreateBooking(ctx context.Context, token string, input model.BookingInput) (model.BookingData, error) {
	var booked model.BookingData
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		Path:     "/api/bookings",
		Token:    token,
		Body:     input,
		Fallback: "Failed to book car",
	}, &booked)
	if err != nil {
		return model.BookingData{}, err
	}
	return booked, nil
}

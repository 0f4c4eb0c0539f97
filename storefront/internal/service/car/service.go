package car

import (
	"context"
	"net/http"
	"net/url"

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
		log:  log.Named("car"),
		rest: rest.New(log.Named("car"), cfg.Backend),
	}
}

func rangeQuery(startDate, endDate string) url.Values {
	return url.Values{
		"startDate": {startDate},
		"endDate":   {endDate},
	}
}

func (s *Service) AvailableCars(ctx context.Context, startDate, endDate string) ([]model.AvailableCar, error) {
	cars := make([]model.AvailableCar, 0)
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		Path:     "/api/cars",
		Query:    rangeQuery(startDate, endDate),
		Fallback: "Failed to fetch available cars",
	}, &cars)
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (s *Service) GetCar(ctx context.Context, carID, startDate, endDate string) (model.AvailableCar, error) {
	var car model.AvailableCar
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodGet,
		Path:     "/api/cars/" + url.PathEscape(carID),
		Query:    rangeQuery(startDate, endDate),
		Fallback: "Failed to retrieve car",
	}, &car)
	if err != nil {
		return model.AvailableCar{}, err
	}
	return car, nil
}

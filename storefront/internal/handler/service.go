package handler

import (
	"context"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/checkout"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/draft"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/booking"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/car"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ SessionService  = (*session.Holder)(nil)
	_ CarService      = (*car.Service)(nil)
	_ BookingService  = (*booking.Service)(nil)
	_ CheckoutService = (*checkout.Service)(nil)
	_ DraftService    = (*draft.Holder)(nil)
)

type SessionService interface {
	Login(ctx context.Context, email, password string) (model.UserData, error)
	Register(ctx context.Context, name, email, password string) (model.UserData, error)
	Logout(ctx context.Context) error
	Current() (model.Session, bool)
}

type CarService interface {
	AvailableCars(ctx context.Context, startDate, endDate string) ([]model.AvailableCar, error)
	GetCar(ctx context.Context, carID, startDate, endDate string) (model.AvailableCar, error)
}

type BookingService interface {
	MyBookings(ctx context.Context, token string) ([]model.BookingData, error)
}

type CheckoutService interface {
	Submit(ctx context.Context, req checkout.Request) (model.BookingData, error)
}

type DraftService interface {
	Confirmation() (model.BookingData, error)
	Clear()
}

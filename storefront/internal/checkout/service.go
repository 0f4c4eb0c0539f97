package checkout

import (
	"context"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/draft"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/booking"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/session"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookingAPI interface {
	CreateBooking(ctx context.Context, token string, input model.BookingInput) (model.BookingData, error)
}

type SessionHolder interface {
	Current() (model.Session, bool)
	Logout(ctx context.Context) error
}

type DraftHolder interface {
	Set(d model.BookingData)
}

var (
	_ BookingAPI    = (*booking.Service)(nil)
	_ SessionHolder = (*session.Holder)(nil)
	_ DraftHolder   = (*draft.Holder)(nil)
)

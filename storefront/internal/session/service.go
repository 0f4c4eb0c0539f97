package session

import (
	"context"

	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/service/auth"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (model.LoginResponse, error)
	Register(ctx context.Context, name, email, password string) (model.LoginResponse, error)
}

var _ AuthAPI = (*auth.Service)(nil)

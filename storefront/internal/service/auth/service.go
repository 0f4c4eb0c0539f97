package auth

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
		log:  log.Named("auth"),
		rest: rest.New(log.Named("auth"), cfg.Backend),
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (model.LoginResponse, error) {
	var resp model.LoginResponse
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		Path:     "/api/auth/login",
		Body:     model.LoginRequest{Email: email, Password: password},
		Fallback: "Login failed",
	}, &resp)
	if err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

func (s *Service) Register(ctx context.Context, name, email, password string) (model.LoginResponse, error) {
	var resp model.LoginResponse
	err := s.rest.Do(ctx, rest.Request{
		Method:   http.MethodPost,
		Path:     "/api/auth/register",
		Body:     model.RegisterRequest{Email: email, Name: name, Password: password},
		Fallback: "Registration failed",
	}, &resp)
	if err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

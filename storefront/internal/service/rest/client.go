package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Astemirdum/car-rental-storefront/pkg/circuit_breaker"
	"github.com/Astemirdum/car-rental-storefront/storefront/config"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	AuthorizationHeader = "Authorization"
	bearer              = "Bearer "
)

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func New(log *zap.Logger, cfg config.Backend) *Client {
	return &Client{
		log:     log,
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cb:      circuit_breaker.NewWithConfig(cfg.CB),
	}
}

func (c *Client) CB() circuit_breaker.CircuitBreaker {
	return c.cb
}

type Request struct {
	Method string
	Path   string
	Query  url.Values
	// Token is sent as a bearer credential when set.
	Token string
	Body  any
	// Fallback is the message used when the backend gives none.
	Fallback string
}

// Do sends r and decodes a 2xx body into out. Non-2xx answers become
// *errs.APIError. Only transport failures and 5xx answers count against the
// circuit breaker.
func (c *Client) Do(ctx context.Context, r Request, out any) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	var apiErr error
	err = c.cb.Call(func() error {
		resp, err := c.client.Do(req)
		if err != nil {
			return errors.Wrap(err, r.Fallback)
		}
		defer resp.Body.Close()

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			apiErr = decodeError(resp, r.Fallback)
			if resp.StatusCode >= http.StatusInternalServerError {
				return apiErr
			}
			return nil
		}
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, r.Fallback)
		}
		return nil
	})
	if err != nil {
		c.log.Warn("backend call", zap.String("method", r.Method), zap.String("path", r.Path), zap.Error(err))
		return err
	}
	if apiErr != nil {
		c.log.Debug("backend rejected", zap.String("method", r.Method), zap.String("path", r.Path), zap.Error(apiErr))
		return apiErr
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	u := c.baseURL + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	var body io.Reader = http.NoBody
	if r.Body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(r.Body); err != nil {
			return nil, err
		}
		body = b
	}
	req, err := http.NewRequestWithContext(ctx, r.Method, u, body)
	if err != nil {
		return nil, err
	}
	if r.Body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if r.Token != "" {
		req.Header.Set(AuthorizationHeader, bearer+r.Token)
	}
	req.Header.Set(echo.HeaderXRequestID, uuid.NewString())
	return req, nil
}

func decodeError(resp *http.Response, fallback string) *errs.APIError {
	var body struct {
		Error string `json:"error"`
	}
	msg := fallback
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		msg = body.Error
	}
	return &errs.APIError{Status: resp.StatusCode, Message: msg}
}

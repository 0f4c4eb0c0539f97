package model

import (
	"strings"
	"time"
)

type Car struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Stock int    `json:"stock"`
}

// AvailableCar is a Car priced for the date range it was fetched with.
type AvailableCar struct {
	Car
	TotalPrice        float64 `json:"totalPrice"`
	AverageDailyPrice float64 `json:"averageDailyPrice"`
}

type UserData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	User  UserData `json:"user"`
}

type Session struct {
	User  UserData `json:"user"`
	Token string   `json:"-"`
}

type BookingInput struct {
	CarID             string    `json:"carId"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate"`
	LicenseNumber     string    `json:"licenseNumber"`
	LicenseExpiry     time.Time `json:"licenseExpiry"`
	TotalPrice        float64   `json:"totalPrice"`
	AverageDailyPrice float64   `json:"averageDailyPrice"`
	CustomerName      string    `json:"customerName"`
	CustomerEmail     string    `json:"customerEmail"`
	CustomerPhone     string    `json:"customerPhone"`
	CustomerAddress   string    `json:"customerAddress"`
}

// BookingData is a booking confirmed by the backend.
type BookingData struct {
	BookingInput
	ID  string `json:"id"`
	Car Car    `json:"car"`
}

// CarDetails is a priced car with the length of the requested rental.
type CarDetails struct {
	AvailableCar
	Days int `json:"days"`
}

// BookingView is a booking as listed under My bookings.
type BookingView struct {
	BookingData
	Status     string `json:"status"`
	Days       int    `json:"days"`
	Cancelable bool   `json:"cancelable"`
}

type Confirmation struct {
	Booking BookingData `json:"booking"`
	Days    int         `json:"days"`
}

type ErrorResponse struct {
	Message  string            `json:"message"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// Date accepts both 2006-01-02 and RFC 3339 timestamps.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) (err error) {
	s := strings.Trim(string(b), "\"")
	date, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = date
	return
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format(time.DateOnly) + `"`), nil
}

func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, s)
}

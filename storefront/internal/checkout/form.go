package checkout

import (
	"github.com/Astemirdum/car-rental-storefront/pkg/validate"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/errs"
	"github.com/Astemirdum/car-rental-storefront/storefront/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Form is the customer part of a booking request.
type Form struct {
	FirstName            string      `json:"firstName" validate:"min=2"`
	LastName             string      `json:"lastName" validate:"min=2"`
	Email                string      `json:"email" validate:"required,email"`
	Phone                string      `json:"phone" validate:"min=10"`
	DrivingLicenseNumber string      `json:"drivingLicenseNumber" validate:"min=5"`
	DrivingLicenseExpiry *model.Date `json:"drivingLicenseExpiry" validate:"required"`
	Address              string      `json:"address" validate:"min=3"`
}

// fieldMessages is keyed by the json name of the field.
var fieldMessages = map[string]string{
	"firstName":            "First name must be at least 2 characters",
	"lastName":             "Last name must be at least 2 characters",
	"email":                "Please enter a valid email address",
	"phone":                "Phone number must be at least 10 digits",
	"drivingLicenseNumber": "License number must be at least 5 characters",
	"drivingLicenseExpiry": "Please select the expiry date of your driving license",
	"address":              "Address must be at least 3 characters",
}

func validateForm(v *validate.CustomValidator, f Form) error {
	err := v.Validate(f)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate form")
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessages[fe.Field()]
	}
	return &errs.ValidationError{Fields: fields}
}

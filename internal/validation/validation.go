package validation

import (
	"regexp"
	"strings"

	"hospital-bed-backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// Regions are the 16 administrative regions of Ghana accepted in submissions.
var Regions = []string{
	"Ahafo", "Ashanti", "Bono", "Bono East", "Central",
	"Eastern", "Greater Accra", "North East", "Northern",
	"Oti", "Savannah", "Upper East", "Upper West",
	"Volta", "Western", "Western North",
}

// contactPattern restricts contact info to phone-like characters:
// digits, spaces, +, -, parentheses.
var contactPattern = regexp.MustCompile(`^[\d\s+()-]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return IsValidRegion(fl.Field().String())
	})
	_ = v.RegisterValidation("contact", func(fl validator.FieldLevel) bool {
		return contactPattern.MatchString(fl.Field().String())
	})
	return v
}

// IsValidRegion reports whether region is one of the enumerated region names.
func IsValidRegion(region string) bool {
	for _, r := range Regions {
		if r == region {
			return true
		}
	}
	return false
}

// HospitalInput trims free-text fields in place and validates the
// submission, returning the full list of validation messages. An empty
// result means the input is valid and safe to hand to the upsert service.
func HospitalInput(input *models.HospitalInput) []string {
	input.Name = strings.TrimSpace(input.Name)
	input.ContactInfo = strings.TrimSpace(input.ContactInfo)
	input.Location = strings.TrimSpace(input.Location)

	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Invalid submission."}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, messageFor(fieldError))
	}
	return messages
}

func messageFor(fieldError validator.FieldError) string {
	switch fieldError.StructField() {
	case "Name":
		return "Hospital name must be a string of at least 3 characters."
	case "Region":
		return "Invalid or missing region selected."
	case "ICUBeds":
		return "ICU beds must be a non-negative integer."
	case "RegularBeds":
		return "Regular beds must be a non-negative integer."
	case "ContactInfo":
		return "Contact info must be a valid phone number format (digits, spaces, +, -, () only)."
	case "Location":
		return "Location must be a string under 100 characters."
	}
	return "Invalid value for " + fieldError.Field() + "."
}

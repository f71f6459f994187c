package validators

import (
	"fmt"
	"reflect"
	"strings"

	"neuraflow/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report errors under the json field name so the frontend can map them
	// straight onto form inputs.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("service_product", validateServiceProduct)
	validate.RegisterValidation("http_url", validateHTTPURL)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Fields maps field names to their first error message.
func (v ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(v))
	for _, err := range v {
		if _, ok := fields[err.Field]; !ok {
			fields[err.Field] = err.Message
		}
	}
	return fields
}

// ValidateStruct validates a struct and returns detailed errors. All fields
// are checked; violations are collected, not short-circuited.
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		switch err.Field() {
		case "name":
			return "Name is required"
		case "product":
			return "Please select a service"
		case "rating":
			return "Please select a rating"
		case "comment":
			return "Review text is required"
		default:
			return fmt.Sprintf("%s is required", err.Field())
		}
	case "email":
		return "Invalid email address"
	case "min", "max":
		switch err.Field() {
		case "rating":
			return "Please select a rating"
		case "email":
			return "Invalid email address"
		case "name":
			return fmt.Sprintf("Name must be at most %s characters", err.Param())
		case "location":
			return fmt.Sprintf("Location must be at most %s characters", err.Param())
		case "comment":
			return fmt.Sprintf("Review must be at most %s characters", err.Param())
		default:
			return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		}
	case "service_product":
		return "Please select a service"
	case "http_url":
		return "Invalid URL format"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

// Custom validation functions
func validateServiceProduct(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	return utils.IsCatalogService(value)
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return utils.IsValidHTTPURL(value)
}

package validatorx

import (
	"time"

	gpvalidator "github.com/go-playground/validator/v10"
)

// IsPhone reports whether s is exactly PhoneLength ASCII digits.
func IsPhone(s string) bool {
	if len(s) != PhoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func validatePhone(fl gpvalidator.FieldLevel) bool {
	return IsPhone(fl.Field().String())
}

func validateTravelDate(fl gpvalidator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

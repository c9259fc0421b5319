package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// PhoneLength is the number of digits a contact phone must have.
const PhoneLength = 10

// Init initializes the validator singleton (idempotent, safe for concurrent use)
func Init() {
	once.Do(func() {
		nv := gpvalidator.New()
		_ = nv.RegisterValidation("phone", validatePhone)
		_ = nv.RegisterValidation("traveldate", validateTravelDate)
		v = nv
	})
}

func get() *gpvalidator.Validate {
	Init()
	return v
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	return get().Struct(s)
}

// ValidateVar validates a single value against a tag, e.g. "required,phone".
func ValidateVar(field interface{}, tag string) error {
	return get().Var(field, tag)
}

// FailedTag returns the first failing validation tag of err, or "" when err
// is not a validation error.
func FailedTag(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ""
	}
	return verrs[0].Tag()
}

// FailedField returns the struct field name of the first failing rule.
func FailedField(err error) string {
	verrs, ok := err.(gpvalidator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return ""
	}
	return verrs[0].StructField()
}

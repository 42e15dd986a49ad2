// Package validation provides field-level validation helpers.
package validation

import (
	"regexp"
)

var (
	accountNumRegex = regexp.MustCompile(`^[0-9]{10}$`)
	routingNumRegex = regexp.MustCompile(`^[0-9]{9}$`)
)

// Validator collects validation errors per field.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator.
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// AccountNum validates a 10 digit account number.
func (v *Validator) AccountNum(field, value string) {
	v.Check(accountNumRegex.MatchString(value), field, "must be a 10 digit account number")
}

// RoutingNum validates a 9 digit routing number.
func (v *Validator) RoutingNum(field, value string) {
	v.Check(routingNumRegex.MatchString(value), field, "must be a 9 digit routing number")
}

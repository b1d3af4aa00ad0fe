// Package validation provides input validation for grantkit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation covers
// the typed parts of permission rules; programmatic validation covers raw
// grant values, which are dynamic maps that struct tags cannot reach.
//
// # Struct Tag Validation
//
//	type Rule struct {
//	    Targets []string `validate:"required,min=1"`
//	}
//	err := validation.Validate(rule)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("target", rule.Target)
//	err := v.Validate()
package validation

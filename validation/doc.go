// Package validation checks constructor arguments and configuration.
//
// Struct tag validation (go-playground/validator) is used for option and
// config structs; the programmatic Validator collects numeric checks for
// combinator arguments. Both report failures as INVALID_ARGUMENT
// *errors.AppError values so that construction errors surface the same way
// everywhere.
//
// # Struct Tag Validation
//
//	type bounds struct {
//	    Start int `validate:"min=0"`
//	    Step  int `validate:"min=1"`
//	}
//	err := validation.ValidateStruct(bounds{Start: 0, Step: 1})
//
// # Programmatic Validation
//
//	err := validation.New().Min("r", r, 0).Err()
package validation

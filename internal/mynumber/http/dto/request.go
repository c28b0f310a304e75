// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/mynumber/internal/mynumber/domain"
	customValidation "github.com/allisson/mynumber/internal/validation"
)

// DigitsRequest carries a digit array, most significant digit first. Verify expects 12
// digits; check-digit and complete expect 11. Length and digit range are checked by the
// use case so the response names the exact failure.
type DigitsRequest struct {
	Digits []int `json:"digits"`
}

// Validate checks if the digits request is valid.
func (r *DigitsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Digits, validation.NotNil),
	)
}

// GenerateRequest contains the query parameters for random generation.
type GenerateRequest struct {
	Count int `form:"count,default=1"`
}

// Validate checks the count against 1 and the configured maximum.
func (r *GenerateRequest) Validate(maxCount int) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Count,
			validation.Min(1),
			validation.Max(maxCount),
		),
	)
}

// ParseRequest contains a My Number in any accepted text form.
type ParseRequest struct {
	Value string `json:"value"`
}

// Normalize narrows full-width characters in the value.
func (r *ParseRequest) Normalize() {
	r.Value = customValidation.Narrow(r.Value)
}

// Validate checks if the parse request is valid.
func (r *ParseRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// FormatRequest contains a My Number and the mode to render it in.
type FormatRequest struct {
	Value string `json:"value"`
	Mode  string `json:"mode"` // "N" (default), "S", "H" or "G"
}

// Normalize narrows full-width characters in the value and mode.
func (r *FormatRequest) Normalize() {
	r.Value = customValidation.Narrow(r.Value)
	r.Mode = customValidation.Narrow(r.Mode)
}

// Validate checks if the format request is valid.
func (r *FormatRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Value,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Mode, customValidation.FormatMode),
	)
}

// RangeRequest contains the bounds of a range enumeration.
type RangeRequest struct {
	Min   string `json:"min"`
	Max   string `json:"max"`
	Mode  string `json:"mode"`  // "numerical" (default) or "sequential"
	Limit int    `json:"limit"` // 0 uses the configured maximum
}

// Normalize narrows full-width digits in the bounds and applies the default mode.
func (r *RangeRequest) Normalize() {
	r.Min = customValidation.Narrow(r.Min)
	r.Max = customValidation.Narrow(r.Max)
	if r.Mode == "" {
		r.Mode = string(domain.RangeNumerical)
	}
}

// Validate checks if the range request is valid. Bound widths and ordering are checked
// by the range enumerator.
func (r *RangeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Min,
			validation.Required,
			customValidation.Numeric,
		),
		validation.Field(&r.Max,
			validation.Required,
			customValidation.Numeric,
		),
		validation.Field(&r.Mode,
			validation.Required,
			customValidation.RangeMode,
		),
		validation.Field(&r.Limit, validation.Min(0)),
	)
}

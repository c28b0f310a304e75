// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"github.com/allisson/mynumber/internal/mynumber/domain"
)

// VerifyResponse represents the result of verifying 12 digits.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// CheckDigitResponse represents a computed check digit.
type CheckDigitResponse struct {
	CheckDigit int `json:"check_digit"`
}

// NumberResponse represents a single My Number.
type NumberResponse struct {
	Number string `json:"number"`
	Digits []int  `json:"digits"`
}

// MapNumberToResponse converts a domain number to an API response.
func MapNumberToResponse(n domain.Number) NumberResponse {
	return NumberResponse{
		Number: n.String(),
		Digits: n.Digits(),
	}
}

// NumbersResponse represents a list of My Numbers.
type NumbersResponse struct {
	Numbers []string `json:"numbers"`
}

// MapNumbersToResponse converts domain numbers to an API response.
func MapNumbersToResponse(numbers []domain.Number) NumbersResponse {
	out := make([]string, 0, len(numbers))
	for _, n := range numbers {
		out = append(out, n.String())
	}
	return NumbersResponse{Numbers: out}
}

// FormatResponse represents a formatted My Number.
type FormatResponse struct {
	Formatted string `json:"formatted"`
}

// RangeResponse represents the numbers found in a range. Truncated is set when the
// range held more numbers than the limit allowed.
type RangeResponse struct {
	Numbers   []string `json:"numbers"`
	Count     int      `json:"count"`
	Truncated bool     `json:"truncated"`
}

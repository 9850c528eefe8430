package ui

import (
	"fmt"
	"strconv"
)

// parseDimension parses a custom dimension entry as a positive number of
// centimeters. Returns an error for empty, non-numeric or non-positive input.
func parseDimension(s string, fieldName string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s cannot be empty", fieldName)
	}

	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number", fieldName)
	}

	if val <= 0 {
		return 0, fmt.Errorf("%s must be greater than zero", fieldName)
	}

	return val, nil
}

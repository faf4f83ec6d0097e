package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PasswordLength is the exact required password length. The product rule is
// length 10 exactly, not a minimum.
const PasswordLength = 10

// PasswordSymbols is the set of symbols accepted by the complexity rule.
const PasswordSymbols = `!@#$%^&*(),.?":{}|<>`

// ValidatePassword checks the signup password rule: exactly PasswordLength
// characters with at least one uppercase letter, one lowercase letter, one
// digit, and one symbol from PasswordSymbols. The same rule runs on the
// client before any network call and on the server.
func ValidatePassword(password string) error {
	if len(password) != PasswordLength {
		return fmt.Errorf("%w: password must be exactly %d characters", ErrValidation, PasswordLength)
	}

	var upper, lower, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(PasswordSymbols, r):
			symbol = true
		}
	}

	if !upper || !lower || !digit || !symbol {
		return fmt.Errorf("%w: password needs an uppercase letter, a lowercase letter, a digit and a symbol", ErrValidation)
	}
	return nil
}

// ValidateTitle checks that a row title is non-empty after trimming.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}

// ParseAmount parses a budget amount entered as text. Amounts are
// magnitudes: the direction is carried by the item type, so negative input
// is rejected, as are NaN and infinities.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount is not a number", ErrValidation)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: amount is not a finite number", ErrValidation)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return v, nil
}

package valueobjects

import (
	"fmt"
	"strings"
)

// Phone represents a phone number value object normalized to E.164.
// Ten-digit numbers are assumed North American and get a +1 prefix;
// eleven digits must already start with 1; anything longer is assumed
// to carry its own country code.
type Phone struct {
	value string
}

// NewPhone creates a Phone from user input, normalizing to E.164 form.
// Accepts formats like "7135551234", "1-713-555-1234", "(713) 555-1234",
// "+17135551234" and international numbers like "+44 7911 123456".
func NewPhone(value string) (*Phone, error) {
	digits := stripNonDigits(value)

	switch {
	case len(digits) == 10:
		return &Phone{value: "+1" + digits}, nil
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return &Phone{value: "+" + digits}, nil
	case len(digits) > 11:
		return &Phone{value: "+" + digits}, nil
	default:
		return nil, fmt.Errorf("invalid phone number: %s", value)
	}
}

// String returns the E.164 representation
func (p *Phone) String() string {
	return p.value
}

// Equals checks if two phone objects are equal
func (p *Phone) Equals(other *Phone) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.value == other.value
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

package iso8583

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a fixed-point decimal with a scale of 2 (cents), matching the
// AMOUNT kind's 12-digit implied-decimal wire representation. It is backed
// by an int64 count of minor units rather than a float, so no part of the
// codec rounds or loses precision on money. No decimal library appears
// anywhere in the retrieved pack, so this minimal scaled-integer type is a
// justified stdlib-only component (see DESIGN.md).
type Amount struct {
	minor int64 // value * 100
}

// NewAmount builds an Amount from a whole-unit and cents pair, e.g.
// NewAmount(12, 34) is 12.34.
func NewAmount(units int64, cents int64) Amount {
	sign := int64(1)
	if units < 0 {
		sign = -1
		units = -units
	}
	return Amount{minor: sign * (units*100 + cents)}
}

// AmountFromMinor builds an Amount directly from a count of minor units
// (cents).
func AmountFromMinor(minor int64) Amount { return Amount{minor: minor} }

// Minor returns the amount as a count of minor units (cents).
func (a Amount) Minor() int64 { return a.minor }

// ParseAmount decodes a 12-digit AMOUNT field (implied two decimal places,
// no sign, no decimal point) into an Amount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, fmt.Errorf("iso8583: empty AMOUNT field")
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Amount{}, fmt.Errorf("iso8583: AMOUNT field %q is not all digits", s)
		}
	}
	minor, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("iso8583: AMOUNT field %q: %w", s, err)
	}
	return Amount{minor: minor}, nil
}

// String renders the amount as a 12-digit zero-padded implied-decimal
// string, the AMOUNT kind's wire form.
func (a Amount) String() string {
	return fmt.Sprintf("%012d", a.minor)
}

// Decimal renders the amount in human decimal form, e.g. "1234.56".
func (a Amount) Decimal() string {
	neg := a.minor < 0
	minor := a.minor
	if neg {
		minor = -minor
	}
	s := fmt.Sprintf("%s%d.%02d", signPrefix(neg), minor/100, minor%100)
	return s
}

func signPrefix(neg bool) string {
	if neg {
		return "-"
	}
	return ""
}

// formatNumeric renders n as a zero-padded fixed-width decimal string of
// width declaredLength, the wire form of a NUMERIC field backed by int64.
func formatNumeric(n int64, declaredLength int) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	if len(s) < declaredLength {
		s = strings.Repeat("0", declaredLength-len(s)) + s
	}
	if neg {
		return "-" + s
	}
	return s
}

// parseNumeric decodes a NUMERIC field's digit string into an int64.
func parseNumeric(s string) (int64, error) {
	s = strings.TrimLeft(s, " ")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("iso8583: NUMERIC field %q: %w", s, err)
	}
	return n, nil
}

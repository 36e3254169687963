package iso8583

import (
	"fmt"
	"time"
)

// DATE10 and DATE4 carry no year; the missing year is filled in from the
// current local clock. If the result would land more than six months in
// the future (the December/January wrap for a transaction dated near a
// year boundary), the year is rolled back by one so the reconstructed date
// stays in the recent past rather than the near future.
func resolveYearlessDate(month, day, hour, min, sec int, now time.Time) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("iso8583: month %02d out of range", month)
	}
	year := now.Year()
	t := time.Date(year, time.Month(month), day, hour, min, sec, 0, now.Location())
	if t.After(now.AddDate(0, 6, 0)) {
		t = time.Date(year-1, time.Month(month), day, hour, min, sec, 0, now.Location())
	}
	return t, nil
}

// ParseDate10 decodes a MMDDhhmmss field (10 digits: month, day, hour,
// minute, second) into a time.Time, assuming now's year per
// resolveYearlessDate.
func ParseDate10(s string, now time.Time) (time.Time, error) {
	if len(s) != 10 {
		return time.Time{}, fmt.Errorf("iso8583: DATE10 field %q is not 10 digits", s)
	}
	month, day, hour, min, sec, err := scanDigits5(s, 2, 2, 2, 2, 2)
	if err != nil {
		return time.Time{}, fmt.Errorf("iso8583: DATE10 field %q: %w", s, err)
	}
	return resolveYearlessDate(month, day, hour, min, sec, now)
}

// FormatDate10 renders t as a MMDDhhmmss field.
func FormatDate10(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d%02d%02d", t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// ParseDate4 decodes a MMDD field into a time.Time at midnight, assuming
// now's year per resolveYearlessDate.
func ParseDate4(s string, now time.Time) (time.Time, error) {
	if len(s) != 4 {
		return time.Time{}, fmt.Errorf("iso8583: DATE4 field %q is not 4 digits", s)
	}
	month, day, _, _, _, err := scanDigits5(s, 2, 2, 0, 0, 0)
	if err != nil {
		return time.Time{}, fmt.Errorf("iso8583: DATE4 field %q: %w", s, err)
	}
	return resolveYearlessDate(month, day, 0, 0, 0, now)
}

// FormatDate4 renders t as a MMDD field.
func FormatDate4(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Month(), t.Day())
}

// ParseDateExp decodes a yyMM expiration field (DATE_EXP) into a time.Time
// at the first of that month. The year is two digits and is always taken
// literally as 2000+yy: expiration dates do not need the rollover rule
// since they carry an explicit (if abbreviated) year.
func ParseDateExp(s string) (time.Time, error) {
	if len(s) != 4 {
		return time.Time{}, fmt.Errorf("iso8583: DATEEXP field %q is not 4 digits", s)
	}
	yy, month, _, _, _, err := scanDigits5(s, 2, 2, 0, 0, 0)
	if err != nil {
		return time.Time{}, fmt.Errorf("iso8583: DATEEXP field %q: %w", s, err)
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("iso8583: DATEEXP field %q has invalid month %02d", s, month)
	}
	return time.Date(2000+yy, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}

// FormatDateExp renders t as a yyMM field.
func FormatDateExp(t time.Time) string {
	return fmt.Sprintf("%02d%02d", t.Year()%100, t.Month())
}

// ParseTime decodes a hhmmss TIME field into an hour/minute/second
// time.Time anchored at the zero date; callers combine it with a DATE4 or
// DATE10 field as needed.
func ParseTime(s string) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, fmt.Errorf("iso8583: TIME field %q is not 6 digits", s)
	}
	hour, min, sec, _, _, err := scanDigits5(s, 2, 2, 2, 0, 0)
	if err != nil {
		return time.Time{}, fmt.Errorf("iso8583: TIME field %q: %w", s, err)
	}
	return time.Date(0, 1, 1, hour, min, sec, 0, time.UTC), nil
}

// FormatTime renders t as a hhmmss field.
func FormatTime(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Hour(), t.Minute(), t.Second())
}

// parseDateByKind decodes raw per k's own date/time format. now is taken
// fresh at each call since DATE10/DATE4 resolve their missing year against
// the current clock.
func parseDateByKind(k IsoType, raw string) (time.Time, error) {
	switch k {
	case DATE10:
		return ParseDate10(raw, time.Now())
	case DATE4:
		return ParseDate4(raw, time.Now())
	case DATEEXP:
		return ParseDateExp(raw)
	case TIME:
		return ParseTime(raw)
	default:
		return time.Time{}, fmt.Errorf("iso8583: kind %s has no date/time wire format", k)
	}
}

// formatDateByKind renders t per k's own date/time format.
func formatDateByKind(k IsoType, t time.Time) (string, error) {
	switch k {
	case DATE10:
		return FormatDate10(t), nil
	case DATE4:
		return FormatDate4(t), nil
	case DATEEXP:
		return FormatDateExp(t), nil
	case TIME:
		return FormatTime(t), nil
	default:
		return "", fmt.Errorf("iso8583: kind %s has no date/time wire format", k)
	}
}

// scanDigits5 splits s into up to five fixed-width digit groups.
func scanDigits5(s string, w1, w2, w3, w4, w5 int) (a, b, c, d, e int, err error) {
	widths := [5]int{w1, w2, w3, w4, w5}
	vals := [5]int{}
	pos := 0
	for i, w := range widths {
		if w == 0 {
			continue
		}
		if pos+w > len(s) {
			return 0, 0, 0, 0, 0, fmt.Errorf("digit group %d out of range in %q", i, s)
		}
		n, err := parseDigitsStrict(s[pos : pos+w])
		if err != nil {
			return 0, 0, 0, 0, 0, err
		}
		vals[i] = n
		pos += w
	}
	return vals[0], vals[1], vals[2], vals[3], vals[4], nil
}

func parseDigitsStrict(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("non-digit byte in %q", s)
		}
		n = n*10 + int(r-'0')
	}
	return n, nil
}

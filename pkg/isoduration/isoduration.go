package isoduration

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts an ISO-8601 duration string (e.g. "PT1H2M3S") into total
// seconds. YouTube encodes video lengths this way; durations may carry week
// and day designators ("P1DT2H") and fractional seconds ("PT1.5S").
// An empty string parses as zero.
func Parse(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	if s[0] != 'P' {
		return 0, fmt.Errorf("isoduration: missing P designator in %q", s)
	}

	var total float64
	inTime := false
	num := strings.Builder{}

	for _, r := range s[1:] {
		switch {
		case r == 'T':
			inTime = true
		case (r >= '0' && r <= '9') || r == '.':
			num.WriteRune(r)
		default:
			if num.Len() == 0 {
				return 0, fmt.Errorf("isoduration: designator %q without value in %q", r, s)
			}
			v, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return 0, fmt.Errorf("isoduration: bad value in %q: %w", s, err)
			}
			num.Reset()

			switch {
			case r == 'W':
				total += v * 7 * 24 * 3600
			case r == 'D':
				total += v * 24 * 3600
			case r == 'H' && inTime:
				total += v * 3600
			case r == 'M' && inTime:
				total += v * 60
			case r == 'M': // calendar months are not meaningful for video lengths
				return 0, fmt.Errorf("isoduration: month designator unsupported in %q", s)
			case r == 'S' && inTime:
				total += v
			default:
				return 0, fmt.Errorf("isoduration: unknown designator %q in %q", r, s)
			}
		}
	}
	if num.Len() > 0 {
		return 0, fmt.Errorf("isoduration: trailing value without designator in %q", s)
	}
	return total, nil
}

// Compact renders seconds as "H:MM:SS" when an hour or longer, else "M:SS".
func Compact(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// Humanize renders seconds as "1h 2m 3s", dropping leading zero units:
// "1m 5s" under an hour, "42s" under a minute.
func Humanize(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

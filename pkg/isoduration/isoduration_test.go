package isoduration

import (
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"empty string is zero", "", 0},
		{"zero seconds", "PT0S", 0},
		{"seconds only", "PT42S", 42},
		{"minutes and seconds", "PT4M13S", 253},
		{"hours minutes seconds", "PT1H2M3S", 3723},
		{"hours only", "PT2H", 7200},
		{"minutes only", "PT10M", 600},
		{"day and time", "P1DT2H", 93600},
		{"one week", "P1W", 604800},
		{"fractional seconds", "PT1.5S", 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.input, err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{"1H2M", "PTXS", "P3", "P1M"}
	for _, in := range inputs {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", in)
		}
	}
}

func TestCompact(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 42, "0:42"},
		{"minutes", 253, "4:13"},
		{"exactly one hour", 3600, "1:00:00"},
		{"hours with padding", 3723, "1:02:03"},
		{"negative clamps to zero", -5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compact(tt.seconds); got != tt.want {
				t.Errorf("Compact(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestHumanize(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 42, "42s"},
		{"minute and seconds", 65, "1m 5s"},
		{"hour minute second", 3661, "1h 1m 1s"},
		{"exact hour keeps zero units", 3600, "1h 0m 0s"},
		{"negative clamps to zero", -1, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Humanize(tt.seconds); got != tt.want {
				t.Errorf("Humanize(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

func TestParseCompactRoundTrip(t *testing.T) {
	secs, err := Parse("PT1H2M3S")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if secs != 3723.0 {
		t.Errorf("Parse(PT1H2M3S) = %v, want 3723", secs)
	}
	if got := Compact(secs); got != "1:02:03" {
		t.Errorf("Compact(3723) = %q, want 1:02:03", got)
	}
}

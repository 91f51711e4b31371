package utils

import "testing"

func TestParseDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate(" 2024-06-01 ")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-06-01" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "June 1st", "2024/06/01", "2024-13-01"} {
		if _, err := ParseDate(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseDateTimeRoundTrip(t *testing.T) {
	parsed, err := ParseDateTime("2024-06-01 10:30:00")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if got := FormatDateTime(parsed); got != "2024-06-01 10:30:00" {
		t.Fatalf("round trip mismatch: %s", got)
	}
}

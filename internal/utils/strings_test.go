package utils

import "testing"

func TestNormalizeCity(t *testing.T) {
	if got := NormalizeCity("  New York "); got != "new york" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  museums,   art  "); got != "museums, art" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestTitleCity(t *testing.T) {
	cases := map[string]string{
		"paris":    "Paris",
		"new york": "New York",
		"":         "",
	}
	for in, want := range cases {
		if got := TitleCity(in); got != want {
			t.Fatalf("TitleCity(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatBudget(t *testing.T) {
	if got := FormatBudget(12.5); got != "$12.50" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatBudget(-3); got != "-$3.00" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := FormatMoney(1000); got != "1000.00" {
		t.Fatalf("unexpected: %q", got)
	}
}

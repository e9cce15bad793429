package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"judge@example.com", "a.b+c@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "missing@tld", "@nouser.com"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  feedback  "); got != "feedback" {
		t.Fatalf("expected trimmed input, got %q", got)
	}
	if got := SanitizeInput("a\x00b"); got != "ab" {
		t.Fatalf("expected null bytes removed, got %q", got)
	}
}

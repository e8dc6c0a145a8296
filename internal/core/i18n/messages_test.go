package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestFormat_English(t *testing.T) {
	msgs := Default()

	tests := []struct {
		rule Rule
		args []any
		want string
	}{
		{RuleRequired, []any{"code"}, "code is required"},
		{RuleNotFound, []any{"buyer"}, "buyer not found"},
		{RuleSumMismatch, []any{"orderQuantity"}, "orderQuantity does not match the sum of item quantities"},
		{RuleNotBefore, []any{"deliveryDate", "bookingDate"}, "deliveryDate must not be earlier than bookingDate"},
		{RuleAtLeastOne, []any{"items"}, "items must contain at least one line"},
	}
	for _, tt := range tests {
		if got := msgs.Format(tt.rule, tt.args...); got != tt.want {
			t.Errorf("Format(%q) = %q, want %q", tt.rule, got, tt.want)
		}
	}
}

func TestFormat_Indonesian(t *testing.T) {
	msgs := NewMessages(language.Indonesian)

	if got := msgs.Format(RuleRequired, "code"); got != "code harus diisi" {
		t.Errorf("Format = %q", got)
	}
	if got := msgs.Format(RuleNotBefore, "deliveryDate", "bookingDate"); got != "deliveryDate tidak boleh lebih awal dari bookingDate" {
		t.Errorf("Format = %q", got)
	}
}

func TestFormat_FallbackToEnglish(t *testing.T) {
	// No German rows exist; the catalog falls back to English text.
	msgs := NewMessages(language.German)

	if got := msgs.Format(RuleExists, "code"); got != "code already exists" {
		t.Errorf("Format = %q", got)
	}
}

package middleware

import (
	"strings"
	"testing"
)

func TestParseID(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantID  int64
		wantErr bool
	}{
		{"valid id", "42", 42, false},
		{"whitespace trimmed", " 7 ", 7, false},
		{"empty", "", 0, true},
		{"zero", "0", 0, true},
		{"negative", "-3", 0, true},
		{"not a number", "abc", 0, true},
		{"float", "1.5", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id, msg := ParseID(tc.raw)
			if tc.wantErr && msg == "" {
				t.Errorf("ParseID(%q) expected an error message", tc.raw)
			}
			if !tc.wantErr && msg != "" {
				t.Errorf("ParseID(%q) unexpected error: %s", tc.raw, msg)
			}
			if id != tc.wantID {
				t.Errorf("ParseID(%q) = %d, want %d", tc.raw, id, tc.wantID)
			}
		})
	}
}

func TestValidateTitle(t *testing.T) {
	if _, msg := ValidateTitle("   "); msg == "" {
		t.Error("blank title should be rejected")
	}

	title, msg := ValidateTitle("  How do goroutines work?  ")
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if title != "How do goroutines work?" {
		t.Errorf("title not trimmed: %q", title)
	}

	if _, msg := ValidateTitle(strings.Repeat("x", MaxTitleLen+1)); msg == "" {
		t.Error("oversized title should be rejected")
	}
	if _, msg := ValidateTitle(strings.Repeat("x", MaxTitleLen)); msg != "" {
		t.Errorf("title at the limit should pass: %s", msg)
	}
}

func TestValidateName(t *testing.T) {
	if _, msg := ValidateName("  "); msg == "" {
		t.Error("blank name should be rejected")
	}

	name, msg := ValidateName("  Ada Lovelace  ")
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if name != "Ada Lovelace" {
		t.Errorf("name not trimmed: %q", name)
	}

	if _, msg := ValidateName(strings.Repeat("n", MaxNameLen+1)); msg == "" {
		t.Error("oversized name should be rejected")
	}
	if _, msg := ValidateName(strings.Repeat("n", MaxNameLen)); msg != "" {
		t.Errorf("name at the limit should pass: %s", msg)
	}
}

func TestValidateTagNames(t *testing.T) {
	if _, msg := ValidateTagNames(nil); msg == "" {
		t.Error("empty tag list should be rejected")
	}
	if _, msg := ValidateTagNames([]string{"", "  "}); msg == "" {
		t.Error("all-blank tag list should be rejected")
	}

	tags, msg := ValidateTagNames([]string{" go ", "", "postgres"})
	if msg != "" {
		t.Fatalf("unexpected error: %s", msg)
	}
	if len(tags) != 2 || tags[0] != "go" || tags[1] != "postgres" {
		t.Errorf("tags not cleaned: %v", tags)
	}

	if _, msg := ValidateTagNames([]string{strings.Repeat("t", MaxTagNameLen+1)}); msg == "" {
		t.Error("oversized tag name should be rejected")
	}
}

package validators

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestName(t *testing.T) {
	cases := []struct {
		name  string
		value string
		ok    bool
	}{
		{"valid", "Anna", true},
		{"valid with space", "Anna Maria", true},
		{"cyrillic", "Алишер", true},
		{"too short", "Al", false},
		{"too long", strings.Repeat("a", 51), false},
		{"max length", strings.Repeat("a", 50), true},
		{"digits", "Anna2", false},
		{"punctuation", "An-na", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Name(tc.value)
			if tc.ok && err != nil {
				t.Fatalf("Name(%q) = %v, expected nil", tc.value, err)
			}
			if !tc.ok && err == nil {
				t.Fatalf("Name(%q) = nil, expected error", tc.value)
			}
		})
	}
}

func TestBirthDateFormats(t *testing.T) {
	born := time.Now().AddDate(-25, 0, 0)
	inputs := []string{
		born.Format("2006-01-02"),
		born.Format("02.01.2006"),
		born.Format("01/02/2006"),
	}
	for _, in := range inputs {
		parsed, err := BirthDate(in)
		if err != nil {
			t.Fatalf("BirthDate(%q): %v", in, err)
		}
		if parsed.Year() != born.Year() {
			t.Fatalf("BirthDate(%q) year = %d, expected %d", in, parsed.Year(), born.Year())
		}
	}
}

func TestBirthDateAgeBounds(t *testing.T) {
	tooYoung := time.Now().AddDate(-17, 0, 0).Format("2006-01-02")
	if _, err := BirthDate(tooYoung); err == nil {
		t.Fatal("expected error for age below minimum")
	}

	tooOld := time.Now().AddDate(-101, 0, 0).Format("2006-01-02")
	if _, err := BirthDate(tooOld); err == nil {
		t.Fatal("expected error for age above maximum")
	}

	// Exactly 18 today is allowed.
	exact := time.Now().AddDate(-18, 0, 0).Format("2006-01-02")
	if _, err := BirthDate(exact); err != nil {
		t.Fatalf("BirthDate(18 years exactly): %v", err)
	}
}

func TestBirthDateInvalidFormat(t *testing.T) {
	for _, in := range []string{"not a date", "1990.01.01", "01-02-1990", ""} {
		if _, err := BirthDate(in); err == nil {
			t.Fatalf("BirthDate(%q) = nil, expected error", in)
		}
	}
}

func TestBio(t *testing.T) {
	if err := Bio(strings.Repeat("a", 255)); err != nil {
		t.Fatalf("Bio(255 chars): %v", err)
	}
	if err := Bio(strings.Repeat("a", 256)); err == nil {
		t.Fatal("Bio(256 chars) = nil, expected error")
	}
	if err := Bio(""); err != nil {
		t.Fatalf("Bio(empty): %v", err)
	}
}

func TestMediaCount(t *testing.T) {
	if err := MediaCount(0); err == nil {
		t.Fatal("MediaCount(0) = nil, expected error")
	}
	for n := 1; n <= 5; n++ {
		if err := MediaCount(n); err != nil {
			t.Fatalf("MediaCount(%d): %v", n, err)
		}
	}
	if err := MediaCount(6); err == nil {
		t.Fatal("MediaCount(6) = nil, expected error")
	}
}

func TestAgeRange(t *testing.T) {
	minAge, maxAge, err := AgeRange("20-30")
	if err != nil {
		t.Fatalf("AgeRange(20-30): %v", err)
	}
	if minAge != 20 || maxAge != 30 {
		t.Fatalf("AgeRange(20-30) = %d,%d", minAge, maxAge)
	}

	for _, in := range []string{"30-20", "20-20", "17-30", "20-101", "abc", "20", "20-30-40", "18abc-30", "20-3o", "1.8-30"} {
		if _, _, err := AgeRange(in); err == nil {
			t.Fatalf("AgeRange(%q) = nil, expected error", in)
		}
	}
}

func TestVideoDuration(t *testing.T) {
	if err := VideoDuration(60); err != nil {
		t.Fatalf("VideoDuration(60): %v", err)
	}
	if err := VideoDuration(61); err == nil {
		t.Fatal("VideoDuration(61) = nil, expected error")
	}
}

func TestMessageText(t *testing.T) {
	got, err := MessageText("  hello  ")
	if err != nil {
		t.Fatalf("MessageText: %v", err)
	}
	if got != "hello" {
		t.Fatalf("MessageText trimmed = %q", got)
	}

	if _, err := MessageText("   "); err == nil {
		t.Fatal("expected error for blank message")
	}
	if _, err := MessageText(strings.Repeat("a", 1001)); err == nil {
		t.Fatal("expected error for overlong message")
	}
}

func TestErrorFormatting(t *testing.T) {
	err := Name("Al")
	var verr *Error
	ok := false
	if e, is := err.(*Error); is {
		verr, ok = e, true
	}
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	want := fmt.Sprintf("Name must be at least %d characters long", NameMinLen)
	if verr.Error() != want {
		t.Fatalf("Error() = %q, want %q", verr.Error(), want)
	}
}

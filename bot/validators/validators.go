package validators

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Validation parameters shared by registration and profile editing.
const (
	NameMinLen = 3
	NameMaxLen = 50

	MinAge = 18
	MaxAge = 100

	BioMaxLen = 255

	MediaMinCount    = 1
	MediaMaxCount    = 5
	MediaMaxDuration = 60

	MessageMaxLen = 1000
)

// Error is a user-facing validation failure. Key is an English message with
// fmt verbs so the dialog layer can translate it before rendering.
type Error struct {
	Key  string
	Args []any
}

func (e *Error) Error() string {
	if len(e.Args) == 0 {
		return e.Key
	}
	return fmt.Sprintf(e.Key, e.Args...)
}

func fail(key string, args ...any) *Error {
	return &Error{Key: key, Args: args}
}

// Name checks a display name for length and allowed characters.
func Name(value string) error {
	if value == "" {
		return fail("Name must only contain letters and spaces")
	}
	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fail("Name must only contain letters and spaces")
		}
	}
	n := len([]rune(value))
	if n < NameMinLen {
		return fail("Name must be at least %d characters long", NameMinLen)
	}
	if n > NameMaxLen {
		return fail("Name must be less than %d characters long", NameMaxLen)
	}
	return nil
}

var birthDateFormats = []string{
	"2006-01-02",
	"02.01.2006",
	"01/02/2006",
}

// BirthDate parses a date string and checks the resulting age bounds.
// Supported formats: YYYY-MM-DD, DD.MM.YYYY and MM/DD/YYYY.
func BirthDate(value string) (time.Time, error) {
	var parsed time.Time
	ok := false
	for _, layout := range birthDateFormats {
		if t, err := time.Parse(layout, value); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return time.Time{}, fail("Invalid date format. Supported formats are: \n" +
			"\n- YYYY-MM-DD (1970-10-20), " +
			"\n- DD.MM.YYYY (20.10.1970), " +
			"\n- MM/DD/YYYY (10/20/1970)")
	}

	age := ageAt(parsed, time.Now())
	if age < MinAge {
		return time.Time{}, fail("You must be at least %d years old to use this bot", MinAge)
	}
	if age > MaxAge {
		return time.Time{}, fail("You must be less than %d years old to use this bot", MaxAge)
	}
	return parsed, nil
}

func ageAt(birth, now time.Time) int {
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() ||
		(now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// Bio checks an about-me text for maximum length.
func Bio(value string) error {
	if len([]rune(value)) > BioMaxLen {
		return fail("Bio must be less than %d characters long", BioMaxLen)
	}
	return nil
}

// MediaCount checks the number of collected media items.
func MediaCount(n int) error {
	if n < MediaMinCount {
		return fail("Please upload at least %d media files", MediaMinCount)
	}
	if n > MediaMaxCount {
		return fail("You can upload up to %d media files", MediaMaxCount)
	}
	return nil
}

// AgeRange parses a "min-max" string and validates both bounds.
func AgeRange(value string) (int, int, error) {
	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return 0, 0, fail("Please enter a valid age range")
	}
	minAge, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fail("Please enter a valid age range")
	}
	maxAge, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fail("Please enter a valid age range")
	}
	if err := PreferenceAge(minAge); err != nil {
		return 0, 0, err
	}
	if err := PreferenceAge(maxAge); err != nil {
		return 0, 0, err
	}
	if minAge >= maxAge {
		return 0, 0, fail("Minimum age needs be to lower than maximum age")
	}
	return minAge, maxAge, nil
}

// PreferenceAge checks a single preference age bound.
func PreferenceAge(value int) error {
	if value < MinAge {
		return fail("Age can't be lower than %d", MinAge)
	}
	if value > MaxAge {
		return fail("Age can't be higher than %d", MaxAge)
	}
	return nil
}

// VideoDuration checks an uploaded video length in seconds.
func VideoDuration(seconds int) error {
	if seconds > MediaMaxDuration {
		return fail("Video duration can't be longer than %d seconds", MediaMaxDuration)
	}
	return nil
}

// MessageText trims and checks a free-form message.
func MessageText(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fail("Message text cannot be empty")
	}
	if len([]rune(value)) > MessageMaxLen {
		return "", fail("Message text must be less than %d characters long", MessageMaxLen)
	}
	return trimmed, nil
}

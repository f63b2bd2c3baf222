// Package i18n holds the bot's UI catalog: button labels keyed by stable
// action codes and message texts keyed by their English wording.
package i18n

import "fmt"

const DefaultLocale = "en"

// Locales lists the supported UI languages in keyboard order.
func Locales() []string {
	return []string{"uz", "ru", "en"}
}

// Known reports whether locale is one of the supported languages.
func Known(locale string) bool {
	for _, l := range Locales() {
		if l == locale {
			return true
		}
	}
	return false
}

var labels = map[string]map[Action]string{
	"en": labelsEN,
	"ru": labelsRU,
	"uz": labelsUZ,
}

var messages = map[string]map[string]string{
	"ru": messagesRU,
	"uz": messagesUZ,
}

// byLabel maps button text from any locale back to its action. Built once at
// startup so a language switch mid-conversation keeps stale keyboards working.
var byLabel = func() map[string]Action {
	m := make(map[string]Action)
	for _, tab := range labels {
		for a, text := range tab {
			m[text] = a
		}
	}
	return m
}()

// Label returns the button text for an action in the given locale, falling
// back to English for untranslated entries.
func Label(locale string, a Action) string {
	if tab, ok := labels[locale]; ok {
		if s, ok := tab[a]; ok {
			return s
		}
	}
	return labelsEN[a]
}

// Resolve maps incoming message text to the action it represents. Text from
// any locale is accepted.
func Resolve(text string) (Action, bool) {
	a, ok := byLabel[text]
	return a, ok
}

// T translates a message by its English text. Unknown keys and unknown
// locales format the English text as-is, so new messages degrade gracefully.
func T(locale, key string, args ...any) string {
	msg := key
	if tab, ok := messages[locale]; ok {
		if s, ok := tab[key]; ok {
			msg = s
		}
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

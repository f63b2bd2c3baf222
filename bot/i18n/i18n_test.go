package i18n

import "testing"

func TestLabelFallsBackToEnglish(t *testing.T) {
	if got := Label("en", ActionMenu); got != "⬅️ Menu" {
		t.Fatalf("en menu label = %q", got)
	}
	if got := Label("ru", ActionMenu); got != "⬅️ Меню" {
		t.Fatalf("ru menu label = %q", got)
	}
	if got := Label("de", ActionMenu); got != "⬅️ Menu" {
		t.Fatalf("unknown locale should fall back to English, got %q", got)
	}
}

func TestLanguageButtonsNotTranslated(t *testing.T) {
	for _, locale := range Locales() {
		for _, a := range []Action{ActionLangUz, ActionLangRu, ActionLangEn} {
			if Label(locale, a) != Label("en", a) {
				t.Errorf("language button %s differs in locale %s", a, locale)
			}
		}
	}
}

func TestResolveAcrossLocales(t *testing.T) {
	cases := []struct {
		text string
		want Action
	}{
		{"⬅️ Menu", ActionMenu},
		{"⬅️ Меню", ActionMenu},
		{"⬅️ Menyu", ActionMenu},
		{"⏪", ActionRewind},
		{"⏪ Rewind", ActionRewindLong},
		{"👍", ActionLike},
		{"👍 Likes", ActionLikes},
		{"Пропустить", ActionSkip},
		{"Davom etish", ActionContinue},
		{"Uzbek 🇺🇿", ActionLangUz},
	}
	for _, tc := range cases {
		got, ok := Resolve(tc.text)
		if !ok {
			t.Errorf("Resolve(%q): not found", tc.text)
			continue
		}
		if got != tc.want {
			t.Errorf("Resolve(%q) = %s, want %s", tc.text, got, tc.want)
		}
	}
	if _, ok := Resolve("not a button"); ok {
		t.Error("Resolve matched free-form text")
	}
}

func TestResolveHasNoCollisions(t *testing.T) {
	for locale, tab := range labels {
		for a, text := range tab {
			got, ok := Resolve(text)
			if !ok {
				t.Errorf("label %q (%s/%s) missing from reverse map", text, locale, a)
				continue
			}
			if got != a {
				t.Errorf("label %q maps to %s, but %s/%s uses the same text", text, got, locale, a)
			}
		}
	}
}

func TestTranslate(t *testing.T) {
	if got := T("ru", MsgCityNotFound); got != "Город не найден" {
		t.Fatalf("ru translation = %q", got)
	}
	if got := T("en", MsgRewindLimit, 3); got != "You can't rewind more than 3 times" {
		t.Fatalf("formatted en message = %q", got)
	}
	if got := T("uz", MsgRewindLimit, 3); got != "3 martadan ko'p orqaga qaytarib bo'lmaydi" {
		t.Fatalf("formatted uz message = %q", got)
	}
	if got := T("de", MsgCityNotFound); got != MsgCityNotFound {
		t.Fatalf("unknown locale should return the key, got %q", got)
	}
	if got := T("ru", "untranslated text"); got != "untranslated text" {
		t.Fatalf("unknown key should pass through, got %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range messagesRU {
		if _, ok := messagesUZ[key]; !ok {
			t.Errorf("uz catalog missing %q", key)
		}
	}
	for key := range messagesUZ {
		if _, ok := messagesRU[key]; !ok {
			t.Errorf("ru catalog missing %q", key)
		}
	}
}

package i18n

// Action is a stable identifier for a keyboard button. Handlers match on
// actions instead of raw button text, so the UI language can change without
// breaking routing.
type Action string

const (
	ActionMenu          Action = "menu"
	ActionWatchProfiles Action = "watch_profiles"
	ActionLikes         Action = "likes"
	ActionMatches       Action = "matches"
	ActionSettings      Action = "settings"

	ActionRewind     Action = "rewind"
	ActionRewindLong Action = "rewind_long"
	ActionLike       Action = "like"
	ActionDislike    Action = "dislike"
	ActionReport     Action = "report"
	ActionPrevPage   Action = "prev_page"
	ActionNextPage   Action = "next_page"

	ActionMyProfile      Action = "my_profile"
	ActionSearchSettings Action = "search_settings"
	ActionLanguage       Action = "language"
	ActionDeactivate     Action = "deactivate"
	ActionDeleteAccount  Action = "delete_account"

	ActionEditName      Action = "edit_name"
	ActionEditBirthDate Action = "edit_birth_date"
	ActionEditGender    Action = "edit_gender"
	ActionEditBio       Action = "edit_bio"
	ActionEditLocation  Action = "edit_location"
	ActionEditMedia     Action = "edit_media"
	ActionBack          Action = "back"

	ActionGenderPrefs Action = "gender_prefs"
	ActionAgePrefs    Action = "age_prefs"

	ActionSkip         Action = "skip"
	ActionContinue     Action = "continue"
	ActionSendLocation Action = "send_location"
	ActionClear        Action = "clear"

	ActionYes Action = "yes"
	ActionNo  Action = "no"

	ActionActivate          Action = "activate"
	ActionStartRegistration Action = "start_registration"

	ActionGenderMale   Action = "gender_male"
	ActionGenderFemale Action = "gender_female"
	ActionPreferWomen  Action = "prefer_women"
	ActionPreferMen    Action = "prefer_men"

	ActionLangUz Action = "lang_uz"
	ActionLangRu Action = "lang_ru"
	ActionLangEn Action = "lang_en"
)

// Language buttons keep the same label in every locale so a user who picked
// the wrong language can still find their way back.
var labelsEN = map[Action]string{
	ActionMenu:          "⬅️ Menu",
	ActionWatchProfiles: "🔎 Watch profiles",
	ActionLikes:         "👍 Likes",
	ActionMatches:       "❤️ Matches",
	ActionSettings:      "⚙️ Settings",

	ActionRewind:     "⏪",
	ActionRewindLong: "⏪ Rewind",
	ActionLike:       "👍",
	ActionDislike:    "👎",
	ActionReport:     "✍️ Report",
	ActionPrevPage:   "⬅️",
	ActionNextPage:   "➡️",

	ActionMyProfile:      "👤 My profile",
	ActionSearchSettings: "🔎 Search settings",
	ActionLanguage:       "🌐 Language",
	ActionDeactivate:     "⛔️ Deactivate",
	ActionDeleteAccount:  "❌ Delete account",

	ActionEditName:      "✏️ Name",
	ActionEditBirthDate: "🔢 Birth date",
	ActionEditGender:    "👫 Gender",
	ActionEditBio:       "📝 Bio",
	ActionEditLocation:  "📍 Location",
	ActionEditMedia:     "📷 Media",
	ActionBack:          "⬅️ Back",

	ActionGenderPrefs: "👩‍❤️‍👨 Gender preferences",
	ActionAgePrefs:    "🔢 Age preferences",

	ActionSkip:         "Skip",
	ActionContinue:     "Continue",
	ActionSendLocation: "📍 Send location",
	ActionClear:        "❌ Clear",

	ActionYes: "Yes",
	ActionNo:  "No",

	ActionActivate:          "Activate my account",
	ActionStartRegistration: "Start registration",

	ActionGenderMale:   "Male 👨",
	ActionGenderFemale: "Female 👩",
	ActionPreferWomen:  "Women 👩",
	ActionPreferMen:    "Men 👨",

	ActionLangUz: "Uzbek 🇺🇿",
	ActionLangRu: "Russian 🇷🇺",
	ActionLangEn: "English 🇺🇸",
}

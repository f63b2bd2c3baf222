package session

// State is a position in the bot's conversation. The set is closed: handlers
// switch on these constants and Known rejects anything else read back from
// storage.
type State string

const (
	StateNone State = ""

	StateRegLanguage        State = "reg.language"
	StateRegName            State = "reg.name"
	StateRegBirthDate       State = "reg.birth_date"
	StateRegGender          State = "reg.gender"
	StateRegBio             State = "reg.bio"
	StateRegPreferredGender State = "reg.preferred_gender"
	StateRegAgePreferences  State = "reg.age_preferences"
	StateRegLocation        State = "reg.location"
	StateRegMedia           State = "reg.media"

	StateMenu         State = "menu"
	StateSearch       State = "browse.search"
	StateLikes        State = "browse.likes"
	StateMatches      State = "browse.matches"
	StateReportReason State = "browse.report"

	StateSettings          State = "settings"
	StateLanguage          State = "settings.language"
	StateDeactivateConfirm State = "settings.deactivate_confirm"
	StateDeactivated       State = "settings.deactivated"
	StateDeleteConfirm     State = "settings.delete_confirm"
	StateDeleted           State = "settings.deleted"

	StateProfile          State = "profile"
	StateProfileName      State = "profile.name"
	StateProfileBirthDate State = "profile.birth_date"
	StateProfileGender    State = "profile.gender"
	StateProfileBio       State = "profile.bio"
	StateProfileLocation  State = "profile.location"
	StateProfileMedia     State = "profile.media"

	StatePreferences       State = "preferences"
	StatePreferencesGender State = "preferences.gender"
	StatePreferencesAge    State = "preferences.age"
)

// Flow groups states by the conversation they belong to.
type Flow string

const (
	FlowNone         Flow = ""
	FlowRegistration Flow = "registration"
	FlowBrowse       Flow = "browse"
	FlowSettings     Flow = "settings"
	FlowProfile      Flow = "profile"
	FlowPreferences  Flow = "preferences"
)

var stateFlows = map[State]Flow{
	StateNone: FlowNone,

	StateRegLanguage:        FlowRegistration,
	StateRegName:            FlowRegistration,
	StateRegBirthDate:       FlowRegistration,
	StateRegGender:          FlowRegistration,
	StateRegBio:             FlowRegistration,
	StateRegPreferredGender: FlowRegistration,
	StateRegAgePreferences:  FlowRegistration,
	StateRegLocation:        FlowRegistration,
	StateRegMedia:           FlowRegistration,

	StateMenu:         FlowBrowse,
	StateSearch:       FlowBrowse,
	StateLikes:        FlowBrowse,
	StateMatches:      FlowBrowse,
	StateReportReason: FlowBrowse,

	StateSettings:          FlowSettings,
	StateLanguage:          FlowSettings,
	StateDeactivateConfirm: FlowSettings,
	StateDeactivated:       FlowSettings,
	StateDeleteConfirm:     FlowSettings,
	StateDeleted:           FlowSettings,

	StateProfile:          FlowProfile,
	StateProfileName:      FlowProfile,
	StateProfileBirthDate: FlowProfile,
	StateProfileGender:    FlowProfile,
	StateProfileBio:       FlowProfile,
	StateProfileLocation:  FlowProfile,
	StateProfileMedia:     FlowProfile,

	StatePreferences:       FlowPreferences,
	StatePreferencesGender: FlowPreferences,
	StatePreferencesAge:    FlowPreferences,
}

// Flow returns the flow a state belongs to, FlowNone for unknown states.
func (s State) Flow() Flow {
	return stateFlows[s]
}

// Known reports whether s is part of the closed state set.
func (s State) Known() bool {
	_, ok := stateFlows[s]
	return ok
}

// Locked states ignore the global menu shortcuts: a deactivated or deleted
// account must go through its own recovery button first.
func (s State) Locked() bool {
	return s == StateDeactivated || s == StateDeleted
}

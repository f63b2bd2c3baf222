package enums

// FileType classifies uploaded media by Telegram attachment kind.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeDocument FileType = "document"
	FileTypeOther    FileType = "other"
)

// UILanguage is an interface language supported by the bot.
type UILanguage string

const (
	LanguageUz UILanguage = "uz"
	LanguageRu UILanguage = "ru"
	LanguageEn UILanguage = "en"
)

// Known reports whether the language code is supported.
func (l UILanguage) Known() bool {
	switch l {
	case LanguageUz, LanguageRu, LanguageEn:
		return true
	}
	return false
}

// Gender is a user's own gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// PreferredGender is the gender a user wants to see in search.
type PreferredGender string

const (
	PreferredMale   PreferredGender = "male"
	PreferredFemale PreferredGender = "female"
	PreferredBoth   PreferredGender = "both"
)

// ReactionType is a swipe decision on another profile.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

// ReportStatus is the moderation lifecycle state of a report.
type ReportStatus string

const (
	ReportPending     ReportStatus = "pending"
	ReportReviewing   ReportStatus = "reviewing"
	ReportPendingInfo ReportStatus = "pending_info"
	ReportValid       ReportStatus = "valid"
	ReportInvalid     ReportStatus = "invalid"
	ReportResolved    ReportStatus = "resolved"
	ReportClosed      ReportStatus = "closed"
)

package i18n

// Message keys. The key is the English wording; translation tables in the
// catalog files are indexed by these exact strings.
const (
	MsgSelectLanguage      = "Hi! Select a language"
	MsgSelectLanguageRetry = "Select one of the given languages"
	MsgAskName             = "What is your name?"
	MsgAskBirthDate        = "What's your birth date? Use one these formats:" +
		"\n" +
		"\n👉 <b>YYYY-MM-DD</b> (For example, 2000-12-31)" +
		"\n👉 <b>DD.MM.YYYY</b> (For example, 31.12.2000)" +
		"\n👉 <b>MM/DD/YYYY</b> (For example, 12/31/2000)"
	MsgAskGender        = "What is your gender?"
	MsgSelectOption     = "Select one of the given options"
	MsgAskBio           = "Tell me more about yourself. What are your hobbies, interests, etc.?"
	MsgAskPreferredSex  = "Who are you interested in?"
	MsgAskAgeRange      = "What is your preferred age range? (e.g. 18-25)"
	MsgAskLocation      = "Share your location or type the name of your city"
	MsgAskLocationExact = "Share your location by clicking the button below"
	MsgCityPlaceholder  = "City name"
	MsgAskMedia         = "Upload photos or videos of yourself (%d-%d)"

	MsgCityNotFound     = "City not found"
	MsgNoCitiesFound    = "No cities found for your search."
	MsgCitySearchError  = "Error searching for cities. Please try again."
	MsgSelectCity       = "Select your city"
	MsgPlaceError       = "Error getting place information. Please try again."
	MsgLocationNotFound = "Location not found. Please try again."
	MsgLocationError    = "Error updating location. Please try again."

	MsgFileUploaded     = "File has been uploaded"
	MsgFileUploadedMore = "File has been uploaded. Upload more media files if you want or press \"Continue\""
	MsgUploadAtLeastOne = "Please upload at least one photo"
	MsgMediaInvalid     = "Invalid media files. Please check your uploads."
	MsgMediaTooLarge    = "Media files too large. Please use smaller files."
	MsgMediaUpdateError = "Error updating media. Please try again."

	MsgRegistrationError = "An error occurred while registering your account. Please try again later or contact support."
	MsgRegistrationDone  = "Registration has been completed!"
	MsgInvalidBirthDate  = "Invalid birth date"
	MsgBanned            = "Your account is banned. Please contact support."
	MsgHelp              = "Hi there! I'm a bot to help you find your soulmate.\n\n" +
		"Here's how it works: you'll be shown profiles of other users, " +
		"and you can like or dislike them. When you like a profile, we " +
		"will notify the user about it. If the user likes you back, you'll " +
		"be matched and can start chatting.\n\n" +
		"If you have any questions, contact our " +
		"<a href='https://t.me/anormatchsupportbot'>support team</a>."

	MsgMenu           = "Menu"
	MsgSettings       = "Settings"
	MsgChooseLanguage = "Choose your language"
	MsgReportReason   = "What's the reason for reporting this user?"
	MsgReported       = "User has been reported"
	MsgDeactivateAsk  = "Are you sure you want to deactivate your account? No one will see your account, even the users that you liked"
	MsgActivated      = "Your account has been activated"
	MsgDeactivated    = "Your account has been deactivated. To activate it, press the button below"
	MsgDeleteAsk      = "Are you sure you want to delete your account? All your data will be lost"
	MsgDeleted        = "Your account has been deleted. To start again, press the button below"

	MsgSearching       = "🔎"
	MsgFetchError      = "An error occurred while fetching data."
	MsgNoCandidates    = "No one left to match with right now."
	MsgRewinding       = "⏪ Rewinding"
	MsgRewindLimit     = "You can't rewind more than %d times"
	MsgNothingToRewind = "No more matches to rewind"
	MsgUserNotFound    = "User not found"
	MsgGenericError    = "Something went wrong"

	MsgMatches           = "Matches"
	MsgLikes             = "Likes"
	MsgMatchesFetchError = "Failed to fetch matches"
	MsgNoMatches         = "No matches found"
	MsgMutualLike        = "You both liked each other. Start a chat with them by clicking the button below 👇"
	MsgStartChat         = "Start a chat"
	MsgNoLikes           = "No likes found"
	MsgDistanceKM        = "📍 %d km"

	MsgProfilePrompt      = "Press the buttons below to update your profile"
	MsgProfileNotFound    = "User profile not found. Please try again."
	MsgProfileLoadError   = "Unable to load profile. Please try again later."
	MsgEnterName          = "Enter your name"
	MsgSelectGender       = "Select your gender"
	MsgAskBioUpdate       = "Tell us more about yourself. What are your hobbies, interests, etc.?"
	MsgProfileUpdated     = "Your profile has been updated"
	MsgSearchSettings     = "Search settings"
	MsgPreferencesUpdated = "Search settings have been updated"
)

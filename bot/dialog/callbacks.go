package dialog

import "strings"

// Callback payloads. Plain strings rather than telebot uniques so messages
// produced by other services (match notifications) can target them too.
const (
	callbackDeleteMessage = "delete_message"
	callbackShowMatches   = "show_matches"
	callbackShowLikes     = "show_likes"

	placeCallbackPrefix = "place_id:"
)

func placeCallback(placeID string) string {
	return placeCallbackPrefix + placeID
}

func hasPlacePrefix(data string) bool {
	return strings.HasPrefix(data, placeCallbackPrefix)
}

func placeIDFrom(data string) string {
	return strings.TrimPrefix(data, placeCallbackPrefix)
}

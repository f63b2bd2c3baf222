package schemas

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
)

// PreferencesIn is the payload for creating search preferences.
type PreferencesIn struct {
	MinAge          *int                  `json:"min_age,omitempty"`
	MaxAge          *int                  `json:"max_age,omitempty"`
	PreferredGender enums.PreferredGender `json:"preferred_gender"`
}

// Preferences are stored search preferences as returned by the profile API.
type Preferences struct {
	ID              int                   `json:"id"`
	UserID          uuid.UUID             `json:"user_id"`
	MinAge          *int                  `json:"min_age"`
	MaxAge          *int                  `json:"max_age"`
	PreferredGender enums.PreferredGender `json:"preferred_gender"`
}

// PreferencesUpdate carries a partial preferences update. Only non-nil fields
// are sent; ClearAges explicitly nulls both age bounds on the server.
type PreferencesUpdate struct {
	MinAge          *int
	MaxAge          *int
	ClearAges       bool
	PreferredGender *enums.PreferredGender
}

// MarshalJSON emits only the fields present in the update.
func (p PreferencesUpdate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3)
	if p.MinAge != nil {
		out["min_age"] = *p.MinAge
	} else if p.ClearAges {
		out["min_age"] = nil
	}
	if p.MaxAge != nil {
		out["max_age"] = *p.MaxAge
	} else if p.ClearAges {
		out["max_age"] = nil
	}
	if p.PreferredGender != nil {
		out["preferred_gender"] = *p.PreferredGender
	}
	return json.Marshal(out)
}

package schemas

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
)

// UserIn is the payload for registering a new profile.
type UserIn struct {
	TelegramID      int64            `json:"telegram_id"`
	Name            string           `json:"name"`
	BirthDate       time.Time        `json:"birth_date"`
	Bio             *string          `json:"bio"`
	Gender          enums.Gender     `json:"gender"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	UILanguage      enums.UILanguage `json:"ui_language"`
	LocationPrecise bool             `json:"is_location_precise"`
	PlaceID         *string          `json:"place_id,omitempty"`
}

// User is a full profile as returned by the profile API.
type User struct {
	ID              uuid.UUID        `json:"id"`
	TelegramID      int64            `json:"telegram_id"`
	Name            string           `json:"name"`
	BirthDate       time.Time        `json:"birth_date"`
	Bio             *string          `json:"bio"`
	Gender          enums.Gender     `json:"gender"`
	Latitude        float64          `json:"latitude"`
	Longitude       float64          `json:"longitude"`
	UILanguage      enums.UILanguage `json:"ui_language"`
	LocationPrecise bool             `json:"is_location_precise"`
	PlaceID         *string          `json:"place_id"`
	Rating          int              `json:"rating"`
	Active          bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Age returns full years since the birth date.
func (u *User) Age() int {
	if u.BirthDate.IsZero() {
		return 0
	}
	now := time.Now()
	age := now.Year() - u.BirthDate.Year()
	if now.Month() < u.BirthDate.Month() ||
		(now.Month() == u.BirthDate.Month() && now.Day() < u.BirthDate.Day()) {
		age--
	}
	return age
}

// UserUpdate carries a partial profile update. Only non-nil fields are sent;
// ClearBio explicitly nulls the bio on the server.
type UserUpdate struct {
	Name            *string
	BirthDate       *time.Time
	Bio             *string
	ClearBio        bool
	Gender          *enums.Gender
	Latitude        *float64
	Longitude       *float64
	UILanguage      *enums.UILanguage
	LocationPrecise *bool
	PlaceID         *string
	Active          *bool
}

// MarshalJSON emits only the fields present in the update.
func (u UserUpdate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 8)
	if u.Name != nil {
		out["name"] = *u.Name
	}
	if u.BirthDate != nil {
		out["birth_date"] = u.BirthDate.Format(time.RFC3339)
	}
	if u.Bio != nil {
		out["bio"] = *u.Bio
	} else if u.ClearBio {
		out["bio"] = nil
	}
	if u.Gender != nil {
		out["gender"] = *u.Gender
	}
	if u.Latitude != nil {
		out["latitude"] = *u.Latitude
	}
	if u.Longitude != nil {
		out["longitude"] = *u.Longitude
	}
	if u.UILanguage != nil {
		out["ui_language"] = *u.UILanguage
	}
	if u.LocationPrecise != nil {
		out["is_location_precise"] = *u.LocationPrecise
	}
	if u.PlaceID != nil {
		out["place_id"] = *u.PlaceID
	}
	if u.Active != nil {
		out["is_active"] = *u.Active
	}
	return json.Marshal(out)
}

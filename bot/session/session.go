// Package session stores per-user conversation state between updates.
package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/schemas"
)

// Data is everything a conversation accumulates before it is flushed to the
// profile API. Serialized as JSON by the postgres store.
type Data struct {
	Locale string `json:"locale,omitempty"`

	// Registration draft.
	Name            string                `json:"name,omitempty"`
	BirthDate       string                `json:"birth_date,omitempty"`
	Gender          enums.Gender          `json:"gender,omitempty"`
	Bio             *string               `json:"bio,omitempty"`
	PreferredGender enums.PreferredGender `json:"preferred_gender,omitempty"`
	MinAge          *int                  `json:"min_age,omitempty"`
	MaxAge          *int                  `json:"max_age,omitempty"`
	Latitude        *float64              `json:"latitude,omitempty"`
	Longitude       *float64              `json:"longitude,omitempty"`
	LocationPrecise bool                  `json:"is_location_precise,omitempty"`
	PlaceID         *string               `json:"place_id,omitempty"`
	Media           []schemas.FileIn      `json:"media,omitempty"`

	// Browsing cursor.
	MatchID     *uuid.UUID `json:"match_id,omitempty"`
	RewindIndex int        `json:"rewind_index,omitempty"`
	MatchPage   int        `json:"match_page,omitempty"`
}

// Session is one user's conversation position plus its accumulated data.
type Session struct {
	State State `json:"state"`
	Data  Data  `json:"data"`
}

// Reset clears the conversation back to the idle state. The locale survives
// so the user keeps their language across restarts, deletion included.
func (s *Session) Reset() {
	locale := s.Data.Locale
	s.State = StateNone
	s.Data = Data{Locale: locale}
}

// ClearData drops accumulated data but keeps the current state and locale.
func (s *Session) ClearData() {
	locale := s.Data.Locale
	s.Data = Data{Locale: locale}
}

// Store persists sessions keyed by Telegram user id. Get returns a fresh
// empty session for unknown users, never nil.
type Store interface {
	Get(ctx context.Context, userID int64) (*Session, error)
	Save(ctx context.Context, userID int64, sess *Session) error
	Close() error
}

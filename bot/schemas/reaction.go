package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
)

// ReactionIn is the payload for reacting to another profile.
type ReactionIn struct {
	ToUserID     uuid.UUID          `json:"to_user_id"`
	ReactionType enums.ReactionType `json:"reaction_type"`
}

// Reaction is a stored reaction as returned by the profile API.
type Reaction struct {
	ID              int                `json:"id"`
	ToUserID        uuid.UUID          `json:"to_user_id"`
	ReactionType    enums.ReactionType `json:"reaction_type"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	IsMatchNotified bool               `json:"is_match_notified"`
}

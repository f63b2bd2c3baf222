package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/enums"
)

// ReportIn is the payload for reporting another profile.
type ReportIn struct {
	Reason   string    `json:"reason"`
	ToUserID uuid.UUID `json:"to_user_id"`
}

// Report is a stored report as returned by the profile API.
type Report struct {
	ID         int                `json:"id"`
	FromUserID uuid.UUID          `json:"from_user_id"`
	ToUserID   uuid.UUID          `json:"to_user_id"`
	Reason     string             `json:"reason"`
	Status     enums.ReportStatus `json:"status"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

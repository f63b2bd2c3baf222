package schemas

import (
	"time"

	"github.com/m3rciful/anorbot/bot/enums"
)

// FileIn describes a media item collected from a Telegram attachment.
type FileIn struct {
	TelegramID string         `json:"telegram_id,omitempty"`
	UniqueID   string         `json:"telegram_unique_id,omitempty"`
	FileType   enums.FileType `json:"file_type"`
	FileSize   int64          `json:"file_size,omitempty"`
	MIMEType   string         `json:"mime_type,omitempty"`
	Thumbnail  *FileIn        `json:"thumbnail,omitempty"`
	Duration   int            `json:"duration,omitempty"`
}

// File is a stored media item as returned by the profile API.
type File struct {
	ID         int            `json:"id"`
	TelegramID string         `json:"telegram_id,omitempty"`
	UniqueID   string         `json:"telegram_unique_id,omitempty"`
	FileType   enums.FileType `json:"file_type"`
	FileSize   int64          `json:"file_size,omitempty"`
	MIMEType   string         `json:"mime_type,omitempty"`
	Duration   int            `json:"duration,omitempty"`
	UploadedAt time.Time      `json:"uploaded_at"`
	Path       *string        `json:"path"`
	Thumbnail  *File          `json:"thumbnail,omitempty"`
}

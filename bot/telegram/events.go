package telegram

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/dialog"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/core/telegram/callbacks"
)

// messageEvent strips an incoming update down to what the dialog engine
// needs.
func messageEvent(c tele.Context) dialog.Event {
	ev := dialog.Event{UserID: c.Sender().ID}
	msg := c.Message()
	if msg == nil {
		return ev
	}

	ev.Text = msg.Text
	if msg.Location != nil {
		ev.Location = &schemas.Coordinates{
			Latitude:  float64(msg.Location.Lat),
			Longitude: float64(msg.Location.Lng),
		}
	}
	if msg.Photo != nil {
		ev.Photo = photoIn(msg.Photo)
	}
	if msg.Video != nil {
		ev.Video = videoIn(msg.Video)
	}
	return ev
}

// callbackEvent carries the raw callback data over to the dialog layer.
func callbackEvent(c tele.Context) dialog.Event {
	return dialog.Event{
		UserID:   c.Sender().ID,
		Callback: callbacks.Data(c),
	}
}

func photoIn(p *tele.Photo) *schemas.FileIn {
	return &schemas.FileIn{
		TelegramID: p.FileID,
		UniqueID:   p.UniqueID,
		FileType:   enums.FileTypeImage,
		FileSize:   p.FileSize,
	}
}

func videoIn(v *tele.Video) *schemas.FileIn {
	file := &schemas.FileIn{
		TelegramID: v.FileID,
		UniqueID:   v.UniqueID,
		FileType:   enums.FileTypeVideo,
		FileSize:   v.FileSize,
		MIMEType:   v.MIME,
		Duration:   v.Duration,
	}
	if v.Thumbnail != nil {
		file.Thumbnail = photoIn(v.Thumbnail)
	}
	return file
}

package telegram

import (
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/dialog"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/core/telegram/keyboard"
)

// replyMarkup converts a dialog keyboard into Telegram reply markup.
func replyMarkup(kb *dialog.Keyboard) *tele.ReplyMarkup {
	if kb == nil {
		return nil
	}
	if kb.Remove {
		return keyboard.RemoveKeyboard()
	}
	if len(kb.Inline) > 0 {
		rows := make([][]keyboard.InlineBtn, len(kb.Inline))
		for i, row := range kb.Inline {
			r := make([]keyboard.InlineBtn, len(row))
			for j, b := range row {
				r[j] = keyboard.InlineBtn{
					Text:   b.Text,
					Data:   b.Data,
					URL:    b.URL,
					WebApp: b.WebApp,
				}
			}
			rows[i] = r
		}
		return keyboard.InlineButtonsRows(rows...)
	}

	rows := make([][]keyboard.ReplyBtn, len(kb.Buttons))
	for i, row := range kb.Buttons {
		r := make([]keyboard.ReplyBtn, len(row))
		for j, b := range row {
			r[j] = keyboard.ReplyBtn{Text: b.Text, Location: b.Location}
		}
		rows[i] = r
	}
	return keyboard.ReplyButtonRows(kb.Placeholder, rows...)
}

// albumFor builds a Telegram media group from a profile card. The caption
// rides on the first item.
func albumFor(card dialog.ProfileCard) tele.Album {
	album := make(tele.Album, 0, len(card.Media))
	for i, f := range card.Media {
		caption := ""
		if i == 0 {
			caption = card.Caption
		}
		file := tele.File{FileID: f.TelegramID}
		if f.FileType == enums.FileTypeVideo {
			album = append(album, &tele.Video{File: file, Caption: caption})
			continue
		}
		album = append(album, &tele.Photo{File: file, Caption: caption})
	}
	return album
}

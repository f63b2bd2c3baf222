package telegram

import (
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/dialog"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/schemas"
)

func TestReplyMarkupNil(t *testing.T) {
	if got := replyMarkup(nil); got != nil {
		t.Fatalf("expected nil markup, got %#v", got)
	}
}

func TestReplyMarkupRemove(t *testing.T) {
	got := replyMarkup(&dialog.Keyboard{Remove: true})
	if got == nil || !got.RemoveKeyboard {
		t.Fatalf("expected remove-keyboard markup, got %#v", got)
	}
}

func TestReplyMarkupButtons(t *testing.T) {
	got := replyMarkup(&dialog.Keyboard{
		Buttons: [][]dialog.Button{
			{{Text: "Share location", Location: true}},
			{{Text: "Skip"}, {Text: "Menu"}},
		},
		Placeholder: "City name",
	})
	if got == nil {
		t.Fatal("expected markup")
	}
	if !got.ResizeKeyboard {
		t.Error("expected resizable keyboard")
	}
	if got.Placeholder != "City name" {
		t.Errorf("placeholder = %q", got.Placeholder)
	}
	if len(got.ReplyKeyboard) != 2 || len(got.ReplyKeyboard[1]) != 2 {
		t.Fatalf("unexpected layout: %#v", got.ReplyKeyboard)
	}
	if !got.ReplyKeyboard[0][0].Location {
		t.Error("first button should request location")
	}
	if got.ReplyKeyboard[1][0].Text != "Skip" {
		t.Errorf("button text = %q", got.ReplyKeyboard[1][0].Text)
	}
}

func TestReplyMarkupInline(t *testing.T) {
	got := replyMarkup(&dialog.Keyboard{
		Inline: [][]dialog.InlineButton{
			{{Text: "Tashkent", Data: "place_id:p1"}},
			{{Text: "Open chat", WebApp: "https://app.example.com/chat"}},
			{{Text: "Support", URL: "https://t.me/support"}},
		},
	})
	if got == nil || len(got.InlineKeyboard) != 3 {
		t.Fatalf("unexpected markup: %#v", got)
	}
	if data := got.InlineKeyboard[0][0].Data; data != "place_id:p1" {
		t.Errorf("callback data = %q", data)
	}
	if app := got.InlineKeyboard[1][0].WebApp; app == nil || app.URL != "https://app.example.com/chat" {
		t.Errorf("web app button = %#v", got.InlineKeyboard[1][0].WebApp)
	}
	if url := got.InlineKeyboard[2][0].URL; url != "https://t.me/support" {
		t.Errorf("url button = %q", url)
	}
}

func TestAlbumForCaptionAndKinds(t *testing.T) {
	album := albumFor(dialog.ProfileCard{
		Caption: "Anna, 24",
		Media: []schemas.File{
			{TelegramID: "f1", FileType: enums.FileTypeImage},
			{TelegramID: "f2", FileType: enums.FileTypeVideo},
		},
	})
	if len(album) != 2 {
		t.Fatalf("album size = %d", len(album))
	}
	photo, ok := album[0].(*tele.Photo)
	if !ok {
		t.Fatalf("first item is %T, want photo", album[0])
	}
	if photo.Caption != "Anna, 24" {
		t.Errorf("caption = %q", photo.Caption)
	}
	if photo.FileID != "f1" {
		t.Errorf("file id = %q", photo.FileID)
	}
	video, ok := album[1].(*tele.Video)
	if !ok {
		t.Fatalf("second item is %T, want video", album[1])
	}
	if video.Caption != "" {
		t.Errorf("only the first item should carry the caption, got %q", video.Caption)
	}
}

package telegram

import (
	"context"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/dialog"
	tghelpers "github.com/m3rciful/anorbot/core/telegram/helpers"
)

// responder renders dialog engine output into the current chat. One instance
// lives for the duration of a single update.
type responder struct {
	c tele.Context
}

func newResponder(c tele.Context) dialog.Responder {
	return &responder{c: c}
}

func (r *responder) Send(_ context.Context, msg dialog.Message) error {
	opts := &tele.SendOptions{ReplyMarkup: replyMarkup(msg.Keyboard)}
	if msg.HTML {
		opts.ParseMode = tele.ModeHTML
	}
	return tghelpers.SendText(r.c, msg.Text, opts)
}

func (r *responder) SendAlbum(_ context.Context, card dialog.ProfileCard) error {
	album := albumFor(card)
	if len(album) == 0 {
		return tghelpers.SendText(r.c, card.Caption)
	}
	return tghelpers.SendAlbum(r.c, album)
}

// DeleteInline removes the message the current callback originated from.
func (r *responder) DeleteInline(context.Context) error {
	return r.c.Delete()
}

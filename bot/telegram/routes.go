package telegram

import (
	"context"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/dialog"
	coretelegram "github.com/m3rciful/anorbot/core/telegram"
	"github.com/m3rciful/anorbot/core/telegram/commands"
	tghelpers "github.com/m3rciful/anorbot/core/telegram/helpers"
	"github.com/m3rciful/anorbot/core/telegram/router"
)

type engineFunc func(ctx context.Context, ev dialog.Event, r dialog.Responder) error

// engineHandler bridges a dialog engine entry point into a telebot handler
// with the shared per-update summary log.
func engineHandler(name string, fn engineFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil {
			return nil
		}
		start := time.Now()
		ctx := tghelpers.BuildContext(c)
		return router.HandleWithSummary(c, name, start, "", "", func() error {
			return fn(ctx, messageEvent(c), newResponder(c))
		})
	}
}

// RegisterCommands declares the bot's command set. Only /menu and /help show
// up in the Telegram command menu.
func RegisterCommands(reg *coretelegram.Registry, engine *dialog.Engine, stats tele.HandlerFunc) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     engineHandler("start", engine.Start),
		Description: "Start the bot",
		Hidden:      true,
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     engineHandler("menu", engine.Menu),
		Description: "Menu",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     engineHandler("help", engine.Help),
		Description: "Help",
	})
	if stats != nil {
		reg.RegisterCommand("/stats", commands.Command{
			Handler:     stats,
			Description: "Runtime stats",
			AdminOnly:   true,
			Hidden:      true,
		})
	}
}

// Routes binds the non-command update types the dialog engine consumes.
func Routes(engine *dialog.Engine) []coretelegram.Route {
	message := engineHandler("message", engine.Handle)
	return []coretelegram.Route{
		{Endpoint: tele.OnText, Handler: message},
		{Endpoint: tele.OnLocation, Handler: message},
		{Endpoint: tele.OnPhoto, Handler: message},
		{Endpoint: tele.OnVideo, Handler: message},
		{Endpoint: tele.OnCallback, Handler: callbackHandler(engine)},
	}
}

func callbackHandler(engine *dialog.Engine) tele.HandlerFunc {
	return func(c tele.Context) error {
		if c.Sender() == nil {
			return nil
		}
		start := time.Now()
		ctx := tghelpers.BuildContext(c)
		return router.HandleWithSummary(c, "callback", start, "", "", func() error {
			// Stop the button spinner before the (possibly slow) handling.
			_ = c.Respond()
			return engine.Handle(ctx, callbackEvent(c), newResponder(c))
		})
	}
}

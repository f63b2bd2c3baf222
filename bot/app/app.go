package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/anorbot/bot/api"
	"github.com/m3rciful/anorbot/bot/dialog"
	"github.com/m3rciful/anorbot/bot/session"
	botelegram "github.com/m3rciful/anorbot/bot/telegram"
	"github.com/m3rciful/anorbot/core/bootstrap"
	"github.com/m3rciful/anorbot/core/buildinfo"
	corecmd "github.com/m3rciful/anorbot/core/cmd"
	"github.com/m3rciful/anorbot/core/logger"
	coretelegram "github.com/m3rciful/anorbot/core/telegram"
	tghelpers "github.com/m3rciful/anorbot/core/telegram/helpers"
	"github.com/m3rciful/anorbot/core/telegram/router"
)

// App wires the dating bot: profile API client, session store, dialog engine
// and the Telegram runtime around them.
type App struct {
	cfg       *Config
	db        *sqlx.DB
	store     session.Store
	locks     *dialog.LockRegistry
	engine    *dialog.Engine
	startedAt time.Time
}

// Bootstrap initializes infrastructure for the given configuration: logger,
// session store (with migrations when backed by Postgres) and the dialog
// engine.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	a := &App{
		cfg:       cfg,
		locks:     dialog.NewLockRegistry(),
		startedAt: time.Now(),
	}

	if cfg.Bot.SessionStore == SessionStorePostgres {
		result, err := bootstrap.Run(bootstrap.Options{
			Config:   cfg.CoreConfig(),
			Database: cfg.Database,
		})
		if err != nil {
			return nil, err
		}
		a.db = result.DB
		a.store = session.NewPostgresStore(result.DB)
	} else {
		if err := logger.InitLogger(cfg.CoreConfig()); err != nil {
			return nil, fmt.Errorf("app: logger init failed: %w", err)
		}
		a.store = session.NewMemoryStore()
	}

	client := api.New(api.Config{
		BaseURL:       cfg.API.BaseURL,
		InternalToken: cfg.API.InternalToken,
		Timeout:       cfg.API.Timeout(),
	})

	engine, err := dialog.New(dialog.Options{
		API:         client,
		Store:       a.store,
		Locks:       a.locks,
		RewindLimit: cfg.Bot.RewindLimit,
		AppURL:      cfg.API.AppURL,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.engine = engine

	return a, nil
}

// TelegramRunOptions assembles the Telegram runtime: registry, middleware
// chain and routes.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	botelegram.RegisterCommands(reg, a.engine, a.statsHandler())

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, botelegram.Routes(a.engine)...)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStop: func(ctx context.Context, _ coretelegram.Runtime) error {
			a.close()
			return nil
		},
	}, nil
}

// statsHandler reports runtime internals to the admin.
func (a *App) statsHandler() tele.HandlerFunc {
	return func(c tele.Context) error {
		uptime := time.Since(a.startedAt).Round(time.Second)
		text := fmt.Sprintf(
			"version: %s (%s)\nuptime: %s\nsession store: %s\nactive upload locks: %d",
			buildinfo.Version, buildinfo.Commit,
			uptime,
			a.cfg.Bot.SessionStore,
			a.locks.Len(),
		)
		return tghelpers.SendText(c, text)
	}
}

func (a *App) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			logger.SESS.Warn("session store close failed")
		}
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

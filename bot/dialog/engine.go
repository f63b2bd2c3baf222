// Package dialog implements the conversation logic: registration, browsing
// and profile editing. It is transport-agnostic; the telegram layer feeds it
// events and renders its messages.
package dialog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
	"github.com/m3rciful/anorbot/bot/validators"
	"github.com/m3rciful/anorbot/core/logger"
)

// Event is one incoming update, already stripped of transport detail.
type Event struct {
	UserID   int64
	Text     string
	Location *schemas.Coordinates
	Photo    *schemas.FileIn
	Video    *schemas.FileIn
	Callback string
}

// Button is a reply keyboard button with its label already localized.
type Button struct {
	Text     string
	Location bool
}

// InlineButton is an inline keyboard button. Exactly one of Data, URL or
// WebApp should be set.
type InlineButton struct {
	Text   string
	Data   string
	URL    string
	WebApp string
}

// Keyboard describes the reply markup attached to a message.
type Keyboard struct {
	Buttons     [][]Button
	Inline      [][]InlineButton
	Remove      bool
	Placeholder string
}

// Message is one outgoing message.
type Message struct {
	Text     string
	HTML     bool
	Keyboard *Keyboard
}

// ProfileCard is a media album with a caption on the first item.
type ProfileCard struct {
	Caption string
	Media   []schemas.File
}

// Responder delivers engine output back to the chat.
type Responder interface {
	Send(ctx context.Context, msg Message) error
	SendAlbum(ctx context.Context, card ProfileCard) error
	// DeleteInline removes the message the current callback came from.
	DeleteInline(ctx context.Context) error
}

// Backend is the slice of the profile API the engine needs. *api.Client
// satisfies it.
type Backend interface {
	CurrentUser(ctx context.Context, tgID int64) (*schemas.User, error)
	Register(ctx context.Context, in schemas.UserIn) (*schemas.User, error)
	UpdateMe(ctx context.Context, tgID int64, upd schemas.UserUpdate) (*schemas.User, error)
	DeleteMe(ctx context.Context, tgID int64) error
	IsBanned(ctx context.Context, tgID int64) (bool, error)

	Matches(ctx context.Context, tgID int64, limit, offset int) ([]schemas.User, error)
	BestMatch(ctx context.Context, tgID int64) (*schemas.User, error)
	CheckMatch(ctx context.Context, tgID int64, matchID uuid.UUID) (bool, error)
	Likes(ctx context.Context, tgID int64, limit int) ([]schemas.User, error)
	Rewinds(ctx context.Context, tgID int64, limit, offset int) ([]schemas.User, error)
	React(ctx context.Context, tgID int64, in schemas.ReactionIn) (*schemas.Reaction, error)

	Media(ctx context.Context, userID uuid.UUID) ([]schemas.File, error)
	MyMedia(ctx context.Context, tgID int64) ([]schemas.File, error)
	BatchAddMedia(ctx context.Context, tgID int64, media []schemas.FileIn) ([]schemas.File, error)
	ReplaceMedia(ctx context.Context, tgID int64, media []schemas.FileIn) ([]schemas.File, error)

	SearchPlaces(ctx context.Context, query, language string) ([]schemas.PlaceSearch, error)
	PlaceDetails(ctx context.Context, placeID, language string) (*schemas.PlaceDetails, error)
	PlaceByCoordinates(ctx context.Context, lat, lon float64, language string) (*schemas.PlaceDetails, error)
	PlaceName(ctx context.Context, placeID, language string) (string, error)

	CreatePreferences(ctx context.Context, tgID int64, userID uuid.UUID, in schemas.PreferencesIn) (*schemas.Preferences, error)
	UpdatePreferences(ctx context.Context, tgID int64, upd schemas.PreferencesUpdate) (*schemas.Preferences, error)
	CreateReport(ctx context.Context, tgID int64, in schemas.ReportIn) (*schemas.Report, error)
}

const defaultRewindLimit = 5

// Options configures an Engine.
type Options struct {
	API         Backend
	Store       session.Store
	Locks       *LockRegistry
	RewindLimit int
	AppURL      string
}

// Engine drives conversations. One instance serves all users.
type Engine struct {
	api         Backend
	store       session.Store
	locks       *LockRegistry
	rewindLimit int
	appURL      string
}

func New(opts Options) (*Engine, error) {
	if opts.API == nil {
		return nil, errors.New("dialog: backend is required")
	}
	if opts.Store == nil {
		return nil, errors.New("dialog: session store is required")
	}
	locks := opts.Locks
	if locks == nil {
		locks = NewLockRegistry()
	}
	limit := opts.RewindLimit
	if limit <= 0 {
		limit = defaultRewindLimit
	}
	return &Engine{
		api:         opts.API,
		store:       opts.Store,
		locks:       locks,
		rewindLimit: limit,
		appURL:      opts.AppURL,
	}, nil
}

// conv is one update's view of a user's conversation.
type conv struct {
	e      *Engine
	r      Responder
	userID int64
	sess   *session.Session
	// flushed means the handler already persisted the session under the
	// upload lock and has not touched it since. finish must not save then,
	// or its stale snapshot would overwrite a concurrent append.
	flushed bool
}

func (e *Engine) conversation(ctx context.Context, userID int64, r Responder) (*conv, error) {
	sess, err := e.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &conv{e: e, r: r, userID: userID, sess: sess}, nil
}

func (e *Engine) finish(ctx context.Context, c *conv, handleErr error) error {
	if c.flushed {
		return handleErr
	}
	if saveErr := e.store.Save(ctx, c.userID, c.sess); saveErr != nil {
		logger.Error(ctx, "dialog", "session.save.failed",
			slog.Int64("user_id", c.userID),
			slog.String("err", saveErr.Error()),
		)
		if handleErr == nil {
			return saveErr
		}
	}
	return handleErr
}

// Handle processes a non-command update: text, location, media or callback.
func (e *Engine) Handle(ctx context.Context, ev Event, r Responder) error {
	c, err := e.conversation(ctx, ev.UserID, r)
	if err != nil {
		return err
	}
	if ev.Callback != "" {
		return e.finish(ctx, c, c.handleCallback(ctx, ev))
	}
	return e.finish(ctx, c, c.handleMessage(ctx, ev))
}

// Start handles /start and the post-deletion restart button.
func (e *Engine) Start(ctx context.Context, ev Event, r Responder) error {
	c, err := e.conversation(ctx, ev.UserID, r)
	if err != nil {
		return err
	}
	return e.finish(ctx, c, c.start(ctx))
}

// Menu handles /menu. Deactivated and deleted accounts stay where they are.
func (e *Engine) Menu(ctx context.Context, ev Event, r Responder) error {
	c, err := e.conversation(ctx, ev.UserID, r)
	if err != nil {
		return err
	}
	if c.sess.State.Locked() {
		return nil
	}
	return e.finish(ctx, c, c.showMenu(ctx))
}

// Help handles /help. No state change.
func (e *Engine) Help(ctx context.Context, ev Event, r Responder) error {
	sess, err := e.store.Get(ctx, ev.UserID)
	if err != nil {
		return err
	}
	c := &conv{e: e, r: r, userID: ev.UserID, sess: sess}
	return c.sendHTML(ctx, c.t(i18n.MsgHelp), nil)
}

func (c *conv) handleMessage(ctx context.Context, ev Event) error {
	action, _ := i18n.Resolve(ev.Text)

	if action == i18n.ActionMenu && !c.sess.State.Locked() {
		return c.showMenu(ctx)
	}

	state := c.sess.State
	logger.Debug(ctx, "dialog", "dialog.event",
		slog.Int64("user_id", c.userID),
		slog.String("state", string(state)),
		slog.String("flow", string(state.Flow())),
		slog.String("action", string(action)),
	)

	switch state {
	case session.StateNone:
		return c.start(ctx)

	case session.StateRegLanguage:
		return c.regLanguage(ctx, action)
	case session.StateRegName:
		return c.regName(ctx, ev.Text)
	case session.StateRegBirthDate:
		return c.regBirthDate(ctx, ev.Text)
	case session.StateRegGender:
		return c.regGender(ctx, action)
	case session.StateRegBio:
		return c.regBio(ctx, ev.Text, action)
	case session.StateRegPreferredGender:
		return c.regPreferredGender(ctx, action)
	case session.StateRegAgePreferences:
		return c.regAgePreferences(ctx, ev.Text, action)
	case session.StateRegLocation:
		return c.regLocation(ctx, ev)
	case session.StateRegMedia:
		return c.regMedia(ctx, ev, action)

	case session.StateMenu:
		return c.menuSelect(ctx, action)
	case session.StateSearch, session.StateLikes, session.StateMatches:
		return c.browseSelect(ctx, action)
	case session.StateReportReason:
		return c.reportReason(ctx, ev.Text)

	case session.StateSettings:
		return c.settingsSelect(ctx, action)
	case session.StateLanguage:
		return c.changeLanguage(ctx, action)
	case session.StateDeactivateConfirm:
		return c.deactivateConfirm(ctx, action)
	case session.StateDeactivated:
		return c.deactivatedSelect(ctx, action)
	case session.StateDeleteConfirm:
		return c.deleteConfirm(ctx, action)
	case session.StateDeleted:
		return c.deletedSelect(ctx, action)

	case session.StateProfile:
		return c.profileSelect(ctx, action)
	case session.StateProfileName:
		return c.profileName(ctx, ev.Text)
	case session.StateProfileBirthDate:
		return c.profileBirthDate(ctx, ev.Text)
	case session.StateProfileGender:
		return c.profileGender(ctx, action)
	case session.StateProfileBio:
		return c.profileBio(ctx, ev.Text, action)
	case session.StateProfileLocation:
		return c.profileLocation(ctx, ev)
	case session.StateProfileMedia:
		return c.profileMedia(ctx, ev, action)

	case session.StatePreferences:
		return c.preferencesSelect(ctx, action)
	case session.StatePreferencesGender:
		return c.preferencesGender(ctx, action)
	case session.StatePreferencesAge:
		return c.preferencesAge(ctx, ev.Text, action)
	}

	return nil
}

func (c *conv) handleCallback(ctx context.Context, ev Event) error {
	switch {
	case ev.Callback == callbackDeleteMessage:
		return c.r.DeleteInline(ctx)
	case ev.Callback == callbackShowMatches:
		if c.sess.State.Locked() {
			return nil
		}
		return c.showMatches(ctx, 0)
	case ev.Callback == callbackShowLikes:
		if c.sess.State.Locked() {
			return nil
		}
		return c.showLikesWithKeyboard(ctx)
	case hasPlacePrefix(ev.Callback):
		placeID := placeIDFrom(ev.Callback)
		switch c.sess.State {
		case session.StateRegLocation:
			return c.regPlaceSelected(ctx, placeID)
		case session.StateProfileLocation:
			return c.profilePlaceSelected(ctx, placeID)
		}
	}
	return nil
}

// locale returns the user's UI language, defaulting to English.
func (c *conv) locale() string {
	if c.sess.Data.Locale != "" {
		return c.sess.Data.Locale
	}
	return i18n.DefaultLocale
}

func (c *conv) t(key string, args ...any) string {
	return i18n.T(c.locale(), key, args...)
}

func (c *conv) label(a i18n.Action) string {
	return i18n.Label(c.locale(), a)
}

func (c *conv) send(ctx context.Context, text string, kb *Keyboard) error {
	return c.r.Send(ctx, Message{Text: text, Keyboard: kb})
}

func (c *conv) sendHTML(ctx context.Context, text string, kb *Keyboard) error {
	return c.r.Send(ctx, Message{Text: text, HTML: true, Keyboard: kb})
}

// sendValidation renders a validator error in the user's language. Other
// errors pass through unchanged.
func (c *conv) sendValidation(ctx context.Context, err error) error {
	var verr *validators.Error
	if errors.As(err, &verr) {
		return c.send(ctx, c.t(verr.Key, verr.Args...), nil)
	}
	return err
}

func (c *conv) setState(state session.State) {
	c.sess.State = state
	c.flushed = false
}

func (c *conv) chatURL(matchID uuid.UUID) string {
	return fmt.Sprintf("%s/users/%s/chat", c.e.appURL, matchID)
}

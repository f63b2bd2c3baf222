package dialog

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/api"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
)

const testUserID int64 = 42

// fakeBackend is an in-memory Backend. Fields configure responses; recorded
// payloads let tests assert what the engine sent.
type fakeBackend struct {
	user      *schemas.User
	userErr   error
	banned    bool
	bannedErr error

	best       *schemas.User
	bestErr    error
	likes      []schemas.User
	matches    []schemas.User
	rewinds    []schemas.User
	rewindsErr error
	reactErr   error
	isMatch    bool

	media      []schemas.File
	places     []schemas.PlaceSearch
	placesErr  error
	details    *schemas.PlaceDetails
	placeName  string
	replaceErr error

	registered   *schemas.UserIn
	registerErr  error
	updates      []schemas.UserUpdate
	reactions    []schemas.ReactionIn
	reports      []schemas.ReportIn
	deleted      bool
	prefsIn      *schemas.PreferencesIn
	prefsUpdates []schemas.PreferencesUpdate
	batch        []schemas.FileIn
	replaced     []schemas.FileIn
}

func notFound(path string) *api.Error {
	return &api.Error{Status: 404, Method: "GET", Path: path}
}

func (f *fakeBackend) CurrentUser(context.Context, int64) (*schemas.User, error) {
	if f.userErr != nil {
		return nil, f.userErr
	}
	if f.user == nil {
		return nil, notFound("/v1/users/me")
	}
	return f.user, nil
}

func (f *fakeBackend) Register(_ context.Context, in schemas.UserIn) (*schemas.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = &in
	f.user = &schemas.User{
		ID:         uuid.New(),
		TelegramID: in.TelegramID,
		Name:       in.Name,
		BirthDate:  in.BirthDate,
		Bio:        in.Bio,
		Gender:     in.Gender,
		UILanguage: in.UILanguage,
		PlaceID:    in.PlaceID,
		Active:     true,
	}
	return f.user, nil
}

func (f *fakeBackend) UpdateMe(_ context.Context, _ int64, upd schemas.UserUpdate) (*schemas.User, error) {
	f.updates = append(f.updates, upd)
	if f.user == nil {
		f.user = &schemas.User{ID: uuid.New(), TelegramID: testUserID}
	}
	return f.user, nil
}

func (f *fakeBackend) DeleteMe(context.Context, int64) error {
	f.deleted = true
	return nil
}

func (f *fakeBackend) IsBanned(context.Context, int64) (bool, error) {
	return f.banned, f.bannedErr
}

func page(users []schemas.User, limit, offset int) []schemas.User {
	if offset >= len(users) {
		return nil
	}
	end := offset + limit
	if end > len(users) {
		end = len(users)
	}
	return users[offset:end]
}

func (f *fakeBackend) Matches(_ context.Context, _ int64, limit, offset int) ([]schemas.User, error) {
	return page(f.matches, limit, offset), nil
}

func (f *fakeBackend) BestMatch(context.Context, int64) (*schemas.User, error) {
	return f.best, f.bestErr
}

func (f *fakeBackend) CheckMatch(context.Context, int64, uuid.UUID) (bool, error) {
	return f.isMatch, nil
}

func (f *fakeBackend) Likes(_ context.Context, _ int64, limit int) ([]schemas.User, error) {
	return page(f.likes, limit, 0), nil
}

func (f *fakeBackend) Rewinds(_ context.Context, _ int64, limit, offset int) ([]schemas.User, error) {
	if f.rewindsErr != nil {
		return nil, f.rewindsErr
	}
	return page(f.rewinds, limit, offset), nil
}

func (f *fakeBackend) React(_ context.Context, _ int64, in schemas.ReactionIn) (*schemas.Reaction, error) {
	if f.reactErr != nil {
		return nil, f.reactErr
	}
	f.reactions = append(f.reactions, in)
	return &schemas.Reaction{ToUserID: in.ToUserID, ReactionType: in.ReactionType}, nil
}

func (f *fakeBackend) Media(context.Context, uuid.UUID) ([]schemas.File, error) {
	return f.media, nil
}

func (f *fakeBackend) MyMedia(context.Context, int64) ([]schemas.File, error) {
	return f.media, nil
}

func (f *fakeBackend) BatchAddMedia(_ context.Context, _ int64, media []schemas.FileIn) ([]schemas.File, error) {
	f.batch = media
	return f.media, nil
}

func (f *fakeBackend) ReplaceMedia(_ context.Context, _ int64, media []schemas.FileIn) ([]schemas.File, error) {
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	f.replaced = media
	return f.media, nil
}

func (f *fakeBackend) SearchPlaces(context.Context, string, string) ([]schemas.PlaceSearch, error) {
	return f.places, f.placesErr
}

func (f *fakeBackend) PlaceDetails(context.Context, string, string) (*schemas.PlaceDetails, error) {
	if f.details == nil {
		return nil, notFound("/v1/places")
	}
	return f.details, nil
}

func (f *fakeBackend) PlaceByCoordinates(context.Context, float64, float64, string) (*schemas.PlaceDetails, error) {
	if f.details == nil {
		return nil, notFound("/v1/places/coordinates")
	}
	return f.details, nil
}

func (f *fakeBackend) PlaceName(context.Context, string, string) (string, error) {
	return f.placeName, nil
}

func (f *fakeBackend) CreatePreferences(_ context.Context, _ int64, _ uuid.UUID, in schemas.PreferencesIn) (*schemas.Preferences, error) {
	f.prefsIn = &in
	return &schemas.Preferences{}, nil
}

func (f *fakeBackend) UpdatePreferences(_ context.Context, _ int64, upd schemas.PreferencesUpdate) (*schemas.Preferences, error) {
	f.prefsUpdates = append(f.prefsUpdates, upd)
	return &schemas.Preferences{}, nil
}

func (f *fakeBackend) CreateReport(_ context.Context, _ int64, in schemas.ReportIn) (*schemas.Report, error) {
	f.reports = append(f.reports, in)
	return &schemas.Report{Reason: in.Reason, ToUserID: in.ToUserID}, nil
}

type fakeResponder struct {
	messages []Message
	albums   []ProfileCard
	deletes  int
}

func (r *fakeResponder) Send(_ context.Context, msg Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

func (r *fakeResponder) SendAlbum(_ context.Context, card ProfileCard) error {
	r.albums = append(r.albums, card)
	return nil
}

func (r *fakeResponder) DeleteInline(context.Context) error {
	r.deletes++
	return nil
}

func (r *fakeResponder) texts() []string {
	out := make([]string, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m.Text)
	}
	return out
}

func (r *fakeResponder) contains(t *testing.T, text string) {
	t.Helper()
	for _, m := range r.messages {
		if m.Text == text {
			return
		}
	}
	t.Fatalf("message %q not sent, got %q", text, r.texts())
}

func testEngine(t *testing.T, backend Backend) (*Engine, *session.MemoryStore) {
	t.Helper()
	store := session.NewMemoryStore()
	e, err := New(Options{API: backend, Store: store, AppURL: "https://app.example.com"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, store
}

func seedState(t *testing.T, store session.Store, state session.State, data session.Data) {
	t.Helper()
	sess := &session.Session{State: state, Data: data}
	if err := store.Save(context.Background(), testUserID, sess); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func stateOf(t *testing.T, store session.Store) session.State {
	t.Helper()
	sess, err := store.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	return sess.State
}

func dataOf(t *testing.T, store session.Store) session.Data {
	t.Helper()
	sess, err := store.Get(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	return sess.Data
}

func activeUser() *schemas.User {
	bio := "coffee and climbing"
	return &schemas.User{
		ID:         uuid.New(),
		TelegramID: testUserID,
		Name:       "Dana",
		BirthDate:  time.Date(1998, 4, 12, 0, 0, 0, 0, time.UTC),
		Bio:        &bio,
		Gender:     enums.GenderFemale,
		UILanguage: enums.LanguageEn,
		Active:     true,
	}
}

func textEvent(text string) Event {
	return Event{UserID: testUserID, Text: text}
}

func actionEvent(a i18n.Action) Event {
	return textEvent(i18n.Label(i18n.DefaultLocale, a))
}

func TestStartNewUserAsksLanguage(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	r := &fakeResponder{}

	if err := e.Start(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.contains(t, i18n.MsgSelectLanguage)
	if got := stateOf(t, store); got != session.StateRegLanguage {
		t.Fatalf("state = %q, want %q", got, session.StateRegLanguage)
	}
}

func TestStartBannedUser(t *testing.T) {
	backend := &fakeBackend{banned: true}
	e, store := testEngine(t, backend)
	r := &fakeResponder{}

	if err := e.Start(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.contains(t, i18n.MsgBanned)
	if got := stateOf(t, store); got != session.StateNone {
		t.Fatalf("state = %q, want none", got)
	}
}

func TestStartActiveUserShowsMenu(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	r := &fakeResponder{}

	if err := e.Start(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.contains(t, i18n.MsgMenu)
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
	if got := dataOf(t, store).Locale; got != "en" {
		t.Fatalf("locale = %q, want en", got)
	}
}

func TestStartDeactivatedUserOffersActivation(t *testing.T) {
	user := activeUser()
	user.Active = false
	backend := &fakeBackend{user: user}
	e, store := testEngine(t, backend)
	r := &fakeResponder{}

	if err := e.Start(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Start: %v", err)
	}
	r.contains(t, i18n.MsgDeactivated)
	if got := stateOf(t, store); got != session.StateDeactivated {
		t.Fatalf("state = %q, want %q", got, session.StateDeactivated)
	}
}

func TestStartResetsSessionButKeepsLocale(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	name := "stale"
	seedState(t, store, session.StateRegBio, session.Data{Locale: "ru", Name: name})
	r := &fakeResponder{}

	if err := e.Start(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Start: %v", err)
	}
	data := dataOf(t, store)
	if data.Locale != "ru" {
		t.Fatalf("locale = %q, want ru", data.Locale)
	}
	if data.Name != "" {
		t.Fatalf("name survived reset: %q", data.Name)
	}
	// A new language prompt arrives in the kept locale.
	r.contains(t, i18n.T("ru", i18n.MsgSelectLanguage))
}

func TestRegistrationFlow(t *testing.T) {
	backend := &fakeBackend{
		details: &schemas.PlaceDetails{PlaceID: "tashkent", Latitude: 41.31, Longitude: 69.24, Name: "Tashkent"},
	}
	e, store := testEngine(t, backend)
	ctx := context.Background()

	step := func(ev Event) *fakeResponder {
		t.Helper()
		r := &fakeResponder{}
		if err := e.Handle(ctx, ev, r); err != nil {
			t.Fatalf("Handle(%+v): %v", ev, err)
		}
		return r
	}

	if err := e.Start(ctx, Event{UserID: testUserID}, &fakeResponder{}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	step(actionEvent(i18n.ActionLangEn)).contains(t, i18n.MsgAskName)
	step(textEvent("Dana"))
	step(textEvent("12.04.1998"))
	step(actionEvent(i18n.ActionGenderFemale)).contains(t, i18n.MsgAskBio)
	step(actionEvent(i18n.ActionSkip)).contains(t, i18n.MsgAskPreferredSex)
	step(actionEvent(i18n.ActionPreferMen)).contains(t, i18n.MsgAskAgeRange)
	step(textEvent("20-30")).contains(t, i18n.MsgAskLocation)
	step(Event{UserID: testUserID, Location: &schemas.Coordinates{Latitude: 41.3, Longitude: 69.2}})

	if got := stateOf(t, store); got != session.StateRegMedia {
		t.Fatalf("state = %q, want %q", got, session.StateRegMedia)
	}

	photo := Event{UserID: testUserID, Photo: &schemas.FileIn{TelegramID: "f1", FileType: enums.FileTypeImage}}
	step(photo).contains(t, i18n.MsgFileUploadedMore)

	done := step(actionEvent(i18n.ActionContinue))
	done.contains(t, i18n.MsgRegistrationDone)
	done.contains(t, i18n.MsgMenu)

	if backend.registered == nil {
		t.Fatal("Register not called")
	}
	in := backend.registered
	if in.Name != "Dana" || in.Gender != enums.GenderFemale {
		t.Fatalf("registered %q/%q", in.Name, in.Gender)
	}
	if in.BirthDate.Year() != 1998 || in.BirthDate.Month() != time.April {
		t.Fatalf("birth date = %v", in.BirthDate)
	}
	if !in.LocationPrecise {
		t.Fatal("shared coordinates should mark the location precise")
	}
	if in.PlaceID == nil || *in.PlaceID != "tashkent" {
		t.Fatalf("place id = %v", in.PlaceID)
	}
	if len(backend.batch) != 1 || backend.batch[0].TelegramID != "f1" {
		t.Fatalf("batch media = %+v", backend.batch)
	}
	if backend.prefsIn == nil {
		t.Fatal("CreatePreferences not called")
	}
	if backend.prefsIn.PreferredGender != enums.PreferredMale {
		t.Fatalf("preferred gender = %q", backend.prefsIn.PreferredGender)
	}
	if backend.prefsIn.MinAge == nil || *backend.prefsIn.MinAge != 20 {
		t.Fatalf("min age = %v", backend.prefsIn.MinAge)
	}
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestRegistrationRejectsInvalidName(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegName, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), textEvent("D4na!"), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, "Name must only contain letters and spaces")
	if got := stateOf(t, store); got != session.StateRegName {
		t.Fatalf("state advanced to %q on invalid input", got)
	}
}

func TestCitySearchOffersInlineChoices(t *testing.T) {
	backend := &fakeBackend{places: []schemas.PlaceSearch{
		{Name: "Samarkand", PlaceID: "p1"},
		{Name: "Samara", PlaceID: "p2"},
	}}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegLocation, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), textEvent("Samar"), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgSelectCity)
	last := r.messages[len(r.messages)-1]
	if last.Keyboard == nil || len(last.Keyboard.Inline) != 2 {
		t.Fatalf("keyboard = %+v, want 2 inline rows", last.Keyboard)
	}
	if got := last.Keyboard.Inline[0][0].Data; got != "place_id:p1" {
		t.Fatalf("callback data = %q", got)
	}
}

func TestPlaceCallbackAdvancesToMedia(t *testing.T) {
	backend := &fakeBackend{
		details: &schemas.PlaceDetails{PlaceID: "p1", Latitude: 39.65, Longitude: 66.96},
	}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegLocation, session.Data{Locale: "en"})
	r := &fakeResponder{}

	ev := Event{UserID: testUserID, Callback: "place_id:p1"}
	if err := e.Handle(context.Background(), ev, r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if r.deletes != 1 {
		t.Fatalf("inline message deletes = %d, want 1", r.deletes)
	}
	if got := stateOf(t, store); got != session.StateRegMedia {
		t.Fatalf("state = %q, want %q", got, session.StateRegMedia)
	}
	data := dataOf(t, store)
	if data.PlaceID == nil || *data.PlaceID != "p1" {
		t.Fatalf("place id = %v", data.PlaceID)
	}
	if data.LocationPrecise {
		t.Fatal("picking a city must not mark the location precise")
	}
}

func TestMenuRouting(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionSettings), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgSettings)
	if got := stateOf(t, store); got != session.StateSettings {
		t.Fatalf("state = %q, want %q", got, session.StateSettings)
	}
}

func TestMenuButtonWorksFromAnyState(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionMenu), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestMenuIgnoredWhenDeactivated(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateDeactivated, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Menu(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Menu: %v", err)
	}
	if len(r.messages) != 0 {
		t.Fatalf("deactivated user got %q", r.texts())
	}
	if got := stateOf(t, store); got != session.StateDeactivated {
		t.Fatalf("state = %q, want %q", got, session.StateDeactivated)
	}
}

func TestSearchShowsBestMatch(t *testing.T) {
	match := activeUser()
	match.ID = uuid.New()
	backend := &fakeBackend{
		user: activeUser(),
		best: match,
		media: []schemas.File{
			{ID: 1, FileType: enums.FileTypeImage},
			{ID: 2, FileType: enums.FileTypeDocument},
		},
	}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionWatchProfiles), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(r.albums) != 1 {
		t.Fatalf("albums = %d, want 1", len(r.albums))
	}
	// Documents never make it into the card.
	if got := len(r.albums[0].Media); got != 1 {
		t.Fatalf("card media = %d, want 1", got)
	}
	data := dataOf(t, store)
	if data.MatchID == nil || *data.MatchID != match.ID {
		t.Fatalf("match id = %v, want %v", data.MatchID, match.ID)
	}
	if got := stateOf(t, store); got != session.StateSearch {
		t.Fatalf("state = %q, want %q", got, session.StateSearch)
	}
}

func TestSearchEmptyOffersRewind(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionWatchProfiles), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgNoCandidates)
	if got := stateOf(t, store); got != session.StateSearch {
		t.Fatalf("state = %q, want %q", got, session.StateSearch)
	}
}

func TestRewindLimitReached(t *testing.T) {
	backend := &fakeBackend{
		user:       activeUser(),
		rewindsErr: &api.Error{Status: 400, Method: "GET", Path: "/v1/rewinds"},
	}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en", RewindIndex: 5})
	r := &fakeResponder{}

	err := e.Handle(context.Background(), actionEvent(i18n.ActionRewind), r)
	if err != nil {
		t.Fatalf("Handle returned %v, want nil after limit message", err)
	}
	r.contains(t, i18n.T("en", i18n.MsgRewindLimit, defaultRewindLimit))
}

func TestRewindNothingLeftGoesToMenu(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionRewind), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgNothingToRewind)
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestRewindShowsPreviousCard(t *testing.T) {
	prev := *activeUser()
	prev.ID = uuid.New()
	backend := &fakeBackend{user: activeUser(), rewinds: []schemas.User{prev}}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionRewind), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(r.albums) != 1 {
		t.Fatalf("albums = %d, want 1", len(r.albums))
	}
	data := dataOf(t, store)
	if data.RewindIndex != 1 {
		t.Fatalf("rewind index = %d, want 1", data.RewindIndex)
	}
	if data.MatchID == nil || *data.MatchID != prev.ID {
		t.Fatalf("match id = %v, want %v", data.MatchID, prev.ID)
	}
}

func TestLikeRecordsReactionAndContinuesSearch(t *testing.T) {
	matchID := uuid.New()
	next := activeUser()
	next.ID = uuid.New()
	backend := &fakeBackend{user: activeUser(), best: next}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en", MatchID: &matchID})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionLike), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.reactions) != 1 {
		t.Fatalf("reactions = %d, want 1", len(backend.reactions))
	}
	got := backend.reactions[0]
	if got.ToUserID != matchID || got.ReactionType != enums.ReactionLike {
		t.Fatalf("reaction = %+v", got)
	}
	// The next candidate card follows immediately.
	data := dataOf(t, store)
	if data.MatchID == nil || *data.MatchID != next.ID {
		t.Fatalf("match id = %v, want %v", data.MatchID, next.ID)
	}
}

func TestLikeOnInactiveUser(t *testing.T) {
	matchID := uuid.New()
	backend := &fakeBackend{
		user:     activeUser(),
		reactErr: &api.Error{Status: 403, Method: "PUT", Path: "/v1/reactions", Body: `{"detail":"Inactive user"}`},
	}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en", MatchID: &matchID})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionLike), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgUserNotFound)
}

func TestMutualLikeAnnouncesMatch(t *testing.T) {
	matchID := uuid.New()
	backend := &fakeBackend{user: activeUser(), isMatch: true}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en", MatchID: &matchID})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionLike), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgMutualLike)
	var chat *InlineButton
	for _, m := range r.messages {
		if m.Keyboard == nil || len(m.Keyboard.Inline) == 0 {
			continue
		}
		chat = &m.Keyboard.Inline[0][0]
	}
	if chat == nil {
		t.Fatal("no inline chat button sent")
	}
	want := "https://app.example.com/users/" + matchID.String() + "/chat"
	if chat.WebApp != want {
		t.Fatalf("web app url = %q, want %q", chat.WebApp, want)
	}
}

func TestLikesViewShowsNextAdmirer(t *testing.T) {
	admirer := activeUser()
	admirer.ID = uuid.New()
	backend := &fakeBackend{user: activeUser(), likes: []schemas.User{*admirer}}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionLikes), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgLikes)
	if got := stateOf(t, store); got != session.StateLikes {
		t.Fatalf("state = %q, want %q", got, session.StateLikes)
	}
	data := dataOf(t, store)
	if data.MatchID == nil || *data.MatchID != admirer.ID {
		t.Fatalf("match id = %v, want %v", data.MatchID, admirer.ID)
	}
}

func TestMatchesPaging(t *testing.T) {
	first := *activeUser()
	first.ID = uuid.New()
	second := *activeUser()
	second.ID = uuid.New()
	backend := &fakeBackend{user: activeUser(), matches: []schemas.User{first, second}}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionMatches), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgMatches)
	data := dataOf(t, store)
	if data.MatchID == nil || *data.MatchID != first.ID {
		t.Fatalf("page 0 shows %v, want %v", data.MatchID, first.ID)
	}

	// The back arrow pages into older matches.
	r = &fakeResponder{}
	if err := e.Handle(context.Background(), actionEvent(i18n.ActionPrevPage), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	data = dataOf(t, store)
	if data.MatchPage != 1 {
		t.Fatalf("page = %d, want 1", data.MatchPage)
	}
	if data.MatchID == nil || *data.MatchID != second.ID {
		t.Fatalf("page 1 shows %v, want %v", data.MatchID, second.ID)
	}
}

func TestMatchesEmptyFallsBackToMenu(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateMenu, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionMatches), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgNoMatches)
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestReportFlow(t *testing.T) {
	matchID := uuid.New()
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en", MatchID: &matchID})
	ctx := context.Background()

	r := &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionReport), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgReportReason)
	if got := stateOf(t, store); got != session.StateReportReason {
		t.Fatalf("state = %q, want %q", got, session.StateReportReason)
	}

	r = &fakeResponder{}
	if err := e.Handle(ctx, textEvent("  spam profile  "), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgReported)
	if len(backend.reports) != 1 {
		t.Fatalf("reports = %d, want 1", len(backend.reports))
	}
	rep := backend.reports[0]
	if rep.ToUserID != matchID || rep.Reason != "spam profile" {
		t.Fatalf("report = %+v", rep)
	}
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestDeactivateAndReactivate(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateDeactivateConfirm, session.Data{Locale: "en"})
	ctx := context.Background()

	r := &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionYes), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := stateOf(t, store); got != session.StateDeactivated {
		t.Fatalf("state = %q, want %q", got, session.StateDeactivated)
	}
	if len(backend.updates) != 1 || backend.updates[0].Active == nil || *backend.updates[0].Active {
		t.Fatalf("updates = %+v, want is_active=false", backend.updates)
	}

	r = &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionActivate), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgActivated)
	if got := stateOf(t, store); got != session.StateMenu {
		t.Fatalf("state = %q, want %q", got, session.StateMenu)
	}
}

func TestDeleteAccountFlow(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateDeleteConfirm, session.Data{Locale: "en"})
	ctx := context.Background()

	r := &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionYes), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !backend.deleted {
		t.Fatal("DeleteMe not called")
	}
	r.contains(t, i18n.MsgDeleted)
	if got := stateOf(t, store); got != session.StateDeleted {
		t.Fatalf("state = %q, want %q", got, session.StateDeleted)
	}

	// Only the restart button leaves the deleted state.
	backend.user = nil
	r = &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionMenu), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := stateOf(t, store); got != session.StateDeleted {
		t.Fatalf("menu button moved deleted user to %q", got)
	}

	r = &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionStartRegistration), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if got := stateOf(t, store); got != session.StateRegLanguage {
		t.Fatalf("state = %q, want %q", got, session.StateRegLanguage)
	}
}

func TestLanguageChange(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateLanguage, session.Data{Locale: "en"})
	r := &fakeResponder{}

	ev := textEvent(i18n.Label("en", i18n.ActionLangRu))
	if err := e.Handle(context.Background(), ev, r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.updates) != 1 || backend.updates[0].UILanguage == nil {
		t.Fatalf("updates = %+v, want ui_language", backend.updates)
	}
	if got := *backend.updates[0].UILanguage; got != enums.LanguageRu {
		t.Fatalf("ui_language = %q, want ru", got)
	}
	if got := dataOf(t, store).Locale; got != "ru" {
		t.Fatalf("locale = %q, want ru", got)
	}
	// Settings re-render in the new language.
	r.contains(t, i18n.T("ru", i18n.MsgSettings))
}

func TestProfileEditName(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateProfile, session.Data{Locale: "en"})
	ctx := context.Background()

	r := &fakeResponder{}
	if err := e.Handle(ctx, actionEvent(i18n.ActionEditName), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgEnterName)

	r = &fakeResponder{}
	if err := e.Handle(ctx, textEvent("Nilufar"), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.updates) != 1 || backend.updates[0].Name == nil || *backend.updates[0].Name != "Nilufar" {
		t.Fatalf("updates = %+v", backend.updates)
	}
	r.contains(t, i18n.MsgProfileUpdated)
	// The refreshed profile card and edit keyboard follow the confirmation.
	if len(r.albums) != 1 {
		t.Fatalf("albums = %d, want 1", len(r.albums))
	}
	if got := stateOf(t, store); got != session.StateProfile {
		t.Fatalf("state = %q, want %q", got, session.StateProfile)
	}
}

func TestProfileClearBio(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateProfileBio, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionClear), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.updates) != 1 || !backend.updates[0].ClearBio {
		t.Fatalf("updates = %+v, want ClearBio", backend.updates)
	}
}

func TestProfileMediaReplaceTooLarge(t *testing.T) {
	backend := &fakeBackend{
		user:       activeUser(),
		replaceErr: &api.Error{Status: 413, Method: "PUT", Path: "/v1/media"},
	}
	e, store := testEngine(t, backend)
	media := []schemas.FileIn{{TelegramID: "f1", FileType: enums.FileTypeImage}}
	seedState(t, store, session.StateProfileMedia, session.Data{Locale: "en", Media: media})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionContinue), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgMediaTooLarge)
}

func TestProfileMediaContinueWithoutUploads(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateProfileMedia, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionContinue), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	r.contains(t, i18n.MsgUploadAtLeastOne)
	if backend.replaced != nil {
		t.Fatalf("ReplaceMedia called with %+v", backend.replaced)
	}
}

// gatedResponder parks its first send until the gate opens, keeping that
// update suspended between its media append and the engine's final save.
type gatedResponder struct {
	fakeResponder
	entered chan struct{}
	gate    chan struct{}
	once    sync.Once
}

func (r *gatedResponder) Send(ctx context.Context, msg Message) error {
	r.once.Do(func() {
		close(r.entered)
		<-r.gate
	})
	return r.fakeResponder.Send(ctx, msg)
}

func TestConcurrentUploadsKeepEveryFile(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegMedia, session.Data{Locale: "en", Name: "Dana"})

	first := &gatedResponder{entered: make(chan struct{}), gate: make(chan struct{})}
	done := make(chan error, 1)
	go func() {
		ev := Event{UserID: testUserID, Photo: &schemas.FileIn{TelegramID: "f1", FileType: enums.FileTypeImage}}
		done <- e.Handle(context.Background(), ev, first)
	}()
	<-first.entered

	second := &fakeResponder{}
	ev := Event{UserID: testUserID, Photo: &schemas.FileIn{TelegramID: "f2", FileType: enums.FileTypeImage}}
	if err := e.Handle(context.Background(), ev, second); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	close(first.gate)
	if err := <-done; err != nil {
		t.Fatalf("Handle: %v", err)
	}

	media := dataOf(t, store).Media
	if len(media) != 2 {
		t.Fatalf("media entries = %d, want 2: %+v", len(media), media)
	}
}

func TestPreferencesAgeUpdate(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StatePreferencesAge, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), textEvent("25-35"), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.prefsUpdates) != 1 {
		t.Fatalf("prefs updates = %d, want 1", len(backend.prefsUpdates))
	}
	upd := backend.prefsUpdates[0]
	if upd.MinAge == nil || *upd.MinAge != 25 || upd.MaxAge == nil || *upd.MaxAge != 35 {
		t.Fatalf("prefs update = %+v", upd)
	}
	r.contains(t, i18n.MsgPreferencesUpdated)
	if got := stateOf(t, store); got != session.StatePreferences {
		t.Fatalf("state = %q, want %q", got, session.StatePreferences)
	}
}

func TestPreferencesClearAges(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StatePreferencesAge, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), actionEvent(i18n.ActionClear), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(backend.prefsUpdates) != 1 || !backend.prefsUpdates[0].ClearAges {
		t.Fatalf("prefs updates = %+v, want ClearAges", backend.prefsUpdates)
	}
}

func TestValidationErrorsLocalized(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegAgePreferences, session.Data{Locale: "ru"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), textEvent("again"), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := i18n.T("ru", "Please enter a valid age range")
	if want == "Please enter a valid age range" {
		t.Fatal("russian catalog is missing the age range message")
	}
	r.contains(t, want)
}

func TestLocationPromptPlaceholderLocalized(t *testing.T) {
	backend := &fakeBackend{}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateRegAgePreferences, session.Data{Locale: "ru"})
	r := &fakeResponder{}

	if err := e.Handle(context.Background(), textEvent(i18n.Label("ru", i18n.ActionSkip)), r); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	want := i18n.T("ru", i18n.MsgCityPlaceholder)
	if want == i18n.MsgCityPlaceholder {
		t.Fatal("russian catalog is missing the city placeholder")
	}
	last := r.messages[len(r.messages)-1]
	if last.Keyboard == nil || last.Keyboard.Placeholder != want {
		t.Fatalf("placeholder = %+v, want %q", last.Keyboard, want)
	}
}

func TestHelpKeepsState(t *testing.T) {
	backend := &fakeBackend{user: activeUser()}
	e, store := testEngine(t, backend)
	seedState(t, store, session.StateSearch, session.Data{Locale: "en"})
	r := &fakeResponder{}

	if err := e.Help(context.Background(), Event{UserID: testUserID}, r); err != nil {
		t.Fatalf("Help: %v", err)
	}
	if len(r.messages) != 1 || !r.messages[0].HTML {
		t.Fatalf("messages = %+v, want one HTML message", r.messages)
	}
	if !strings.Contains(r.messages[0].Text, "soulmate") {
		t.Fatalf("help text = %q", r.messages[0].Text)
	}
	if got := stateOf(t, store); got != session.StateSearch {
		t.Fatalf("state = %q, want unchanged search", got)
	}
}

package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/api"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
	"github.com/m3rciful/anorbot/bot/validators"
)

func languageFor(a i18n.Action) (enums.UILanguage, bool) {
	switch a {
	case i18n.ActionLangUz:
		return enums.LanguageUz, true
	case i18n.ActionLangRu:
		return enums.LanguageRu, true
	case i18n.ActionLangEn:
		return enums.LanguageEn, true
	}
	return "", false
}

func genderFor(a i18n.Action) (enums.Gender, bool) {
	switch a {
	case i18n.ActionGenderMale:
		return enums.GenderMale, true
	case i18n.ActionGenderFemale:
		return enums.GenderFemale, true
	}
	return "", false
}

func preferredGenderFor(a i18n.Action) (enums.PreferredGender, bool) {
	switch a {
	case i18n.ActionPreferWomen:
		return enums.PreferredFemale, true
	case i18n.ActionPreferMen:
		return enums.PreferredMale, true
	}
	return "", false
}

// start routes a user by account status: banned, registered and active,
// deactivated, or brand new.
func (c *conv) start(ctx context.Context) error {
	c.sess.Reset()

	banned, err := c.e.api.IsBanned(ctx, c.userID)
	if err != nil {
		return err
	}
	if banned {
		return c.send(ctx, c.t(i18n.MsgBanned), kbRemove())
	}

	user, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		if api.IsStatus(err, 404) {
			return c.askLanguage(ctx)
		}
		return err
	}

	c.sess.Data.Locale = string(user.UILanguage)
	if user.Active {
		return c.showMenu(ctx)
	}
	return c.showActivate(ctx)
}

func (c *conv) askLanguage(ctx context.Context) error {
	c.setState(session.StateRegLanguage)
	return c.send(ctx, c.t(i18n.MsgSelectLanguage), c.kbLanguages())
}

func (c *conv) regLanguage(ctx context.Context, action i18n.Action) error {
	lang, ok := languageFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectLanguageRetry), c.kbLanguages())
	}
	c.sess.Data.Locale = string(lang)
	return c.askName(ctx)
}

func (c *conv) askName(ctx context.Context) error {
	c.setState(session.StateRegName)
	return c.send(ctx, c.t(i18n.MsgAskName), kbRemove())
}

func (c *conv) regName(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if err := validators.Name(text); err != nil {
		return c.sendValidation(ctx, err)
	}
	c.sess.Data.Name = text
	return c.askBirthDate(ctx)
}

func (c *conv) askBirthDate(ctx context.Context) error {
	c.setState(session.StateRegBirthDate)
	return c.sendHTML(ctx, c.t(i18n.MsgAskBirthDate), nil)
}

func (c *conv) regBirthDate(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if _, err := validators.BirthDate(text); err != nil {
		return c.sendValidation(ctx, err)
	}
	// The raw input is kept and reparsed at finalize.
	c.sess.Data.BirthDate = text
	return c.askGender(ctx)
}

func (c *conv) askGender(ctx context.Context) error {
	c.setState(session.StateRegGender)
	return c.send(ctx, c.t(i18n.MsgAskGender), c.kbGenders())
}

func (c *conv) regGender(ctx context.Context, action i18n.Action) error {
	gender, ok := genderFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectOption), nil)
	}
	c.sess.Data.Gender = gender
	return c.askBio(ctx)
}

func (c *conv) askBio(ctx context.Context) error {
	c.setState(session.StateRegBio)
	return c.send(ctx, c.t(i18n.MsgAskBio), c.kbSkip())
}

func (c *conv) regBio(ctx context.Context, text string, action i18n.Action) error {
	if action == i18n.ActionSkip {
		c.sess.Data.Bio = nil
		return c.askPreferredGender(ctx)
	}
	if text == "" {
		return nil
	}
	if err := validators.Bio(text); err != nil {
		return c.sendValidation(ctx, err)
	}
	c.sess.Data.Bio = &text
	return c.askPreferredGender(ctx)
}

func (c *conv) askPreferredGender(ctx context.Context) error {
	c.setState(session.StateRegPreferredGender)
	return c.send(ctx, c.t(i18n.MsgAskPreferredSex), c.kbPreferredGenders())
}

func (c *conv) regPreferredGender(ctx context.Context, action i18n.Action) error {
	preferred, ok := preferredGenderFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectOption), c.kbPreferredGenders())
	}
	c.sess.Data.PreferredGender = preferred
	return c.askAgePreferences(ctx)
}

func (c *conv) askAgePreferences(ctx context.Context) error {
	c.setState(session.StateRegAgePreferences)
	return c.send(ctx, c.t(i18n.MsgAskAgeRange), c.kbSkip())
}

func (c *conv) regAgePreferences(ctx context.Context, text string, action i18n.Action) error {
	if action == i18n.ActionSkip {
		c.sess.Data.MinAge = nil
		c.sess.Data.MaxAge = nil
		return c.askLocation(ctx, session.StateRegLocation)
	}
	minAge, maxAge, err := validators.AgeRange(text)
	if err != nil {
		return c.sendValidation(ctx, err)
	}
	c.sess.Data.MinAge = &minAge
	c.sess.Data.MaxAge = &maxAge
	return c.askLocation(ctx, session.StateRegLocation)
}

func (c *conv) askLocation(ctx context.Context, state session.State) error {
	c.setState(state)
	return c.send(ctx, c.t(i18n.MsgAskLocation), c.kbLocation())
}

func (c *conv) regLocation(ctx context.Context, ev Event) error {
	if ev.Location != nil {
		lat, lon := ev.Location.Latitude, ev.Location.Longitude
		c.sess.Data.Latitude = &lat
		c.sess.Data.Longitude = &lon
		c.sess.Data.LocationPrecise = true
		// A failed reverse geocode only costs the city name on the card.
		if place, err := c.e.api.PlaceByCoordinates(ctx, lat, lon, c.locale()); err == nil {
			c.sess.Data.PlaceID = &place.PlaceID
		}
		return c.askMedia(ctx, session.StateRegMedia)
	}
	if ev.Text == "" {
		return c.send(ctx, c.t(i18n.MsgAskLocationExact), c.kbLocation())
	}
	return c.searchCity(ctx, ev.Text)
}

func (c *conv) searchCity(ctx context.Context, query string) error {
	places, err := c.e.api.SearchPlaces(ctx, query, c.locale())
	if err != nil {
		if api.IsStatus(err, 404) {
			return c.send(ctx, c.t(i18n.MsgNoCitiesFound), nil)
		}
		return c.send(ctx, c.t(i18n.MsgCitySearchError), nil)
	}
	if len(places) == 0 {
		return c.send(ctx, c.t(i18n.MsgCityNotFound), nil)
	}
	options := make([]placeOption, 0, len(places))
	for _, p := range places {
		options = append(options, placeOption{Name: p.Name, ID: p.PlaceID})
	}
	return c.send(ctx, c.t(i18n.MsgSelectCity), placesInline(options))
}

func (c *conv) regPlaceSelected(ctx context.Context, placeID string) error {
	place, err := c.e.api.PlaceDetails(ctx, placeID, c.locale())
	if err != nil {
		return c.send(ctx, c.t(i18n.MsgPlaceError), nil)
	}
	c.sess.Data.PlaceID = &place.PlaceID
	c.sess.Data.Latitude = &place.Latitude
	c.sess.Data.Longitude = &place.Longitude
	c.sess.Data.LocationPrecise = false

	if err := c.r.DeleteInline(ctx); err != nil {
		return err
	}
	return c.askMedia(ctx, session.StateRegMedia)
}

func (c *conv) askMedia(ctx context.Context, state session.State) error {
	c.setState(state)
	c.sess.Data.Media = nil
	text := c.t(i18n.MsgAskMedia, validators.MediaMinCount, validators.MediaMaxCount)
	return c.send(ctx, text, kbRemove())
}

// mediaFrom extracts an uploaded file from the event. Videos are checked for
// duration before they enter the session.
func mediaFrom(ev Event) (*schemas.FileIn, error) {
	switch {
	case ev.Photo != nil:
		return ev.Photo, nil
	case ev.Video != nil:
		if err := validators.VideoDuration(ev.Video.Duration); err != nil {
			return nil, err
		}
		return ev.Video, nil
	}
	return nil, nil
}

// appendMediaLocked reloads the session under the user's upload lock,
// appends the file and persists, so album uploads arriving in parallel all
// land.
func (c *conv) appendMediaLocked(ctx context.Context, file schemas.FileIn) error {
	release := c.e.locks.Acquire(c.userID)
	defer release()

	fresh, err := c.e.store.Get(ctx, c.userID)
	if err != nil {
		return err
	}
	fresh.Data.Media = append(fresh.Data.Media, file)
	if err := c.e.store.Save(ctx, c.userID, fresh); err != nil {
		return err
	}
	*c.sess = *fresh
	c.flushed = true
	return nil
}

func (c *conv) regMedia(ctx context.Context, ev Event, action i18n.Action) error {
	if action == i18n.ActionContinue {
		if err := validators.MediaCount(len(c.sess.Data.Media)); err != nil {
			return c.sendValidation(ctx, err)
		}
		return c.finalizeRegistration(ctx)
	}

	file, err := mediaFrom(ev)
	if err != nil {
		return c.sendValidation(ctx, err)
	}
	if file == nil {
		return nil
	}
	if err := c.appendMediaLocked(ctx, *file); err != nil {
		return err
	}

	count := len(c.sess.Data.Media)
	if count > validators.MediaMaxCount {
		if err := c.sendValidation(ctx, validators.MediaCount(count)); err != nil {
			return err
		}
		return c.finalizeRegistration(ctx)
	}
	if count == validators.MediaMaxCount {
		if err := c.send(ctx, c.t(i18n.MsgFileUploaded), nil); err != nil {
			return err
		}
		return c.finalizeRegistration(ctx)
	}
	return c.send(ctx, c.t(i18n.MsgFileUploadedMore), c.kbContinue())
}

func (c *conv) finalizeRegistration(ctx context.Context) error {
	data := c.sess.Data

	birthDate, err := validators.BirthDate(data.BirthDate)
	if err != nil {
		return c.send(ctx, c.t(i18n.MsgInvalidBirthDate), nil)
	}

	var lat, lon float64
	if data.Latitude != nil {
		lat = *data.Latitude
	}
	if data.Longitude != nil {
		lon = *data.Longitude
	}

	user, err := c.e.api.Register(ctx, schemas.UserIn{
		TelegramID:      c.userID,
		Name:            data.Name,
		BirthDate:       birthDate,
		Bio:             data.Bio,
		Gender:          data.Gender,
		Latitude:        lat,
		Longitude:       lon,
		UILanguage:      enums.UILanguage(c.locale()),
		LocationPrecise: data.LocationPrecise,
		PlaceID:         data.PlaceID,
	})
	if err != nil {
		return c.registrationFailed(ctx, err)
	}

	files, err := c.e.api.BatchAddMedia(ctx, c.userID, data.Media)
	if err != nil {
		return c.registrationFailed(ctx, err)
	}

	_, err = c.e.api.CreatePreferences(ctx, c.userID, user.ID, schemas.PreferencesIn{
		MinAge:          data.MinAge,
		MaxAge:          data.MaxAge,
		PreferredGender: data.PreferredGender,
	})
	if err != nil {
		return c.registrationFailed(ctx, err)
	}

	if err := c.send(ctx, c.t(i18n.MsgRegistrationDone), c.kbMenu()); err != nil {
		return err
	}
	if err := c.r.SendAlbum(ctx, c.profileCard(ctx, user, files, nil)); err != nil {
		return err
	}
	return c.showMenu(ctx)
}

func (c *conv) registrationFailed(ctx context.Context, cause error) error {
	if err := c.send(ctx, c.t(i18n.MsgRegistrationError), nil); err != nil {
		return err
	}
	return cause
}

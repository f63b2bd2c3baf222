package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/api"
	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
	"github.com/m3rciful/anorbot/bot/validators"
)

// showProfile sends the user their own card and the edit keyboard.
func (c *conv) showProfile(ctx context.Context) error {
	user, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		if api.IsStatus(err, 404) {
			return c.send(ctx, c.t(i18n.MsgProfileNotFound), nil)
		}
		return c.send(ctx, c.t(i18n.MsgProfileLoadError), nil)
	}
	media, err := c.e.api.Media(ctx, user.ID)
	if err != nil {
		return c.send(ctx, c.t(i18n.MsgProfileLoadError), nil)
	}

	if err := c.r.SendAlbum(ctx, c.profileCard(ctx, user, media, nil)); err != nil {
		return err
	}
	c.sess.ClearData()
	c.setState(session.StateProfile)
	return c.send(ctx, c.t(i18n.MsgProfilePrompt), c.kbProfile())
}

func (c *conv) profileSelect(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionBack:
		return c.showSettings(ctx)
	case i18n.ActionEditName:
		c.setState(session.StateProfileName)
		return c.send(ctx, c.t(i18n.MsgEnterName), kbRemove())
	case i18n.ActionEditBirthDate:
		c.setState(session.StateProfileBirthDate)
		return c.sendHTML(ctx, c.t(i18n.MsgAskBirthDate), kbRemove())
	case i18n.ActionEditGender:
		c.setState(session.StateProfileGender)
		return c.send(ctx, c.t(i18n.MsgSelectGender), c.kbGenders())
	case i18n.ActionEditBio:
		c.setState(session.StateProfileBio)
		return c.send(ctx, c.t(i18n.MsgAskBioUpdate), c.kbClear())
	case i18n.ActionEditLocation:
		return c.askLocation(ctx, session.StateProfileLocation)
	case i18n.ActionEditMedia:
		return c.askMedia(ctx, session.StateProfileMedia)
	}
	return nil
}

// applyUpdate pushes one profile change and returns to the profile view.
func (c *conv) applyUpdate(ctx context.Context, upd schemas.UserUpdate) error {
	if _, err := c.e.api.UpdateMe(ctx, c.userID, upd); err != nil {
		return err
	}
	if err := c.send(ctx, c.t(i18n.MsgProfileUpdated), nil); err != nil {
		return err
	}
	return c.showProfile(ctx)
}

func (c *conv) profileName(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	if err := validators.Name(text); err != nil {
		return c.sendValidation(ctx, err)
	}
	return c.applyUpdate(ctx, schemas.UserUpdate{Name: &text})
}

func (c *conv) profileBirthDate(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}
	birthDate, err := validators.BirthDate(text)
	if err != nil {
		return c.sendValidation(ctx, err)
	}
	return c.applyUpdate(ctx, schemas.UserUpdate{BirthDate: &birthDate})
}

func (c *conv) profileGender(ctx context.Context, action i18n.Action) error {
	gender, ok := genderFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectOption), nil)
	}
	return c.applyUpdate(ctx, schemas.UserUpdate{Gender: &gender})
}

func (c *conv) profileBio(ctx context.Context, text string, action i18n.Action) error {
	if action == i18n.ActionClear {
		return c.applyUpdate(ctx, schemas.UserUpdate{ClearBio: true})
	}
	if text == "" {
		return nil
	}
	if err := validators.Bio(text); err != nil {
		return c.sendValidation(ctx, err)
	}
	return c.applyUpdate(ctx, schemas.UserUpdate{Bio: &text})
}

func (c *conv) profileLocation(ctx context.Context, ev Event) error {
	if ev.Location != nil {
		lat, lon := ev.Location.Latitude, ev.Location.Longitude
		precise := true
		upd := schemas.UserUpdate{
			Latitude:        &lat,
			Longitude:       &lon,
			LocationPrecise: &precise,
		}
		if place, err := c.e.api.PlaceByCoordinates(ctx, lat, lon, c.locale()); err == nil {
			upd.PlaceID = &place.PlaceID
		}
		return c.applyUpdate(ctx, upd)
	}
	if ev.Text == "" {
		return c.send(ctx, c.t(i18n.MsgAskLocationExact), c.kbLocation())
	}
	return c.searchCity(ctx, ev.Text)
}

func (c *conv) profilePlaceSelected(ctx context.Context, placeID string) error {
	place, err := c.e.api.PlaceDetails(ctx, placeID, c.locale())
	if err != nil {
		if api.IsStatus(err, 404) {
			return c.send(ctx, c.t(i18n.MsgLocationNotFound), nil)
		}
		return c.send(ctx, c.t(i18n.MsgLocationError), nil)
	}

	if err := c.r.DeleteInline(ctx); err != nil {
		return err
	}
	precise := false
	return c.applyUpdate(ctx, schemas.UserUpdate{
		Latitude:        &place.Latitude,
		Longitude:       &place.Longitude,
		PlaceID:         &place.PlaceID,
		LocationPrecise: &precise,
	})
}

func (c *conv) profileMedia(ctx context.Context, ev Event, action i18n.Action) error {
	if action == i18n.ActionContinue {
		if len(c.sess.Data.Media) == 0 {
			return c.send(ctx, c.t(i18n.MsgUploadAtLeastOne), nil)
		}
		return c.finishMediaUpdate(ctx)
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
		return c.finishMediaUpdate(ctx)
	}
	if count == validators.MediaMaxCount {
		if err := c.send(ctx, c.t(i18n.MsgFileUploaded), nil); err != nil {
			return err
		}
		return c.finishMediaUpdate(ctx)
	}
	return c.send(ctx, c.t(i18n.MsgFileUploadedMore), c.kbContinue())
}

func (c *conv) finishMediaUpdate(ctx context.Context) error {
	_, err := c.e.api.ReplaceMedia(ctx, c.userID, c.sess.Data.Media)
	if err != nil {
		switch {
		case api.IsStatus(err, 400):
			return c.send(ctx, c.t(i18n.MsgMediaInvalid), nil)
		case api.IsStatus(err, 413):
			return c.send(ctx, c.t(i18n.MsgMediaTooLarge), nil)
		default:
			return c.send(ctx, c.t(i18n.MsgMediaUpdateError), nil)
		}
	}
	if err := c.send(ctx, c.t(i18n.MsgProfileUpdated), nil); err != nil {
		return err
	}
	return c.showProfile(ctx)
}

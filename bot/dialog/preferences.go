package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
	"github.com/m3rciful/anorbot/bot/validators"
)

// showPreferences enters the search settings screen. The keyboard is sent
// only on first entry; follow-up updates confirm without repeating it.
func (c *conv) showPreferences(ctx context.Context, withKeyboard bool) error {
	if withKeyboard {
		if err := c.send(ctx, c.t(i18n.MsgSearchSettings), c.kbPreferences()); err != nil {
			return err
		}
	}
	c.sess.ClearData()
	c.setState(session.StatePreferences)
	return nil
}

func (c *conv) preferencesSelect(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionBack:
		return c.showSettings(ctx)
	case i18n.ActionGenderPrefs:
		c.setState(session.StatePreferencesGender)
		return c.send(ctx, c.t(i18n.MsgAskPreferredSex), c.kbPreferredGenders())
	case i18n.ActionAgePrefs:
		c.setState(session.StatePreferencesAge)
		return c.send(ctx, c.t(i18n.MsgAskAgeRange), c.kbClear())
	}
	return nil
}

func (c *conv) applyPreferences(ctx context.Context, upd schemas.PreferencesUpdate) error {
	if _, err := c.e.api.UpdatePreferences(ctx, c.userID, upd); err != nil {
		return err
	}
	if err := c.send(ctx, c.t(i18n.MsgPreferencesUpdated), c.kbPreferences()); err != nil {
		return err
	}
	return c.showPreferences(ctx, false)
}

func (c *conv) preferencesGender(ctx context.Context, action i18n.Action) error {
	gender, ok := preferredGenderFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectOption), nil)
	}
	return c.applyPreferences(ctx, schemas.PreferencesUpdate{PreferredGender: &gender})
}

func (c *conv) preferencesAge(ctx context.Context, text string, action i18n.Action) error {
	if action == i18n.ActionClear {
		return c.applyPreferences(ctx, schemas.PreferencesUpdate{ClearAges: true})
	}
	if text == "" {
		return nil
	}
	minAge, maxAge, err := validators.AgeRange(text)
	if err != nil {
		return c.sendValidation(ctx, err)
	}
	return c.applyPreferences(ctx, schemas.PreferencesUpdate{MinAge: &minAge, MaxAge: &maxAge})
}

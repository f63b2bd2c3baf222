package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
	"github.com/m3rciful/anorbot/bot/validators"
)

func (c *conv) showMenu(ctx context.Context) error {
	c.sess.ClearData()
	c.setState(session.StateMenu)
	return c.send(ctx, c.t(i18n.MsgMenu), c.kbMenu())
}

func (c *conv) menuSelect(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionWatchProfiles:
		return c.startSearch(ctx)
	case i18n.ActionLikes:
		return c.showLikesWithKeyboard(ctx)
	case i18n.ActionMatches:
		return c.showMatches(ctx, 0)
	case i18n.ActionSettings:
		return c.showSettings(ctx)
	}
	return nil
}

func (c *conv) showSettings(ctx context.Context) error {
	c.sess.ClearData()
	c.setState(session.StateSettings)
	return c.send(ctx, c.t(i18n.MsgSettings), c.kbSettings())
}

func (c *conv) settingsSelect(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionMyProfile:
		return c.showProfile(ctx)
	case i18n.ActionSearchSettings:
		return c.showPreferences(ctx, true)
	case i18n.ActionLanguage:
		c.setState(session.StateLanguage)
		return c.send(ctx, c.t(i18n.MsgChooseLanguage), c.kbLanguages())
	case i18n.ActionDeactivate:
		c.setState(session.StateDeactivateConfirm)
		return c.send(ctx, c.t(i18n.MsgDeactivateAsk), c.kbYesNo())
	case i18n.ActionDeleteAccount:
		c.setState(session.StateDeleteConfirm)
		return c.send(ctx, c.t(i18n.MsgDeleteAsk), c.kbYesNo())
	}
	return nil
}

func (c *conv) changeLanguage(ctx context.Context, action i18n.Action) error {
	lang, ok := languageFor(action)
	if !ok {
		return c.send(ctx, c.t(i18n.MsgSelectLanguageRetry), c.kbLanguages())
	}
	c.sess.Data.Locale = string(lang)
	if _, err := c.e.api.UpdateMe(ctx, c.userID, schemas.UserUpdate{UILanguage: &lang}); err != nil {
		return err
	}
	return c.showSettings(ctx)
}

func (c *conv) deactivateConfirm(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionYes:
		inactive := false
		if _, err := c.e.api.UpdateMe(ctx, c.userID, schemas.UserUpdate{Active: &inactive}); err != nil {
			return err
		}
		return c.showActivate(ctx)
	case i18n.ActionNo:
		return c.showSettings(ctx)
	}
	return nil
}

func (c *conv) showActivate(ctx context.Context) error {
	c.setState(session.StateDeactivated)
	return c.send(ctx, c.t(i18n.MsgDeactivated), c.kbActivate())
}

func (c *conv) deactivatedSelect(ctx context.Context, action i18n.Action) error {
	if action != i18n.ActionActivate {
		return nil
	}
	active := true
	if _, err := c.e.api.UpdateMe(ctx, c.userID, schemas.UserUpdate{Active: &active}); err != nil {
		return err
	}
	if err := c.send(ctx, c.t(i18n.MsgActivated), nil); err != nil {
		return err
	}
	return c.showMenu(ctx)
}

func (c *conv) deleteConfirm(ctx context.Context, action i18n.Action) error {
	switch action {
	case i18n.ActionYes:
		if err := c.e.api.DeleteMe(ctx, c.userID); err != nil {
			return err
		}
		c.setState(session.StateDeleted)
		return c.send(ctx, c.t(i18n.MsgDeleted), c.kbStartRegistration())
	case i18n.ActionNo:
		return c.showSettings(ctx)
	}
	return nil
}

func (c *conv) deletedSelect(ctx context.Context, action i18n.Action) error {
	if action != i18n.ActionStartRegistration {
		return nil
	}
	return c.start(ctx)
}

// startReport asks for a reason; the reported user is the one currently on
// screen.
func (c *conv) startReport(ctx context.Context) error {
	if c.sess.Data.MatchID == nil {
		return nil
	}
	c.setState(session.StateReportReason)
	return c.send(ctx, c.t(i18n.MsgReportReason), kbRemove())
}

func (c *conv) reportReason(ctx context.Context, text string) error {
	if c.sess.Data.MatchID == nil {
		return c.showMenu(ctx)
	}
	reason, err := validators.MessageText(text)
	if err != nil {
		return c.sendValidation(ctx, err)
	}
	_, err = c.e.api.CreateReport(ctx, c.userID, schemas.ReportIn{
		Reason:   reason,
		ToUserID: *c.sess.Data.MatchID,
	})
	if err != nil {
		return err
	}
	if err := c.send(ctx, c.t(i18n.MsgReported), nil); err != nil {
		return err
	}
	return c.showMenu(ctx)
}

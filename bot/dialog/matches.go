package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/session"
)

// showMatches presents one mutual match per page. Page 0 is the newest
// match; the back arrow goes deeper into history.
func (c *conv) showMatches(ctx context.Context, page int) error {
	if page < 0 {
		page = 0
	}

	viewer, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		if sendErr := c.send(ctx, c.t(i18n.MsgMatchesFetchError), nil); sendErr != nil {
			return sendErr
		}
		return c.showMenu(ctx)
	}

	// Fetching one extra row tells whether an older page exists.
	matches, err := c.e.api.Matches(ctx, c.userID, 2, page)
	if err != nil {
		if sendErr := c.send(ctx, c.t(i18n.MsgMatchesFetchError), nil); sendErr != nil {
			return sendErr
		}
		return c.showMenu(ctx)
	}
	if len(matches) == 0 {
		if err := c.send(ctx, c.t(i18n.MsgNoMatches), nil); err != nil {
			return err
		}
		return c.showMenu(ctx)
	}

	hasPrev := len(matches) == 2
	hasNext := page > 0

	match := matches[0]
	c.sess.Data.MatchID = &match.ID
	c.sess.Data.MatchPage = page
	c.setState(session.StateMatches)

	if err := c.sendCard(ctx, &match, viewer); err != nil {
		return err
	}
	if err := c.send(ctx, c.t(i18n.MsgMutualLike), &Keyboard{
		Inline: [][]InlineButton{{
			{Text: c.t(i18n.MsgStartChat), WebApp: c.chatURL(match.ID)},
		}},
	}); err != nil {
		return err
	}
	return c.send(ctx, c.t(i18n.MsgMatches), c.kbMatches(hasPrev, hasNext))
}

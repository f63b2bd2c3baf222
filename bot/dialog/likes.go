package dialog

import (
	"context"

	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/session"
)

func (c *conv) showLikesWithKeyboard(ctx context.Context) error {
	if err := c.send(ctx, c.t(i18n.MsgLikes), c.kbSearch()); err != nil {
		return err
	}
	return c.showLikes(ctx)
}

// showLikes presents the next user who liked the caller.
func (c *conv) showLikes(ctx context.Context) error {
	c.sess.Data.MatchID = nil
	c.sess.Data.RewindIndex = 0

	viewer, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		return err
	}
	likes, err := c.e.api.Likes(ctx, c.userID, 1)
	if err != nil {
		return err
	}
	if len(likes) == 0 {
		if err := c.send(ctx, c.t(i18n.MsgNoLikes), nil); err != nil {
			return err
		}
		return c.showMenu(ctx)
	}

	match := likes[0]
	c.sess.Data.MatchID = &match.ID
	c.setState(session.StateLikes)
	return c.sendCard(ctx, &match, viewer)
}

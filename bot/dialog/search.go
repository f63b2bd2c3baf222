package dialog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/api"
	"github.com/m3rciful/anorbot/bot/enums"
	"github.com/m3rciful/anorbot/bot/i18n"
	"github.com/m3rciful/anorbot/bot/schemas"
	"github.com/m3rciful/anorbot/bot/session"
)

// browseSelect routes the shared browsing buttons in the search, likes and
// matches views.
func (c *conv) browseSelect(ctx context.Context, action i18n.Action) error {
	state := c.sess.State
	switch action {
	case i18n.ActionLike:
		if state == session.StateMatches {
			return nil
		}
		return c.react(ctx, enums.ReactionLike)
	case i18n.ActionDislike:
		return c.react(ctx, enums.ReactionDislike)
	case i18n.ActionReport:
		return c.startReport(ctx)
	case i18n.ActionRewind:
		return c.rewind(ctx)
	case i18n.ActionRewindLong:
		if state == session.StateSearch {
			return c.rewindWithKeyboard(ctx)
		}
	case i18n.ActionPrevPage:
		if state == session.StateMatches {
			return c.showMatches(ctx, c.sess.Data.MatchPage+1)
		}
	case i18n.ActionNextPage:
		if state == session.StateMatches && c.sess.Data.MatchPage > 0 {
			return c.showMatches(ctx, c.sess.Data.MatchPage-1)
		}
	}
	return nil
}

func (c *conv) startSearch(ctx context.Context) error {
	if err := c.send(ctx, c.t(i18n.MsgSearching), c.kbSearch()); err != nil {
		return err
	}
	return c.search(ctx)
}

func (c *conv) search(ctx context.Context) error {
	c.sess.Data.MatchID = nil
	c.sess.Data.RewindIndex = 0
	c.setState(session.StateSearch)

	viewer, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		return c.send(ctx, c.t(i18n.MsgFetchError), nil)
	}
	match, err := c.e.api.BestMatch(ctx, c.userID)
	if err != nil {
		return c.send(ctx, c.t(i18n.MsgFetchError), nil)
	}
	if match == nil {
		return c.send(ctx, c.t(i18n.MsgNoCandidates), c.kbEmptySearch())
	}

	c.sess.Data.MatchID = &match.ID
	return c.sendCard(ctx, match, viewer)
}

func (c *conv) rewindWithKeyboard(ctx context.Context) error {
	if err := c.send(ctx, c.t(i18n.MsgRewinding), c.kbSearch()); err != nil {
		return err
	}
	return c.rewind(ctx)
}

func (c *conv) rewind(ctx context.Context) error {
	viewer, err := c.e.api.CurrentUser(ctx, c.userID)
	if err != nil {
		return err
	}

	index := c.sess.Data.RewindIndex
	rewinds, err := c.e.api.Rewinds(ctx, c.userID, 1, index)
	if err != nil {
		// The server rejects going past the rewind window with a 400.
		if api.IsStatus(err, 400) {
			return c.send(ctx, c.t(i18n.MsgRewindLimit, c.e.rewindLimit), nil)
		}
		return err
	}
	if len(rewinds) == 0 {
		if err := c.send(ctx, c.t(i18n.MsgNothingToRewind), nil); err != nil {
			return err
		}
		return c.showMenu(ctx)
	}

	target := rewinds[0]
	if err := c.sendCard(ctx, &target, viewer); err != nil {
		return err
	}
	c.sess.Data.MatchID = &target.ID
	c.sess.Data.RewindIndex = index + 1
	return nil
}

// inactiveUser matches the API's rejection of reactions to users who turned
// their account off.
func inactiveUser(err error) bool {
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == 404 {
		return true
	}
	return apiErr.Status == 403 && strings.Contains(apiErr.Body, "Inactive user")
}

func (c *conv) react(ctx context.Context, reaction enums.ReactionType) error {
	state := c.sess.State
	matchID := c.sess.Data.MatchID
	if matchID == nil {
		return nil
	}

	_, err := c.e.api.React(ctx, c.userID, schemas.ReactionIn{
		ToUserID:     *matchID,
		ReactionType: reaction,
	})
	switch {
	case err == nil:
		if reaction == enums.ReactionLike {
			if err := c.announceMatch(ctx, *matchID); err != nil {
				return err
			}
		}
	case inactiveUser(err):
		if err := c.send(ctx, c.t(i18n.MsgUserNotFound), nil); err != nil {
			return err
		}
	default:
		if err := c.send(ctx, c.t(i18n.MsgGenericError), nil); err != nil {
			return err
		}
	}

	switch state {
	case session.StateLikes:
		return c.showLikes(ctx)
	case session.StateMatches:
		return c.showMatches(ctx, c.sess.Data.MatchPage)
	default:
		return c.search(ctx)
	}
}

// announceMatch tells the user when their like completed a mutual match.
func (c *conv) announceMatch(ctx context.Context, matchID uuid.UUID) error {
	matched, err := c.e.api.CheckMatch(ctx, c.userID, matchID)
	if err != nil || !matched {
		return nil
	}
	return c.send(ctx, c.t(i18n.MsgMutualLike), &Keyboard{
		Inline: [][]InlineButton{{
			{Text: c.t(i18n.MsgStartChat), WebApp: c.chatURL(matchID)},
		}},
	})
}

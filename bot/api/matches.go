package api

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/schemas"
)

func pageQuery(limit, offset int) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))
	return q
}

// Matches returns the caller's mutual matches, newest first. An empty page
// comes back as a nil slice.
func (c *Client) Matches(ctx context.Context, tgID int64, limit, offset int) ([]schemas.User, error) {
	var users []schemas.User
	err := c.get(ctx, tgID, "/v1/matches", pageQuery(limit, offset), &users)
	if err != nil {
		if IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// BestMatch returns the next candidate to show, or nil when no one is left.
func (c *Client) BestMatch(ctx context.Context, tgID int64) (*schemas.User, error) {
	var user schemas.User
	err := c.get(ctx, tgID, "/v1/matches/find", nil, &user)
	if err != nil {
		if IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// CheckMatch reports whether the caller and the given user are matched.
func (c *Client) CheckMatch(ctx context.Context, tgID int64, matchID uuid.UUID) (bool, error) {
	q := url.Values{}
	q.Set("match_id", matchID.String())
	var result struct {
		IsMatch bool `json:"is_match"`
	}
	err := c.get(ctx, tgID, "/v1/matches/check", q, &result)
	if err != nil {
		if IsStatus(err, 404) {
			return false, nil
		}
		return false, err
	}
	return result.IsMatch, nil
}

// Likes returns users who liked the caller and are still unanswered.
func (c *Client) Likes(ctx context.Context, tgID int64, limit int) ([]schemas.User, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	var users []schemas.User
	err := c.get(ctx, tgID, "/v1/likes", q, &users)
	if err != nil {
		if IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// Rewinds returns previously shown profiles. A 400 signals the rewind limit
// was exceeded and is passed through for the caller to detect.
func (c *Client) Rewinds(ctx context.Context, tgID int64, limit, offset int) ([]schemas.User, error) {
	var users []schemas.User
	err := c.get(ctx, tgID, "/v1/rewinds", pageQuery(limit, offset), &users)
	if err != nil {
		if IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return users, nil
}

// React records a like or dislike for another user.
func (c *Client) React(ctx context.Context, tgID int64, in schemas.ReactionIn) (*schemas.Reaction, error) {
	var reaction schemas.Reaction
	if err := c.put(ctx, tgID, "/v1/reactions", in, &reaction); err != nil {
		return nil, err
	}
	return &reaction, nil
}

package api

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/schemas"
)

// Preferences fetches the caller's search preferences.
func (c *Client) Preferences(ctx context.Context, tgID int64) (*schemas.Preferences, error) {
	var prefs schemas.Preferences
	if err := c.get(ctx, tgID, "/v1/preferences", nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// CreatePreferences creates the initial preferences record during
// registration. The freshly created user id goes in the query because the
// account is not resolvable through the identity header yet.
func (c *Client) CreatePreferences(ctx context.Context, tgID int64, userID uuid.UUID, in schemas.PreferencesIn) (*schemas.Preferences, error) {
	q := url.Values{}
	q.Set("user_id", userID.String())
	var prefs schemas.Preferences
	if err := c.post(ctx, tgID, "/v1/preferences", q, in, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// UpdatePreferences applies a partial preferences update.
func (c *Client) UpdatePreferences(ctx context.Context, tgID int64, upd schemas.PreferencesUpdate) (*schemas.Preferences, error) {
	var prefs schemas.Preferences
	if err := c.put(ctx, tgID, "/v1/preferences", upd, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

package api

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/schemas"
)

// CurrentUser fetches the caller's own profile. A 404 means the user has not
// registered yet and is returned as an *Error for the caller to branch on.
func (c *Client) CurrentUser(ctx context.Context, tgID int64) (*schemas.User, error) {
	var user schemas.User
	if err := c.get(ctx, tgID, "/v1/users/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// User fetches another user's profile by its API id.
func (c *Client) User(ctx context.Context, tgID int64, id uuid.UUID) (*schemas.User, error) {
	var user schemas.User
	if err := c.get(ctx, tgID, "/v1/users/"+id.String(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Register creates a new account. A 409 means the account already exists, in
// which case the existing profile is returned so a retried registration
// converges instead of failing.
func (c *Client) Register(ctx context.Context, in schemas.UserIn) (*schemas.User, error) {
	var user schemas.User
	err := c.post(ctx, in.TelegramID, "/v1/auth/register", nil, in, &user)
	if err != nil {
		if IsStatus(err, 409) {
			return c.CurrentUser(ctx, in.TelegramID)
		}
		return nil, err
	}
	return &user, nil
}

// UpdateMe applies a partial profile update.
func (c *Client) UpdateMe(ctx context.Context, tgID int64, upd schemas.UserUpdate) (*schemas.User, error) {
	var user schemas.User
	if err := c.put(ctx, tgID, "/v1/users/me", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteMe removes the caller's account and all its data.
func (c *Client) DeleteMe(ctx context.Context, tgID int64) error {
	return c.delete(ctx, tgID, "/v1/users/me")
}

// IsBanned checks the ban list. A 404 means no ban record exists.
func (c *Client) IsBanned(ctx context.Context, tgID int64) (bool, error) {
	var status struct {
		IsBanned bool `json:"is_banned"`
	}
	err := c.get(ctx, tgID, fmt.Sprintf("/v1/bans/check/%d", tgID), nil, &status)
	if err != nil {
		if IsStatus(err, 404) {
			return false, nil
		}
		return false, err
	}
	return status.IsBanned, nil
}

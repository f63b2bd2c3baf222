package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/m3rciful/anorbot/bot/schemas"
)

// Media fetches the stored media files of any user by API id.
func (c *Client) Media(ctx context.Context, userID uuid.UUID) ([]schemas.File, error) {
	q := url.Values{}
	q.Set("user_id", userID.String())
	var files []schemas.File
	if err := c.get(ctx, 0, "/v1/media", q, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// MyMedia fetches the caller's own media files.
func (c *Client) MyMedia(ctx context.Context, tgID int64) ([]schemas.File, error) {
	user, err := c.CurrentUser(ctx, tgID)
	if err != nil {
		return nil, err
	}
	return c.Media(ctx, user.ID)
}

// BatchAddMedia uploads a set of media file references for the caller.
func (c *Client) BatchAddMedia(ctx context.Context, tgID int64, media []schemas.FileIn) ([]schemas.File, error) {
	var files []schemas.File
	if err := c.post(ctx, tgID, "/v1/media/batch-add", nil, media, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// DeleteMedia removes a single media file by id.
func (c *Client) DeleteMedia(ctx context.Context, tgID int64, mediaID int) error {
	return c.delete(ctx, tgID, fmt.Sprintf("/v1/media/%d", mediaID))
}

// ReplaceMedia swaps the caller's entire media set. Individual delete
// failures are ignored so a half-deleted set still converges on the new
// files.
func (c *Client) ReplaceMedia(ctx context.Context, tgID int64, media []schemas.FileIn) ([]schemas.File, error) {
	current, err := c.MyMedia(ctx, tgID)
	if err != nil {
		return nil, err
	}
	for _, file := range current {
		if file.ID == 0 {
			continue
		}
		_ = c.DeleteMedia(ctx, tgID, file.ID)
	}
	return c.BatchAddMedia(ctx, tgID, media)
}

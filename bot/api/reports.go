package api

import (
	"context"

	"github.com/m3rciful/anorbot/bot/schemas"
)

// CreateReport files a complaint against another user.
func (c *Client) CreateReport(ctx context.Context, tgID int64, in schemas.ReportIn) (*schemas.Report, error) {
	var report schemas.Report
	if err := c.post(ctx, tgID, "/v1/reports", nil, in, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// MyReports lists the reports the caller has filed.
func (c *Client) MyReports(ctx context.Context, tgID int64) ([]schemas.Report, error) {
	var reports []schemas.Report
	err := c.get(ctx, tgID, "/v1/reports/my", nil, &reports)
	if err != nil {
		if IsStatus(err, 404) {
			return nil, nil
		}
		return nil, err
	}
	return reports, nil
}

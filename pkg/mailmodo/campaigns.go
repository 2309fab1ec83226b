package mailmodo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// GetAllCampaigns fetches every campaign in the account.
// Transport failures degrade to an empty campaign list.
func (c *Client) GetAllCampaigns(ctx context.Context) (*CampaignsResponse, error) {
	var resp CampaignsResponse
	if err := c.get(ctx, "/campaigns", nil, &resp); err != nil {
		if transportFailed(err) {
			return &CampaignsResponse{Campaigns: []Campaign{}}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// GetCampaignReport fetches open/click/submission metrics for one
// campaign over a date range. Dates are YYYY-MM-DD. Failures degrade to
// {success: false, data: null}.
func (c *Client) GetCampaignReport(ctx context.Context, campaignID, fromDate, toDate string) (*CampaignReport, error) {
	if campaignID == "" || fromDate == "" || toDate == "" {
		return nil, errors.New("campaignId, fromDate and toDate are required fields")
	}
	payload := map[string]string{"fromDate": fromDate, "toDate": toDate}
	var data json.RawMessage
	if err := c.post(ctx, "/campaignReports/"+campaignID, payload, &data); err != nil {
		c.log.Warn().Err(err).Str("campaign_id", campaignID).Msg("Failed to fetch campaign report")
		return &CampaignReport{Success: false}, nil
	}
	return &CampaignReport{Success: true, Data: data}, nil
}

// TriggerCampaign sends one campaign email to a single recipient. Unlike
// the read paths this never degrades silently: a failed send has to reach
// the caller, so every failure is returned with the remote message
// embedded when there is one.
func (c *Client) TriggerCampaign(ctx context.Context, campaignID string, req TriggerCampaignRequest) (*TriggerCampaignResponse, error) {
	if campaignID == "" || req.Email == "" {
		return nil, errors.New("campaignId and email are required fields")
	}
	var resp TriggerCampaignResponse
	if err := c.post(ctx, "/triggerCampaign/"+campaignID, req, &resp); err != nil {
		return nil, fmt.Errorf("Failed to trigger Mailmodo campaign: %s", remoteMessage(err, err.Error()))
	}
	return &resp, nil
}

// BulkTriggerCampaign broadcasts a campaign to an entire contact list.
// Failures are returned for the same reason as TriggerCampaign.
func (c *Client) BulkTriggerCampaign(ctx context.Context, campaignID string, req BroadcastCampaignRequest) (*TriggerCampaignResponse, error) {
	if campaignID == "" || req.ListID == "" {
		return nil, errors.New("campaignId and listId are required fields")
	}
	var resp TriggerCampaignResponse
	if err := c.post(ctx, "/bulktriggerCampaign/"+campaignID, req, &resp); err != nil {
		return nil, fmt.Errorf("Failed to bulk trigger Mailmodo campaign: %s", remoteMessage(err, err.Error()))
	}
	return &resp, nil
}

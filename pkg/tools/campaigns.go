package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// CampaignTools returns the campaign reporting and trigger tools backed
// by client.
func CampaignTools(client Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "MailmodoCampainReportTool",
				Description: "Tool to get the campaign reports for a particular campaign like open, click submission count etc",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"campaignId": map[string]any{"type": "string", "format": "uuid", "description": "Campaign id of the campaign to fetch the report for"},
						"fromDate":   map[string]any{"type": "string", "format": "date", "description": "Report start date in YYYY-MM-DD format"},
						"toDate":     map[string]any{"type": "string", "format": "date", "description": "Report end date in YYYY-MM-DD format"},
					},
					"required": []string{"campaignId", "fromDate", "toDate"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				campaignID, _ := ReadString(args, "campaignId", false)
				fromDate, _ := ReadString(args, "fromDate", false)
				toDate, _ := ReadString(args, "toDate", false)
				report, err := client.GetCampaignReport(ctx, campaignID, fromDate, toDate)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderCampaignReport(report)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "sendEmailToCampaign",
				Description: "Trigger an email for email campaign trigger with personalization parameter added to the email template.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"campaignId": map[string]any{"type": "string", "description": "Campaign id of the campaign to be triggered"},
						"email":      map[string]any{"type": "string", "description": "Email address of the contact to whom you want to send the email. This is required."},
						"subject":    map[string]any{"type": "string", "description": "Optional: Overrides the default subject line provided when creating the campaign."},
						"replyTo":    map[string]any{"type": "string", "description": "Optional: Overrides the default reply-to email address for the campaign."},
						"fromName":   map[string]any{"type": "string", "description": "Optional: Overrides the sender name for the campaign."},
						"campaign_data": map[string]any{
							"type":                 "object",
							"additionalProperties": map[string]any{"type": "string"},
							"description":          "Optional: Transient personalization parameters, not stored in the contact profile.",
						},
						"data": map[string]any{
							"type":                 "object",
							"additionalProperties": map[string]any{"type": "string"},
							"description":          "Optional: Personalization parameters saved to the contact's profile.",
						},
						"addToList": map[string]any{"type": "string", "description": "Optional: List ID to which the contact should be added as part of triggering the campaign."},
					},
					"required": []string{"campaignId", "email"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				campaignID, _ := ReadString(args, "campaignId", false)
				email, _ := ReadString(args, "email", false)
				subject, _ := ReadString(args, "subject", false)
				replyTo, _ := ReadString(args, "replyTo", false)
				fromName, _ := ReadString(args, "fromName", false)
				addToList, _ := ReadString(args, "addToList", false)
				resp, err := client.TriggerCampaign(ctx, campaignID, mailmodo.TriggerCampaignRequest{
					Email:        email,
					Subject:      subject,
					ReplyTo:      replyTo,
					FromName:     fromName,
					CampaignData: ReadStringMap(args, "campaign_data"),
					Data:         ReadStringMap(args, "data"),
					AddToList:    addToList,
				})
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderTrigger(resp, email, campaignID)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "broadcastCampaignToList",
				Description: "The broadcast campaign API allows the user to trigger campaigns to the entire contact list using a single API request.",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"campaignId": map[string]any{"type": "string", "description": "Campaign id of the campaign to be triggered"},
						"listId":     map[string]any{"type": "string", "description": "Id of the contact list or segment for which the campaign should be triggered."},
						"subject":    map[string]any{"type": "string", "description": "Optional subject line of the campaign. This will appear as the subject of the email sent to recipients."},
						"idempotencyKey": map[string]any{
							"type":        "string",
							"description": `Optional unique key to allow retries of the same campaign within 24 hours. Allows safe resending. For example: "2024-09-05T17:00:00Z".`,
						},
						"campaign_data": map[string]any{
							"type":                 "object",
							"additionalProperties": map[string]any{"type": "string"},
							"description":          "Optional set of personalization parameters for the campaign. Missing keys fall back to contact properties or an empty string.",
						},
					},
					"required": []string{"campaignId", "listId"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				campaignID, _ := ReadString(args, "campaignId", false)
				listID, _ := ReadString(args, "listId", false)
				subject, _ := ReadString(args, "subject", false)
				idempotencyKey, _ := ReadString(args, "idempotencyKey", false)
				resp, err := client.BulkTriggerCampaign(ctx, campaignID, mailmodo.BroadcastCampaignRequest{
					ListID:         listID,
					Subject:        subject,
					IdempotencyKey: idempotencyKey,
					CampaignData:   ReadStringMap(args, "campaign_data"),
				})
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderTrigger(resp, listID, campaignID)), nil
			},
		},
	}
}

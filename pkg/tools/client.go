package tools

import (
	"context"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// Client is the slice of the Mailmodo API the tools call. *mailmodo.Client
// satisfies it; tests substitute a fake.
type Client interface {
	AddContactToList(ctx context.Context, contact mailmodo.Contact) (*mailmodo.AddContactResponse, error)
	BulkAddContactToList(ctx context.Context, batch mailmodo.BulkContactBatch) (*mailmodo.BulkAddResponse, error)
	GetAllContactLists(ctx context.Context) (*mailmodo.ContactListsResponse, error)
	GetContactDetails(ctx context.Context, email string) (*mailmodo.ContactDetails, error)
	UnsubscribeContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error)
	ResubscribeContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error)
	RemoveContactFromList(ctx context.Context, email, listName string) (*mailmodo.AddContactResponse, error)
	DeleteContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error)
	GetAllTemplates(ctx context.Context) (*mailmodo.TemplatesResponse, error)
	GetAllCampaigns(ctx context.Context) (*mailmodo.CampaignsResponse, error)
	GetCampaignReport(ctx context.Context, campaignID, fromDate, toDate string) (*mailmodo.CampaignReport, error)
	TriggerCampaign(ctx context.Context, campaignID string, req mailmodo.TriggerCampaignRequest) (*mailmodo.TriggerCampaignResponse, error)
	BulkTriggerCampaign(ctx context.Context, campaignID string, req mailmodo.BroadcastCampaignRequest) (*mailmodo.TriggerCampaignResponse, error)
	SendEvent(ctx context.Context, event mailmodo.Event) (*mailmodo.EventResponse, error)
}

// All returns every tool backed by the given client.
func All(client Client) []*Tool {
	var all []*Tool
	all = append(all, ContactTools(client)...)
	all = append(all, CampaignTools(client)...)
	all = append(all, EventTools(client)...)
	return all
}

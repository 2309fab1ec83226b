package tools

import (
	"context"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// fakeClient counts calls and returns canned responses. Any method whose
// response field is unset returns a plain success shape.
type fakeClient struct {
	calls int

	addResp     *mailmodo.AddContactResponse
	bulkResp    *mailmodo.BulkAddResponse
	triggerResp *mailmodo.TriggerCampaignResponse
	triggerErr  error
	eventResp   *mailmodo.EventResponse
	reportResp  *mailmodo.CampaignReport
}

func (f *fakeClient) AddContactToList(ctx context.Context, contact mailmodo.Contact) (*mailmodo.AddContactResponse, error) {
	f.calls++
	if f.addResp != nil {
		return f.addResp, nil
	}
	return &mailmodo.AddContactResponse{Success: true, Message: "added"}, nil
}

func (f *fakeClient) BulkAddContactToList(ctx context.Context, batch mailmodo.BulkContactBatch) (*mailmodo.BulkAddResponse, error) {
	f.calls++
	if f.bulkResp != nil {
		return f.bulkResp, nil
	}
	return &mailmodo.BulkAddResponse{ListID: "list-1", Message: "queued"}, nil
}

func (f *fakeClient) GetAllContactLists(ctx context.Context) (*mailmodo.ContactListsResponse, error) {
	f.calls++
	return &mailmodo.ContactListsResponse{ListDetails: []mailmodo.ContactList{}}, nil
}

func (f *fakeClient) GetContactDetails(ctx context.Context, email string) (*mailmodo.ContactDetails, error) {
	f.calls++
	return &mailmodo.ContactDetails{Success: true}, nil
}

func (f *fakeClient) UnsubscribeContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error) {
	f.calls++
	return &mailmodo.AddContactResponse{Success: true, Message: "unsubscribed"}, nil
}

func (f *fakeClient) ResubscribeContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error) {
	f.calls++
	return &mailmodo.AddContactResponse{Success: true, Message: "resubscribed"}, nil
}

func (f *fakeClient) RemoveContactFromList(ctx context.Context, email, listName string) (*mailmodo.AddContactResponse, error) {
	f.calls++
	return &mailmodo.AddContactResponse{Success: true, Message: "removed"}, nil
}

func (f *fakeClient) DeleteContact(ctx context.Context, email string) (*mailmodo.AddContactResponse, error) {
	f.calls++
	return &mailmodo.AddContactResponse{Success: true, Message: "archived"}, nil
}

func (f *fakeClient) GetAllTemplates(ctx context.Context) (*mailmodo.TemplatesResponse, error) {
	f.calls++
	return &mailmodo.TemplatesResponse{TemplateDetails: []mailmodo.Template{}}, nil
}

func (f *fakeClient) GetAllCampaigns(ctx context.Context) (*mailmodo.CampaignsResponse, error) {
	f.calls++
	return &mailmodo.CampaignsResponse{Campaigns: []mailmodo.Campaign{}}, nil
}

func (f *fakeClient) GetCampaignReport(ctx context.Context, campaignID, fromDate, toDate string) (*mailmodo.CampaignReport, error) {
	f.calls++
	if f.reportResp != nil {
		return f.reportResp, nil
	}
	return &mailmodo.CampaignReport{Success: false}, nil
}

func (f *fakeClient) TriggerCampaign(ctx context.Context, campaignID string, req mailmodo.TriggerCampaignRequest) (*mailmodo.TriggerCampaignResponse, error) {
	f.calls++
	if f.triggerErr != nil {
		return nil, f.triggerErr
	}
	if f.triggerResp != nil {
		return f.triggerResp, nil
	}
	return &mailmodo.TriggerCampaignResponse{Success: true, Message: "sent", Ref: "ref-1"}, nil
}

func (f *fakeClient) BulkTriggerCampaign(ctx context.Context, campaignID string, req mailmodo.BroadcastCampaignRequest) (*mailmodo.TriggerCampaignResponse, error) {
	f.calls++
	if f.triggerResp != nil {
		return f.triggerResp, nil
	}
	return &mailmodo.TriggerCampaignResponse{Success: true, Message: "broadcast", Ref: "ref-2"}, nil
}

func (f *fakeClient) SendEvent(ctx context.Context, event mailmodo.Event) (*mailmodo.EventResponse, error) {
	f.calls++
	if f.eventResp != nil {
		return f.eventResp, nil
	}
	return &mailmodo.EventResponse{Success: true, Ref: "evt-1"}, nil
}

// newTestRegistry builds a registry over the fake client.
func newTestRegistry(client Client) *Registry {
	registry := NewRegistry()
	for _, tool := range All(client) {
		registry.Register(tool)
	}
	return registry
}

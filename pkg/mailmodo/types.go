package mailmodo

import "encoding/json"

// Properties is an open key/value bag attached to contacts and events.
// Values are limited to strings, numbers and booleans; the tool schema
// layer enforces that before a bag reaches the client.
type Properties map[string]any

// Contact is the payload for single-contact list operations.
type Contact struct {
	Email     string     `json:"email"`
	ListName  string     `json:"listName"`
	Data      Properties `json:"data,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
	LastClick string     `json:"last_click,omitempty"`
	LastOpen  string     `json:"last_open,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
}

// BulkContact is one entry of a bulk add; the list name lives on the
// enclosing batch instead.
type BulkContact struct {
	Email     string     `json:"email"`
	Data      Properties `json:"data,omitempty"`
	CreatedAt string     `json:"created_at,omitempty"`
	LastClick string     `json:"last_click,omitempty"`
	LastOpen  string     `json:"last_open,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
}

// BulkContactBatch is the payload for the batch add endpoint.
type BulkContactBatch struct {
	ListName string        `json:"listName"`
	Values   []BulkContact `json:"values"`
}

// AddContactResponse is the success/message shape shared by most contact
// endpoints.
type AddContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// BulkAddResponse is returned by the batch add endpoint. An empty ListID
// means the batch was not accepted.
type BulkAddResponse struct {
	ListID  string `json:"listId"`
	Message string `json:"message,omitempty"`
}

// ContactList describes one contact list.
type ContactList struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CreatedAt     string `json:"created_at"`
	ContactsCount int    `json:"contacts_count"`
}

// ContactListsResponse wraps the full set of contact lists.
type ContactListsResponse struct {
	ListDetails []ContactList `json:"listDetails"`
}

// ContactDetails carries whatever the API knows about a single contact.
// The data payload is passed through verbatim.
type ContactDetails struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Template describes one email template.
type Template struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
	Format       string `json:"format"`
	ThumbnailURL string `json:"thumbnail_url"`
	Type         string `json:"type"`
	CreatedBy    string `json:"created_by"`
	State        string `json:"state"`
	IsUploaded   string `json:"is_uploaded"`
}

// TemplatesResponse wraps the full set of templates.
type TemplatesResponse struct {
	TemplateDetails []Template `json:"templateDetails"`
}

// Campaign describes one campaign.
type Campaign struct {
	ID             string   `json:"id"`
	CampaignName   string   `json:"campaignName"`
	CampaignType   string   `json:"campaignType"`
	TemplateID     string   `json:"templateId"`
	Status         string   `json:"status"`
	EmailType      string   `json:"emailType"`
	SenderEmail    string   `json:"senderEmail"`
	Subjects       []string `json:"subjects"`
	CreatedAt      int64    `json:"createdAt"`
	ScheduledAt    int64    `json:"scheduledAt"`
	TriggerAppName string   `json:"triggerAppName,omitempty"`
	CreationSource string   `json:"creationSource,omitempty"`
}

// CampaignsResponse wraps the full set of campaigns.
type CampaignsResponse struct {
	Campaigns []Campaign `json:"campaigns"`
}

// CampaignReport wraps a campaign report. Data is the raw report body so
// new metrics show up without a client change.
type CampaignReport struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// TriggerCampaignRequest is the payload for a single-recipient campaign
// trigger. CampaignData is transient personalization; Data is saved to the
// contact profile.
type TriggerCampaignRequest struct {
	Email        string            `json:"email"`
	Subject      string            `json:"subject,omitempty"`
	ReplyTo      string            `json:"replyTo,omitempty"`
	FromName     string            `json:"fromName,omitempty"`
	CampaignData map[string]string `json:"campaign_data,omitempty"`
	Data         map[string]string `json:"data,omitempty"`
	AddToList    string            `json:"addToList,omitempty"`
}

// BroadcastCampaignRequest is the payload for a whole-list campaign
// trigger. IdempotencyKey is forwarded as-is; dedup is the API's job.
type BroadcastCampaignRequest struct {
	ListID         string            `json:"listId"`
	Subject        string            `json:"subject,omitempty"`
	IdempotencyKey string            `json:"idempotencyKey,omitempty"`
	CampaignData   map[string]string `json:"campaign_data,omitempty"`
}

// TriggerCampaignResponse is shared by both trigger endpoints.
type TriggerCampaignResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Ref     string `json:"ref"`
}

// Event is a custom event sent to the addEvent endpoint.
type Event struct {
	Email           string     `json:"email"`
	EventName       string     `json:"event_name"`
	TS              *int64     `json:"ts,omitempty"`
	EventProperties Properties `json:"event_properties,omitempty"`
}

// EventResponse is returned by the addEvent endpoint.
type EventResponse struct {
	Success bool   `json:"success"`
	Ref     string `json:"ref,omitempty"`
}

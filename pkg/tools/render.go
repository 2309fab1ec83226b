package tools

import (
	"fmt"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// Fixed remediation strings shown when the API reports a failure. The
// underlying technical error is deliberately not surfaced here; callers
// that need it get an error-flagged result instead.
const (
	fallbackCheckEmail      = "Something went wrong. Please check if the email is correct"
	fallbackCheckCampaignID = "Something went wrong. Please check if correct campaign ID is being passed"
)

// The render functions below are pure: the same normalized response
// always produces the same text.

func renderAddContact(resp *mailmodo.AddContactResponse, email, listName string) string {
	if !resp.Success {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully added contact '%s' to list %s with message %s.", email, listName, resp.Message)
}

func renderBulkAdd(resp *mailmodo.BulkAddResponse, count int, listName string) string {
	if resp.ListID == "" {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully added '%d' contacts to list %s with message %s.", count, listName, resp.Message)
}

func renderUnsubscribe(resp *mailmodo.AddContactResponse, email string) string {
	if !resp.Success {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully unsubscribed '%s' with message %s.", email, resp.Message)
}

func renderResubscribe(resp *mailmodo.AddContactResponse, email string) string {
	if !resp.Success {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully resubscribed '%s' with message %s.", email, resp.Message)
}

func renderArchive(resp *mailmodo.AddContactResponse, email string) string {
	if !resp.Success {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully deleted '%s' with message %s", email, resp.Message)
}

func renderRemoveFromList(resp *mailmodo.AddContactResponse, email, listName string) string {
	if resp.Message == "" {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully removed '%s' from the list %s with message %s.", email, listName, resp.Message)
}

func renderTrigger(resp *mailmodo.TriggerCampaignResponse, recipient, campaignID string) string {
	if resp.Message == "" {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully sent email to '%s' for the campaignId %s with message %s.", recipient, campaignID, resp.Message)
}

func renderEvent(resp *mailmodo.EventResponse, eventName, email, propertiesJSON string) string {
	if !resp.Success {
		return fallbackCheckEmail
	}
	return fmt.Sprintf("Successfully sent event '%s' for email %s with payload: %s with reference id %s", eventName, email, propertiesJSON, resp.Ref)
}

func renderCampaignReport(resp *mailmodo.CampaignReport) string {
	if !resp.Success || resp.Data == nil {
		return fallbackCheckCampaignID
	}
	return string(resp.Data)
}

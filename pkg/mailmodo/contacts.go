package mailmodo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// AddContactToList adds or updates a single contact on a list.
// Transport failures degrade to {success: false}.
func (c *Client) AddContactToList(ctx context.Context, contact Contact) (*AddContactResponse, error) {
	if contact.Email == "" || contact.ListName == "" {
		return nil, errors.New("email and listName are required fields")
	}
	var resp AddContactResponse
	if err := c.post(ctx, "/addToList", contact, &resp); err != nil {
		if transportFailed(err) {
			return &AddContactResponse{Success: false}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// BulkAddContactToList adds a batch of contacts to a list in one call.
// Every entry must carry a non-blank email; otherwise the whole batch is
// rejected locally. Transport failures degrade to an empty listId.
func (c *Client) BulkAddContactToList(ctx context.Context, batch BulkContactBatch) (*BulkAddResponse, error) {
	if batch.ListName == "" {
		return nil, errors.New("email and listName are required fields")
	}
	for _, entry := range batch.Values {
		if strings.TrimSpace(entry.Email) == "" {
			return nil, errors.New("email and listName are required fields")
		}
	}
	var resp BulkAddResponse
	if err := c.post(ctx, "/addToList/batch", batch, &resp); err != nil {
		if transportFailed(err) {
			return &BulkAddResponse{ListID: ""}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// GetAllContactLists fetches every contact list in the account.
// Transport failures degrade to an empty list.
func (c *Client) GetAllContactLists(ctx context.Context) (*ContactListsResponse, error) {
	var resp ContactListsResponse
	if err := c.get(ctx, "/getAllContactLists", nil, &resp); err != nil {
		if transportFailed(err) {
			return &ContactListsResponse{ListDetails: []ContactList{}}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// GetContactDetails fetches everything the API knows about a contact.
// Transport failures degrade to {success: false}.
func (c *Client) GetContactDetails(ctx context.Context, email string) (*ContactDetails, error) {
	if email == "" {
		return nil, errors.New("email is a required field")
	}
	var resp ContactDetails
	query := url.Values{"email": {email}}
	if err := c.get(ctx, "/getContactDetails", query, &resp); err != nil {
		if transportFailed(err) {
			return &ContactDetails{Success: false}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// UnsubscribeContact suppresses a contact across the account.
// Transport failures degrade to {success: false} with the remote message
// when one is available.
func (c *Client) UnsubscribeContact(ctx context.Context, email string) (*AddContactResponse, error) {
	if email == "" {
		return nil, errors.New("email is a required field")
	}
	var resp AddContactResponse
	if err := c.post(ctx, "/contacts/unsubscribe", map[string]string{"email": email}, &resp); err != nil {
		if transportFailed(err) {
			return &AddContactResponse{
				Success: false,
				Message: remoteMessage(err, "Failed to unsubscribe contact"),
			}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// ResubscribeContact reverses an unsubscribe. The API does not send a
// success flag on this endpoint, so a 2xx is remapped to success.
func (c *Client) ResubscribeContact(ctx context.Context, email string) (*AddContactResponse, error) {
	if email == "" {
		return nil, errors.New("email is a required field")
	}
	var resp AddContactResponse
	if err := c.post(ctx, "/contacts/resubscribe", map[string]string{"email": email}, &resp); err != nil {
		if transportFailed(err) {
			return &AddContactResponse{
				Success: false,
				Message: remoteMessage(err, "Failed to resubscribe contact"),
			}, nil
		}
		return nil, err
	}
	return &AddContactResponse{Success: true, Message: resp.Message}, nil
}

// RemoveContactFromList removes a contact from one list without touching
// the rest of their profile. A 400 means the contact was not a member,
// which callers treat as a benign outcome; every other failure is
// returned to the caller as-is.
func (c *Client) RemoveContactFromList(ctx context.Context, email, listName string) (*AddContactResponse, error) {
	if email == "" || listName == "" {
		return nil, errors.New("email and listName are required fields")
	}
	payload := map[string]string{"email": email, "listName": listName}
	var resp AddContactResponse
	if err := c.post(ctx, "/removeFromList", payload, &resp); err != nil {
		if isStatus(err, http.StatusBadRequest) {
			return &AddContactResponse{
				Success: true,
				Message: fmt.Sprintf("Contact %s doesn't exist in the list %s", email, listName),
			}, nil
		}
		return nil, err
	}
	return &resp, nil
}

// DeleteContact permanently archives a contact. A 400 means the contact
// was already archived or never existed, which is reported as success;
// other error statuses degrade to {success: false} with the remote
// message or a fixed fallback.
func (c *Client) DeleteContact(ctx context.Context, email string) (*AddContactResponse, error) {
	if email == "" {
		return nil, errors.New("email is a required field")
	}
	var resp AddContactResponse
	err := c.do(ctx, http.MethodDelete, "/contacts", nil, map[string]string{"email": email}, &resp)
	if err != nil {
		if isStatus(err, http.StatusBadRequest) {
			return &AddContactResponse{
				Success: true,
				Message: fmt.Sprintf("Contact %s is already archived or does not exist", email),
			}, nil
		}
		if transportFailed(err) {
			return &AddContactResponse{
				Success: false,
				Message: remoteMessage(err, "Failed to archive contact"),
			}, nil
		}
		return nil, err
	}
	return &resp, nil
}

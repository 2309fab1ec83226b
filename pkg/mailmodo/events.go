package mailmodo

import (
	"context"
	"errors"
	"time"

	"go.mau.fi/util/ptr"
)

// SendEvent delivers a custom event for a contact. The timestamp defaults
// to the current unix time in seconds when the caller leaves it unset.
// Transport failures degrade to {success: false}.
func (c *Client) SendEvent(ctx context.Context, event Event) (*EventResponse, error) {
	if event.Email == "" || event.EventName == "" {
		return nil, errors.New("email and event_name are required fields")
	}
	if event.TS == nil {
		event.TS = ptr.Ptr(time.Now().Unix())
	}
	var resp EventResponse
	if err := c.post(ctx, "/addEvent", event, &resp); err != nil {
		if transportFailed(err) {
			return &EventResponse{Success: false}, nil
		}
		return nil, err
	}
	return &resp, nil
}

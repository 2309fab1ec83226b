package mailmodo

import "context"

// GetAllTemplates fetches every template in the account.
// Failures degrade to an empty template list.
func (c *Client) GetAllTemplates(ctx context.Context) (*TemplatesResponse, error) {
	var resp TemplatesResponse
	if err := c.get(ctx, "/getAllTemplates", nil, &resp); err != nil {
		if transportFailed(err) {
			return &TemplatesResponse{TemplateDetails: []Template{}}, nil
		}
		return nil, err
	}
	return &resp, nil
}

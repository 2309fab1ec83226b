package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mailmodo/mailmodo-mcp/pkg/mailmodo"
)

// propertyBagSchema is the open contact property bag: a documented set of
// well-known keys plus arbitrary extra keys whose values must be strings,
// numbers or booleans.
func propertyBagSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"first_name":       map[string]any{"type": "string", "description": "First name of the user"},
			"last_name":        map[string]any{"type": "string", "description": "Last name of the user"},
			"name":             map[string]any{"type": "string", "description": "Full name of the user"},
			"gender":           map[string]any{"type": "string", "description": "Gender of the user"},
			"age":              map[string]any{"type": "integer", "description": "Age of the user in numbers"},
			"birthday":         map[string]any{"type": []string{"string", "integer"}, "description": "Birthdate of the user (ISO format or UNIX timestamp)"},
			"phone":            map[string]any{"type": "string", "description": "Primary phone number of the user"},
			"address1":         map[string]any{"type": "string", "description": "Line 1 of the address of the user"},
			"address2":         map[string]any{"type": "string", "description": "Line 2 of the address of the user"},
			"city":             map[string]any{"type": "string", "description": "City/district/village of the user"},
			"state":            map[string]any{"type": "string", "description": "State, region or province of the user"},
			"country":          map[string]any{"type": "string", "description": "Country of the user"},
			"postal_code":      map[string]any{"type": "string", "description": "PIN/ZIP Code of the user"},
			"designation":      map[string]any{"type": "string", "description": "Designation of the user"},
			"company":          map[string]any{"type": "string", "description": "Company of the user"},
			"industry":         map[string]any{"type": "string", "description": "Industry of the user"},
			"description":      map[string]any{"type": "string", "description": "Description of the user"},
			"anniversary_date": map[string]any{"type": []string{"string", "integer"}, "description": "Anniversary date (ISO format or UNIX timestamp)"},
		},
		"additionalProperties": map[string]any{
			"type": []string{"string", "number", "boolean"},
		},
	}
}

// contactFieldSchemas are the optional per-contact fields shared by the
// single and bulk add tools.
func contactFieldSchemas() map[string]any {
	return map[string]any{
		"data":       propertyBagSchema(),
		"created_at": map[string]any{"type": "string", "format": "datetime", "description": "Contact creation time, ISO 8601 or UNIX timestamp string"},
		"last_click": map[string]any{"type": "string", "format": "datetime", "description": "Last click time, ISO 8601 or UNIX timestamp string"},
		"last_open":  map[string]any{"type": "string", "format": "datetime", "description": "Last open time, ISO 8601 or UNIX timestamp string"},
		"timezone":   map[string]any{"type": "string", "format": "timezone", "description": "Region-format timezone string, e.g. Asia/Kolkata"},
	}
}

func contactFromArgs(args map[string]any) mailmodo.Contact {
	email, _ := ReadString(args, "email", false)
	listName, _ := ReadString(args, "listName", false)
	createdAt, _ := ReadString(args, "created_at", false)
	lastClick, _ := ReadString(args, "last_click", false)
	lastOpen, _ := ReadString(args, "last_open", false)
	timezone, _ := ReadString(args, "timezone", false)
	return mailmodo.Contact{
		Email:     email,
		ListName:  listName,
		Data:      mailmodo.Properties(ReadMap(args, "data")),
		CreatedAt: createdAt,
		LastClick: lastClick,
		LastOpen:  lastOpen,
		Timezone:  timezone,
	}
}

// ContactTools returns the contact-management tools backed by client.
func ContactTools(client Client) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        "addContactToList",
				Description: "Add Contact to list",
				InputSchema: func() map[string]any {
					props := map[string]any{
						"email":    map[string]any{"type": "string", "description": "Email address of the contact"},
						"listName": map[string]any{"type": "string", "description": "Name of the list to add the contact to"},
					}
					for k, v := range contactFieldSchemas() {
						props[k] = v
					}
					return map[string]any{
						"type":       "object",
						"properties": props,
						"required":   []string{"email", "listName"},
					}
				}(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				contact := contactFromArgs(args)
				resp, err := client.AddContactToList(ctx, contact)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderAddContact(resp, contact.Email, contact.ListName)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "addBulkContactToList",
				Description: "Add Many Contact to a list in single API",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"listName": map[string]any{"type": "string", "description": "Name of the list to add the contacts to"},
						"values": map[string]any{
							"type": "array",
							"items": func() map[string]any {
								props := map[string]any{
									"email": map[string]any{"type": "string", "description": "Email address of the contact"},
								}
								for k, v := range contactFieldSchemas() {
									props[k] = v
								}
								return map[string]any{
									"type":       "object",
									"properties": props,
									"required":   []string{"email"},
								}
							}(),
						},
					},
					"required": []string{"listName", "values"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				listName, _ := ReadString(args, "listName", false)
				entries, err := ReadObjectSlice(args, "values", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				batch := mailmodo.BulkContactBatch{ListName: listName, Values: make([]mailmodo.BulkContact, len(entries))}
				for i, entry := range entries {
					contact := contactFromArgs(entry)
					batch.Values[i] = mailmodo.BulkContact{
						Email:     contact.Email,
						Data:      contact.Data,
						CreatedAt: contact.CreatedAt,
						LastClick: contact.LastClick,
						LastOpen:  contact.LastOpen,
						Timezone:  contact.Timezone,
					}
				}
				resp, err := client.BulkAddContactToList(ctx, batch)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderBulkAdd(resp, len(batch.Values), listName)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "userDetails",
				Description: "Tool to get all details of a contact",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"email": map[string]any{"type": "string", "description": "Email address of the contact"},
					},
					"required": []string{"email"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, err := ReadString(args, "email", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				details, err := client.GetContactDetails(ctx, email)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return JSONResult(details), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "unsubscribeContact",
				Description: "Unsubscribe or suppress contact in mailmodo",
				InputSchema: emailOnlySchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, err := ReadString(args, "email", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				resp, err := client.UnsubscribeContact(ctx, email)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderUnsubscribe(resp, email)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "resubscribeContact",
				Description: "Resubscribe contact in mailmodo",
				InputSchema: emailOnlySchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, err := ReadString(args, "email", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				resp, err := client.ResubscribeContact(ctx, email)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderResubscribe(resp, email)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "archiveContact",
				Description: "Permanently archive contact in mailmodo",
				InputSchema: emailOnlySchema(),
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, err := ReadString(args, "email", true)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				resp, err := client.DeleteContact(ctx, email)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderArchive(resp, email)), nil
			},
		},
		{
			Tool: mcp.Tool{
				Name:        "removeContactFromList",
				Description: "Remove a particular contact from the contact list",
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"email":    map[string]any{"type": "string", "description": "Email address of the contact"},
						"listName": map[string]any{"type": "string", "description": "Name of the list to remove the contact from"},
					},
					"required": []string{"email", "listName"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
				email, _ := ReadString(args, "email", false)
				listName, _ := ReadString(args, "listName", false)
				resp, err := client.RemoveContactFromList(ctx, email, listName)
				if err != nil {
					return ErrorResult(err.Error()), nil
				}
				return TextResult(renderRemoveFromList(resp, email, listName)), nil
			},
		},
	}
}

func emailOnlySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"email": map[string]any{"type": "string", "description": "Email address of the contact"},
		},
		"required": []string{"email"},
	}
}

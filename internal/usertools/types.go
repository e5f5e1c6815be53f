package usertools

import "github.com/dusk-indust/userstore/internal/user"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.
// create_user's required fields are pointers so that an absent key can be
// told apart from a zero value; unrecognized payload keys are dropped during
// unmarshalling.

// GetUserInput is the input for the get_user MCP tool.
type GetUserInput struct {
	ID int64 `json:"id" jsonschema:"the caller-assigned ID of the user to look up"`
}

// GetUserOutput is the result of the get_user MCP tool.
type GetUserOutput struct {
	Found bool       `json:"found"`
	User  *user.User `json:"user,omitempty"`
}

// ListUsersInput is the input for the list_users MCP tool.
type ListUsersInput struct{}

// ListUsersOutput is the result of the list_users MCP tool.
type ListUsersOutput struct {
	Users []*user.User `json:"users"`
	Total int          `json:"total"`
}

// CreateUserInput is the input for the create_user MCP tool.
type CreateUserInput struct {
	ID    *int64  `json:"id,omitempty" jsonschema:"caller-assigned integer ID (required)"`
	Name  *string `json:"name,omitempty" jsonschema:"display name (required)"`
	Email *string `json:"email,omitempty" jsonschema:"contact email (required)"`
}

// CreateUserOutput is the result of the create_user MCP tool.
type CreateUserOutput struct {
	User user.User `json:"user"`
}

package usertools

import (
	"context"
	"fmt"

	"github.com/dusk-indust/userstore/internal/user"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// UserService holds the store used by the MCP tool handlers. It is the
// adaptation layer between request-shaped payloads and store calls; the
// store's own contract does not change shape here.
type UserService struct {
	store *user.Store
}

// NewUserService creates a UserService backed by store.
func NewUserService(store *user.Store) *UserService {
	return &UserService{store: store}
}

// GetUser looks up a user by ID. An unknown ID is reported through the found
// flag rather than an error, so callers can branch without parsing failures.
func (s *UserService) GetUser(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetUserInput,
) (*mcp.CallToolResult, GetUserOutput, error) {
	u, ok := s.store.Find(input.ID)
	if !ok {
		return nil, GetUserOutput{Found: false}, nil
	}
	return nil, GetUserOutput{Found: true, User: u}, nil
}

// ListUsers returns every user in insertion order with a total count.
func (s *UserService) ListUsers(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListUsersInput,
) (*mcp.CallToolResult, ListUsersOutput, error) {
	users := s.store.List()
	return nil, ListUsersOutput{Users: users, Total: len(users)}, nil
}

// CreateUser checks the required fields, constructs a User, and appends it to
// the store. A missing required field is an error; unrecognized payload keys
// are ignored. No duplicate-ID check is made.
func (s *UserService) CreateUser(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CreateUserInput,
) (*mcp.CallToolResult, CreateUserOutput, error) {
	if input.ID == nil {
		return nil, CreateUserOutput{}, fmt.Errorf("id is required")
	}
	if input.Name == nil {
		return nil, CreateUserOutput{}, fmt.Errorf("name is required")
	}
	if input.Email == nil {
		return nil, CreateUserOutput{}, fmt.Errorf("email is required")
	}

	created := s.store.Create(&user.User{
		ID:    *input.ID,
		Name:  *input.Name,
		Email: *input.Email,
	})

	return nil, CreateUserOutput{User: *created}, nil
}

package usertools

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/dusk-indust/userstore/internal/user"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupServerClient wires an MCP server and client together using in-memory
// transports. It returns the connected client session and the underlying
// UserService so that tests can inspect store state when needed.
func setupServerClient(t *testing.T) (*mcp.ClientSession, *UserService) {
	t.Helper()

	svc := NewUserService(user.NewStore())
	server := NewUserMCPServer(svc)

	st, ct := mcp.NewInMemoryTransports()

	ctx := context.Background()

	_, err := server.Connect(ctx, st, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, ct, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		session.Close()
	})

	return session, svc
}

// decodeStructured unmarshals a tool call's structured content into out.
func decodeStructured(t *testing.T, result *mcp.CallToolResult, out any) {
	t.Helper()

	require.NotNil(t, result.StructuredContent, "expected structured content")
	raw, err := json.Marshal(result.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out))
}

// TestMCPListTools verifies that the MCP server exposes exactly 3 tools with
// the expected names.
func TestMCPListTools(t *testing.T) {
	session, _ := setupServerClient(t)
	ctx := context.Background()

	result, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)

	require.Len(t, result.Tools, 3, "expected 3 registered tools")

	names := make([]string, len(result.Tools))
	for i, tool := range result.Tools {
		names[i] = tool.Name
	}
	sort.Strings(names)

	expected := []string{
		"create_user",
		"get_user",
		"list_users",
	}
	assert.Equal(t, expected, names)
}

// TestMCPCreateAndGetUser creates a user over the tool surface and reads it
// back through get_user.
func TestMCPCreateAndGetUser(t *testing.T) {
	session, _ := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_user",
		Arguments: CreateUserInput{
			ID:    int64ptr(1),
			Name:  strptr("Ada"),
			Email: strptr("ada@example.com"),
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "create_user should not return an error")

	var created CreateUserOutput
	decodeStructured(t, result, &created)
	assert.Equal(t, user.User{ID: 1, Name: "Ada", Email: "ada@example.com"}, created.User)

	result, err = session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_user",
		Arguments: GetUserInput{ID: 1},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var got GetUserOutput
	decodeStructured(t, result, &got)
	require.True(t, got.Found)
	require.NotNil(t, got.User)
	assert.Equal(t, "ada@example.com", got.User.Email)
}

// TestMCPGetUserNotFound checks that an unknown ID comes back as found=false
// rather than a tool error.
func TestMCPGetUserNotFound(t *testing.T) {
	session, _ := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get_user",
		Arguments: GetUserInput{ID: 404},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "not-found must not be a tool error")

	var got GetUserOutput
	decodeStructured(t, result, &got)
	assert.False(t, got.Found)
	assert.Nil(t, got.User)
}

// TestMCPCreateUserMissingField checks that a payload lacking a required
// field surfaces as a tool error.
func TestMCPCreateUserMissingField(t *testing.T) {
	session, svc := setupServerClient(t)
	ctx := context.Background()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "create_user",
		Arguments: CreateUserInput{
			ID:   int64ptr(1),
			Name: strptr("no-email"),
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError, "missing email must fail the create")
	assert.Equal(t, 0, svc.store.Len(), "the store must be untouched")
}

// TestMCPListUsers seeds three users and lists them in insertion order.
func TestMCPListUsers(t *testing.T) {
	session, svc := setupServerClient(t)
	ctx := context.Background()

	svc.store.Create(&user.User{ID: 2, Name: "b", Email: "b@example.com"})
	svc.store.Create(&user.User{ID: 1, Name: "a", Email: "a@example.com"})
	svc.store.Create(&user.User{ID: 3, Name: "c", Email: "c@example.com"})

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "list_users",
		Arguments: ListUsersInput{},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out ListUsersOutput
	decodeStructured(t, result, &out)
	require.Len(t, out.Users, 3)
	assert.Equal(t, 3, out.Total)
	assert.Equal(t, int64(2), out.Users[0].ID)
	assert.Equal(t, int64(1), out.Users[1].ID)
	assert.Equal(t, int64(3), out.Users[2].ID)
}

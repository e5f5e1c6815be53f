package usertools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is set by the linker at build time.
var version = "dev"

// NewUserMCPServer creates an MCP server with the 3 user registry tools
// registered: get_user, list_users, and create_user. Update and delete are
// store primitives only; they have no tool surface.
func NewUserMCPServer(svc *UserService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "userstore",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_user",
		Description: "Look up a user by caller-assigned ID. Returns the record and a found flag; an unknown ID is not an error.",
	}, svc.GetUser)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_users",
		Description: "List all users in insertion order, with a total count.",
	}, svc.ListUsers)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_user",
		Description: "Create a user from id, name, and email. All three fields are required; unrecognized fields are ignored.",
	}, svc.CreateUser)

	return server
}

// RunUserMCPServerStdio runs the MCP server on stdio transport, blocking
// until stdin is closed or the context is cancelled.
func RunUserMCPServerStdio(ctx context.Context, server *mcp.Server) error {
	return server.Run(ctx, &mcp.StdioTransport{})
}

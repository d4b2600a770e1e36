package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all builtin tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	AddTool(srv, &sdkmcp.Tool{
		Name:        "get_all_names",
		Description: "List the names of all prompts stored in the worker. Returns {status, message, data: [name, ...]} in storage order; a record without a name appears as null.",
	}, ToolGetAllNames(d))

	AddTool(srv, &sdkmcp.Tool{
		Name:        "get_content_by_name",
		Description: "Fetch a prompt by its exact name. Returns {status, message, data: {id, name, content, category, description}}; category and description default to empty strings. Use get_all_names first to discover valid names.",
	}, ToolGetContentByName(d))
}

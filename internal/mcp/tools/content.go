package tools

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetContentByNameInput is the input for get_content_by_name.
type GetContentByNameInput struct {
	Name string `json:"name" jsonschema:"required,Name of the prompt to fetch (exact, case-sensitive)"`
}

// ToolGetContentByName returns the handler for get_content_by_name. The
// lookup is a full fetch followed by a scan; a missing prompt and a failed
// fetch both become error envelopes, never protocol faults.
func ToolGetContentByName(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetContentByNameInput) (*sdkmcp.CallToolResult, ContentEnvelope, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetContentByNameInput) (*sdkmcp.CallToolResult, ContentEnvelope, error) {
		prompt, err := d.Client.GetPromptByName(ctx, input.Name)
		if err != nil {
			slog.Error("get_content_by_name failed",
				slog.String("name", input.Name),
				slog.String("error", err.Error()),
			)
			return nil, ContentEnvelope{
				Status:  StatusError,
				Message: fmt.Sprintf("failed to get content for prompt %q: %v", input.Name, err),
			}, nil
		}

		return nil, ContentEnvelope{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("retrieved content for prompt %q", input.Name),
			Data: &PromptDetail{
				ID:          prompt.ID,
				Name:        prompt.Name,
				Content:     prompt.Content,
				Category:    orEmpty(prompt.Category),
				Description: orEmpty(prompt.Description),
			},
		}, nil
	}
}

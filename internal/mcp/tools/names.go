package tools

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetAllNamesInput is the input for get_all_names. The tool takes no
// arguments.
type GetAllNamesInput struct{}

// ToolGetAllNames returns the handler for get_all_names. It fetches the full
// prompt collection and reduces it to the name of each record, preserving
// order and length. All failures are folded into an error envelope.
func ToolGetAllNames(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetAllNamesInput) (*sdkmcp.CallToolResult, NamesEnvelope, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GetAllNamesInput) (*sdkmcp.CallToolResult, NamesEnvelope, error) {
		prompts, err := d.Client.ListPrompts(ctx)
		if err != nil {
			slog.Error("get_all_names failed", slog.String("error", err.Error()))
			return nil, NamesEnvelope{
				Status:  StatusError,
				Message: fmt.Sprintf("failed to get all prompt names: %v", err),
			}, nil
		}

		names := make([]*string, len(prompts))
		for i, p := range prompts {
			names[i] = p.Name
		}

		return nil, NamesEnvelope{
			Status:  StatusSuccess,
			Message: fmt.Sprintf("retrieved %d prompt names", len(names)),
			Data:    names,
		}, nil
	}
}

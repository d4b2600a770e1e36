package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/promptdeck/promptdeck-mcp/pkg/client"
)

// Resource URI scheme: prompt://
// Supported URIs:
//   prompt://{name}

// registerResources registers resource templates and handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResourceTemplate(&sdkmcp.ResourceTemplate{
		URITemplate: "prompt://{name}",
		Name:        "Prompt",
		Description: "Raw content of a stored prompt, addressed by name. Use get_all_names to discover valid names.",
		MIMEType:    "text/plain",
		Annotations: &sdkmcp.Annotations{
			Audience: []sdkmcp.Role{"assistant"},
			Priority: 0.6,
		},
	}, s.handleResourcePrompt)
}

func (s *Server) handleResourcePrompt(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	name, err := parsePromptURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	prompt, err := s.deps.Client.GetPromptByName(ctx, name)
	if err != nil {
		var notFound *client.NotFoundError
		if errors.As(err, &notFound) {
			return nil, sdkmcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, err
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      req.Params.URI,
				MIMEType: "text/plain",
				Text:     prompt.Content,
			},
		},
	}, nil
}

// parsePromptURI extracts the prompt name from a prompt:// URI.
func parsePromptURI(uri string) (string, error) {
	const scheme = "prompt://"
	if !strings.HasPrefix(uri, scheme) {
		return "", fmt.Errorf("invalid resource URI %q: expected %s{name}", uri, scheme)
	}
	name, err := url.PathUnescape(strings.TrimPrefix(uri, scheme))
	if err != nil {
		return "", fmt.Errorf("invalid resource URI %q: %w", uri, err)
	}
	if name == "" {
		return "", fmt.Errorf("invalid resource URI %q: empty prompt name", uri)
	}
	return name, nil
}

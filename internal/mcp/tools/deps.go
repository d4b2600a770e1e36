package tools

import (
	"github.com/promptdeck/promptdeck-mcp/internal/config"
	"github.com/promptdeck/promptdeck-mcp/pkg/client"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Client *client.Client
	Config *config.Config
}

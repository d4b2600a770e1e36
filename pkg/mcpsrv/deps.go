package mcpsrv

import (
	"github.com/promptdeck/promptdeck-mcp/internal/config"
	"github.com/promptdeck/promptdeck-mcp/pkg/client"
)

// Deps contains the dependencies available to custom tools. This gives custom
// tools access to the same worker API client and configuration as the builtin
// tools.
type Deps struct {
	Client *client.Client
	Config *config.Config
}

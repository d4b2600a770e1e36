package mcpsrv

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/promptdeck/promptdeck-mcp/internal/config"
)

// serverConfig holds configuration built from options.
type serverConfig struct {
	config *config.Config

	// Logging overrides
	logLevel string
	logFile  string

	disableBuiltins bool

	// Custom extensions - registration callbacks that preserve generic type info
	registrations []func(*sdkmcp.Server)

	// Deferred tool registrations that need access to Deps
	deferredToolRegistrations []func(*sdkmcp.Server, *Deps)
}

// Option configures the server.
type Option func(*serverConfig)

// WithLogLevel sets the log level (debug, info, warn, error).
func WithLogLevel(level string) Option {
	return func(cfg *serverConfig) {
		cfg.logLevel = level
	}
}

// WithLogFile sets the log file path. If empty, logs are written to stderr
// only.
func WithLogFile(path string) Option {
	return func(cfg *serverConfig) {
		cfg.logFile = path
	}
}

// WithoutBuiltins disables the builtin promptdeck tools and resources. Use
// this to register only your own extensions.
func WithoutBuiltins() Option {
	return func(cfg *serverConfig) {
		cfg.disableBuiltins = true
	}
}

// WithTool registers a custom tool with the server.
//
// The handler signature must match the MCP SDK pattern:
//
//	func(ctx context.Context, req *mcp.CallToolRequest, input In) (*mcp.CallToolResult, Out, error)
//
// In is unmarshaled from JSON and Out is marshaled to JSON.
func WithTool[In, Out any](tool *sdkmcp.Tool, handler func(context.Context, *sdkmcp.CallToolRequest, In) (*sdkmcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *sdkmcp.Server) {
			AddTool(srv, tool, handler)
		})
	}
}

// WithDepsTool registers a custom tool that has access to Deps. The builder
// receives Deps and returns a handler, so the tool can reach the worker API
// client:
//
//	mcpsrv.WithDepsTool(
//	    &mcp.Tool{Name: "count_prompts", Description: "Count stored prompts"},
//	    func(d *mcpsrv.Deps) func(ctx context.Context, req *mcp.CallToolRequest, input CountInput) (*mcp.CallToolResult, CountOutput, error) {
//	        return func(ctx context.Context, req *mcp.CallToolRequest, input CountInput) (*mcp.CallToolResult, CountOutput, error) {
//	            prompts, err := d.Client.ListPrompts(ctx)
//	            if err != nil {
//	                return nil, CountOutput{}, err
//	            }
//	            return nil, CountOutput{Count: len(prompts)}, nil
//	        }
//	    },
//	)
func WithDepsTool[In, Out any](tool *sdkmcp.Tool, builder func(*Deps) func(context.Context, *sdkmcp.CallToolRequest, In) (*sdkmcp.CallToolResult, Out, error)) Option {
	return func(cfg *serverConfig) {
		cfg.deferredToolRegistrations = append(cfg.deferredToolRegistrations, func(srv *sdkmcp.Server, deps *Deps) {
			AddTool(srv, tool, builder(deps))
		})
	}
}

// WithPrompt registers a custom MCP prompt with the server.
func WithPrompt(prompt *sdkmcp.Prompt, handler func(context.Context, *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *sdkmcp.Server) {
			srv.AddPrompt(prompt, handler)
		})
	}
}

// WithResourceTemplate registers a custom resource template with the server.
func WithResourceTemplate(template *sdkmcp.ResourceTemplate, handler func(context.Context, *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error)) Option {
	return func(cfg *serverConfig) {
		cfg.registrations = append(cfg.registrations, func(srv *sdkmcp.Server) {
			srv.AddResourceTemplate(template, handler)
		})
	}
}

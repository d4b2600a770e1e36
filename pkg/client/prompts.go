package client

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// promptsEndpoint is the worker API collection endpoint. It is the only
// endpoint this client uses; there is no lookup-by-name endpoint upstream.
const promptsEndpoint = "prompts"

// ListPrompts fetches all prompts from the worker API.
//
// A response whose top level is not a JSON array (object, null, scalar) is
// treated as "no data": ListPrompts logs a warning and returns an empty,
// non-nil slice instead of an error. Array elements that do not decode as
// prompt objects are kept as zero records so list length is preserved.
// Fetcher errors propagate unchanged.
func (c *Client) ListPrompts(ctx context.Context) ([]Prompt, error) {
	raw, err := c.Do(ctx, http.MethodGet, promptsEndpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		slog.Warn("prompt list response is not an array, treating as empty",
			slog.Int("body_bytes", len(raw)),
		)
		return []Prompt{}, nil
	}

	prompts := make([]Prompt, len(elems))
	for i, elem := range elems {
		// Lenient by design: a malformed element stays a zero record and its
		// missing fields surface downstream as defaults.
		_ = json.Unmarshal(elem, &prompts[i])
	}

	slog.Debug("fetched prompt list", slog.Int("count", len(prompts)))
	return prompts, nil
}

// GetPromptByName fetches all prompts and returns the first whose name equals
// name exactly (case-sensitive). The worker API offers no server-side filter,
// so every lookup is a full fetch.
//
// Returns *NotFoundError when no prompt matches. Duplicate names are a
// data-quality problem upstream; GetPromptByName logs a warning when the
// requested name matches more than one record but still returns the first.
func (c *Client) GetPromptByName(ctx context.Context, name string) (*Prompt, error) {
	prompts, err := c.ListPrompts(ctx)
	if err != nil {
		return nil, err
	}

	var found *Prompt
	matches := 0
	for i := range prompts {
		p := &prompts[i]
		if p.Name != nil && *p.Name == name {
			matches++
			if found == nil {
				found = p
			}
		}
	}

	if found == nil {
		slog.Warn("prompt not found", slog.String("name", name))
		return nil, &NotFoundError{Name: name}
	}
	if matches > 1 {
		slog.Warn("duplicate prompt names in worker response, returning first match",
			slog.String("name", name),
			slog.Int("matches", matches),
		)
	}

	slog.Debug("prompt found", slog.String("name", name))
	return found, nil
}

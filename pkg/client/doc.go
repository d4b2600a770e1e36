// Package client provides a Go client for the prompt worker API.
//
// The worker API stores named text prompts and exposes a single read
// endpoint, GET {base_url}/prompts, returning a JSON array of prompt records.
// The client wraps that endpoint with retries and two domain operations:
// listing all prompts and looking a prompt up by name.
//
// # Quick Start
//
// Create a client and list prompts:
//
//	c := client.New()
//	prompts, err := c.ListPrompts(ctx)
//
// Use custom configuration:
//
//	c := client.New(
//	    client.WithBaseURL("https://prompts.example.workers.dev"),
//	    client.WithTimeout(30*time.Second),
//	    client.WithMaxRetries(5),
//	)
//
// # Retries
//
// Every request is attempted up to the configured retry limit. Transport
// errors, HTTP statuses >= 400, and non-JSON bodies are all transient
// failures; the client sleeps 2^attempt seconds between attempts and returns
// a *NetworkError carrying the last cause once attempts are exhausted. The
// timeout applies per attempt, not across the whole retry loop.
//
// # Lookup by Name
//
// The worker API has no lookup-by-name endpoint, so GetPromptByName fetches
// the full collection and scans it. The first exact match wins:
//
//	p, err := c.GetPromptByName(ctx, "greeting")
//	var notFound *client.NotFoundError
//	if errors.As(err, &notFound) {
//	    // no prompt with that name
//	}
package client

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPromptServer(t *testing.T, body string) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/prompts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	c, _ := newTestClient(t, srv.URL, 1)
	return c
}

func TestListPrompts(t *testing.T) {
	c := newPromptServer(t, `[
		{"id":"1","name":"greeting","content":"Hello!","category":"chat","description":"A greeting"},
		{"id":"2","name":"farewell","content":"Bye!"}
	]`)

	prompts, err := c.ListPrompts(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 2)

	require.NotNil(t, prompts[0].Name)
	assert.Equal(t, "greeting", *prompts[0].Name)
	assert.Equal(t, "Hello!", prompts[0].Content)
	require.NotNil(t, prompts[0].Category)
	assert.Equal(t, "chat", *prompts[0].Category)

	assert.Nil(t, prompts[1].Category, "absent category decodes as nil")
	assert.Nil(t, prompts[1].Description, "absent description decodes as nil")
}

func TestListPrompts_NonArrayResponse(t *testing.T) {
	for name, body := range map[string]string{
		"object": `{"error":"wrong shape"}`,
		"null":   `null`,
		"scalar": `42`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newPromptServer(t, body)
			prompts, err := c.ListPrompts(context.Background())
			require.NoError(t, err, "non-array shape must degrade to empty, not fail")
			require.NotNil(t, prompts)
			assert.Empty(t, prompts)
		})
	}
}

func TestListPrompts_MalformedElementKeptAsZeroRecord(t *testing.T) {
	c := newPromptServer(t, `[{"name":"a"}, 42, {"name":"c"}]`)

	prompts, err := c.ListPrompts(context.Background())
	require.NoError(t, err)
	require.Len(t, prompts, 3, "list length is preserved")
	assert.Nil(t, prompts[1].Name)
}

func TestListPrompts_PropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 2)
	_, err := c.ListPrompts(context.Background())

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestGetPromptByName(t *testing.T) {
	c := newPromptServer(t, `[
		{"id":"1","name":"greeting","content":"Hello!"},
		{"id":"2","name":"farewell","content":"Bye!"}
	]`)

	p, err := c.GetPromptByName(context.Background(), "farewell")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)
	assert.Equal(t, "Bye!", p.Content)
}

func TestGetPromptByName_FirstMatchWinsOnDuplicates(t *testing.T) {
	c := newPromptServer(t, `[
		{"id":"1","name":"greeting","content":"first"},
		{"id":"2","name":"greeting","content":"second"}
	]`)

	p, err := c.GetPromptByName(context.Background(), "greeting")
	require.NoError(t, err)
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, "first", p.Content)
}

func TestGetPromptByName_CaseSensitive(t *testing.T) {
	c := newPromptServer(t, `[{"id":"1","name":"Greeting","content":"Hello!"}]`)

	_, err := c.GetPromptByName(context.Background(), "greeting")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPromptByName_NotFound(t *testing.T) {
	for name, body := range map[string]string{
		"no match": `[{"id":"1","name":"other","content":"x"}]`,
		"empty":    `[]`,
	} {
		t.Run(name, func(t *testing.T) {
			c := newPromptServer(t, body)
			_, err := c.GetPromptByName(context.Background(), "greeting")

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, "greeting", notFound.Name)
			assert.Contains(t, err.Error(), "greeting")
		})
	}
}

func TestGetPromptByName_MissingNameNeverMatches(t *testing.T) {
	c := newPromptServer(t, `[{"id":"1","content":"anonymous"}]`)

	// A record without a name must not match the empty string.
	_, err := c.GetPromptByName(context.Background(), "")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestGetPromptByName_PropagatesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 1)
	_, err := c.GetPromptByName(context.Background(), "greeting")

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

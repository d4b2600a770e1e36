package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// sleepRecorder captures backoff durations instead of sleeping.
type sleepRecorder struct {
	durations []time.Duration
}

func (r *sleepRecorder) sleep(d time.Duration) {
	r.durations = append(r.durations, d)
}

func newTestClient(t *testing.T, baseURL string, maxRetries int) (*Client, *sleepRecorder) {
	t.Helper()
	hc := &http.Client{}
	t.Cleanup(hc.CloseIdleConnections)
	rec := &sleepRecorder{}
	c := New(
		WithBaseURL(baseURL),
		WithMaxRetries(maxRetries),
		WithHTTPClient(hc),
		WithSleep(rec.sleep),
	)
	return c, rec
}

func TestDo_UnsupportedMethod(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
	}))
	defer srv.Close()

	c, rec := newTestClient(t, srv.URL, 3)
	_, err := c.Do(context.Background(), http.MethodDelete, "prompts", nil, nil)

	var unsupported *UnsupportedMethodError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, http.MethodDelete, unsupported.Method)
	assert.Zero(t, attempts.Load(), "unsupported method must make no attempts")
	assert.Empty(t, rec.durations, "unsupported method must not sleep")
}

func TestDo_RetriesUntilExhaustion(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, rec := newTestClient(t, srv.URL, 4)
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 4, netErr.Attempts)
	assert.EqualValues(t, 4, attempts.Load())

	// Exponential backoff between attempts, no sleep after the final one.
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, rec.durations)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestDo_SucceedsAfterFailures(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c, rec := newTestClient(t, srv.URL, 5)
	raw, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(raw))
	assert.EqualValues(t, 3, attempts.Load(), "must stop retrying after first success")
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second}, rec.durations)
}

func TestDo_MalformedJSONIsRetried(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 2)
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.EqualValues(t, 2, attempts.Load())
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestDo_TransportErrorIsRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	c, rec := newTestClient(t, srv.URL, 3)
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.Equal(t, 3, netErr.Attempts)
	assert.Len(t, rec.durations, 2)
	assert.Error(t, netErr.Cause)
}

func TestDo_PostSendsJSONBody(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	var gotContentType string
	var gotBody payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 1)
	_, err := c.Do(context.Background(), http.MethodPost, "prompts", nil, payload{Name: "greeting"})

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "greeting", gotBody.Name)
}

func TestDo_QueryParams(t *testing.T) {
	var gotQuery url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, 1)
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", url.Values{"category": {"art"}}, nil)

	require.NoError(t, err)
	assert.Equal(t, "art", gotQuery.Get("category"))
}

func TestDo_ContextCancellationStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	hc := &http.Client{}
	t.Cleanup(hc.CloseIdleConnections)
	c := New(
		WithBaseURL(srv.URL),
		WithMaxRetries(10),
		WithHTTPClient(hc),
		WithSleep(func(time.Duration) { cancel() }),
	)

	_, err := c.Do(ctx, http.MethodGet, "prompts", nil, nil)
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithMaxRetries_ClampsToOne(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, rec := newTestClient(t, srv.URL, 0)
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	assert.EqualValues(t, 1, attempts.Load())
	assert.Empty(t, rec.durations)
}

func TestWithBaseURL_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	hc := &http.Client{}
	t.Cleanup(hc.CloseIdleConnections)
	c := New(WithBaseURL(srv.URL+"/"), WithHTTPClient(hc), WithMaxRetries(1))
	_, err := c.Do(context.Background(), http.MethodGet, "prompts", nil, nil)

	require.NoError(t, err)
	assert.Equal(t, "/prompts", gotPath)
}

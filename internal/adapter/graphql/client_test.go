package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "invest", 5*time.Second, nil, zerolog.Nop())
}

func TestClientDo_SendsAuthAndProfileHeaders(t *testing.T) {
	var gotAuth, gotProfile, gotContentType string
	var gotBody request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotProfile = r.Header.Get("X-Ws-Profile")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"data":{"ok":true}}`))
	})

	var out struct {
		OK bool `json:"ok"`
	}
	err := client.Do(context.Background(), "token-1", "FetchThing", "query FetchThing { ok }", map[string]any{"id": "x"}, &out)
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "Bearer token-1", gotAuth)
	assert.Equal(t, "invest", gotProfile)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "FetchThing", gotBody.OperationName)
}

func TestClientDo_NonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	err := client.Do(context.Background(), "token-1", "FetchThing", "query", nil, nil)
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "401")
}

func TestClientDo_GraphQLErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":null,"errors":[{"message":"identity not found"}]}`))
	})
	err := client.Do(context.Background(), "token-1", "FetchThing", "query", nil, nil)
	require.ErrorIs(t, err, ErrTransport)
	assert.Contains(t, err.Error(), "identity not found")
}

func TestClientDo_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":`))
	})
	err := client.Do(context.Background(), "token-1", "FetchThing", "query", nil, nil)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestClientDo_ConnectionRefused(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "invest", time.Second, nil, zerolog.Nop())
	err := client.Do(context.Background(), "token-1", "FetchThing", "query", nil, nil)
	assert.ErrorIs(t, err, ErrTransport)
}

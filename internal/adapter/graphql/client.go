package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/eaglesemanation/wsexport/internal/infrastructure/metrics"
)

// ErrTransport marks any upstream failure: connection errors, non-2xx
// responses, malformed bodies and GraphQL-level errors. Runs abort on it
// rather than retrying.
var ErrTransport = errors.New("graphql transport error")

const profileHeader = "X-Ws-Profile"

// Client issues GraphQL operations against the brokerage API. Every request
// carries the caller's bearer token and the trade profile header.
type Client struct {
	httpClient *http.Client
	endpoint   string
	profile    string
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

// NewClient creates a GraphQL client. metrics may be nil in CLI mode.
func NewClient(endpoint, profile string, timeout time.Duration, m *metrics.Metrics, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		profile:    profile,
		metrics:    m,
		logger:     logger.With().Str("component", "graphql").Logger(),
	}
}

type request struct {
	OperationName string `json:"operationName"`
	Query         string `json:"query"`
	Variables     any    `json:"variables,omitempty"`
}

type responseError struct {
	Message string `json:"message"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []responseError `json:"errors"`
}

// Do executes one operation and decodes response.data into out.
func (c *Client) Do(ctx context.Context, token, operation, query string, variables any, out any) error {
	started := time.Now()
	err := c.do(ctx, token, operation, query, variables, out)
	c.observe(operation, started, err)
	if err != nil {
		c.logger.Error().Err(err).Str("operation", operation).Msg("graphql request failed")
	}
	return err
}

func (c *Client) do(ctx context.Context, token, operation, query string, variables any, out any) error {
	body, err := json.Marshal(request{OperationName: operation, Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrTransport, operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build %s request: %v", ErrTransport, operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(profileHeader, c.profile)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTransport, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s: unexpected status %d", ErrTransport, operation, resp.StatusCode)
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", ErrTransport, operation, err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("%w: %s: %s", ErrTransport, operation, envelope.Errors[0].Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("%w: %s: decode data: %v", ErrTransport, operation, err)
		}
	}
	return nil
}

func (c *Client) countPage(source string) {
	if c.metrics == nil {
		return
	}
	c.metrics.FeedPages.WithLabelValues(source).Inc()
}

func (c *Client) observe(operation string, started time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	c.metrics.GraphQLRequests.WithLabelValues(operation, status).Inc()
	c.metrics.GraphQLDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

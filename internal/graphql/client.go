package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jamesprial/zeabur-mcp/internal/config"
	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
)

const defaultTimeout = 30 * time.Second

const userInfoQuery = `query GetUserInfo { me { _id email } }`

// HTTPClient is the production Client. It posts {query, variables} to the
// configured endpoint with a bearer token.
type HTTPClient struct {
	httpClient *http.Client
	graphqlURL string
	token      string
	logger     zerolog.Logger
	metrics    *telemetry.Metrics
	tracer     trace.Tracer
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithLogger sets the logger used for per-request debug lines.
func WithLogger(l zerolog.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithMetrics records request counts and latencies on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// WithHTTPClient replaces the underlying *http.Client. Its Timeout is left
// untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.httpClient = hc }
}

// NewHTTPClient constructs an HTTPClient from the provided ZeaburConfig.
// It returns an error if cfg.URL is empty. When cfg.Timeout is zero or
// negative, a default timeout of 30 seconds is used. An empty token is
// accepted at construction time but will cause Execute to return an error.
func NewHTTPClient(cfg config.ZeaburConfig, opts ...Option) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("graphql: URL is required")
	}

	timeout := time.Duration(cfg.Timeout) * time.Second
	if cfg.Timeout <= 0 {
		timeout = defaultTimeout
	}

	c := &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		graphqlURL: normalizeURL(cfg.URL),
		token:      cfg.Token,
		logger:     zerolog.Nop(),
		tracer:     telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// normalizeURL trims any trailing slash from rawURL and appends /graphql if
// the path does not already end with that suffix.
func normalizeURL(rawURL string) string {
	u := strings.TrimRight(rawURL, "/")
	if !strings.HasSuffix(u, "/graphql") {
		u += "/graphql"
	}
	return u
}

var operationPattern = regexp.MustCompile(`^\s*(?:query|mutation|subscription)\s+([_A-Za-z][_0-9A-Za-z]*)`)

// OperationName returns the declared operation name of document, or
// "anonymous" for shorthand and unnamed documents.
func OperationName(document string) string {
	if m := operationPattern.FindStringSubmatch(document); m != nil {
		return m[1]
	}
	return "anonymous"
}

// graphqlRequest is the JSON body shape for a GraphQL HTTP request.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the JSON body shape for a GraphQL HTTP response.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Execute sends a GraphQL document to the configured endpoint and returns the
// raw JSON bytes of the "data" field on success. Variables may be nil, in
// which case the "variables" key is omitted from the request body.
//
// Execute returns an error if:
//   - the client was constructed without an API token
//   - the HTTP request cannot be created or sent
//   - the server responds with a non-2xx status code (*StatusError)
//   - the response body cannot be decoded as JSON
//   - the GraphQL response contains one or more errors (*RemoteError)
func (c *HTTPClient) Execute(ctx context.Context, query string, variables map[string]any) (data []byte, err error) {
	if c.token == "" {
		return nil, fmt.Errorf("graphql: API token is not configured")
	}

	op := OperationName(query)
	start := time.Now()

	ctx, span := c.tracer.Start(ctx, "graphql "+op, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(attribute.String("graphql.operation.name", op))
	defer func() {
		elapsed := time.Since(start)
		c.metrics.ObserveGraphQL(op, err, elapsed)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		c.logger.Debug().
			Str("operation", op).
			Dur("duration", elapsed).
			Err(err).
			Msg("graphql request")
	}()

	bodyBytes, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("graphql: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("graphql: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graphql: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var gqlResp graphqlResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&gqlResp)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Errors: gqlResp.Errors}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("graphql: decode response: %w", decodeErr)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, &RemoteError{Errors: gqlResp.Errors}
	}

	return []byte(gqlResp.Data), nil
}

// UserInfo returns the identity behind the configured token.
func (c *HTTPClient) UserInfo(ctx context.Context) (*UserInfo, error) {
	data, err := c.Execute(ctx, userInfoQuery, nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Me *UserInfo `json:"me"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("graphql: parse user info: %w", err)
	}
	if resp.Me == nil {
		return nil, fmt.Errorf("graphql: user info missing from response")
	}
	return resp.Me, nil
}

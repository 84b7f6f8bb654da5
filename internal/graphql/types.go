// Package graphql provides the transport to the Zeabur GraphQL API: the Client
// contract, its HTTP implementation and the typed errors callers inspect.
package graphql

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client is the transport contract every operation is written against.
// Execute returns the raw JSON of the response "data" member. A response that
// carries an errors list is reported as *RemoteError even when data is
// partially populated; a failed round trip is reported as *StatusError or a
// wrapped network error.
type Client interface {
	Execute(ctx context.Context, query string, variables map[string]any) ([]byte, error)
	UserInfo(ctx context.Context) (*UserInfo, error)
}

// UserInfo identifies the account that owns the API token.
type UserInfo struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
}

// Location is a position in the request document reported by the server.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// GraphQLError represents a single error returned in a GraphQL response.
type GraphQLError struct {
	Message    string         `json:"message"`
	Locations  []Location     `json:"locations,omitempty"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// RemoteError is returned when the API answers with a non-empty errors list.
// Its message is the JSON encoding of that list so callers can parse it back.
type RemoteError struct {
	Errors []GraphQLError
}

func (e *RemoteError) Error() string {
	return "graphql: " + encodeErrors(e.Errors)
}

// StatusError is returned when the HTTP round trip completes with a non-2xx
// status. Errors holds any GraphQL errors found in the body.
type StatusError struct {
	StatusCode int
	Errors     []GraphQLError
}

func (e *StatusError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "graphql: authentication failed (HTTP 401)"
	}
	if len(e.Errors) > 0 {
		return fmt.Sprintf("graphql: HTTP %d: %s", e.StatusCode, encodeErrors(e.Errors))
	}
	return fmt.Sprintf("graphql: unexpected HTTP status %d", e.StatusCode)
}

func encodeErrors(errs []GraphQLError) string {
	if errs == nil {
		errs = []GraphQLError{}
	}
	b, err := json.Marshal(errs)
	if err != nil {
		return fmt.Sprintf("%v", errs)
	}
	return string(b)
}

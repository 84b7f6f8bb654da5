package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Run runs document through c and returns the data payload as compact JSON.
// It is the shared body of every request-shaping operation: exactly one round
// trip, no retries, remote errors surface unchanged.
func Run(ctx context.Context, c Client, document string, variables map[string]any) (json.RawMessage, error) {
	data, err := c.Execute(ctx, document, variables)
	if err != nil {
		return nil, err
	}
	return compact(data)
}

// Decode runs document through c and unmarshals the data payload into dst.
func Decode(ctx context.Context, c Client, document string, variables map[string]any, dst any) error {
	data, err := c.Execute(ctx, document, variables)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("graphql: parse response: %w", err)
	}
	return nil
}

func compact(data []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage("null"), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("graphql: invalid response payload: %w", err)
	}
	return json.RawMessage(buf.Bytes()), nil
}

package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
)

const (
	serverMetricsQuery = `query ServerMetrics(
  $serverID: ObjectID!
  $type: MetricType!
  $startTime: Time!
  $endTime: Time!
) {
  server(_id: $serverID) {
    metrics(metricType: $type, startTime: $startTime, endTime: $endTime) {
      labels
      values {
        timestamp
        value
      }
    }
  }
}`
	serviceMetricsQuery = `query ServiceMetrics(
  $projectID: ObjectID!
  $serviceID: ObjectID!
  $environmentID: ObjectID!
  $type: MetricType!
  $startTime: Time!
  $endTime: Time!
) {
  service(_id: $serviceID) {
    metrics(projectID: $projectID, environmentID: $environmentID, metricType: $type, startTime: $startTime, endTime: $endTime) {
      metrics {
        timestamp
        value
      }
    }
  }
}`
)

// GraphQLReader implements Reader over a graphql.Client.
type GraphQLReader struct {
	client graphql.Client
	now    func() time.Time
}

// Option customises a GraphQLReader.
type Option func(*GraphQLReader)

// WithClock replaces the clock used for default time ranges.
func WithClock(now func() time.Time) Option {
	return func(r *GraphQLReader) { r.now = now }
}

// NewReader returns a GraphQLReader. It panics if client is nil.
func NewReader(client graphql.Client, opts ...Option) *GraphQLReader {
	if client == nil {
		panic("metrics: NewReader called with nil client")
	}
	r := &GraphQLReader{client: client, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ Reader = (*GraphQLReader)(nil)

func (r *GraphQLReader) ServerMetrics(ctx context.Context, in ServerMetricsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	start, end := r.window(in.StartTime, in.EndTime)
	data, err := graphql.Run(ctx, r.client, serverMetricsQuery, map[string]any{
		"serverID":  in.ServerID,
		"type":      in.Type,
		"startTime": start,
		"endTime":   end,
	})
	if err != nil {
		return nil, fmt.Errorf("metrics server %s: %w", in.ServerID, err)
	}
	return data, nil
}

func (r *GraphQLReader) ServiceMetrics(ctx context.Context, in ServiceMetricsInput) (json.RawMessage, error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}
	start, end := r.window(in.StartTime, in.EndTime)
	data, err := graphql.Run(ctx, r.client, serviceMetricsQuery, map[string]any{
		"projectID":     in.ProjectID,
		"serviceID":     in.ServiceID,
		"environmentID": in.EnvironmentID,
		"type":          in.Type,
		"startTime":     start,
		"endTime":       end,
	})
	if err != nil {
		return nil, fmt.Errorf("metrics service %s: %w", in.ServiceID, err)
	}
	return data, nil
}

// window fills in whichever bound is missing: one hour ago for the start
// and now for the end.
func (r *GraphQLReader) window(start, end string) (string, string) {
	now := r.now().UTC()
	if start == "" {
		start = now.Add(-DefaultWindow).Format(time.RFC3339)
	}
	if end == "" {
		end = now.Format(time.RFC3339)
	}
	return start, end
}

// Package metrics queries resource usage time series of dedicated servers
// and services.
package metrics

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultWindow is the range queried when no start time is given.
const DefaultWindow = time.Hour

// ServerMetricsInput selects a server metric over a time range. Times are
// RFC 3339. An empty StartTime means one hour ago and an empty EndTime means
// now.
type ServerMetricsInput struct {
	ServerID  string `json:"serverID" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=CPU MEMORY NETWORK DISK LATENCY"`
	StartTime string `json:"startTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime   string `json:"endTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// ServiceMetricsInput selects a service metric in one environment.
type ServiceMetricsInput struct {
	ProjectID     string `json:"projectID" validate:"required"`
	ServiceID     string `json:"serviceID" validate:"required"`
	EnvironmentID string `json:"environmentID" validate:"required"`
	Type          string `json:"type" validate:"required,oneof=CPU MEMORY NETWORK"`
	StartTime     string `json:"startTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndTime       string `json:"endTime,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// Reader is the metrics contract consumed by the MCP tools.
type Reader interface {
	ServerMetrics(ctx context.Context, in ServerMetricsInput) (json.RawMessage, error)
	ServiceMetrics(ctx context.Context, in ServiceMetricsInput) (json.RawMessage, error)
}

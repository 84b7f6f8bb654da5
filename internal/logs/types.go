// Package logs reads build logs, runtime logs and deployment history.
package logs

import (
	"context"
	"encoding/json"
)

// Default page sizes.
const (
	DefaultLogLimit        = 100
	DefaultDeploymentLimit = 10
)

// BuildLogsInput selects the build logs of a deployment.
type BuildLogsInput struct {
	DeploymentID string `json:"deploymentId" validate:"required"`
	Limit        int    `json:"limit" validate:"gt=0"`
}

func (in *BuildLogsInput) Defaults() { in.Limit = DefaultLogLimit }

// RuntimeLogsInput selects the runtime logs of a service in an environment.
type RuntimeLogsInput struct {
	ServiceID     string `json:"serviceId" validate:"required"`
	EnvironmentID string `json:"environmentId" validate:"required"`
	Limit         int    `json:"limit" validate:"gt=0"`
}

func (in *RuntimeLogsInput) Defaults() { in.Limit = DefaultLogLimit }

// DeploymentsInput selects the most recent deployments of a service.
type DeploymentsInput struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Limit     int    `json:"limit" validate:"gt=0"`
}

func (in *DeploymentsInput) Defaults() { in.Limit = DefaultDeploymentLimit }

// Reader is the log access contract consumed by the MCP tools. Results are
// the API's data payload.
type Reader interface {
	BuildLogs(ctx context.Context, in BuildLogsInput) (json.RawMessage, error)
	RuntimeLogs(ctx context.Context, in RuntimeLogsInput) (json.RawMessage, error)
	Deployments(ctx context.Context, in DeploymentsInput) (json.RawMessage, error)
}

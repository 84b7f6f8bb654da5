// Package status waits for Zeabur services to reach RUNNING by polling their
// status until they all run, one of them fails, or the time budget runs out.
package status

import (
	"context"
)

// Status is the deployment status reported for a service.
type Status string

const (
	StatusRunning    Status = "RUNNING"
	StatusCrashed    Status = "CRASHED"
	StatusPullFailed Status = "PULL_FAILED"
	StatusBuilding   Status = "BUILDING"
	StatusPending    Status = "PENDING"
	StatusStarting   Status = "STARTING"
	StatusSuspended  Status = "SUSPENDED"
	StatusStopping   Status = "STOPPING"
	StatusUnknown    Status = "UNKNOWN"
)

// Failed reports whether s ends a wait immediately.
func (s Status) Failed() bool {
	return s == StatusCrashed || s == StatusPullFailed
}

// unknownName is reported for services the API does not return.
const unknownName = "Unknown"

// Defaults applied to WaitInput.
const (
	DefaultTimeoutMS      = 300000
	DefaultPollIntervalMS = 5000
)

// ServiceStatus is one service's status as observed in a single poll.
type ServiceStatus struct {
	ServiceID   string `json:"serviceId"`
	ServiceName string `json:"serviceName"`
	Status      Status `json:"status"`
}

// WaitResult is the verdict of a wait. Timeouts and service failures are
// reported here with Success false, never as errors.
type WaitResult struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	ElapsedTime    int64           `json:"elapsedTime"`
	Services       []ServiceStatus `json:"services"`
	FailedServices []ServiceStatus `json:"failedServices"`
}

// WaitInput configures a wait. Durations are in milliseconds.
type WaitInput struct {
	ServiceIDs   []string `json:"serviceIds" validate:"required,min=1,dive,required"`
	Timeout      int64    `json:"timeout" validate:"gt=0,gtefield=PollInterval"`
	PollInterval int64    `json:"pollInterval" validate:"gt=0"`
}

// Defaults sets the default timeout and poll interval.
func (in *WaitInput) Defaults() {
	in.Timeout = DefaultTimeoutMS
	in.PollInterval = DefaultPollIntervalMS
}

// Waiter is the status-polling contract consumed by the MCP tools.
type Waiter interface {
	// Status fetches the current status of one service.
	Status(ctx context.Context, serviceID string) (ServiceStatus, error)
	// Wait polls until every service runs, any service fails, or the
	// timeout elapses. Errors are reserved for invalid input, transport
	// failures and cancellation.
	Wait(ctx context.Context, in WaitInput) (*WaitResult, error)
}

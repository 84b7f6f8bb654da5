package status

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/jamesprial/zeabur-mcp/internal/graphql"
	"github.com/jamesprial/zeabur-mcp/internal/schema"
	"github.com/jamesprial/zeabur-mcp/internal/telemetry"
)

const getServiceStatusQuery = `query GetServiceStatus($id: ObjectID!) {
  service(_id: $id) {
    _id
    name
    status
  }
}`

// Outcome label values recorded on the wait outcome counter.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeTimedOut  = "timed_out"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
)

// SleepFunc blocks for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Engine implements Waiter over a graphql.Client.
type Engine struct {
	client  graphql.Client
	now     func() time.Time
	sleep   SleepFunc
	metrics *telemetry.Metrics
	tracer  trace.Tracer
}

// Option customises an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock and the sleep between rounds.
func WithClock(now func() time.Time, sleep SleepFunc) Option {
	return func(e *Engine) {
		e.now = now
		e.sleep = sleep
	}
}

// WithMetrics records rounds and outcomes on m.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine returns an Engine backed by client. It panics if client is nil.
func NewEngine(client graphql.Client, opts ...Option) *Engine {
	if client == nil {
		panic("status: NewEngine called with nil client")
	}
	e := &Engine{
		client: client,
		now:    time.Now,
		sleep:  sleepContext,
		tracer: telemetry.Tracer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var _ Waiter = (*Engine)(nil)

// Status fetches the current status of one service. A missing service, or one
// without a name or status, is reported with the Unknown placeholders.
func (e *Engine) Status(ctx context.Context, serviceID string) (ServiceStatus, error) {
	var resp struct {
		Service *struct {
			ID     string `json:"_id"`
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"service"`
	}
	if err := graphql.Decode(ctx, e.client, getServiceStatusQuery, map[string]any{"id": serviceID}, &resp); err != nil {
		return ServiceStatus{}, fmt.Errorf("status get %s: %w", serviceID, err)
	}

	out := ServiceStatus{ServiceID: serviceID, ServiceName: unknownName, Status: StatusUnknown}
	if resp.Service == nil {
		return out, nil
	}
	if resp.Service.Name != "" {
		out.ServiceName = resp.Service.Name
	}
	if resp.Service.Status != "" {
		out.Status = Status(resp.Service.Status)
	}
	return out, nil
}

// Wait polls the services in in.ServiceIDs. Each round fetches every status
// concurrently and classifies the round only once all fetches have returned.
// The deadline is checked before each round; once it has passed, one final
// round is fetched and reported as a timeout. Between rounds the engine
// sleeps for exactly one poll interval.
func (e *Engine) Wait(ctx context.Context, in WaitInput) (_ *WaitResult, retErr error) {
	if err := schema.Validate(&in); err != nil {
		return nil, err
	}

	ctx, span := e.tracer.Start(ctx, "status.Wait", trace.WithAttributes(
		attribute.Int("zeabur.services", len(in.ServiceIDs)),
		attribute.Int64("zeabur.timeout_ms", in.Timeout),
		attribute.Int64("zeabur.poll_interval_ms", in.PollInterval),
	))
	outcome := OutcomeError
	defer func() {
		e.metrics.ObserveWaitOutcome(outcome)
		span.SetAttributes(attribute.String("zeabur.outcome", outcome))
		if retErr != nil {
			span.RecordError(retErr)
			span.SetStatus(codes.Error, retErr.Error())
		}
		span.End()
	}()

	logger := zerolog.Ctx(ctx)
	start := e.now()
	interval := time.Duration(in.PollInterval) * time.Millisecond

	for round := 1; ; round++ {
		elapsed := e.now().Sub(start).Milliseconds()

		services, err := e.fetchRound(ctx, in.ServiceIDs)
		if err != nil {
			if ctx.Err() != nil {
				outcome = OutcomeCancelled
			}
			return nil, err
		}
		logger.Debug().
			Int("round", round).
			Int64("elapsed_ms", elapsed).
			Str("statuses", summarize(services)).
			Msg("status poll")

		if elapsed >= in.Timeout {
			outcome = OutcomeTimedOut
			return &WaitResult{
				Success:        false,
				Message:        fmt.Sprintf("Timeout after %dms. Some services did not reach RUNNING status.", elapsed),
				ElapsedTime:    elapsed,
				Services:       services,
				FailedServices: filter(services, func(s ServiceStatus) bool { return s.Status != StatusRunning }),
			}, nil
		}

		if failed := filter(services, func(s ServiceStatus) bool { return s.Status.Failed() }); len(failed) > 0 {
			outcome = OutcomeFailed
			return &WaitResult{
				Success:        false,
				Message:        "Service(s) failed: " + summarize(failed),
				ElapsedTime:    elapsed,
				Services:       services,
				FailedServices: failed,
			}, nil
		}

		if len(filter(services, func(s ServiceStatus) bool { return s.Status != StatusRunning })) == 0 {
			outcome = OutcomeSucceeded
			return &WaitResult{
				Success:        true,
				Message:        fmt.Sprintf("All services are now running after %dms", elapsed),
				ElapsedTime:    elapsed,
				Services:       services,
				FailedServices: []ServiceStatus{},
			}, nil
		}

		if err := e.sleep(ctx, interval); err != nil {
			outcome = OutcomeCancelled
			return nil, fmt.Errorf("status wait: %w", err)
		}
	}
}

// fetchRound fetches all statuses concurrently. Results keep the order of
// ids; the first error fails the whole round.
func (e *Engine) fetchRound(ctx context.Context, ids []string) ([]ServiceStatus, error) {
	e.metrics.ObserveWaitRound()

	services := make([]ServiceStatus, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			s, err := e.Status(gctx, id)
			if err != nil {
				return err
			}
			services[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return services, nil
}

func filter(services []ServiceStatus, keep func(ServiceStatus) bool) []ServiceStatus {
	out := []ServiceStatus{}
	for _, s := range services {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func summarize(services []ServiceStatus) string {
	parts := make([]string, 0, len(services))
	for _, s := range services {
		parts = append(parts, fmt.Sprintf("%s (%s)", s.ServiceName, s.Status))
	}
	return strings.Join(parts, ", ")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package remote

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/s22625/agentcli/internal/model"
)

const (
	// DefaultPollInterval is the fixed delay between status checks.
	DefaultPollInterval = 3 * time.Second

	// DefaultMaxConsecutiveFailures bounds how long a degraded remote is
	// tolerated before the loop gives up. Any successful check resets the
	// counter. Failed checks are classified by recoverability alone; a 500
	// and a refused connection count the same.
	DefaultMaxConsecutiveFailures = 5
)

// PollUpdate is one observation delivered to the caller's display between
// attempts. Either Status or Err is set.
type PollUpdate struct {
	Status *model.RequestStatus
	Err    error
}

// Poller repeatedly checks a submitted request until it reaches a terminal
// status, the context is cancelled, or the failure budget runs out.
type Poller struct {
	client                 *Client
	interval               time.Duration
	maxConsecutiveFailures int
	log                    *zap.Logger
}

// NewPoller creates a poller with the default interval and failure budget.
func NewPoller(client *Client, log *zap.Logger) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{
		client:                 client,
		interval:               DefaultPollInterval,
		maxConsecutiveFailures: DefaultMaxConsecutiveFailures,
		log:                    log,
	}
}

// WithInterval overrides the delay between attempts.
func (p *Poller) WithInterval(d time.Duration) *Poller {
	p.interval = d
	return p
}

// WithFailureBudget overrides the consecutive-failure limit.
func (p *Poller) WithFailureBudget(n int) *Poller {
	p.maxConsecutiveFailures = n
	return p
}

// Poll drives the status loop for requestID. Every attempt, successful or
// not, is reported through observe so the caller can keep a status line
// current. On a terminal status the final observation is returned. Context
// cancellation returns ctx.Err(); the remote job itself keeps running.
func (p *Poller) Poll(ctx context.Context, requestID string, observe func(PollUpdate)) (*model.RequestStatus, error) {
	if observe == nil {
		observe = func(PollUpdate) {}
	}

	failures := 0
	var lastErr error

	for {
		status, err := p.client.Status(ctx, requestID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}

			failures++
			lastErr = err
			observe(PollUpdate{Err: err})
			p.log.Warn("status check failed",
				zap.String("request_id", requestID),
				zap.Int("consecutive_failures", failures),
				zap.Error(err))

			if failures >= p.maxConsecutiveFailures {
				return nil, &PollExhaustedError{Attempts: failures, Err: lastErr}
			}
		} else {
			failures = 0
			observe(PollUpdate{Status: status})

			if status.Terminal() {
				p.log.Info("request reached terminal status",
					zap.String("request_id", requestID),
					zap.String("status", string(status.Status)))
				return status, nil
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.interval):
		}
	}
}

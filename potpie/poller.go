package potpie

import (
	"context"
	"log"
	"time"
)

// Defaults for the readiness poll loop. Callers supply their own per
// invocation; these match the API's typical minutes-scale parse duration.
const (
	DefaultReadyTimeout = 5 * time.Minute
	DefaultPollInterval = 10 * time.Second
)

// clock abstracts wall-clock time so poll deadlines and intervals are
// deterministic under test.
type clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

type statusFunc func(ctx context.Context) (ParsingStatus, error)

// waitForReady converts a one-shot status fetch into a blocking
// wait-for-terminal-state operation: fetch, return on "ready", fail with
// *TimeoutError once the deadline has passed, otherwise sleep one fixed
// interval and fetch again. No backoff, no jitter.
func waitForReady(ctx context.Context, projectID string, fetch statusFunc, timeout, interval time.Duration, clk clock) (ParsingStatus, error) {
	start := clk.Now()
	for {
		status, err := fetch(ctx)
		if err != nil {
			return ParsingStatus{}, err
		}
		if status.Ready() {
			return status, nil
		}
		elapsed := clk.Now().Sub(start)
		if elapsed >= timeout {
			log.Printf("[potpie] timeout waiting for project %s to become ready", projectID)
			return ParsingStatus{}, &TimeoutError{ProjectID: projectID, Elapsed: elapsed, Limit: timeout}
		}
		log.Printf("[potpie] project %s status is %q, waiting...", projectID, status.Status)
		if err := clk.Sleep(ctx, interval); err != nil {
			return ParsingStatus{}, err
		}
	}
}

// WaitForReady polls the parsing status of a project until it reaches the
// "ready" state or timeout elapses. A zero or negative timeout means the
// first non-ready fetch already fails with *TimeoutError.
func (c *Client) WaitForReady(ctx context.Context, projectID string, timeout, interval time.Duration) (ParsingStatus, error) {
	fetch := func(ctx context.Context) (ParsingStatus, error) {
		return c.GetParsingStatus(ctx, projectID)
	}
	return waitForReady(ctx, projectID, fetch, timeout, interval, c.clock)
}

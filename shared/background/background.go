package background

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

const drainTimeout = 15 * time.Second

// Group runs fire-and-forget work detached from the request and lets shutdown wait for it.
type Group struct {
	group errgroup.Group
}

func New() *Group {
	return &Group{}
}

// Go runs task in its own goroutine. Tasks report their own failures.
func (g *Group) Go(task func()) {
	g.group.Go(func() error {
		task()

		return nil
	})
}

// Wait blocks until every started task has returned or ctx is done.
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		_ = g.group.Wait()

		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}
}

// Close drains pending tasks, giving up after drainTimeout.
func (g *Group) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	return g.Wait(ctx)
}

package pipeline

import (
	"context"
	"sync"

	"github.com/diagramd/diagramd/pkg/graph"
)

// Latest implements the "last request wins" calling convention for layout
// requests coming from an interactive caller, typically a UI event loop that
// must stay responsive while layouts of large graphs compute.
//
// Each call to Do supersedes the previous one: the superseded computation's
// context is cancelled and its result is discarded rather than delivered.
// The engine itself stays oblivious - it has no state to cancel - so
// supersession is implemented entirely on the caller side, here.
//
// A Latest value must not be copied after first use.
type Latest struct {
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// Do starts compute in a new goroutine and arranges for deliver to be called
// with its result - unless a newer Do call supersedes it first, in which
// case the result is dropped silently.
//
// deliver is called from the computation goroutine; callers that need
// results on a particular goroutine (an event loop, say) should hand them
// off inside deliver.
func (l *Latest) Do(ctx context.Context, compute func(context.Context) (graph.Graph, error), deliver func(graph.Graph, error)) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	ticket := l.seq
	l.mu.Unlock()

	go func() {
		defer cancel()
		out, err := compute(ctx)

		l.mu.Lock()
		superseded := ticket != l.seq
		l.mu.Unlock()
		if superseded {
			return
		}
		deliver(out, err)
	}()
}

// Stop cancels the in-flight computation, if any. Its result will still be
// delivered unless a later Do call superseded it; call Stop only when no
// further delivery is wanted and the context cancellation will make the
// computation return promptly.
func (l *Latest) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.seq++
}

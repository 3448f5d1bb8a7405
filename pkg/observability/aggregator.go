package observability

import (
	"context"
	"sync"
)

// Watcher exposes a stream of transition events, typically one per
// Evaluator instance.
type Watcher interface {
	Watch(ctx context.Context) <-chan TransitionEvent
}

// WatcherFunc adapts a plain function to Watcher.
type WatcherFunc func(ctx context.Context) <-chan TransitionEvent

func (f WatcherFunc) Watch(ctx context.Context) <-chan TransitionEvent { return f(ctx) }

// Aggregator fans multiple watchers' transition streams into one
// channel, for a host that wants a single audit stream across many
// Evaluator instances rather than wiring LifecycleHooks per instance.
type Aggregator struct {
	watchers []Watcher
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// AddWatcher registers a watcher whose events should be merged in.
func (a *Aggregator) AddWatcher(w Watcher) {
	a.watchers = append(a.watchers, w)
}

// Watch merges every registered watcher's channel into one, closing
// the result once ctx is done or every source channel has closed.
func (a *Aggregator) Watch(ctx context.Context) <-chan TransitionEvent {
	out := make(chan TransitionEvent)
	var wg sync.WaitGroup
	wg.Add(len(a.watchers))

	for _, w := range a.watchers {
		go func(w Watcher) {
			defer wg.Done()
			src := w.Watch(ctx)
			for {
				select {
				case ev, ok := <-src:
					if !ok {
						return
					}
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}
		}(w)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

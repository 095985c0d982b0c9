// Package dispatch provides marshallers for hoot.Aggregator.Publish.
//
// A marshaller accepts one unit of work and decides where and when it runs. The aggregator
// makes no assumption beyond "at most once", so the choice of marshaller fully determines
// the threading behavior of a publish:
//
//   - Inline runs the delivery on the publishing goroutine; Publish returns after every
//     handler returned.
//   - Go runs each delivery on a fresh goroutine.
//   - Pool runs deliveries on a bounded set of worker goroutines.
//   - Loop runs deliveries one at a time on a single designated goroutine, the way a UI
//     toolkit runs everything on its UI thread.
//   - Recover wraps any of the above so that a panicking handler is reported instead of
//     tearing down the goroutine it runs on.
//
// Example:
//
//	pool := dispatch.NewPool(dispatch.PoolConfig{Workers: 4, QueueSize: 256})
//	defer pool.Shutdown(ctx)
//
//	if err := agg.Publish(OrderPlaced{ID: "o-1"}, pool.Marshal); err != nil {
//	    return err
//	}
package dispatch

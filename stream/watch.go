package stream

import (
	"context"

	Logger "github.com/Luismorlan/choirmux/utils/log"
)

// Watch emits the result of query, a full snapshot such as every row of a
// table matching a filter, right away, then again after every change
// notice on topic. The returned channel is closed when ctx is done or the bus
// is closed. A failing query is logged and skipped, the stream stays open.
//
// An unread snapshot is replaced by the next one, so a slow reader sees the
// latest state instead of a backlog.
func Watch[T any](ctx context.Context, bus *Bus, topic string, query func(ctx context.Context) (T, error)) (<-chan T, error) {
	// Subscribe before the first query so that no change slips in between.
	notices, err := bus.Subscribe(ctx, topic)
	if err != nil {
		return nil, err
	}

	out := make(chan T, 1)
	go func() {
		defer close(out)

		emit := func() bool {
			snapshot, err := query(ctx)
			if err != nil {
				if ctx.Err() == nil {
					Logger.Log.WithError(err).Errorf("fail to query snapshot for %s", topic)
				}
				return true
			}
			// Drop a stale, unread snapshot in favor of the fresh one.
			select {
			case <-out:
			default:
			}
			select {
			case out <- snapshot:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !emit() {
			return
		}
		for msg := range notices {
			msg.Ack()
			if !emit() {
				return
			}
		}
	}()

	return out, nil
}

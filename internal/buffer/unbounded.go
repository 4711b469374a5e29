package buffer

import "log/slog"

// Unbounded creates a channel buffer that grows as needed.
// It returns a write-only channel to feed lines in, and a read-only channel to read them out.
//
// initialCap: The starting size of the backing slice.
// hardLimit: The maximum number of items to buffer before dropping the oldest.
// logger: Receives a warning for every dropped item. May be nil.
//
// Usage:
//
//	in, out := buffer.Unbounded[string](100, 50000, nil)
//	in <- "hello"
//	line := <-out
func Unbounded[T any](initialCap, hardLimit int, logger *slog.Logger) (chan<- T, <-chan T) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	in := make(chan T, 10)
	out := make(chan T, 10)

	go func() {
		defer close(out)

		queue := make([]T, 0, initialCap)
		dropped := 0

		for {
			var next T
			var downstream chan T

			// Only offer a value downstream when one is queued.
			if len(queue) > 0 {
				next = queue[0]
				downstream = out
			}

			select {
			case val, ok := <-in:
				if !ok {
					// Input closed. Flush what is left, then exit.
					for _, item := range queue {
						out <- item
					}
					return
				}

				// A stalled reader must not grow the queue forever.
				if len(queue) >= hardLimit {
					dropped++
					logger.Warn("buffer limit reached, dropping oldest item",
						"limit", hardLimit,
						"dropped", dropped,
					)
					queue = queue[1:]
				}

				queue = append(queue, val)

			case downstream <- next:
				queue = queue[1:]
			}
		}
	}()

	return in, out
}

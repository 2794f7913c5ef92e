package transport

import (
	"context"
	"fmt"
)

const (
	// streamInitialCursor is the literal cursor value that asks the
	// server for the first page of a collection.
	streamInitialCursor = "------------"
	// streamPageSize is the page size requested on every call.
	streamPageSize = 1000
	// streamBufferSize decouples the page fetcher from the consumer.
	streamBufferSize = 4 * streamPageSize
)

// Item is one element of a paginated stream, or the terminal error that
// ended it.
type Item[T any] struct {
	Value T
	Err   error
}

// Stream lazily fetches req's list path page by page, 1000 elements at a
// time, and feeds every element into a buffered channel. The fetcher runs
// in its own goroutine; if the consumer stops draining the channel (and
// the context is cancelled), the fetcher exits at its next send. cursorOf
// extracts the pagination cursor (an entity's id[1]) from the last
// element of a page.
func Stream[T any](ctx context.Context, client *Client, req Request, cursorOf func(T) string) <-chan Item[T] {
	out := make(chan Item[T], streamBufferSize)

	go func() {
		defer close(out)

		cursor := streamInitialCursor
		for {
			var page []T
			pageReq := req.
				WithQuery("start", cursor).
				WithQuery("count", fmt.Sprintf("%d", streamPageSize)).
				WithQuery("reverse", "false")

			if err := client.Do(ctx, pageReq, &page); err != nil {
				select {
				case out <- Item[T]{Err: fmt.Errorf("transport: stream: %w", err)}:
				case <-ctx.Done():
				}
				return
			}

			if len(page) == 0 {
				return
			}

			for _, element := range page {
				select {
				case out <- Item[T]{Value: element}:
				case <-ctx.Done():
					return
				}
			}

			cursor = cursorOf(page[len(page)-1])
		}
	}()

	return out
}

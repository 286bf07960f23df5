package futures

import (
	"context"

	"github.com/abevier/settle/results"
)

// ResolveAll waits for every provided Future to complete and returns a results.Result for each
// one at the index of its Future.  Failed futures are reported in their Result, not as the error.
// The error is only non-nil when ctx is done before every future has completed.
func ResolveAll[T any](ctx context.Context, fs []*Future[T]) ([]results.Result[T], error) {
	res := make([]results.Result[T], len(fs))

	for i, f := range fs {
		select {
		case <-f.Done():
		case <-ctx.Done():
			return nil, ctx.Err()
		}

		// f is complete, Get does not block
		v, err := f.Get(context.Background())
		res[i] = results.New(v, err)
	}

	return res, nil
}

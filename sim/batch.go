package sim

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/thompson/nfa"
)

// AcceptsEach reports, for every input, whether anfa accepts it.
//
// Inputs are split into contiguous chunks across up to workers goroutines,
// each running its own Simulator over the shared automaton; workers < 1
// means runtime.GOMAXPROCS(0). The automaton must not be modified during
// the call. Cancelling ctx stops the run and returns ctx's error.
func AcceptsEach(ctx context.Context, anfa *nfa.ANFA, inputs []string, workers int) ([]bool, error) {
	if !anfa.IsFinalized() {
		return nil, ErrNotFinalized
	}
	results := make([]bool, len(inputs))
	if len(inputs) == 0 {
		return results, nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(inputs))
	chunk := (len(inputs) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(inputs); lo += chunk {
		hi := min(lo+chunk, len(inputs))
		g.Go(func() error {
			s, err := New(anfa)
			if err != nil {
				return err
			}
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i] = s.Accepts(inputs[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

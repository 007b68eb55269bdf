package sweep

import (
	"context"
	"iter"

	mapsutil "github.com/projectdiscovery/utils/maps"
	syncutil "github.com/projectdiscovery/utils/sync"
)

// DefaultConcurrency caps simultaneously in-flight probes.
const DefaultConcurrency = 100

// Scanner fans out liveness probes over a host sequence with a hard ceiling
// on in-flight probes. Each address is probed exactly once; probes that fail
// or time out simply contribute no result.
type Scanner struct {
	Prober      Prober
	Concurrency int
}

// Scan probes every address in hosts and returns the alive subset in
// unspecified order. It blocks until every scheduled probe has completed.
// Cancelling ctx stops admission of new probes; addresses collected so far
// are still returned.
func (s *Scanner) Scan(ctx context.Context, hosts iter.Seq[Address]) ([]Address, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	// The sized wait group doubles as the admission gate: Add blocks while
	// the configured number of probes is in flight.
	awg, err := syncutil.New(syncutil.WithSize(concurrency))
	if err != nil {
		return nil, err
	}

	alive := mapsutil.NewSyncLockMap[Address, struct{}]()

loop:
	for addr := range hosts {
		select {
		case <-ctx.Done():
			break loop
		default:
		}

		awg.Add()
		go func(addr Address) {
			defer awg.Done()

			if s.Prober.Probe(ctx, addr) {
				_ = alive.Set(addr, struct{}{})
			}
		}(addr)
	}

	awg.Wait()

	var result []Address
	_ = alive.Iterate(func(addr Address, _ struct{}) error {
		result = append(result, addr)
		return nil
	})
	return result, nil
}

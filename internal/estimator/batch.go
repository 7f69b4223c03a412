package estimator

import (
	"sync"

	"github.com/beamcost/beamcost/internal/model"
)

// Result is the outcome for one schema in a batch: either a quote or a
// classified error, never both.
type Result struct {
	Schema string
	Quote  model.Quote
	Err    error
}

// EstimateBatch prices independent schemas concurrently on a bounded
// worker pool. Results come back in input order, and a failure in one
// schema never affects the others. workers below 1 is treated as 1.
func EstimateBatch(schemas []*model.Schema, cfg model.CostConfig, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	if workers > len(schemas) {
		workers = len(schemas)
	}

	results := make([]Result, len(schemas))
	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := schemas[i]
				quote, err := Estimate(s, cfg)
				results[i] = Result{Schema: s.Name, Quote: quote, Err: err}
			}
		}()
	}

	for i := range schemas {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

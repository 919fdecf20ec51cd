// Package batch provides an optional convenience executor for running
// independent credential pipelines concurrently. The cryptographic core
// in tiac, tiac/dkg, and tiac/credential is a library of pure functions;
// nothing in this package is required to use it, and nothing here touches
// shared mutable state beyond the Params each job reads.
package batch

import (
	"sync"

	"github.com/rs/zerolog"
)

// Job is one unit of independent work — in this domain, typically one
// voter's full Prepare→BlindSign→Unblind→Aggregate→Prove pipeline. Job
// implementations must not share mutable state across goroutines; Params,
// MasterVerKey, and EAKey values are safe to read concurrently because
// they are immutable after construction.
type Job func() error

// Run executes every job concurrently and waits for all of them to
// finish, collecting every error (not just the first) since a batch of
// independent voters should report every individual failure rather than
// stopping at one. The returned slice has the same length and order as
// jobs; a nil entry means that job succeeded.
func Run(log zerolog.Logger, jobs []Job) []error {
	results := make([]error, len(jobs))

	var wg sync.WaitGroup
	wg.Add(len(jobs))

	for i, job := range jobs {
		i, job := i, job
		go func() {
			defer wg.Done()
			if err := job(); err != nil {
				log.Warn().Int("job", i).Err(err).Msg("batch job failed")
				results[i] = err
				return
			}
			log.Debug().Int("job", i).Msg("batch job succeeded")
		}()
	}

	wg.Wait()
	return results
}

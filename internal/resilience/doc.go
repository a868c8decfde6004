// Package resilience holds the fault tolerance helpers used around the
// content repository.
//
//   - circuitbreaker: a gobreaker wrapper guarding content reads
//   - retry: exponential backoff with jitter, used by the health probe
//
// Content reads are attempted once; a failed read is reported to the caller
// rather than retried.
//
//	cb := circuitbreaker.New(circuitbreaker.ContentRepositoryConfig())
//	_, err := cb.Execute(func() (interface{}, error) {
//	    return client.Get(ctx, "visions", query)
//	})
package resilience

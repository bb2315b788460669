// Package bench runs the batched parse-and-time passes over the two
// serialized forms of the same generated dataset and renders the results
// as a plain-text report plus a JSON-LD run manifest.
//
// Measurement is single-threaded and sequential: one format is benchmarked
// fully before the other begins, batches are processed in generation order,
// and a pass either completes with full totals or fails — partial results
// are never reported.
package bench

package bench

import "time"

// BatchStat records one measured batch of consecutive members.
type BatchStat struct {
	// Index is the 0-based batch number.
	Index int
	// Members is the number of members parsed in the batch.
	Members int
	// Quads is the member payload quad count of the batch.
	Quads int
	// Elapsed is the wall-clock time spent parsing the batch.
	Elapsed time.Duration
}

// Result aggregates one benchmark pass over a single serialization format.
type Result struct {
	// Label names the pass in the report.
	Label string
	// InitialLoad is the one-time upfront cost paid before any member can
	// be yielded. It is excluded from batch throughput.
	InitialLoad time.Duration
	// HasInitialLoad reports whether InitialLoad is meaningful for this
	// format.
	HasInitialLoad bool
	// Batches holds the per-batch measurements in processing order.
	Batches []BatchStat
}

// TotalMembers returns the member count summed over all batches.
func (r *Result) TotalMembers() int {
	total := 0
	for _, b := range r.Batches {
		total += b.Members
	}
	return total
}

// TotalQuads returns the quad count summed over all batches.
func (r *Result) TotalQuads() int {
	total := 0
	for _, b := range r.Batches {
		total += b.Quads
	}
	return total
}

// TotalTime returns the sum of batch times, excluding any initial load.
func (r *Result) TotalTime() time.Duration {
	var total time.Duration
	for _, b := range r.Batches {
		total += b.Elapsed
	}
	return total
}

// MembersPerSecond returns batch throughput in members per second.
// An empty or instantaneous pass reports zero rather than dividing by zero.
func (r *Result) MembersPerSecond() float64 {
	return rate(float64(r.TotalMembers()), r.TotalTime())
}

// QuadsPerSecond returns batch throughput in quads per second.
func (r *Result) QuadsPerSecond() float64 {
	return rate(float64(r.TotalQuads()), r.TotalTime())
}

func rate(count float64, elapsed time.Duration) float64 {
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return 0
	}
	return count / seconds
}

package bench

import (
	"fmt"
	"io"
	"os"
)

// reportSampleBatches is how many per-batch lines each pass prints.
const reportSampleBatches = 3

// WriteReport prints benchmark results in a compact plain-text layout:
// per-format header, the one-time initial load when present, aggregate
// totals, throughput, then a sample of per-batch lines.
func WriteReport(w io.Writer, results ...*Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "\n=== %s ===\n", r.Label); err != nil {
			return err
		}
		if r.HasInitialLoad {
			fmt.Fprintf(w, "Initial load time (not batched): %.4fs\n", r.InitialLoad.Seconds())
		}
		fmt.Fprintf(w, "Total members processed in batches: %d\n", r.TotalMembers())
		fmt.Fprintf(w, "Total quads processed in batches:   %d\n", r.TotalQuads())
		fmt.Fprintf(w, "Sum of batch times:                 %.4fs\n", r.TotalTime().Seconds())
		fmt.Fprintf(w, "Throughput (members/s):             %.2f\n", r.MembersPerSecond())
		fmt.Fprintf(w, "Throughput (quads/s):               %.2f\n", r.QuadsPerSecond())
		for i, b := range r.Batches {
			if i == reportSampleBatches {
				break
			}
			fmt.Fprintf(w, "Batch %d: members=%d, quads=%d, time=%.4fs\n", b.Index, b.Members, b.Quads, b.Elapsed.Seconds())
		}
	}
	return nil
}

// ArtifactSize holds the on-disk footprint of one serialized artifact.
type ArtifactSize struct {
	Path  string
	Bytes int64
}

// FileSizes stats the given paths. Disk footprint is a first-class output
// of the comparison.
func FileSizes(paths ...string) ([]ArtifactSize, error) {
	sizes := make([]ArtifactSize, 0, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("bench: stat artifact: %w", err)
		}
		sizes = append(sizes, ArtifactSize{Path: path, Bytes: info.Size()})
	}
	return sizes, nil
}

// WriteSizes prints the artifact size section of the report.
func WriteSizes(w io.Writer, sizes []ArtifactSize) error {
	if _, err := fmt.Fprintf(w, "=== Artifact sizes ===\n"); err != nil {
		return err
	}
	for _, s := range sizes {
		fmt.Fprintf(w, "%s: %d bytes\n", s.Path, s.Bytes)
	}
	return nil
}

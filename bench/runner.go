package bench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/geoknoesis/ldes-bench/jelly"
	"github.com/geoknoesis/ldes-bench/ldes"
	"github.com/geoknoesis/ldes-bench/rdf"
)

// RunTree benchmarks the TREE-profile page at path: members are streamed in
// document order and grouped into batches of batchSize, timing strictly the
// parse work per batch. File open and decompression setup happen outside the
// timed loop. When wantMembers is non-negative the pass fails unless exactly
// that many members were parsed.
func RunTree(path string, batchSize, wantMembers int) (*Result, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("bench: batch size must be positive, got %d", batchSize)
	}
	rc, err := openArtifact(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	result := &Result{Label: fmt.Sprintf("TREE profile (%s) parsing", filepath.Base(path))}
	reader := ldes.NewPageReader(rc)
	defer reader.Close()

	members, quads := 0, 0
	var batchStart time.Time
	timing := false
	for {
		if !timing {
			batchStart = time.Now()
			timing = true
		}
		member, err := reader.Next()
		if err == io.EOF {
			if members > 0 {
				result.Batches = append(result.Batches, BatchStat{
					Index:   len(result.Batches),
					Members: members,
					Quads:   quads,
					Elapsed: time.Since(batchStart),
				})
			}
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bench: tree pass: %w", err)
		}
		members++
		quads += len(member.Quads)
		if members == batchSize {
			result.Batches = append(result.Batches, BatchStat{
				Index:   len(result.Batches),
				Members: members,
				Quads:   quads,
				Elapsed: time.Since(batchStart),
			})
			members, quads = 0, 0
			timing = false
		}
	}

	if err := checkMemberCount(result, wantMembers); err != nil {
		return nil, err
	}
	return result, nil
}

// RunJelly benchmarks the binary frame stream at path. The whole stream is
// first materialized into an in-memory dataset grouped by named graph in
// insertion order; that one-time cost is reported as InitialLoad and
// excluded from batch throughput. Member graphs are then iterated in order
// in batches of batchSize.
func RunJelly(path string, batchSize, wantMembers int) (*Result, error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("bench: batch size must be positive, got %d", batchSize)
	}
	rc, err := openArtifact(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	result := &Result{
		Label:          fmt.Sprintf("Jelly (%s) parsing", filepath.Base(path)),
		HasInitialLoad: true,
	}

	loadStart := time.Now()
	dec := jelly.NewDecoder(rc)
	var order []string
	graphs := map[string][]rdf.Quad{}
	for {
		quad, err := dec.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bench: jelly pass: %w", err)
		}
		key := graphKey(quad.G)
		if _, ok := graphs[key]; !ok {
			order = append(order, key)
		}
		graphs[key] = append(graphs[key], quad)
	}
	result.InitialLoad = time.Since(loadStart)

	members, quads := 0, 0
	var batchStart time.Time
	timing := false
	for _, key := range order {
		if !timing {
			batchStart = time.Now()
			timing = true
		}
		members++
		quads += len(graphs[key])
		if members == batchSize {
			result.Batches = append(result.Batches, BatchStat{
				Index:   len(result.Batches),
				Members: members,
				Quads:   quads,
				Elapsed: time.Since(batchStart),
			})
			members, quads = 0, 0
			timing = false
		}
	}
	if members > 0 {
		result.Batches = append(result.Batches, BatchStat{
			Index:   len(result.Batches),
			Members: members,
			Quads:   quads,
			Elapsed: time.Since(batchStart),
		})
	}

	if err := checkMemberCount(result, wantMembers); err != nil {
		return nil, err
	}
	return result, nil
}

// checkMemberCount asserts that a pass parsed exactly the requested member
// count. Mismatches fail the pass rather than reporting skewed totals.
func checkMemberCount(r *Result, want int) error {
	if want < 0 {
		return nil
	}
	if got := r.TotalMembers(); got != want {
		return fmt.Errorf("bench: %s: parsed %d members, expected %d", r.Label, got, want)
	}
	return nil
}

func graphKey(g rdf.Term) string {
	if g == nil {
		return ""
	}
	return g.String()
}

// openArtifact opens path for reading, transparently decompressing .gz
// files.
func openArtifact(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("bench: open %s: %w", path, err)
	}
	return &gzipReadCloser{zr: zr, f: f}, nil
}

type gzipReadCloser struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) {
	return g.zr.Read(p)
}

func (g *gzipReadCloser) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

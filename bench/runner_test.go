package bench

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/geoknoesis/ldes-bench/ldes"
)

func writeTestArtifacts(t *testing.T, count int) (Artifacts, []ldes.Member) {
	t.Helper()
	members, err := ldes.Generate(ldes.GeneratorConfig{
		Count:      count,
		TriplesMin: 4,
		TriplesMax: 20,
		Rand:       rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	paths := OutputPaths(t.TempDir())
	if err := WriteArtifacts(paths, members, 0); err != nil {
		t.Fatalf("write artifacts: %v", err)
	}
	return paths, members
}

func TestBothFormatsReportEqualTotals(t *testing.T) {
	paths, members := writeTestArtifacts(t, 100)

	tree, err := RunTree(paths.TreeGz, 100, 100)
	if err != nil {
		t.Fatalf("tree pass: %v", err)
	}
	jelly, err := RunJelly(paths.JellyGz, 100, 100)
	if err != nil {
		t.Fatalf("jelly pass: %v", err)
	}

	want := ldes.TotalQuads(members)
	if tree.TotalQuads() != want {
		t.Fatalf("tree quads %d, want %d", tree.TotalQuads(), want)
	}
	if jelly.TotalQuads() != want {
		t.Fatalf("jelly quads %d, want %d", jelly.TotalQuads(), want)
	}
	if tree.TotalMembers() != jelly.TotalMembers() {
		t.Fatalf("member totals diverge: tree=%d jelly=%d", tree.TotalMembers(), jelly.TotalMembers())
	}
}

func TestBatchGrouping(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 250)

	tree, err := RunTree(paths.TreeGz, 100, 250)
	if err != nil {
		t.Fatalf("tree pass: %v", err)
	}
	if len(tree.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(tree.Batches))
	}
	for i, want := range []int{100, 100, 50} {
		if tree.Batches[i].Members != want {
			t.Fatalf("batch %d: %d members, want %d", i, tree.Batches[i].Members, want)
		}
		if tree.Batches[i].Index != i {
			t.Fatalf("batch %d: index %d", i, tree.Batches[i].Index)
		}
	}

	jelly, err := RunJelly(paths.JellyGz, 100, 250)
	if err != nil {
		t.Fatalf("jelly pass: %v", err)
	}
	if len(jelly.Batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(jelly.Batches))
	}
}

func TestExactBatchBoundary(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 200)
	tree, err := RunTree(paths.TreeGz, 100, 200)
	if err != nil {
		t.Fatalf("tree pass: %v", err)
	}
	// 200 members at batch size 100 is exactly 2 batches, never a
	// trailing boundary batch
	if len(tree.Batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(tree.Batches))
	}
}

func TestMemberCountAssertion(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 100)
	if _, err := RunTree(paths.TreeGz, 100, 99); err == nil {
		t.Fatal("expected member count mismatch error")
	}
	if _, err := RunJelly(paths.JellyGz, 100, 101); err == nil {
		t.Fatal("expected member count mismatch error")
	}
}

func TestJellyInitialLoadReportedSeparately(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 100)
	jelly, err := RunJelly(paths.JellyGz, 10, 100)
	if err != nil {
		t.Fatalf("jelly pass: %v", err)
	}
	if !jelly.HasInitialLoad {
		t.Fatal("jelly pass must report an initial load")
	}
	tree, err := RunTree(paths.TreeGz, 10, 100)
	if err != nil {
		t.Fatalf("tree pass: %v", err)
	}
	if tree.HasInitialLoad {
		t.Fatal("tree pass has no initial load phase")
	}
}

func TestParseIsIdempotent(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 120)
	first, err := RunTree(paths.TreeGz, 50, 120)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	second, err := RunTree(paths.TreeGz, 50, 120)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if first.TotalMembers() != second.TotalMembers() || first.TotalQuads() != second.TotalQuads() {
		t.Fatalf("repeated parses disagree: %d/%d vs %d/%d",
			first.TotalMembers(), first.TotalQuads(), second.TotalMembers(), second.TotalQuads())
	}
}

func TestZeroMemberDataset(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 0)

	tree, err := RunTree(paths.TreeGz, 100, 0)
	if err != nil {
		t.Fatalf("tree pass: %v", err)
	}
	jelly, err := RunJelly(paths.JellyGz, 100, 0)
	if err != nil {
		t.Fatalf("jelly pass: %v", err)
	}
	for _, r := range []*Result{tree, jelly} {
		if r.TotalMembers() != 0 || r.TotalQuads() != 0 {
			t.Fatalf("%s: expected zero totals", r.Label)
		}
		if r.MembersPerSecond() != 0 || r.QuadsPerSecond() != 0 {
			t.Fatalf("%s: zero dataset must report zero throughput", r.Label)
		}
	}
}

func TestGzipArtifactsAreSmaller(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 200)
	sizes, err := FileSizes(paths.Sized()...)
	if err != nil {
		t.Fatalf("file sizes: %v", err)
	}
	bySuffix := map[string]int64{}
	for _, s := range sizes {
		bySuffix[filepath.Base(s.Path)] = s.Bytes
	}
	if bySuffix["page-0.nq.gz"] >= bySuffix["page-0.nq"] {
		t.Fatalf("gzipped tree page (%d) not smaller than raw (%d)",
			bySuffix["page-0.nq.gz"], bySuffix["page-0.nq"])
	}
	if bySuffix["dataset.jelly.gz"] >= bySuffix["dataset.jelly"] {
		t.Fatalf("gzipped jelly stream (%d) not smaller than raw (%d)",
			bySuffix["dataset.jelly.gz"], bySuffix["dataset.jelly"])
	}
}

func TestMalformedInputAbortsPass(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.nq")
	if err := os.WriteFile(bad, []byte("definitely not n-quads\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := RunTree(bad, 100, -1); err == nil {
		t.Fatal("expected parse failure to abort the pass")
	}

	badJelly := filepath.Join(dir, "bad.jelly")
	if err := os.WriteFile(badJelly, []byte{0xff, 0xff, 0xff, 0xff, 0x01}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := RunJelly(badJelly, 100, -1); err == nil {
		t.Fatal("expected corrupt stream to abort the pass")
	}
}

func TestMissingArtifactFails(t *testing.T) {
	if _, err := RunTree(filepath.Join(t.TempDir(), "absent.nq.gz"), 100, -1); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInvalidBatchSize(t *testing.T) {
	if _, err := RunTree("irrelevant", 0, -1); err == nil {
		t.Fatal("expected error for zero batch size")
	}
	if _, err := RunJelly("irrelevant", -1, -1); err == nil {
		t.Fatal("expected error for negative batch size")
	}
}

func TestArtifactsPresent(t *testing.T) {
	paths, _ := writeTestArtifacts(t, 10)
	if !paths.Present() {
		t.Fatal("artifacts should be present after writing")
	}
	missing := OutputPaths(t.TempDir())
	if missing.Present() {
		t.Fatal("artifacts should be absent in a fresh directory")
	}
}

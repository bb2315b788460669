package bench

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/geoknoesis/ldes-bench/jelly"
	"github.com/geoknoesis/ldes-bench/ldes"
)

// Artifacts names the four serialized benchmark outputs plus the run
// manifest, all under one output directory.
type Artifacts struct {
	TreeRaw  string
	TreeGz   string
	JellyRaw string
	JellyGz  string
	Manifest string
}

// OutputPaths returns the artifact layout under dir.
func OutputPaths(dir string) Artifacts {
	return Artifacts{
		TreeRaw:  filepath.Join(dir, "page-0.nq"),
		TreeGz:   filepath.Join(dir, "page-0.nq.gz"),
		JellyRaw: filepath.Join(dir, "dataset.jelly"),
		JellyGz:  filepath.Join(dir, "dataset.jelly.gz"),
		Manifest: filepath.Join(dir, "manifest.jsonld"),
	}
}

// Present reports whether all four serialized artifacts exist.
func (a Artifacts) Present() bool {
	for _, path := range []string{a.TreeRaw, a.TreeGz, a.JellyRaw, a.JellyGz} {
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return true
}

// Sized returns the four serialized artifact paths for the size report.
func (a Artifacts) Sized() []string {
	return []string{a.TreeRaw, a.TreeGz, a.JellyRaw, a.JellyGz}
}

// WriteArtifacts serializes members to all four artifacts. Both encodings
// are written from the same member slice, which is the equivalence
// precondition for a fair comparison; the gzip variants compress the raw
// files byte for byte.
func WriteArtifacts(a Artifacts, members []ldes.Member, frameRows int) error {
	if err := writeTreePage(a.TreeRaw, members); err != nil {
		return err
	}
	if err := GzipFile(a.TreeRaw, a.TreeGz); err != nil {
		return err
	}
	if err := writeJellyStream(a.JellyRaw, members, frameRows); err != nil {
		return err
	}
	return GzipFile(a.JellyRaw, a.JellyGz)
}

func writeTreePage(path string, members []ldes.Member) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: write tree page: %w", err)
	}
	if err := ldes.WritePage(f, ldes.DefaultBase, members); err != nil {
		f.Close()
		return fmt.Errorf("bench: write tree page: %w", err)
	}
	return f.Close()
}

func writeJellyStream(path string, members []ldes.Member, frameRows int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: write jelly stream: %w", err)
	}
	enc := jelly.NewEncoder(f, jelly.WithFrameRows(frameRows))
	for _, m := range members {
		for _, q := range m.Quads {
			if err := enc.Write(q); err != nil {
				f.Close()
				return fmt.Errorf("bench: write jelly stream: %w", err)
			}
		}
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("bench: write jelly stream: %w", err)
	}
	return f.Close()
}

// GzipFile compresses src into dst.
func GzipFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("bench: gzip %s: %w", src, err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("bench: gzip %s: %w", src, err)
	}
	zw := gzip.NewWriter(out)
	if _, err := io.Copy(zw, in); err != nil {
		out.Close()
		return fmt.Errorf("bench: gzip %s: %w", src, err)
	}
	if err := zw.Close(); err != nil {
		out.Close()
		return fmt.Errorf("bench: gzip %s: %w", src, err)
	}
	return out.Close()
}

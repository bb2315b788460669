package bench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestWriteManifest(t *testing.T) {
	runID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	m := Manifest{
		RunID:   runID,
		Started: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Members: 10000,
		Quads:   180000,
		Artifacts: []ArtifactSize{
			{Path: "out/page-0.nq", Bytes: 123456},
			{Path: "out/page-0.nq.gz", Bytes: 23456},
		},
	}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, m); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	var doc interface{}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"urn:uuid:" + runID.String(),
		benchNS + "memberCount",
		"10000",
		"out/page-0.nq.gz",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("manifest missing %q:\n%s", want, out)
		}
	}
}

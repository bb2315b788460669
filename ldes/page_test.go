package ldes

import (
	"bytes"
	"io"
	"math/rand"
	"strings"
	"testing"
)

func generateTestMembers(t *testing.T, count int) []Member {
	t.Helper()
	members, err := Generate(GeneratorConfig{
		Count:      count,
		TriplesMin: 4,
		TriplesMax: 12,
		Rand:       rand.New(rand.NewSource(42)),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	return members
}

func readAllMembers(t *testing.T, r io.Reader) []Member {
	t.Helper()
	reader := NewPageReader(r)
	defer reader.Close()
	var members []Member
	for {
		m, err := reader.Next()
		if err == io.EOF {
			return members
		}
		if err != nil {
			t.Fatalf("page read: %v", err)
		}
		members = append(members, m)
	}
}

func TestPageRoundTrip(t *testing.T) {
	members := generateTestMembers(t, 30)

	var buf bytes.Buffer
	if err := WritePage(&buf, DefaultBase, members); err != nil {
		t.Fatalf("write page: %v", err)
	}

	parsed := readAllMembers(t, bytes.NewReader(buf.Bytes()))
	if len(parsed) != len(members) {
		t.Fatalf("expected %d members, got %d", len(members), len(parsed))
	}
	for i := range members {
		if parsed[i].IRI.Value != members[i].IRI.Value {
			t.Fatalf("member %d: IRI %s, want %s (order must be preserved)", i, parsed[i].IRI.Value, members[i].IRI.Value)
		}
		if len(parsed[i].Quads) != len(members[i].Quads) {
			t.Fatalf("member %d: %d quads, want %d", i, len(parsed[i].Quads), len(members[i].Quads))
		}
		for j := range members[i].Quads {
			if !parsed[i].Quads[j].Equal(members[i].Quads[j]) {
				t.Fatalf("member %d quad %d mismatch", i, j)
			}
		}
	}
	if got, want := TotalQuads(parsed), TotalQuads(members); got != want {
		t.Fatalf("total quads %d, want %d", got, want)
	}
}

func TestPageHypermediaIsSkipped(t *testing.T) {
	members := generateTestMembers(t, 3)

	var buf bytes.Buffer
	if err := WritePage(&buf, DefaultBase, members); err != nil {
		t.Fatalf("write page: %v", err)
	}
	// hypermedia block is present on the wire
	if !strings.Contains(buf.String(), TreeNS+"Collection") {
		t.Fatal("expected hypermedia block in page")
	}
	// but never surfaces as member payload
	parsed := readAllMembers(t, bytes.NewReader(buf.Bytes()))
	for _, m := range parsed {
		for _, q := range m.Quads {
			if strings.HasPrefix(q.P.Value, TreeNS) {
				t.Fatalf("hypermedia quad leaked into member %s", m.IRI.Value)
			}
		}
	}
}

func TestPageEmptyDataset(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePage(&buf, DefaultBase, nil); err != nil {
		t.Fatalf("write page: %v", err)
	}
	reader := NewPageReader(bytes.NewReader(buf.Bytes()))
	if _, err := reader.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF for empty dataset, got %v", err)
	}
}

func TestPageReaderMalformedInput(t *testing.T) {
	reader := NewPageReader(strings.NewReader("this is not n-quads\n"))
	if _, err := reader.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestPageReaderRejectsNonIRIMember(t *testing.T) {
	page := "<" + DefaultBase + "collection> <" + TreeNS + "member> \"literal\" .\n"
	reader := NewPageReader(strings.NewReader(page))
	if _, err := reader.Next(); err == nil || err == io.EOF {
		t.Fatalf("expected error for literal tree:member object, got %v", err)
	}
}

func TestPageReaderTruncatedMidMember(t *testing.T) {
	members := generateTestMembers(t, 5)
	var buf bytes.Buffer
	if err := WritePage(&buf, DefaultBase, members); err != nil {
		t.Fatalf("write page: %v", err)
	}
	// cut the page in the middle of a statement
	cut := buf.Len() * 3 / 4
	reader := NewPageReader(bytes.NewReader(buf.Bytes()[:cut]))
	var err error
	for {
		_, err = reader.Next()
		if err != nil {
			break
		}
	}
	if err == io.EOF {
		// a cut landing exactly on a line boundary is legal input; force
		// an unambiguous truncation instead
		reader = NewPageReader(strings.NewReader("<http://example.org/s> <http://example.org/p"))
		_, err = reader.Next()
		if err == nil || err == io.EOF {
			t.Fatalf("expected parse error for truncated statement, got %v", err)
		}
	}
}

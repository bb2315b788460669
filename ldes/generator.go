package ldes

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/geoknoesis/ldes-bench/rdf"
)

// Every member carries four canonical triples: rdf:type, rdfs:label,
// a random integer value and a monotonically increasing creation timestamp.
const canonicalTriples = 4

// GeneratorConfig controls synthetic member generation.
type GeneratorConfig struct {
	// Count is the number of members to generate. Zero is a valid,
	// degenerate dataset; negative counts are rejected.
	Count int
	// TriplesMin and TriplesMax bound the per-member triple count. The
	// actual count is drawn uniformly from [TriplesMin, TriplesMax].
	TriplesMin int
	TriplesMax int
	// Base is the base IRI for member identifiers. Defaults to DefaultBase.
	Base string
	// Rand is the random source. It is injected so callers can pin a seed.
	Rand *rand.Rand
}

func (c GeneratorConfig) validate() error {
	if c.Count < 0 {
		return fmt.Errorf("ldes: member count must not be negative, got %d", c.Count)
	}
	if c.Rand == nil {
		return fmt.Errorf("ldes: random source is required")
	}
	if c.TriplesMin < canonicalTriples {
		return fmt.Errorf("ldes: at least %d triples per member required, got %d", canonicalTriples, c.TriplesMin)
	}
	if c.TriplesMax < c.TriplesMin {
		return fmt.Errorf("ldes: triple range inverted: [%d, %d]", c.TriplesMin, c.TriplesMax)
	}
	return nil
}

var extraPredicates = [...]string{"tag", "attr", "prop", "rel"}

// Generate produces cfg.Count synthetic members. Member IRIs are
// <base>member/%05d with strictly increasing indices; all quads of a member
// use the member IRI as subject and named graph.
func Generate(cfg GeneratorConfig) ([]Member, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base := cfg.Base
	if base == "" {
		base = DefaultBase
	}

	members := make([]Member, 0, cfg.Count)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < cfg.Count; i++ {
		m := rdf.IRI{Value: fmt.Sprintf("%smember/%05d", base, i)}
		n := cfg.TriplesMin + cfg.Rand.Intn(cfg.TriplesMax-cfg.TriplesMin+1)
		quads := make([]rdf.Quad, 0, n)
		quads = append(quads,
			rdf.Quad{S: m, P: rdfType, O: vocabMember, G: m},
			rdf.Quad{S: m, P: rdfsLabel, O: rdf.Literal{Lexical: fmt.Sprintf("Member %05d", i)}, G: m},
			rdf.Quad{S: m, P: vocabValue, O: rdf.Literal{Lexical: strconv.Itoa(cfg.Rand.Intn(1_000_001)), Datatype: xsdInteger}, G: m},
			rdf.Quad{S: m, P: dctCreated, O: rdf.Literal{Lexical: created.Format(time.RFC3339), Datatype: xsdDateTime}, G: m},
		)
		created = created.Add(time.Second)

		for len(quads) < n {
			pred := rdf.IRI{Value: VocabNS + extraPredicates[cfg.Rand.Intn(len(extraPredicates))]}
			var obj rdf.Term
			// mix literal and IRI objects
			if cfg.Rand.Intn(2) == 0 {
				obj = rdf.Literal{Lexical: randLabel(cfg.Rand, 10)}
			} else {
				obj = rdf.IRI{Value: base + "res/" + randLabel(cfg.Rand, 6)}
			}
			quads = append(quads, rdf.Quad{S: m, P: pred, O: obj, G: m})
		}
		members = append(members, Member{IRI: m, Quads: quads})
	}
	return members, nil
}

func randLabel(rng *rand.Rand, n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rng.Intn(len(letters))]
	}
	return string(b)
}

package pick

import "github.com/xtding233/rpick/internal/config"

// Candidate is one entry of the set a single pick samples from.
type Candidate struct {
	Index  int // position in the category's choice list
	Name   string
	Weight uint64
}

// candidatesFrom builds the full candidate set from the category's current
// data. Zero-weight entries are left out, never sampled.
func candidatesFrom(cat config.Category) []Candidate {
	var out []Candidate
	add := func(i int, name string, weight uint64) {
		if weight > 0 {
			out = append(out, Candidate{Index: i, Name: name, Weight: weight})
		}
	}
	switch c := cat.(type) {
	case *config.Even:
		for i, name := range c.Choices {
			add(i, name, 1)
		}
	case *config.Gaussian:
		for i, name := range c.Choices {
			add(i, name, 1)
		}
	case *config.Lru:
		for i, name := range c.Choices {
			add(i, name, 1)
		}
	case *config.Weighted:
		for i, ch := range c.Choices {
			add(i, ch.Name, ch.Weight)
		}
	case *config.Inventory:
		for i, ch := range c.Choices {
			add(i, ch.Name, ch.Tickets)
		}
	case *config.Lottery:
		for i, ch := range c.Choices {
			add(i, ch.Name, ch.Tickets)
		}
	}
	return out
}

// sample returns a position in candidates, chosen with probability
// Weight/total. An empty set is a bug in the caller.
func sample(rng RandomSource, candidates []Candidate) int {
	var total uint64
	for _, c := range candidates {
		total += c.Weight
	}
	if total == 0 {
		panic("pick: weighted sample over an empty candidate set")
	}
	target := rng.Uint64N(total)
	for i, c := range candidates {
		if target < c.Weight {
			return i
		}
		target -= c.Weight
	}
	panic("pick: sample target beyond total weight")
}

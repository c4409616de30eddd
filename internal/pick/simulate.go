package pick

import (
	"log/slog"

	"github.com/xtding233/rpick/internal/config"
)

// Frequency is how often one choice name won during a simulation.
type Frequency struct {
	Name  string
	Picks int
	Share float64 // Picks / Trials, 0..1
}

// Frequencies summarizes a simulation run.
type Frequencies struct {
	Trials    int // trials actually run
	Exhausted bool
	Choices   []Frequency // in the category's original list order
}

// acceptAll says yes to every offer and shows nothing.
type acceptAll struct{}

func (acceptAll) ShouldRenderTables() bool   { return false }
func (acceptAll) RenderTable(Table)          {}
func (acceptAll) Notify(string)              {}
func (acceptAll) RequestConsent(string) bool { return true }

// Simulate runs trials unattended picks, in a row, on a copy of cat; state
// carries from one trial to the next like repeated real picks would. The
// run stops early, with Exhausted set, if the copy can no longer be picked
// from (an inventory running out of tickets). cat itself is not modified.
// Duplicate names are counted together.
func Simulate(name string, cat config.Category, trials int, rng RandomSource) (Frequencies, error) {
	if err := config.Validate(name, cat); err != nil {
		return Frequencies{}, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}
	e := &Engine{ui: acceptAll{}, rng: rng, logger: slog.New(slog.DiscardHandler)}
	work := cat.Clone()

	counts := make(map[string]int)
	var out Frequencies
	for out.Trials < trials {
		if config.Validate(name, work) != nil {
			out.Exhausted = true
			break
		}
		counts[e.pick(work)]++
		out.Trials++
	}

	seen := make(map[string]bool)
	for _, n := range choiceNames(cat) {
		if seen[n] {
			continue
		}
		seen[n] = true
		f := Frequency{Name: n, Picks: counts[n]}
		if out.Trials > 0 {
			f.Share = float64(f.Picks) / float64(out.Trials)
		}
		out.Choices = append(out.Choices, f)
	}
	return out, nil
}

// Table renders the frequencies the same way chance tables are rendered.
func (f Frequencies) Table() Table {
	t := Table{Header: []Cell{TextCell("Name"), TextCell("Picks"), TextCell("Share")}}
	for _, c := range f.Choices {
		t.Rows = append(t.Rows, Row{Cells: []Cell{TextCell(c.Name), IntCell(int64(c.Picks)), FloatCell(c.Share * 100)}})
	}
	var share float64
	if f.Trials > 0 {
		share = 100
	}
	t.Footer = []Cell{TextCell("Total"), IntCell(int64(f.Trials)), FloatCell(share)}
	return t
}

func choiceNames(cat config.Category) []string {
	var names []string
	switch c := cat.(type) {
	case *config.Even:
		names = c.Choices
	case *config.Gaussian:
		names = c.Choices
	case *config.Lru:
		names = c.Choices
	case *config.Weighted:
		for _, ch := range c.Choices {
			names = append(names, ch.Name)
		}
	case *config.Inventory:
		for _, ch := range c.Choices {
			names = append(names, ch.Name)
		}
	case *config.Lottery:
		for _, ch := range c.Choices {
			names = append(names, ch.Name)
		}
	}
	return names
}

package pick

import (
	"slices"
	"strconv"
)

// CellKind says which field of a Cell holds its value.
type CellKind int

const (
	CellBool CellKind = iota
	CellText
	CellInt
	CellFloat
	CellUint
)

// Cell is one value in a chance table.
type Cell struct {
	Kind  CellKind
	Bool  bool
	Text  string
	Int   int64
	Float float64
	Uint  uint64
}

func BoolCell(v bool) Cell     { return Cell{Kind: CellBool, Bool: v} }
func TextCell(v string) Cell   { return Cell{Kind: CellText, Text: v} }
func IntCell(v int64) Cell     { return Cell{Kind: CellInt, Int: v} }
func FloatCell(v float64) Cell { return Cell{Kind: CellFloat, Float: v} }
func UintCell(v uint64) Cell   { return Cell{Kind: CellUint, Uint: v} }

// String formats the value plainly. UIs usually format floats themselves.
func (c Cell) String() string {
	switch c.Kind {
	case CellBool:
		return strconv.FormatBool(c.Bool)
	case CellInt:
		return strconv.FormatInt(c.Int, 10)
	case CellFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case CellUint:
		return strconv.FormatUint(c.Uint, 10)
	}
	return c.Text
}

type Row struct {
	Cells  []Cell
	Chosen bool // the row the engine is currently offering
}

// Table is a chance table handed to UI.RenderTable.
type Table struct {
	Header []Cell
	Rows   []Row
	Footer []Cell // empty when there are no totals
}

// WeightedChanceTable lists candidates by ascending weight with their share
// of the total. chosen is the list index of the offered choice.
func WeightedChanceTable(candidates []Candidate, chosen int) Table {
	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		switch {
		case a.Weight < b.Weight:
			return -1
		case a.Weight > b.Weight:
			return 1
		}
		return 0
	})

	var total uint64
	for _, c := range sorted {
		total += c.Weight
	}
	t := Table{Header: []Cell{TextCell("Name"), TextCell("Weight"), TextCell("Chance")}}
	for _, c := range sorted {
		chance := float64(c.Weight) / float64(total) * 100
		t.Rows = append(t.Rows, Row{
			Cells:  []Cell{TextCell(c.Name), UintCell(c.Weight), FloatCell(chance)},
			Chosen: c.Index == chosen,
		})
	}
	t.Footer = []Cell{TextCell("Total"), UintCell(total), FloatCell(100)}
	return t
}

// GaussianChanceTable lists the working copy in order with the chance of
// each position. The folded draw hits slice [i, i+1) from both sides of
// zero, hence 2 * (Φ(i+1) - Φ(i)) * 100. The total falls short of 100 by
// the mass past the end of the list. chosen is a position in working.
func GaussianChanceTable(working []Candidate, chosen int, stddev float64) Table {
	t := Table{Header: []Cell{TextCell("Name"), TextCell("Chance")}}
	var total float64
	for i, c := range working {
		chance := (normalCDF(float64(i+1), stddev) - normalCDF(float64(i), stddev)) * 200
		total += chance
		t.Rows = append(t.Rows, Row{
			Cells:  []Cell{TextCell(c.Name), FloatCell(chance)},
			Chosen: i == chosen,
		})
	}
	t.Footer = []Cell{TextCell("Total"), FloatCell(total)}
	return t
}

// LruTable lists the entries not yet offered in this pass, oldest first.
// The one being offered (current) is the first row.
func LruTable(choices []string, current int) Table {
	t := Table{Header: []Cell{TextCell("Name")}}
	for i := current; i < len(choices); i++ {
		t.Rows = append(t.Rows, Row{
			Cells:  []Cell{TextCell(choices[i])},
			Chosen: i == current,
		})
	}
	return t
}

package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/rpick/internal/config"
)

func TestSimulateStopsWhenInventoryRunsOut(t *testing.T) {
	cat := &config.Inventory{Choices: []config.InventoryChoice{
		{Name: "a", Tickets: 2}, {Name: "b", Tickets: 1}, {Name: "c", Tickets: 0},
	}}
	before := cat.Clone()

	got, err := Simulate("inv", cat, 10, NewSeededRNG(1))
	require.NoError(t, err)
	assert.True(t, got.Exhausted)
	assert.Equal(t, 3, got.Trials)
	assert.Equal(t, []Frequency{
		{Name: "a", Picks: 2, Share: 2.0 / 3},
		{Name: "b", Picks: 1, Share: 1.0 / 3},
		{Name: "c", Picks: 0, Share: 0},
	}, got.Choices)
	assert.Equal(t, before, config.Category(cat))
}

func TestSimulateLruRotates(t *testing.T) {
	cat := &config.Lru{Choices: []string{"a", "b", "c"}}

	got, err := Simulate("lru", cat, 9, nil)
	require.NoError(t, err)
	assert.False(t, got.Exhausted)
	for _, f := range got.Choices {
		assert.Equal(t, 3, f.Picks, f.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, cat.Choices)
}

func TestSimulateWeighted(t *testing.T) {
	cat := &config.Weighted{Choices: []config.WeightedChoice{
		{Name: "a", Weight: 1}, {Name: "b", Weight: 4}, {Name: "a", Weight: 5},
	}}

	got, err := Simulate("w", cat, 50000, NewSeededRNG(7))
	require.NoError(t, err)
	require.Len(t, got.Choices, 2, "duplicate names are counted together")
	assert.InDelta(t, 0.6, got.Choices[0].Share, 0.01)
	assert.InDelta(t, 0.4, got.Choices[1].Share, 0.01)
}

func TestSimulateInvalidCategory(t *testing.T) {
	_, err := Simulate("empty", &config.Even{}, 5, nil)
	require.ErrorIs(t, err, config.ErrInvalidCategory)
}

func TestFrequenciesTable(t *testing.T) {
	f := Frequencies{Trials: 4, Choices: []Frequency{{Name: "a", Picks: 1, Share: 0.25}, {Name: "b", Picks: 3, Share: 0.75}}}
	requireTable(t, Table{
		Header: []Cell{TextCell("Name"), TextCell("Picks"), TextCell("Share")},
		Rows: []Row{
			{Cells: []Cell{TextCell("a"), IntCell(1), FloatCell(25)}},
			{Cells: []Cell{TextCell("b"), IntCell(3), FloatCell(75)}},
		},
		Footer: []Cell{TextCell("Total"), IntCell(4), FloatCell(100)},
	}, f.Table())
}

func TestSeededRNGIsDeterministic(t *testing.T) {
	a, b := NewSeededRNG(99), NewSeededRNG(99)
	for i := 0; i < 10; i++ {
		require.Equal(t, a.Uint64N(1000), b.Uint64N(1000))
		require.Equal(t, a.NormFloat64(), b.NormFloat64())
	}
}

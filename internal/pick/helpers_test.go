package pick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRNG replays fixed draws and fails the test when it runs out.
type scriptedRNG struct {
	t       *testing.T
	draws   []uint64
	normals []float64
}

func (r *scriptedRNG) Uint64N(n uint64) uint64 {
	r.t.Helper()
	if len(r.draws) == 0 {
		r.t.Fatalf("unexpected Uint64N(%d)", n)
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	if v >= n {
		r.t.Fatalf("scripted draw %d out of range [0, %d)", v, n)
	}
	return v
}

func (r *scriptedRNG) NormFloat64() float64 {
	r.t.Helper()
	if len(r.normals) == 0 {
		r.t.Fatalf("unexpected NormFloat64()")
	}
	v := r.normals[0]
	r.normals = r.normals[1:]
	return v
}

// fakeUI records every interaction. Answers are consumed in order unless
// accept is set.
type fakeUI struct {
	t        *testing.T
	tables   bool
	answers  []bool
	accept   func(choice string) bool
	prompts  []string
	notices  []string
	rendered []Table
}

func (u *fakeUI) ShouldRenderTables() bool { return u.tables }

func (u *fakeUI) RenderTable(table Table) {
	if !u.tables {
		u.t.Fatalf("RenderTable called although tables are off")
	}
	u.rendered = append(u.rendered, table)
}

func (u *fakeUI) Notify(message string) { u.notices = append(u.notices, message) }

func (u *fakeUI) RequestConsent(choice string) bool {
	u.t.Helper()
	u.prompts = append(u.prompts, choice)
	if u.accept != nil {
		return u.accept(choice)
	}
	if len(u.answers) == 0 {
		u.t.Fatalf("unexpected consent request for %q", choice)
	}
	v := u.answers[0]
	u.answers = u.answers[1:]
	return v
}

// requireTable compares tables, allowing float cells a small tolerance.
func requireTable(t *testing.T, want, got Table) {
	t.Helper()
	requireCells(t, want.Header, got.Header, "header")
	require.Len(t, got.Rows, len(want.Rows))
	for i := range want.Rows {
		assert.Equal(t, want.Rows[i].Chosen, got.Rows[i].Chosen, "row %d chosen", i)
		requireCells(t, want.Rows[i].Cells, got.Rows[i].Cells, "row")
	}
	requireCells(t, want.Footer, got.Footer, "footer")
}

func requireCells(t *testing.T, want, got []Cell, where string) {
	t.Helper()
	require.Len(t, got, len(want), where)
	for i := range want {
		require.Equal(t, want[i].Kind, got[i].Kind, "%s cell %d", where, i)
		if want[i].Kind == CellFloat {
			assert.InDelta(t, want[i].Float, got[i].Float, 0.01, "%s cell %d", where, i)
			continue
		}
		assert.Equal(t, want[i], got[i], "%s cell %d", where, i)
	}
}

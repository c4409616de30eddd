package pick

import (
	"math"
	"slices"

	"github.com/xtding233/rpick/internal/config"
)

// pickGaussian draws positions from a normal distribution folded onto
// [0, len): |N(0, stddev)| truncated to an int, redrawn when out of range.
// stddev is recomputed from the working copy on every draw, so rejections
// shrink it along with the list.
func (e *Engine) pickGaussian(g *config.Gaussian) string {
	working := candidatesFrom(g)
	for {
		stddev := float64(len(working)) / g.StddevScalingFactor
		x := math.Abs(e.rng.NormFloat64() * stddev)
		if !(x < float64(len(working))) {
			continue
		}
		pos := int(x)
		chosen := working[pos]
		if e.ui.ShouldRenderTables() {
			e.ui.RenderTable(GaussianChanceTable(working, pos, stddev))
		}
		if e.ui.RequestConsent(chosen.Name) {
			g.Choices = moveToBack(g.Choices, chosen.Index)
			return chosen.Name
		}
		if len(working) > 1 {
			e.logger.Debug("rejected", "choice", chosen.Name, "remaining", len(working)-1)
			working = slices.Delete(working, pos, pos+1)
			continue
		}
		e.disapprove()
		working = candidatesFrom(g)
	}
}

// normalCDF is Φ for N(0, stddev).
func normalCDF(x, stddev float64) float64 {
	return 0.5 * math.Erfc(-x/(stddev*math.Sqrt2))
}

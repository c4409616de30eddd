package pick

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/xtding233/rpick/internal/config"
)

// Engine runs picks against a category mapping.
//
// Every model except Lru shares one loop: sample a candidate by weight,
// ask the user, and on a rejection drop that candidate and sample again
// from what is left. Rejecting the last candidate sends Disapproval and
// rebuilds the set from the category's live data.
type Engine struct {
	ui     UI
	rng    RandomSource
	logger *slog.Logger
}

// NewEngine creates an Engine. A nil rng uses DefaultRNG.
func NewEngine(ui UI, rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Engine{ui: ui, rng: rng, logger: slog.New(slog.DiscardHandler)}
}

func (e *Engine) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	e.logger = logger
}

// Pick picks from the named category and returns the accepted choice. The
// category's bookkeeping is updated in place:
//   - even, weighted: unchanged
//   - inventory: the winner loses one ticket
//   - lottery: every choice gains its weight in tickets, then the winner
//     is set to its reset value
//   - gaussian, lru: the winner moves to the end of the list
//
// An unknown name returns *CategoryNotFoundError, and a category that
// cannot be picked from returns an error wrapping config.ErrInvalidCategory.
// In both cases nothing is modified and the UI is not used.
func (e *Engine) Pick(cfg *config.Config, name string) (string, error) {
	cat, ok := cfg.Get(name)
	if !ok {
		return "", &CategoryNotFoundError{Name: name}
	}
	if err := config.Validate(name, cat); err != nil {
		return "", err
	}
	e.logger.Debug("picking", "category", name, "model", cat.Model(), "choices", cat.Len())
	chosen := e.pick(cat)
	e.logger.Debug("accepted", "category", name, "choice", chosen)
	return chosen, nil
}

func (e *Engine) pick(cat config.Category) string {
	switch c := cat.(type) {
	case *config.Even:
		return c.Choices[e.consentLoop(c)]
	case *config.Weighted:
		return c.Choices[e.consentLoop(c)].Name
	case *config.Inventory:
		i := e.consentLoop(c)
		if c.Choices[i].Tickets > 0 {
			c.Choices[i].Tickets--
		}
		return c.Choices[i].Name
	case *config.Lottery:
		i := e.consentLoop(c)
		for j := range c.Choices {
			c.Choices[j].Tickets += c.Choices[j].Weight
		}
		c.Choices[i].Tickets = c.Choices[i].Reset
		return c.Choices[i].Name
	case *config.Gaussian:
		return e.pickGaussian(c)
	case *config.Lru:
		return e.pickLru(c)
	}
	panic(fmt.Sprintf("pick: unhandled category type %T", cat))
}

// consentLoop returns the list index of the accepted choice.
func (e *Engine) consentLoop(cat config.Category) int {
	candidates := candidatesFrom(cat)
	for {
		pos := sample(e.rng, candidates)
		chosen := candidates[pos]
		if e.ui.ShouldRenderTables() {
			e.ui.RenderTable(WeightedChanceTable(candidates, chosen.Index))
		}
		if e.ui.RequestConsent(chosen.Name) {
			return chosen.Index
		}
		if len(candidates) > 1 {
			e.logger.Debug("rejected", "choice", chosen.Name, "remaining", len(candidates)-1)
			candidates = slices.Delete(candidates, pos, pos+1)
			continue
		}
		e.disapprove()
		candidates = candidatesFrom(cat)
	}
}

func (e *Engine) disapprove() {
	e.logger.Debug("every candidate rejected, starting over")
	e.ui.Notify(Disapproval)
}

// moveToBack moves choices[i] to the end, keeping the others in order.
func moveToBack(choices []string, i int) []string {
	name := choices[i]
	return append(slices.Delete(choices, i, i+1), name)
}

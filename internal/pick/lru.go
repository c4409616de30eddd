package pick

import "github.com/xtding233/rpick/internal/config"

// pickLru offers choices oldest first. A full pass with no acceptance
// starts over from the front.
func (e *Engine) pickLru(l *config.Lru) string {
	for {
		for i, name := range l.Choices {
			if e.ui.ShouldRenderTables() {
				e.ui.RenderTable(LruTable(l.Choices, i))
			}
			if e.ui.RequestConsent(name) {
				l.Choices = moveToBack(l.Choices, i)
				return name
			}
		}
		e.disapprove()
	}
}

package pick

// Disapproval is sent to UI.Notify when every candidate has been rejected
// and the pick starts over.
const Disapproval = "🤨"

// UI is how the engine talks to the person picking.
type UI interface {
	// ShouldRenderTables reports whether RenderTable would show anything.
	// Tables are only built when it returns true.
	ShouldRenderTables() bool
	RenderTable(table Table)
	Notify(message string)
	// RequestConsent blocks until the user accepts (true) or rejects choice.
	RequestConsent(choice string) bool
}

package entity

// Dialogue roles as they appear on the wire.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DialogueTurn is one prior exchange between the user and the assistant.
type DialogueTurn struct {
	Role      string
	Utterance string
}

// DecisionContext carries everything a single recommendation may look at.
// It is built per call, owned by that call, and never retained — the engine
// keeps no session state.
type DecisionContext struct {
	UserInput  string         // latest STT/typed utterance, may be empty
	Candidates []string       // OCR labels on the current screen, visual order
	History    []DialogueTurn // prior turns, oldest first
	LastButton string         // label the user tapped last, "" if unknown
}

package insights

// State is a step of the per-call pipeline
type State int

// Pipeline states. Done and Fallback are terminal.
const (
	StateIdle State = iota
	StatePrompting
	StateAwaitingCompletion
	StateParsing
	StateValidating
	StateDone
	StateFallback
)

var stateNames = [...]string{
	StateIdle:               "idle",
	StatePrompting:          "prompting",
	StateAwaitingCompletion: "awaiting_completion",
	StateParsing:            "parsing",
	StateValidating:         "validating",
	StateDone:               "done",
	StateFallback:           "fallback",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// Terminal reports whether s ends a call
func (s State) Terminal() bool {
	return s == StateDone || s == StateFallback
}

// Source tells where a result came from
type Source string

const (
	// SourceLive marks a result produced by the completion service
	SourceLive Source = "live"
	// SourceFallback marks a synthetic result
	SourceFallback Source = "fallback"
)

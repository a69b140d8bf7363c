package engine

// Phase is the gameplay state of a World.
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
	PhaseLevelComplete
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game over"
	case PhaseLevelComplete:
		return "level complete"
	default:
		return "unknown"
	}
}

// Command is an externally triggered action.
type Command uint8

const (
	CmdNone Command = iota
	CmdShoot
	CmdRestart
	CmdAdvanceLevel
	CmdQuit
)

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdShoot:
		return "shoot"
	case CmdRestart:
		return "restart"
	case CmdAdvanceLevel:
		return "advance"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// phaseRule is one entry of the end-of-tick decision list.
type phaseRule struct {
	phase Phase
	when  func(Resolution) bool
}

// phaseRules is checked top to bottom; the first match wins.
var phaseRules = []phaseRule{
	{PhaseGameOver, func(r Resolution) bool { return r.GameOver }},
	{PhaseLevelComplete, func(r Resolution) bool { return r.Cleared }},
}

// decidePhase maps a tick's collision outcome to the next phase.
func decidePhase(r Resolution) Phase {
	for _, rule := range phaseRules {
		if rule.when(r) {
			return rule.phase
		}
	}
	return PhasePlaying
}

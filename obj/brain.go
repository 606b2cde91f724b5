package obj

type Action int

const (
	ActionWait Action = iota
	// ActionStep moves one greedy step toward the target.
	ActionStep
	// ActionPath follows, or plans, a full route to the target.
	ActionPath
	ActionAttack
)

var actionNames = [...]string{
	ActionWait:   "wait",
	ActionStep:   "step",
	ActionPath:   "path",
	ActionAttack: "attack",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

func ParseAction(s string) (Action, bool) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), true
		}
	}
	return ActionWait, false
}

// BrainView is what a kobold knows when deciding its turn. Distance is in
// tiles.
type BrainView struct {
	HasTarget bool
	Distance  float64
	Adjacent  bool
	HasPath   bool
	HP        float32
	MaxHP     float32
}

type Brain interface {
	Decide(v BrainView) Action
}

type BrainFunc func(v BrainView) Action

func (f BrainFunc) Decide(v BrainView) Action { return f(v) }

// GreedyBrain attacks when it can and otherwise keeps stepping toward its
// target, following a planned route if one is left over.
type GreedyBrain struct{}

func (GreedyBrain) Decide(v BrainView) Action {
	switch {
	case !v.HasTarget:
		return ActionWait
	case v.Adjacent:
		return ActionAttack
	case v.HasPath:
		return ActionPath
	default:
		return ActionStep
	}
}

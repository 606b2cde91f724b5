package component

// Health tracks hit points for players, kobolds and structures.
type Health struct {
	Max     float32
	Current float32
	Dead    bool
}

// NewHealth creates a Health at full hit points. Non-positive max becomes 1.
func NewHealth(max float32) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max}
}

func (h *Health) IsAlive() bool {
	return h != nil && !h.Dead && h.Current > 0
}

// ApplyDamage subtracts amount and marks the owner dead at zero. It reports
// whether any damage landed; the dead and non-positive amounts are ignored.
func (h *Health) ApplyDamage(amount float32) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
	}
	return true
}

func (h *Health) CurrentHP() float32 {
	if h == nil {
		return 0
	}
	return h.Current
}

func (h *Health) MaxHP() float32 {
	if h == nil {
		return 0
	}
	return h.Max
}

// SetMaxHP changes the cap used by hot reloaded specs. Current is lowered to
// fit but never raised.
func (h *Health) SetMaxHP(v float32) {
	if h == nil {
		return
	}
	h.Max = v
	if h.Max <= 0 {
		h.Max = 1
	}
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

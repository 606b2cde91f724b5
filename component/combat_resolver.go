package component

// CombatResolver applies attacks to targets and records what happened during
// the current turn.
type CombatResolver struct {
	Emitter *CombatEventEmitter
	// Recent holds the events emitted since the last BeginTurn.
	Recent []CombatEvent
}

// NewCombatResolver creates a resolver instance.
func NewCombatResolver() *CombatResolver {
	return &CombatResolver{Emitter: &CombatEventEmitter{}}
}

// BeginTurn clears Recent.
func (r *CombatResolver) BeginTurn() {
	if r == nil {
		return
	}
	r.Recent = r.Recent[:0]
}

// Resolve applies a against target. Attacks between members of the same
// non-neutral faction are ignored. It reports whether damage was applied and
// whether the target died from it.
func (r *CombatResolver) Resolve(a Attack, target Damageable) (applied, killed bool) {
	if r == nil || target == nil {
		return false, false
	}
	if a.Faction != FactionNeutral && a.Faction == target.HurtFaction() {
		return false, false
	}
	health := target.Health()
	if health == nil || !health.IsAlive() {
		return false, false
	}

	evt := CombatEvent{
		Type:       EventHit,
		AttackerID: a.AttackerID,
		TargetID:   target.TargetID(),
		Damage:     a.Amount,
		Pos:        target.Tile(),
	}
	r.emit(evt)

	if !health.ApplyDamage(a.Amount) {
		return false, false
	}
	evt.Type = EventDamageApplied
	r.emit(evt)

	if !health.IsAlive() {
		evt.Type = EventDeath
		r.emit(evt)
		return true, true
	}
	return true, false
}

func (r *CombatResolver) emit(evt CombatEvent) {
	r.Recent = append(r.Recent, evt)
	r.Emitter.Emit(evt)
}

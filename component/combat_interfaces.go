package component

import "github.com/jakecoffman/cp"

// HealthComponent is the part of Health the resolver needs.
type HealthComponent interface {
	IsAlive() bool
	ApplyDamage(amount float32) bool
	CurrentHP() float32
	MaxHP() float32
}

// Damageable is anything an attack can land on.
type Damageable interface {
	TargetID() int
	HurtFaction() Faction
	Health() HealthComponent
	Tile() cp.Vector
}

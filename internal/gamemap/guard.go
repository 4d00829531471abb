package gamemap

import "disguiser/internal/geom"

// GuardMode is a guard's state-machine state.
type GuardMode uint8

const (
	// Patrol walks the patrol-region graph.
	Patrol GuardMode = iota
	// Look pauses after glimpsing an undisguised target.
	Look
	// LookAtDisguised pauses after glimpsing a disguised target.
	LookAtDisguised
	// Listen pauses after hearing the thief while patrolling.
	Listen
	// ChaseVisibleTarget pursues (and attacks) a currently-visible target.
	ChaseVisibleTarget
	// MoveToLastSighting heads for where a chased target broke line of sight.
	MoveToLastSighting
	// MoveToLastSound investigates a noise heard while not patrolling.
	MoveToLastSound
	// MoveToGuardShout responds to another guard's alert.
	MoveToGuardShout
)

// GuardKind selects which patrol regions a guard may be assigned at spawn.
// It has no effect on per-turn behavior.
type GuardKind uint8

const (
	// GuardInner patrols master-suite territory.
	GuardInner GuardKind = iota
	// GuardOuter patrols the public rooms and courtyards.
	GuardOuter
)

// Guard holds one guard's mutable state. Behavior lives in internal/guard;
// the data lives here so the Map can own its guards.
type Guard struct {
	Pos  geom.Coord
	Dir  geom.Coord
	Kind GuardKind
	Mode GuardMode

	Speaking      bool
	HasMoved      bool
	HeardThief    bool
	HearingGuard  bool
	HeardGuard    bool
	HeardGuardPos geom.Coord

	// Chase state.
	Goal        geom.Coord
	ModeTimeout int

	// Patrol state.
	RegionGoal int
	RegionPrev int
}

// PreTurn latches last turn's guard-shout flag and clears the transient
// per-turn flags. Called for every guard before any guard acts.
func (g *Guard) PreTurn() {
	g.HeardGuard = g.HearingGuard
	g.HearingGuard = false
	g.Speaking = false
	g.HasMoved = false
}

// HearThief marks that the thief's noise reached this guard this turn.
func (g *Guard) HearThief() {
	g.HeardThief = true
}

// HearGuard records another guard's shout and the position it reported.
func (g *Guard) HearGuard(posTarget geom.Coord) {
	g.HearingGuard = true
	g.HeardGuardPos = posTarget
}

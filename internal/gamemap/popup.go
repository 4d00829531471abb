package gamemap

import "disguiser/internal/geom"

// PopupKind classifies a popup message.
type PopupKind uint8

const (
	PopupNoise PopupKind = iota
	PopupDamage
	PopupGuardSpeech
	PopupNarration
)

// Popup is one message raised during a turn, anchored to a world position.
type Popup struct {
	Kind PopupKind
	Pos  geom.Coord
	Msg  string
}

// Popups collects the messages raised during a turn. The renderer drains it
// each frame; the simulation clears it at the start of each player turn.
type Popups struct {
	popups []Popup
}

// Clear discards all collected popups.
func (p *Popups) Clear() {
	p.popups = p.popups[:0]
}

// All returns the popups collected so far, in the order raised.
func (p *Popups) All() []Popup {
	return p.popups
}

// GuardSpeech records a guard speech bubble at pos.
func (p *Popups) GuardSpeech(pos geom.Coord, msg string) {
	p.push(PopupGuardSpeech, pos, msg)
}

// Damage records a melee-hit callout at pos.
func (p *Popups) Damage(pos geom.Coord, msg string) {
	p.push(PopupDamage, pos, msg)
}

// Noise records a sound effect the player caused at pos.
func (p *Popups) Noise(pos geom.Coord, msg string) {
	p.push(PopupNoise, pos, msg)
}

// Narration records a centered story message.
func (p *Popups) Narration(msg string) {
	p.push(PopupNarration, geom.Coord{}, msg)
}

func (p *Popups) push(kind PopupKind, pos geom.Coord, msg string) {
	p.popups = append(p.popups, Popup{Kind: kind, Pos: pos, Msg: msg})
}

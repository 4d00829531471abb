package guard

import "disguiser/internal/gamemap"

// lineIter deals out lines from a pool round-robin so repeated alerts don't
// repeat the same phrase.
type lineIter struct {
	lines     []string
	lineIndex int
}

func newLineIter(lines []string) *lineIter {
	return &lineIter{lines: lines}
}

func (it *lineIter) next() string {
	s := it.lines[it.lineIndex]
	it.lineIndex = (it.lineIndex + 1) % len(it.lines)
	return s
}

// Lines holds the guard speech pools for one session.
type Lines struct {
	see                 *lineIter
	seeDisguised        *lineIter
	hear                *lineIter
	hearGuard           *lineIter
	chase               *lineIter
	investigate         *lineIter
	endChase            *lineIter
	endInvestigate      *lineIter
	doneLooking         *lineIter
	doneSeeingDisguised *lineIter
	doneListening       *lineIter
	damage              *lineIter
}

// NewLines returns a fresh set of speech pools, each starting at its first
// line.
func NewLines() *Lines {
	return &Lines{
		see:                 newLineIter(seeLines),
		seeDisguised:        newLineIter(seeDisguisedLines),
		hear:                newLineIter(hearLines),
		hearGuard:           newLineIter(hearGuardLines),
		chase:               newLineIter(chaseLines),
		investigate:         newLineIter(investigateLines),
		endChase:            newLineIter(endChaseLines),
		endInvestigate:      newLineIter(endInvestigationLines),
		doneLooking:         newLineIter(doneLookingLines),
		doneSeeingDisguised: newLineIter(doneSeeingDisguisedLines),
		doneListening:       newLineIter(doneListeningLines),
		damage:              newLineIter(damageLines),
	}
}

// linesForStateChange picks the speech pool for a mode transition, or nil if
// the transition is silent.
func linesForStateChange(lines *Lines, modePrev, modeNext gamemap.GuardMode) *lineIter {
	if modeNext == modePrev {
		return nil
	}
	switch modeNext {
	case gamemap.Patrol:
		switch modePrev {
		case gamemap.Look:
			return lines.doneLooking
		case gamemap.LookAtDisguised:
			return lines.doneSeeingDisguised
		case gamemap.Listen:
			return lines.doneListening
		case gamemap.MoveToLastSound, gamemap.MoveToGuardShout:
			return lines.endInvestigate
		case gamemap.MoveToLastSighting:
			return lines.endChase
		}
		return nil
	case gamemap.Look:
		return lines.see
	case gamemap.LookAtDisguised:
		return lines.seeDisguised
	case gamemap.Listen:
		return lines.hear
	case gamemap.ChaseVisibleTarget:
		if modePrev != gamemap.MoveToLastSighting {
			return lines.chase
		}
		return nil
	case gamemap.MoveToLastSound:
		return lines.investigate
	case gamemap.MoveToGuardShout:
		return lines.hearGuard
	}
	return nil
}

var seeLines = []string{
	"Who goes there?",
	"Huh?",
	"What?",
	"Wait...",
	"Who's that?",
	"Hey...",
	"Hmm...",
	"What moved?",
	"Did that shadow move?",
	"I see something...",
	"Hello?",
}

var seeDisguisedLines = []string{
	"Who are you?",
	"You don't look familiar!",
	"Do I know you?",
	"Wait...",
	"Hey...",
	"Let me see your face...",
	"Do you belong here?",
	"You are...?",
	"Are you new here?",
}

var hearLines = []string{
	"Huh?",
	"What?",
	"Hark!",
	"A noise...",
	"I heard something.",
	"Hmm...",
	"Who goes there?",
	"What's that noise?",
	"I hear something...",
	"Hello?",
}

var hearGuardLines = []string{
	"Where?",
	"I'm coming!",
	"Here I come!",
	"To arms!",
	"Where is he?",
}

var chaseLines = []string{
	"Halt!",
	"Hey!",
	"Aha!",
	"I see you!",
	"I'm coming!",
	"I'll get you!",
	"Just you wait...",
	"You won't get away!",
	"Oh no you don't...",
	"Get him!",
	"After him!",
	"Thief!",
}

var investigateLines = []string{
	"That noise again...",
	"I heard it again!",
	"Someone's there!",
	"Who could that be?",
	"There it is again!",
	"What was that?",
	"Better check it out...",
	"What keeps making those noises?",
	"That better be rats!",
	"Again?",
}

var endChaseLines = []string{
	"(huff, huff)",
	"Where did he go?",
	"Lost him!",
	"Gone!",
	"Come back!",
	"Argh!",
	"He's not coming back.",
	"Blast!",
	"Next time!",
}

var endInvestigationLines = []string{
	"Guess it was nothing.",
	"Wonder what it was?",
	"Better get back.",
	"It's quiet now.",
	"This is where I heard it...",
	"Nothing, now.",
}

var doneLookingLines = []string{
	"Must have been rats.",
	"Too much coffee!",
	"I've got the jitters.",
	"Probably nothing.",
	"I thought I saw something.",
	"Oh well.",
	"Nothing.",
	"Can't see it now.",
	"I've been up too long.",
	"Seeing things, I guess.",
	"Hope it wasn't anything.",
	"Did I imagine that?",
}

var doneSeeingDisguisedLines = []string{
	"Who was that?",
	"Huh...",
	"I wonder who that was?",
	"Oh well.",
	"I'm seeing things.",
	"I've been up too long.",
	"Seeing things, I guess.",
	"Probably new here.",
	"Better get back to it.",
	"Did I imagine that?",
	"Should I tell the boss?",
}

var doneListeningLines = []string{
	"Must have been rats.",
	"Too much coffee!",
	"I've got the jitters.",
	"Probably nothing.",
	"I thought I heard something.",
	"Oh well.",
	"Nothing.",
	"Can't hear it now.",
	"I've been up too long.",
	"Hearing things, I guess.",
	"Hope it wasn't anything.",
	"Did I imagine that?",
}

var damageLines = []string{
	"Oof!",
	"Krak!",
	"Pow!",
	"Urk!",
	"Smack!",
	"Bif!",
}

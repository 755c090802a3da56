// Package story composes short sight-word stories from a fixed library of
// pre-written scenes.
//
// A story walks the day in phase order (wake-up to bedtime), picking at most
// one scene per phase by how many of the requested words it covers, then
// backfills activity scenes and appends filler sentences for words no scene
// contains. Everything in this package is safe for concurrent use: the scene
// library is read-only and composition state lives on the call stack.
package story

import "fmt"

// Phase orders scenes chronologically through a day.
type Phase int

const (
	PhaseWakeUp            Phase = 1
	PhaseBreakfast         Phase = 2
	PhaseLeaveHome         Phase = 3
	PhaseMorningActivity   Phase = 4
	PhaseMiddayActivity    Phase = 5
	PhaseAfternoonActivity Phase = 6
	PhaseSnack             Phase = 7
	PhaseReturnHome        Phase = 8
	PhaseDinner            Phase = 9
	PhaseBedtime           Phase = 10
)

// phaseOrder is the canonical traversal order used by the composer.
var phaseOrder = []Phase{
	PhaseWakeUp,
	PhaseBreakfast,
	PhaseLeaveHome,
	PhaseMorningActivity,
	PhaseMiddayActivity,
	PhaseAfternoonActivity,
	PhaseSnack,
	PhaseReturnHome,
	PhaseDinner,
	PhaseBedtime,
}

// activityPhases are the phases revisited when coverage is low.
var activityPhases = []Phase{
	PhaseMorningActivity,
	PhaseMiddayActivity,
	PhaseAfternoonActivity,
}

var phaseNames = map[Phase]string{
	PhaseWakeUp:            "wake-up",
	PhaseBreakfast:         "breakfast",
	PhaseLeaveHome:         "leave-home",
	PhaseMorningActivity:   "morning-activity",
	PhaseMiddayActivity:    "midday-activity",
	PhaseAfternoonActivity: "afternoon-activity",
	PhaseSnack:             "snack",
	PhaseReturnHome:        "return-home",
	PhaseDinner:            "dinner",
	PhaseBedtime:           "bedtime",
}

// String returns the phase name, e.g. "wake-up".
func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Valid reports whether p is one of the defined phases.
func (p Phase) Valid() bool {
	_, ok := phaseNames[p]
	return ok
}

// Required reports whether every story must contain a scene from this phase.
func (p Phase) Required() bool {
	return p == PhaseWakeUp || p == PhaseBedtime
}

// Activity reports whether p is one of the three activity phases.
func (p Phase) Activity() bool {
	return p >= PhaseMorningActivity && p <= PhaseAfternoonActivity
}

// Phases returns the canonical phase order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// Setting is a descriptive location tag. It is not used for selection.
type Setting string

const (
	SettingHome     Setting = "home"
	SettingPark     Setting = "park"
	SettingSchool   Setting = "school"
	SettingOutside  Setting = "outside"
	SettingStore    Setting = "store"
	SettingAnywhere Setting = "anywhere"
)

func (s Setting) valid() bool {
	switch s {
	case SettingHome, SettingPark, SettingSchool, SettingOutside, SettingStore, SettingAnywhere:
		return true
	}
	return false
}

// NamePlaceholder is replaced by the protagonist's name in scene and filler templates.
const NamePlaceholder = "{name}"

// Scene is an immutable, pre-written piece of the day.
type Scene struct {
	ID      string  `json:"id" yaml:"id"`
	Phase   Phase   `json:"phase" yaml:"phase"`
	Setting Setting `json:"setting" yaml:"setting"`
	// Sentences are templates; each may contain NamePlaceholder.
	Sentences []string `json:"sentences" yaml:"sentences"`
	// Words are the lowercase vocabulary words the sentences contain.
	Words []string `json:"words" yaml:"words"`
}

package pet

// Action identifies a user action
type Action string

const (
	ActionPet     Action = "pet"
	ActionJump    Action = "jump"
	ActionDance   Action = "dance"
	ActionRecolor Action = "recolor"
)

// Tick causes recorded in transitions and history
const (
	CauseDecay = "decay"
	CauseRegen = "regen"
)

// ActionDefinition describes an action's precondition and effects
type ActionDefinition struct {
	Type           Action
	Emoji          string
	MinEnergy      int // Action is blocked below this energy
	Happiness      int
	Energy         int
	Health         int
	ForcedMood     Mood
	Messages       MessagePool
	BlockedMessage string
}

// GetActionDefinitions returns the transition table for all user actions
func GetActionDefinitions() []ActionDefinition {
	return []ActionDefinition{
		{
			Type:       ActionPet,
			Emoji:      "💕",
			Happiness:  PetHappinessIncrease,
			Health:     PetHealthIncrease,
			ForcedMood: MoodHappy,
			Messages:   petMessages,
		},
		{
			Type:           ActionJump,
			Emoji:          "🦘",
			MinEnergy:      JumpMinEnergy,
			Happiness:      JumpHappinessIncrease,
			Energy:         -JumpEnergyCost,
			ForcedMood:     MoodExcited,
			Messages:       jumpMessages,
			BlockedMessage: TooTiredMessage,
		},
		{
			Type:           ActionDance,
			Emoji:          "💃",
			MinEnergy:      DanceMinEnergy,
			Happiness:      DanceHappinessIncrease,
			Energy:         -DanceEnergyCost,
			ForcedMood:     MoodExcited,
			Messages:       danceMessages,
			BlockedMessage: NeedEnergyMessage,
		},
		{
			Type:       ActionRecolor,
			Emoji:      "🌈",
			Happiness:  RecolorHappinessIncrease,
			ForcedMood: MoodHappy,
			Messages:   recolorMessages,
		},
	}
}

// GetActionDefinition returns the definition for a specific action type
func GetActionDefinition(a Action) *ActionDefinition {
	for _, def := range GetActionDefinitions() {
		if def.Type == a {
			return &def
		}
	}
	return nil
}

// Blocked reports whether the action's energy precondition fails.
func (d ActionDefinition) Blocked(s Stats) bool {
	return s.Energy < d.MinEnergy
}

// Transition is the outcome of applying an action or a tick to a snapshot.
type Transition struct {
	Before Snapshot
	After  Snapshot
	Cause  string
	// Classified is the classifier's verdict on the new stats. For user
	// actions it is replaced by the forced mood and only reported.
	Classified Mood
	Performed  bool
	Changed    bool
}

// ApplyAction applies a user action. Recolor without a color keeps the
// current color; use ApplyRecolor to change it.
func ApplyAction(s Snapshot, a Action, r Rand) Transition {
	t := Transition{Before: s, After: s, Cause: string(a)}

	def := GetActionDefinition(a)
	if def == nil {
		return t
	}

	if def.Blocked(s.Stats) {
		t.After.Message = def.BlockedMessage
		t.After = touch(t.After)
		t.Changed = true
		return t
	}

	next := s
	next.Stats = s.Stats.Add(def.Happiness, def.Energy, def.Health)
	next.Mood = Classify(next.Stats)
	t.Classified = next.Mood
	next.Mood = def.ForcedMood
	next.Message = def.Messages.Pick(r)

	t.After = touch(next)
	t.Performed = true
	t.Changed = true
	return t
}

// ApplyRecolor sets the color and applies the recolor action.
func ApplyRecolor(s Snapshot, color string, r Rand) Transition {
	before := s
	s.Color = color
	t := ApplyAction(s, ActionRecolor, r)
	t.Before = before
	return t
}

// ApplyDecay applies one decay tick. The classifier's mood is kept and a
// neglect message may replace the current one when the pet needs attention.
func ApplyDecay(s Snapshot, r Rand, neglectChance float64) Transition {
	next := s
	next.Stats = s.Stats.Add(-DecayHappinessRate, -DecayEnergyRate, -DecayHealthRate)
	next.Mood = Classify(next.Stats)

	if NeedsAttention(next.Stats) && r.Float64() < neglectChance {
		next.Message = neglectMessages.Pick(r)
	}

	return Transition{
		Before:     s,
		After:      touch(next),
		Cause:      CauseDecay,
		Classified: next.Mood,
		Performed:  true,
		Changed:    true,
	}
}

// ApplyRegen applies one regeneration tick. It is a no-op unless the pet is
// happy enough and not at full health.
func ApplyRegen(s Snapshot) Transition {
	t := Transition{Before: s, After: s, Cause: CauseRegen}
	if s.Stats.Happiness <= RegenHappinessThreshold || s.Stats.Health >= MaxStat {
		return t
	}

	next := s
	next.Stats = s.Stats.Add(0, 0, RegenHealthIncrease)
	next.Mood = Classify(next.Stats)

	t.After = touch(next)
	t.Classified = next.Mood
	t.Performed = true
	t.Changed = true
	return t
}

func touch(s Snapshot) Snapshot {
	s.Version++
	s.UpdatedAt = TimeNow()
	return s
}

package pet

import "time"

// Game constants
const (
	DefaultColor = "#ff6b6b"
	MaxStat      = 100
	MinStat      = 0

	InitialHappiness = 75
	InitialEnergy    = 80
	InitialHealth    = 90

	// Ticker periods
	DecayInterval = 8 * time.Second
	RegenInterval = 15 * time.Second

	// Decay tick deltas
	DecayHappinessRate = 2
	DecayEnergyRate    = 1
	DecayHealthRate    = 1

	NeglectChance    = 0.3 // Chance per decay tick of a neglect message
	NeglectThreshold = 30  // Happiness or energy below this allows neglect messages

	// Regeneration
	RegenHappinessThreshold = 70 // Happiness must be above this to regenerate
	RegenHealthIncrease     = 3

	// Action effects
	PetHappinessIncrease     = 15
	PetHealthIncrease        = 5
	JumpEnergyCost           = 12
	JumpHappinessIncrease    = 8
	JumpMinEnergy            = 10
	DanceHappinessIncrease   = 20
	DanceEnergyCost          = 25
	DanceMinEnergy           = 15
	RecolorHappinessIncrease = 10

	// Mood classifier thresholds (average of the three stats)
	HappyAverageThreshold  = 80
	NormalAverageThreshold = 60
	TiredAverageThreshold  = 40
	LowEnergyThreshold     = 20

	MaxHistory = 20 // Keep last 20 mood transitions

	GreetingMessage   = "Hi! I'm ready to play with you 🎮"
	TooTiredMessage   = "I'm too tired to jump! 😴"
	NeedEnergyMessage = "I need more energy to dance! 💤"
)

// Mood status emojis
const (
	MoodEmojiHappy   = "😊"
	MoodEmojiExcited = "🤩"
	MoodEmojiTired   = "😴"
	MoodEmojiSad     = "😢"
	MoodEmojiNormal  = "😐"
)

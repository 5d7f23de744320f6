package scene

import (
	"math"

	"moodpet/internal/pet"
)

// Always-on body motion
const (
	BreathFreq = 2.0
	BreathAmp  = 0.05
	YawFreq    = 0.5
	YawAmp     = 0.1

	BlinkFreq      = 0.5
	BlinkThreshold = 0.95
	BlinkScale     = 0.1
)

// Pose is the mood-specific vertical bob and roll superimposed on the body.
type Pose struct {
	BobFreq  float64
	BobAmp   float64
	Offset   float64
	RollFreq float64
	RollAmp  float64
}

// Height returns the body's vertical offset at time t.
func (p Pose) Height(t float64) float64 {
	return math.Sin(t*p.BobFreq)*p.BobAmp + p.Offset
}

// Roll returns the body's Z rotation at time t.
func (p Pose) Roll(t float64) float64 {
	return math.Sin(t*p.RollFreq) * p.RollAmp
}

var poses = map[pet.Mood]Pose{
	pet.MoodHappy:   {BobFreq: 3, BobAmp: 0.1},
	pet.MoodExcited: {BobFreq: 5, BobAmp: 0.2, RollFreq: 4, RollAmp: 0.1},
	pet.MoodTired:   {BobFreq: 1, BobAmp: 0.05, Offset: -0.1},
	pet.MoodSad:     {Offset: -0.2},
	pet.MoodNormal:  {BobFreq: 2, BobAmp: 0.05},
}

// PoseFor returns the pose for a mood; unknown moods bob like normal.
func PoseFor(m pet.Mood) Pose {
	if p, ok := poses[m]; ok {
		return p
	}
	return poses[pet.MoodNormal]
}

// MouthShape is the mouth's scale and vertical offset for a mood.
type MouthShape struct {
	ScaleX  float64
	ScaleY  float64
	OffsetY float64
	Flipped bool // upside down
}

var mouths = map[pet.Mood]MouthShape{
	pet.MoodHappy:   {ScaleX: 1.2, ScaleY: 0.8, OffsetY: -0.3},
	pet.MoodExcited: {ScaleX: 1.2, ScaleY: 0.8, OffsetY: -0.3},
	pet.MoodSad:     {ScaleX: 0.8, ScaleY: 1.2, OffsetY: -0.4, Flipped: true},
	pet.MoodTired:   {ScaleX: 0.6, ScaleY: 0.6, OffsetY: -0.35},
	pet.MoodNormal:  {ScaleX: 1, ScaleY: 1, OffsetY: -0.3},
}

// MouthFor returns the mouth shape for a mood.
func MouthFor(m pet.Mood) MouthShape {
	if s, ok := mouths[m]; ok {
		return s
	}
	return mouths[pet.MoodNormal]
}

// Breathing returns the uniform body scale at time t.
func Breathing(t float64) float64 {
	return 1 + math.Sin(t*BreathFreq)*BreathAmp
}

// Yaw returns the slow body Y rotation at time t.
func Yaw(t float64) float64 {
	return math.Sin(t*YawFreq) * YawAmp
}

// Blink returns the eyes' vertical scale at time t.
func Blink(t float64) float64 {
	if math.Sin(t*BlinkFreq) > BlinkThreshold {
		return BlinkScale
	}
	return 1
}

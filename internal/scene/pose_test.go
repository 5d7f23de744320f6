package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"moodpet/internal/pet"
)

const epsilon = 1e-9

func TestPoseHeight(t *testing.T) {
	at := math.Pi / 2

	assert.InDelta(t, math.Sin(at*3)*0.1, PoseFor(pet.MoodHappy).Height(at), epsilon)
	assert.InDelta(t, math.Sin(at*5)*0.2, PoseFor(pet.MoodExcited).Height(at), epsilon)
	assert.InDelta(t, math.Sin(at)*0.05-0.1, PoseFor(pet.MoodTired).Height(at), epsilon)
	assert.InDelta(t, -0.2, PoseFor(pet.MoodSad).Height(at), epsilon)
	assert.InDelta(t, math.Sin(at*2)*0.05, PoseFor(pet.MoodNormal).Height(at), epsilon)
}

func TestPoseRollOnlyWhenExcited(t *testing.T) {
	at := 0.3
	assert.InDelta(t, math.Sin(at*4)*0.1, PoseFor(pet.MoodExcited).Roll(at), epsilon)
	for _, m := range []pet.Mood{pet.MoodHappy, pet.MoodTired, pet.MoodSad, pet.MoodNormal} {
		assert.Zero(t, PoseFor(m).Roll(at), "%s should not roll", m)
	}
}

func TestPoseForUnknownMood(t *testing.T) {
	assert.Equal(t, PoseFor(pet.MoodNormal), PoseFor("grumpy"))
	assert.Equal(t, MouthFor(pet.MoodNormal), MouthFor("grumpy"))
}

func TestMouthFor(t *testing.T) {
	assert.Equal(t, MouthShape{1.2, 0.8, -0.3, false}, MouthFor(pet.MoodHappy))
	assert.Equal(t, MouthFor(pet.MoodHappy), MouthFor(pet.MoodExcited))
	assert.Equal(t, MouthShape{0.8, 1.2, -0.4, true}, MouthFor(pet.MoodSad))
	assert.Equal(t, MouthShape{0.6, 0.6, -0.35, false}, MouthFor(pet.MoodTired))
	assert.Equal(t, MouthShape{1, 1, -0.3, false}, MouthFor(pet.MoodNormal))
}

func TestBreathingAndYaw(t *testing.T) {
	assert.InDelta(t, 1.0, Breathing(0), epsilon)
	assert.InDelta(t, 1.05, Breathing(math.Pi/4), epsilon)
	assert.InDelta(t, 0.1, Yaw(math.Pi), epsilon)
}

func TestBlink(t *testing.T) {
	assert.Equal(t, 1.0, Blink(0))
	// sin(0.5t) peaks at t = pi.
	assert.Equal(t, BlinkScale, Blink(math.Pi))
	assert.Equal(t, 1.0, Blink(3*math.Pi))
}

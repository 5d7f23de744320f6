package ui

import (
	"time"

	"moodpet/internal/pet"
)

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimPet
	AnimJump
	AnimDance
	AnimRecolor
)

// Animation holds the current animation state
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
}

// AnimationFrames contains ASCII art frames for each animation type
var AnimationFrames = map[AnimationType][]string{
	AnimPet: {
		`
   ✋
     \
      (•‿•)
`,
		`

   ✋(•‿•)

`,
		`

    (^‿^)
   *purr*
`,
		`
      ♥
    (^‿^)
   *purr*
`,
	},
	AnimJump: {
		`

    (•‿•)
   ‾‾‾‾‾‾‾
`,
		`
    (°o°)
      ↑
   ‾‾‾‾‾‾‾
`,
		`
    \(^o^)/

   ‾‾‾‾‾‾‾
`,
		`

    (•‿•)
   ‾‾‾‾‾‾‾ *boing*
`,
	},
	AnimDance: {
		`
   ♪ (•‿•) ♪
     /|\
`,
		`
  ♫ \(•‿•)  ♪
       |\
`,
		`
   ♪  (•‿•)/ ♫
      /|
`,
		`
  ♫ \(^o^)/ ♫
      | |
`,
		`
   ✨ (^‿^) ✨
    *twirl*
`,
	},
	AnimRecolor: {
		`
   🎨      (•‿•)
`,
		`
      🎨→  (•‿•)
`,
		`
         ~(°o°)~
`,
		`
          (^‿^)
        ✨ new! ✨
`,
	},
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 200 * time.Millisecond

// AnimationFor returns the animation played after a successful action.
func AnimationFor(a pet.Action) AnimationType {
	switch a {
	case pet.ActionPet:
		return AnimPet
	case pet.ActionJump:
		return AnimJump
	case pet.ActionDance:
		return AnimDance
	case pet.ActionRecolor:
		return AnimRecolor
	}
	return AnimNone
}

// GetAnimationFrame returns the current frame for an animation
func GetAnimationFrame(anim Animation) string {
	frames := AnimationFrames[anim.Type]
	if len(frames) == 0 {
		return ""
	}
	if anim.Frame >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[anim.Frame]
}

// IsAnimationComplete returns true if the animation has finished
func IsAnimationComplete(anim Animation) bool {
	frames := AnimationFrames[anim.Type]
	return anim.Frame >= len(frames)
}

// AnimationTotalFrames returns the number of frames for an animation type
func AnimationTotalFrames(animType AnimationType) int {
	return len(AnimationFrames[animType])
}

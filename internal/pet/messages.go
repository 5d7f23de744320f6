package pet

// MessagePool is a fixed set of flavor texts
type MessagePool []string

var (
	petMessages = MessagePool{
		"I love being petted! 💕",
		"So nice! I feel so loved 🥰",
		"More pets please! ✨",
	}
	jumpMessages = MessagePool{
		"What a fun jump! 🦘",
		"Weee! I love jumping 🌟",
		"Look how high I can jump! 🚀",
	}
	danceMessages = MessagePool{
		"Dancing is the best, even if it tires me out! 💃",
		"Check out my moves! 🕺",
		"The music fills me with energy! 🎵",
	}
	recolorMessages = MessagePool{
		"New look, new me! ✨",
		"I look fantastic in this color! 🌈",
		"Thanks for making me more beautiful! 💖",
	}
	neglectMessages = MessagePool{
		"I need a little attention... 😔",
		"I feel a bit lonely... 🥺",
		"A little affection would be nice... 💭",
	}
)

// Pick returns a random message from the pool.
func (p MessagePool) Pick(r Rand) string {
	if len(p) == 0 {
		return ""
	}
	i := r.Intn(len(p))
	if i < 0 || i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

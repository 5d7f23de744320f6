package pet

// GetMoodEmoji returns the status emoji for a mood
func GetMoodEmoji(m Mood) string {
	switch m {
	case MoodHappy:
		return MoodEmojiHappy
	case MoodExcited:
		return MoodEmojiExcited
	case MoodTired:
		return MoodEmojiTired
	case MoodSad:
		return MoodEmojiSad
	default:
		return MoodEmojiNormal
	}
}

// GetStatusWithLabel returns the mood badge shown next to the avatar
func GetStatusWithLabel(s Snapshot) string {
	mood := s.Mood
	if mood == "" {
		mood = MoodNormal
	}
	return GetMoodEmoji(mood) + " " + string(mood)
}

// NeedsAttention reports whether the pet is in the range where neglect
// messages can appear.
func NeedsAttention(s Stats) bool {
	return s.Happiness < NeglectThreshold || s.Energy < NeglectThreshold
}

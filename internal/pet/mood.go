package pet

// Classify maps stats to a mood. Rules are checked in order and the first
// match wins, so the low-energy rule only applies below the tired average.
func Classify(s Stats) Mood {
	average := s.Average()

	switch {
	case average >= HappyAverageThreshold:
		return MoodHappy
	case average >= NormalAverageThreshold:
		return MoodNormal
	case average >= TiredAverageThreshold:
		return MoodTired
	case s.Energy < LowEnergyThreshold:
		return MoodTired
	default:
		return MoodSad
	}
}

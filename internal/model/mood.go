package model

// MoodCategory is the coarse mood bucket derived from the 0..100 slider.
type MoodCategory string

const (
	MoodSad     MoodCategory = "sad"
	MoodNeutral MoodCategory = "neutral"
	MoodHappy   MoodCategory = "happy"
)

// Mood value bounds and the neutral default used when no cookie is set.
const (
	MoodMin          = 0
	MoodMax          = 100
	DefaultMoodValue = 50
)

// CategoryFromMood maps a mood value to its category:
// <=35 sad, >=75 happy, neutral in between.
func CategoryFromMood(value int) MoodCategory {
	switch {
	case value <= 35:
		return MoodSad
	case value >= 75:
		return MoodHappy
	default:
		return MoodNeutral
	}
}

// ParseMoodCategory validates a category string coming from clients.
func ParseMoodCategory(s string) (MoodCategory, bool) {
	switch MoodCategory(s) {
	case MoodSad, MoodNeutral, MoodHappy:
		return MoodCategory(s), true
	}
	return "", false
}

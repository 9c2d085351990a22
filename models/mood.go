package models

// Mood 情绪标签，封闭枚举
type Mood string

const (
	MoodSuicidal Mood = "suicidal"
	MoodSad      Mood = "sad"
	MoodAnxious  Mood = "anxious"
	MoodHappy    Mood = "happy"
	MoodNeutral  Mood = "neutral"
)

// AllMoods 全部合法的情绪标签
var AllMoods = []Mood{MoodSuicidal, MoodSad, MoodAnxious, MoodHappy, MoodNeutral}

// IsValid 判断是否为合法情绪标签
func (m Mood) IsValid() bool {
	switch m {
	case MoodSuicidal, MoodSad, MoodAnxious, MoodHappy, MoodNeutral:
		return true
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

package models

import "github.com/google/uuid"

// Quote 励志名言模型
type Quote struct {
	ID      string `gorm:"type:varchar(50);primaryKey" json:"id"`
	Text    string `gorm:"type:text" json:"text"`
	Author  string `gorm:"type:varchar(100)" json:"author"`
	MoodTag Mood   `gorm:"type:varchar(20);index" json:"moodTag"`
}

// SeedQuotes 返回内置的名言数据，每个情绪标签至少两条
func SeedQuotes() []Quote {
	seeds := []struct {
		text   string
		author string
		mood   Mood
	}{
		{"Every day is a new beginning. Take a deep breath, smile, and start again.", "Anonymous", MoodHappy},
		{"Happiness is not something ready made. It comes from your own actions.", "Dalai Lama", MoodHappy},
		{"It's okay to feel sad sometimes. Your feelings are valid and this too shall pass.", "Anonymous", MoodSad},
		{"You are stronger than you think. Even in your darkest moments, remember that you have overcome challenges before.", "Anonymous", MoodSad},
		{"Anxiety is temporary. Take one moment at a time and breathe through it.", "Anonymous", MoodAnxious},
		{"You don't have to control your thoughts. You just have to stop letting them control you.", "Dan Millman", MoodAnxious},
		{"You matter. Your life has value. There are people who care about you, even when it doesn't feel that way.", "Anonymous", MoodSuicidal},
		{"This feeling is temporary. Please reach out for help. You are not alone in this.", "Anonymous", MoodSuicidal},
		{"Sometimes the most productive thing you can do is to simply exist and be present.", "Anonymous", MoodNeutral},
		{"Not every day needs to be extraordinary. There's beauty in ordinary moments too.", "Anonymous", MoodNeutral},
	}

	quotes := make([]Quote, len(seeds))
	for i, s := range seeds {
		quotes[i] = Quote{
			ID:      uuid.New().String(),
			Text:    s.text,
			Author:  s.author,
			MoodTag: s.mood,
		}
	}
	return quotes
}

package models

import "time"

// UserResponse 用户响应结构体
type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	TrustedEmail string `json:"trustedEmail"`
	TrustedPhone string `json:"trustedPhone"`
	PhotoURL     string `json:"photoUrl"`
}

// AnalyzeResponse 情绪分析响应结构体
type AnalyzeResponse struct {
	Mood  Mood   `json:"mood"`
	Quote *Quote `json:"quote"`
}

// StatsResponse 用户统计响应结构体
type StatsResponse struct {
	WeeklyEntries int  `json:"weeklyEntries"`
	CurrentStreak int  `json:"currentStreak"`
	CommonMood    Mood `json:"commonMood"`
}

// SavedQuoteResponse 收藏名言响应结构体
type SavedQuoteResponse struct {
	ID      string    `json:"id"`
	SavedAt time.Time `json:"savedAt"`
	Quote   Quote     `json:"quote"`
}

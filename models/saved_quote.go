package models

import "time"

// SavedQuote 用户收藏的名言
type SavedQuote struct {
	ID      string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID  string    `gorm:"type:varchar(50);index:idx_user_quote,unique" json:"userId"`
	QuoteID string    `gorm:"type:varchar(50);index:idx_user_quote,unique" json:"quoteId"`
	SavedAt time.Time `json:"savedAt"`
}

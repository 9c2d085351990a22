package models

import "time"

// JournalEntry 日记条目模型，保存后不可修改
type JournalEntry struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"userId"`
	EntryText string    `gorm:"type:text" json:"entryText"`
	Mood      Mood      `gorm:"type:varchar(20)" json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
}

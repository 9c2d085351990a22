package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID               string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100)" json:"name"`
	Email            string    `gorm:"type:varchar(100);uniqueIndex" json:"email"`
	Password         string    `gorm:"type:varchar(100)" json:"-"`
	TrustedEmail     string    `gorm:"type:varchar(100)" json:"trustedEmail"`
	TrustedPhone     string    `gorm:"type:varchar(50)" json:"trustedPhone"`
	PhotoURL         string    `gorm:"type:varchar(255)" json:"photoUrl"`
	IsVerified       bool      `gorm:"default:false" json:"isVerified"`
	VerificationCode string    `gorm:"type:varchar(10)" json:"-"`
	Provider         string    `gorm:"type:varchar(50)" json:"provider"`
	ProviderID       string    `gorm:"type:varchar(100)" json:"-"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (u *User) GetDisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}

// HasTrustedContact 判断是否配置了紧急联系人邮箱
func (u *User) HasTrustedContact() bool {
	return u.TrustedEmail != ""
}

package models

import (
	"fmt"
	"strings"
)

// SignupRequest 注册请求结构体
type SignupRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	TrustedEmail    string `json:"trustedEmail"`
	TrustedPhone    string `json:"trustedPhone"`
	PhotoURL        string `json:"photoUrl"`
}

func (r *SignupRequest) Validate() error {
	if r.Password != r.ConfirmPassword {
		return fmt.Errorf("passwords don't match")
	}
	if r.TrustedEmail != "" && !strings.Contains(r.TrustedEmail, "@") {
		return fmt.Errorf("invalid trusted email")
	}
	return nil
}

// LoginRequest 登录请求结构体
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest 邮箱验证请求结构体
type VerifyRequest struct {
	UserID string `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

// GoogleLoginRequest Google登录请求结构体
type GoogleLoginRequest struct {
	Code  string `json:"code" binding:"required"` // 授权码
	State string `json:"state"`                   // 状态参数
}

// AnalyzeRequest 情绪分析请求结构体
type AnalyzeRequest struct {
	EntryText string `json:"entryText" binding:"required"`
}

// SaveEntryRequest 日记保存请求结构体
// Mood 字段仅为兼容旧客户端保留，服务端保存时总是重新分类
type SaveEntryRequest struct {
	EntryText string `json:"entryText" binding:"required"`
	Mood      string `json:"mood"`
}

// UpdateProfileRequest 资料更新请求结构体
type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	TrustedEmail *string `json:"trustedEmail"`
	TrustedPhone *string `json:"trustedPhone"`
	PhotoURL     *string `json:"photoUrl"`
	Password     *string `json:"password"`
}

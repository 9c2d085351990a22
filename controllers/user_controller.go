package controllers

import (
	"net/http"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"github.com/ahanaf-mohosen/DailyMoodCheck/utils"
	"github.com/gin-gonic/gin"
)

type UserController struct{}

// GetProfile 获取当前用户资料
func (uc *UserController) GetProfile(c *gin.Context) {
	uid := c.GetString("uid")

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, models.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		TrustedEmail: user.TrustedEmail,
		TrustedPhone: user.TrustedPhone,
		PhotoURL:     user.PhotoURL,
	})
}

// UpdateProfile 更新用户资料，只更新请求中出现的字段
func (uc *UserController) UpdateProfile(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.TrustedEmail != nil {
		updates["trusted_email"] = *req.TrustedEmail
	}
	if req.TrustedPhone != nil {
		updates["trusted_phone"] = *req.TrustedPhone
	}
	if req.PhotoURL != nil {
		updates["photo_url"] = *req.PhotoURL
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			config.Logger.Errorw("密码加密失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		updates["password"] = hashed
	}

	if len(updates) > 0 {
		if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
			config.Logger.Errorw("用户资料更新失败", "error", err, "uid", uid)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	c.JSON(http.StatusOK, models.UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		TrustedEmail: user.TrustedEmail,
		TrustedPhone: user.TrustedPhone,
		PhotoURL:     user.PhotoURL,
	})
}

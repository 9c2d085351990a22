package controllers

import (
	"net/http"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"github.com/ahanaf-mohosen/DailyMoodCheck/utils"
	"github.com/gin-gonic/gin"
)

type QuoteController struct{}

// SaveQuote 收藏名言
func (qc *QuoteController) SaveQuote(c *gin.Context) {
	uid := c.GetString("uid")
	quoteID := c.Param("quoteId")

	var quote models.Quote
	if err := config.DB.Where("id = ?", quoteID).First(&quote).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quote not found"})
		return
	}

	// 重复收藏直接返回已有记录
	var existing models.SavedQuote
	if err := config.DB.Where("user_id = ? AND quote_id = ?", uid, quoteID).First(&existing).Error; err == nil {
		c.JSON(http.StatusCreated, existing)
		return
	}

	saved := models.SavedQuote{
		ID:      utils.GenerateID(),
		UserID:  uid,
		QuoteID: quoteID,
		SavedAt: time.Now(),
	}
	if err := config.DB.Create(&saved).Error; err != nil {
		config.Logger.Errorw("名言收藏失败", "error", err, "uid", uid, "quoteID", quoteID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save quote"})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// UnsaveQuote 取消收藏
func (qc *QuoteController) UnsaveQuote(c *gin.Context) {
	uid := c.GetString("uid")
	quoteID := c.Param("quoteId")

	if err := config.DB.Where("user_id = ? AND quote_id = ?", uid, quoteID).
		Delete(&models.SavedQuote{}).Error; err != nil {
		config.Logger.Errorw("取消收藏失败", "error", err, "uid", uid, "quoteID", quoteID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unsave quote"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetSavedQuotes 获取收藏的名言列表
func (qc *QuoteController) GetSavedQuotes(c *gin.Context) {
	uid := c.GetString("uid")

	var saved []models.SavedQuote
	if err := config.DB.Where("user_id = ?", uid).Order("saved_at DESC").Find(&saved).Error; err != nil {
		config.Logger.Errorw("获取收藏列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch saved quotes"})
		return
	}

	responses := make([]models.SavedQuoteResponse, 0, len(saved))
	for _, s := range saved {
		var quote models.Quote
		if err := config.DB.Where("id = ?", s.QuoteID).First(&quote).Error; err != nil {
			continue
		}
		responses = append(responses, models.SavedQuoteResponse{
			ID:      s.ID,
			SavedAt: s.SavedAt,
			Quote:   quote,
		})
	}

	c.JSON(http.StatusOK, responses)
}

// IsQuoteSaved 查询某条名言是否已收藏
func (qc *QuoteController) IsQuoteSaved(c *gin.Context) {
	uid := c.GetString("uid")
	quoteID := c.Param("quoteId")

	var count int64
	if err := config.DB.Model(&models.SavedQuote{}).
		Where("user_id = ? AND quote_id = ?", uid, quoteID).Count(&count).Error; err != nil {
		config.Logger.Errorw("查询收藏状态失败", "error", err, "uid", uid, "quoteID", quoteID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check quote save status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isSaved": count > 0})
}

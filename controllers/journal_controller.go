package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"github.com/ahanaf-mohosen/DailyMoodCheck/services"
	"github.com/ahanaf-mohosen/DailyMoodCheck/utils"
	"github.com/gin-gonic/gin"
)

type JournalController struct {
	moodService  *services.MoodService
	quoteService *services.QuoteService
	alertService *services.AlertService
}

func NewJournalController(moodService *services.MoodService, quoteService *services.QuoteService, alertService *services.AlertService) *JournalController {
	return &JournalController{
		moodService:  moodService,
		quoteService: quoteService,
		alertService: alertService,
	}
}

// AnalyzeEntry 分析日记情绪并返回匹配的名言，不落库也不触发告警
func (jc *JournalController) AnalyzeEntry(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry text is required"})
		return
	}

	mood := jc.moodService.Classify(req.EntryText)

	quote, err := jc.quoteService.PickQuote(c.Request.Context(), mood)
	if err != nil {
		if errors.Is(err, services.ErrNoQuoteAvailable) {
			config.Logger.Errorw("情绪标签下没有名言", "mood", mood)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No quote available for this mood"})
			return
		}
		config.Logger.Errorw("名言查询失败", "error", err, "mood", mood)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze mood"})
		return
	}

	c.JSON(http.StatusOK, models.AnalyzeResponse{
		Mood:  mood,
		Quote: quote,
	})
}

// SaveEntry 保存日记
// 服务端在保存前重新做情绪分类，忽略客户端提交的mood字段，
// 入库和告警判断都只使用服务端结果
func (jc *JournalController) SaveEntry(c *gin.Context) {
	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
		return
	}

	var req models.SaveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry text is required"})
		return
	}

	var user models.User
	if err := config.DB.Where("id = ?", uid).First(&user).Error; err != nil {
		config.Logger.Errorw("获取用户信息失败", "error", err, "uid", uid)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	mood := jc.moodService.Classify(req.EntryText)

	entry := models.JournalEntry{
		ID:        utils.GenerateID(),
		UserID:    user.ID,
		EntryText: req.EntryText,
		Mood:      mood,
		CreatedAt: time.Now(),
	}

	if err := config.DB.Create(&entry).Error; err != nil {
		config.Logger.Errorw("日记保存失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save journal entry"})
		return
	}

	// 统计缓存失效
	invalidateStatsCache(user.ID)

	// 日记已落库，再判断是否触发紧急告警；发送是异步的，失败不影响本次响应
	if jc.alertService.ShouldEscalate(mood, user.TrustedEmail) {
		jc.alertService.DispatchAlert(user, req.EntryText)
	}

	c.JSON(http.StatusCreated, entry)
}

// GetEntries 获取当前用户的全部日记，按时间倒序
func (jc *JournalController) GetEntries(c *gin.Context) {
	uid := c.GetString("uid")

	var entries []models.JournalEntry
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&entries).Error; err != nil {
		config.Logger.Errorw("获取日记列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch journal entries"})
		return
	}

	c.JSON(http.StatusOK, entries)
}

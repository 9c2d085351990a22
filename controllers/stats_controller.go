package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"github.com/gin-gonic/gin"
)

// 统计结果缓存时长
const statsCacheTTL = 5 * time.Minute

type StatsController struct{}

func statsCacheKey(uid string) string {
	return fmt.Sprintf("stats:%s", uid)
}

// invalidateStatsCache 日记保存后让统计缓存失效
func invalidateStatsCache(uid string) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(context.Background(), statsCacheKey(uid)).Err(); err != nil {
		config.Logger.Errorw("统计缓存失效失败", "error", err, "uid", uid)
	}
}

// GetStats 获取用户统计数据，优先读Redis缓存
func (sc *StatsController) GetStats(c *gin.Context) {
	uid := c.GetString("uid")

	// 先查缓存
	if config.RedisClient != nil {
		if cached, err := config.RedisClient.Get(c, statsCacheKey(uid)).Result(); err == nil {
			var stats models.StatsResponse
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				c.JSON(http.StatusOK, stats)
				return
			}
		}
	}

	var entries []models.JournalEntry
	if err := config.DB.Where("user_id = ?", uid).Order("created_at DESC").Find(&entries).Error; err != nil {
		config.Logger.Errorw("获取日记列表失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user stats"})
		return
	}

	stats := computeStats(entries, time.Now())

	// 写缓存，失败不影响响应
	if config.RedisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			if err := config.RedisClient.Set(c, statsCacheKey(uid), data, statsCacheTTL).Err(); err != nil {
				config.Logger.Errorw("统计缓存写入失败", "error", err, "uid", uid)
			}
		}
	}

	c.JSON(http.StatusOK, stats)
}

// GetWeeklyMood 获取最近7天按日期和情绪分组的日记数量
func (sc *StatsController) GetWeeklyMood(c *gin.Context) {
	uid := c.GetString("uid")
	weekAgo := time.Now().AddDate(0, 0, -7)

	var entries []models.JournalEntry
	if err := config.DB.Where("user_id = ? AND created_at >= ?", uid, weekAgo).Find(&entries).Error; err != nil {
		config.Logger.Errorw("获取情绪记录失败", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weekly mood data"})
		return
	}

	c.JSON(http.StatusOK, groupByDayAndMood(entries))
}

// computeStats 计算近7天日记数、连续打卡天数和近30天最常见情绪
func computeStats(entries []models.JournalEntry, now time.Time) models.StatsResponse {
	weekAgo := now.AddDate(0, 0, -7)
	weeklyEntries := 0
	for _, e := range entries {
		if e.CreatedAt.After(weekAgo) {
			weeklyEntries++
		}
	}

	// 连续打卡：从今天往前数，每天至少一条日记
	streak := 0
	day := now
	for {
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		hasEntry := false
		for _, e := range entries {
			if !e.CreatedAt.Before(dayStart) && e.CreatedAt.Before(dayEnd) {
				hasEntry = true
				break
			}
		}

		if !hasEntry {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}

	// 近30天最常见情绪
	monthAgo := now.AddDate(0, 0, -30)
	moodCounts := map[models.Mood]int{}
	for _, e := range entries {
		if e.CreatedAt.After(monthAgo) {
			moodCounts[e.Mood]++
		}
	}

	commonMood := models.MoodNeutral
	bestCount := 0
	for _, mood := range models.AllMoods {
		if moodCounts[mood] > bestCount {
			commonMood = mood
			bestCount = moodCounts[mood]
		}
	}

	return models.StatsResponse{
		WeeklyEntries: weeklyEntries,
		CurrentStreak: streak,
		CommonMood:    commonMood,
	}
}

// groupByDayAndMood 按日期和情绪分组统计条数
func groupByDayAndMood(entries []models.JournalEntry) map[string]map[models.Mood]int {
	result := map[string]map[models.Mood]int{}
	for _, e := range entries {
		day := e.CreatedAt.Format("2006-01-02")
		if result[day] == nil {
			result[day] = map[models.Mood]int{}
		}
		result[day][e.Mood]++
	}
	return result
}

package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"github.com/ahanaf-mohosen/DailyMoodCheck/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type fakeMailer struct {
	mu   sync.Mutex
	sent int
	err  error
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent++
	return m.err
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

// setupTestDB 为每个测试准备独立的内存数据库
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("打开测试数据库失败: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.JournalEntry{}, &models.Quote{}, &models.SavedQuote{}); err != nil {
		t.Fatalf("迁移测试数据库失败: %v", err)
	}
	config.DB = db
}

func seedTestQuotes(t *testing.T) {
	t.Helper()
	quotes := models.SeedQuotes()
	if err := config.DB.Create(&quotes).Error; err != nil {
		t.Fatalf("写入测试名言失败: %v", err)
	}
}

// newJournalRouter 构造带认证上下文的测试路由
func newJournalRouter(jc *JournalController, uid string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("uid", uid)
		c.Next()
	})
	r.POST("/api/journal/analyze", jc.AnalyzeEntry)
	r.POST("/api/journal/save", jc.SaveEntry)
	r.GET("/api/journal/entries", jc.GetEntries)
	return r
}

func newTestController(mailer services.Mailer) (*JournalController, *services.AlertService) {
	moodService := services.NewMoodService(services.DefaultLexicon())
	quoteService := services.NewQuoteService(&services.GormQuoteRepository{}, nil)
	alertService := services.NewAlertService(mailer)
	return NewJournalController(moodService, quoteService, alertService), alertService
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeEntryReturnsMoodAndMatchingQuote(t *testing.T) {
	setupTestDB(t)
	seedTestQuotes(t)

	jc, _ := newTestController(&fakeMailer{})
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/analyze", gin.H{"entryText": "I am so happy and grateful today"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp models.AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("解析响应失败: %v", err)
	}
	if resp.Mood != models.MoodHappy {
		t.Fatalf("mood = %s, want happy", resp.Mood)
	}
	if resp.Quote == nil || resp.Quote.MoodTag != models.MoodHappy {
		t.Fatalf("quote tag should match the computed mood, got %+v", resp.Quote)
	}

	// analyze 不落库
	var count int64
	config.DB.Model(&models.JournalEntry{}).Count(&count)
	if count != 0 {
		t.Fatalf("analyze should not persist entries, found %d", count)
	}
}

func TestAnalyzeEntryNoQuoteConfigured(t *testing.T) {
	setupTestDB(t)
	// 不写入任何名言

	jc, _ := newTestController(&fakeMailer{})
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/analyze", gin.H{"entryText": "just an ordinary note"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestAnalyzeEntryMissingText(t *testing.T) {
	setupTestDB(t)

	jc, _ := newTestController(&fakeMailer{})
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/analyze", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSaveEntryEscalatesForSuicidalMood(t *testing.T) {
	setupTestDB(t)
	seedTestQuotes(t)

	user := models.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TrustedEmail: "friend@example.com",
		IsVerified:   true,
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}

	mailer := &fakeMailer{}
	jc, alertService := newTestController(mailer)
	r := newJournalRouter(jc, "u1")

	// 客户端谎报happy，服务端必须重新分类并按suicidal处理
	w := postJSON(r, "/api/journal/save", gin.H{
		"entryText": "I want to end it all",
		"mood":      "happy",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var entry models.JournalEntry
	if err := config.DB.Where("user_id = ?", "u1").First(&entry).Error; err != nil {
		t.Fatalf("日记未落库: %v", err)
	}
	if entry.Mood != models.MoodSuicidal {
		t.Fatalf("stored mood = %s, want suicidal", entry.Mood)
	}

	alertService.Wait()
	if mailer.sentCount() != 1 {
		t.Fatalf("expected exactly 1 dispatch attempt, got %d", mailer.sentCount())
	}
}

func TestSaveEntrySucceedsWhenDispatchFails(t *testing.T) {
	setupTestDB(t)

	user := models.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TrustedEmail: "friend@example.com",
		CreatedAt:    time.Now(),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}

	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	jc, alertService := newTestController(mailer)
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/save", gin.H{"entryText": "I want to end it all"})
	if w.Code != http.StatusCreated {
		t.Fatalf("邮件失败不应影响保存, status = %d, want 201", w.Code)
	}

	alertService.Wait()
	if mailer.sentCount() != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", mailer.sentCount())
	}

	var count int64
	config.DB.Model(&models.JournalEntry{}).Count(&count)
	if count != 1 {
		t.Fatalf("entry count = %d, want 1", count)
	}
}

func TestSaveEntryNoEscalationWithoutTrustedContact(t *testing.T) {
	setupTestDB(t)

	user := models.User{ID: "u1", Name: "Bob", Email: "bob@example.com", CreatedAt: time.Now()}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}

	mailer := &fakeMailer{}
	jc, alertService := newTestController(mailer)
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/save", gin.H{"entryText": "I want to end it all"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	alertService.Wait()
	if mailer.sentCount() != 0 {
		t.Fatalf("expected no dispatch, got %d", mailer.sentCount())
	}
}

func TestSaveEntryNonSuicidalNeverEscalates(t *testing.T) {
	setupTestDB(t)

	user := models.User{ID: "u1", Name: "Alice", Email: "alice@example.com", TrustedEmail: "friend@example.com", CreatedAt: time.Now()}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("创建测试用户失败: %v", err)
	}

	mailer := &fakeMailer{}
	jc, alertService := newTestController(mailer)
	r := newJournalRouter(jc, "u1")

	w := postJSON(r, "/api/journal/save", gin.H{"entryText": "wonderful amazing day, so grateful"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}

	var entry models.JournalEntry
	if err := config.DB.Where("user_id = ?", "u1").First(&entry).Error; err != nil {
		t.Fatalf("日记未落库: %v", err)
	}
	if entry.Mood != models.MoodHappy {
		t.Fatalf("stored mood = %s, want happy", entry.Mood)
	}

	alertService.Wait()
	if mailer.sentCount() != 0 {
		t.Fatalf("expected no dispatch for non-suicidal mood, got %d", mailer.sentCount())
	}
}

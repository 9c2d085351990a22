package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
)

// ErrDispatchTimeout 邮件发送超时
var ErrDispatchTimeout = errors.New("紧急邮件发送超时")

const (
	// 邮件中日记摘录的最大字符数
	alertExcerptLimit = 500
	// 单次发送的最长等待时间，不重试
	alertSendTimeout = 15 * time.Second
)

// AlertService 紧急联系人告警服务
// 发送是异步且尽力而为的，失败只记日志，绝不影响日记保存
type AlertService struct {
	mailer Mailer
	wg     sync.WaitGroup
}

func NewAlertService(mailer Mailer) *AlertService {
	return &AlertService{
		mailer: mailer,
	}
}

// ShouldEscalate 判断是否需要触发紧急告警
// 只看最终情绪标签和紧急联系人配置，与分类器内部实现无关
func (s *AlertService) ShouldEscalate(mood models.Mood, trustedEmail string) bool {
	return mood == models.MoodSuicidal && trustedEmail != ""
}

// DispatchAlert 异步向紧急联系人发送告警邮件，单次尝试
func (s *AlertService) DispatchAlert(user models.User, entryText string) {
	if !user.HasTrustedContact() {
		config.Logger.Infow("用户未配置紧急联系人，跳过告警",
			"userID", user.ID,
		)
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		subject := fmt.Sprintf("URGENT: %s may need support - Daily Journal Alert", user.GetDisplayName())
		body := buildAlertBody(user, entryText)

		if err := s.sendWithTimeout(user.TrustedEmail, subject, body); err != nil {
			config.Logger.Errorw("紧急邮件发送失败",
				"error", err,
				"userID", user.ID,
				"trustedEmail", user.TrustedEmail,
			)
			return
		}

		config.Logger.Infow("紧急邮件发送成功",
			"userID", user.ID,
			"trustedEmail", user.TrustedEmail,
		)
	}()
}

// Wait 等待所有在途的告警邮件发送完成，用于优雅关闭
func (s *AlertService) Wait() {
	s.wg.Wait()
}

// sendWithTimeout 带超时的单次发送，超时后发送协程自行退出
func (s *AlertService) sendWithTimeout(to, subject, body string) error {
	done := make(chan error, 1)
	go func() {
		done <- s.mailer.Send(to, subject, body)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(alertSendTimeout):
		return ErrDispatchTimeout
	}
}

// excerpt 截取日记摘录，超长时追加省略号
func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// buildAlertBody 生成告警邮件正文，包含用户信息、日记摘录和危机求助资源
func buildAlertBody(user models.User, entryText string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #dc2626;">Emergency Alert - Daily Journal</h2>
  <p>This is an automated emergency alert from Daily Journal.</p>

  <div style="background-color: #f9fafb; border-radius: 8px; padding: 16px; margin: 20px 0;">
    <h3 style="margin: 0; color: #111827;">%s</h3>
    <p style="margin: 5px 0 0 0; color: #6b7280;">%s</p>
  </div>

  <p><strong>%s</strong> has written a journal entry that may indicate they are experiencing suicidal thoughts.</p>

  <div style="background-color: #fef2f2; border: 1px solid #fecaca; border-radius: 8px; padding: 16px; margin: 20px 0;">
    <h3 style="color: #dc2626; margin-top: 0;">Journal Entry Content:</h3>
    <p style="font-style: italic;">"%s"</p>
    <p><small>Entry date: %s</small></p>
  </div>

  <p><strong>Please reach out to %s as soon as possible.</strong></p>
  <p>If you believe this is an immediate emergency, please contact local emergency services.</p>

  <div style="background-color: #f0f9ff; border: 1px solid #bae6fd; border-radius: 8px; padding: 16px; margin: 20px 0;">
    <h4>Crisis Resources:</h4>
    <ul>
      <li>National Suicide Prevention Lifeline: 988</li>
      <li>Crisis Text Line: Text HOME to 741741</li>
      <li>Emergency Services: 911</li>
    </ul>
  </div>

  <p><small>This message was sent automatically by Daily Journal's emergency alert system.</small></p>
</div>`,
		user.GetDisplayName(),
		user.Email,
		user.GetDisplayName(),
		excerpt(entryText, alertExcerptLimit),
		time.Now().Format("2006-01-02 15:04:05"),
		user.GetDisplayName(),
	)
}

package services

import (
	"errors"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"github.com/ahanaf-mohosen/DailyMoodCheck/models"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop().Sugar()
	os.Exit(m.Run())
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

type sentMail struct {
	to      string
	subject string
	body    string
}

func (m *fakeMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return m.err
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

func TestShouldEscalate(t *testing.T) {
	s := NewAlertService(&fakeMailer{})

	cases := []struct {
		mood         models.Mood
		trustedEmail string
		want         bool
	}{
		{models.MoodSuicidal, "friend@example.com", true},
		{models.MoodSuicidal, "", false},
		{models.MoodSad, "friend@example.com", false},
		{models.MoodAnxious, "friend@example.com", false},
		{models.MoodHappy, "friend@example.com", false},
		{models.MoodNeutral, "friend@example.com", false},
	}
	for _, tc := range cases {
		if got := s.ShouldEscalate(tc.mood, tc.trustedEmail); got != tc.want {
			t.Errorf("ShouldEscalate(%s, %q) = %v, want %v", tc.mood, tc.trustedEmail, got, tc.want)
		}
	}
}

func TestDispatchAlertSendsOneMail(t *testing.T) {
	mailer := &fakeMailer{}
	s := NewAlertService(mailer)

	user := models.User{
		ID:           "u1",
		Name:         "Alice",
		Email:        "alice@example.com",
		TrustedEmail: "friend@example.com",
	}
	s.DispatchAlert(user, "I want to end it all")
	s.Wait()

	if mailer.sentCount() != 1 {
		t.Fatalf("expected exactly 1 dispatch attempt, got %d", mailer.sentCount())
	}
	mail := mailer.sent[0]
	if mail.to != "friend@example.com" {
		t.Errorf("sent to %s, want friend@example.com", mail.to)
	}
	if !strings.Contains(mail.subject, "Alice") {
		t.Errorf("subject %q should contain user name", mail.subject)
	}
	if !strings.Contains(mail.body, "I want to end it all") {
		t.Errorf("body should contain the journal excerpt")
	}
	if !strings.Contains(mail.body, "988") {
		t.Errorf("body should contain crisis resources")
	}
}

func TestDispatchAlertSkipsWithoutTrustedContact(t *testing.T) {
	mailer := &fakeMailer{}
	s := NewAlertService(mailer)

	s.DispatchAlert(models.User{ID: "u1", Name: "Bob"}, "no point anymore")
	s.Wait()

	if mailer.sentCount() != 0 {
		t.Fatalf("expected no dispatch, got %d", mailer.sentCount())
	}
}

func TestDispatchAlertFailureIsSwallowed(t *testing.T) {
	mailer := &fakeMailer{err: errors.New("smtp unreachable")}
	s := NewAlertService(mailer)

	user := models.User{ID: "u1", Name: "Alice", TrustedEmail: "friend@example.com"}
	// 发送失败只记日志，Wait 必须正常返回
	s.DispatchAlert(user, "I want to end it all")
	s.Wait()

	if mailer.sentCount() != 1 {
		t.Fatalf("expected exactly 1 attempt, got %d", mailer.sentCount())
	}
}

func TestExcerptTruncation(t *testing.T) {
	long := strings.Repeat("a", 600)
	got := excerpt(long, 500)
	if len([]rune(got)) != 503 {
		t.Fatalf("excerpt length = %d, want 503", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("truncated excerpt should end with continuation marker")
	}

	short := "short entry"
	if excerpt(short, 500) != short {
		t.Fatalf("short text should be returned unchanged")
	}
}

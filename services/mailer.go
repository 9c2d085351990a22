package services

import (
	"github.com/ahanaf-mohosen/DailyMoodCheck/config"
	"gopkg.in/gomail.v2"
)

// Mailer 邮件发送接口
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// SMTPMailer 基于SMTP的邮件发送实现
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(conf config.Config) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(conf.SMTPHost, conf.SMTPPort, conf.EmailUser, conf.EmailPass),
		from:   conf.EmailUser,
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

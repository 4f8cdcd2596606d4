package services

import (
	"fmt"
	"net"
	"net/smtp"
	"strconv"

	"go.uber.org/zap"

	"github.com/example/corpweb/internal/logger"
)

// MailerService sends plain-text notification mail over SMTP.
type MailerService struct {
	host string
	port int
	user string
	pass string
}

// NewMailerService creates a MailerService. An empty host leaves the
// service in a disabled state where Send becomes a no-op.
func NewMailerService(host string, port int, user, pass string) *MailerService {
	return &MailerService{host: host, port: port, user: user, pass: pass}
}

// Send delivers a single message. Failures are returned to the caller but
// are expected to be treated as best-effort by notification paths.
func (s *MailerService) Send(to, subject, body string) error {
	if s.host == "" {
		logger.L.Info("mailer not configured, skipping send", zap.String("to", to))
		return nil
	}

	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	msg := buildMessage(s.user, to, subject, body)
	if err := smtp.SendMail(addr, auth, s.user, []string{to}, []byte(msg)); err != nil {
		logger.L.Error("failed to send mail", zap.String("to", to), zap.Error(err))
		return err
	}

	return nil
}

// NotifyContactMessage mails the admin inbox about a new contact-form
// submission.
func (s *MailerService) NotifyContactMessage(to, name, email, subject, body string) error {
	if to == "" {
		return nil
	}

	mailSubject := fmt.Sprintf("New contact message from %s", name)
	mailBody := fmt.Sprintf("From: %s <%s>\nSubject: %s\n\n%s\n", name, email, subject, body)
	return s.Send(to, mailSubject, mailBody)
}

func buildMessage(from, to, subject, body string) string {
	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/plain; charset=UTF-8\r\n"
	headers += "\r\n"
	return headers + body + "\r\n"
}

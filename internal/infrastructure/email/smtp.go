// Package email delivers account notifications over SMTP.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Service sends account lifecycle notifications. Delivery failures never
// block the signup or login flow; callers log and move on.
type Service interface {
	SendWelcomeEmail(to, username string) error
	SendLoginAlertEmail(to, username string) error
}

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendWelcomeEmail(to, username string) error {
	subject := "Welcome!"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your account has been created successfully.</p>
			<p>You can now sign in with your username and password.</p>
		</body>
		</html>
	`, username)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your account has been created successfully.
You can now sign in with your username and password.
	`, username)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendLoginAlertEmail(to, username string) error {
	subject := "New sign-in to your account"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New sign-in</h2>
			<p>Hi %s, your account was just signed in to.</p>
			<p>If this wasn't you, please change your password immediately.</p>
		</body>
		</html>
	`, username)

	plainBody := fmt.Sprintf(`
New sign-in

Hi %s, your account was just signed in to.
If this wasn't you, please change your password immediately.
	`, username)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

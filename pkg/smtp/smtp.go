package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"

	"PortfolioGolang/internal/entity"
)

type ItfSmtp interface {
	SendOTP(userEmail string, otp string) error
	SendFeedbackNotification(adminEmail string, feedback entity.Feedback) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	addr string
	host string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}

	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		addr: host + ":" + port,
		host: host,
	}
}

func (s *smtp) SendOTP(userEmail string, otp string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: Your password reset code\r\n\r\nHello %s, this is from %s, this is your OTP: %s",
		userEmail, userEmail, s.mail, otp))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}

func (s *smtp) SendFeedbackNotification(adminEmail string, feedback entity.Feedback) error {
	to := []string{adminEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: New feedback: %s\r\n\r\nFrom: %s <%s>\r\n\r\n%s",
		adminEmail, feedback.Subject, feedback.Name, feedback.Email, feedback.Message))

	if err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message); err != nil {
		return err
	}

	return nil
}

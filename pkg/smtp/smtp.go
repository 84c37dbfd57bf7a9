package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendSecurityNotice(userEmail string, subject string, body string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{auth: auth, mail: mail, host: host, addr: host + ":587"}
}

// SendSecurityNotice mails account-security events, e.g. a password change.
func (s *smtp) SendSecurityNotice(userEmail string, subject string, body string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s", userEmail, subject, body))

	err := smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
	if err != nil {
		return err
	}

	return nil
}

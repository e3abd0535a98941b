package mail

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		FromName: "Adetunji",
	}
}

// Send delivers one HTML email over SMTP and returns the Message-ID that was
// stamped on it. The ID is generated here because the SMTP dialer does not
// hand one back the way an API relay would.
func (s *EmailSender) Send(to, subject, htmlBody string) (string, error) {
	messageID := fmt.Sprintf("<%s@coldreach>", uuid.New().String())

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.User, s.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return "", fmt.Errorf("smtp send to %s: %w", to, err)
	}

	return messageID, nil
}

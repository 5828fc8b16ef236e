package utils

import (
	"fmt"
	"net/smtp"
	"os"

	"property-marketplace/marketplace-service/logging"
)

// SendEmail sends an email to the given address using net/smtp. The sender
// address and password come from EMAIL_FROM and EMAIL_PASSWORD.
func SendEmail(to, subject, body string) error {
	logging.Logger.Debugf("Event ID: SEND_EMAIL_START, Description: Attempting to send email to '%s' with subject: '%s'", to, subject)

	from := os.Getenv("EMAIL_FROM")
	password := os.Getenv("EMAIL_PASSWORD")

	// SMTP server configuration
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	if from == "" || password == "" {
		logging.Logger.Errorf("Event ID: SEND_EMAIL_MISSING_ENV, Description: EMAIL_FROM or EMAIL_PASSWORD environment variable is not set.")
		return fmt.Errorf("EMAIL_FROM or EMAIL_PASSWORD is not set")
	}

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
	if err != nil {
		logging.Logger.Errorf("Event ID: SEND_EMAIL_FAILED, Description: Failed to send email to '%s' with subject '%s': %v", to, subject, err)
		return fmt.Errorf("failed to send email: %v", err)
	}

	logging.Logger.Infof("Event ID: SEND_EMAIL_SUCCESS, Description: Email successfully sent to '%s' with subject: '%s'", to, subject)
	return nil
}

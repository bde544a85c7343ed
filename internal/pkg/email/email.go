package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"

	"github.com/rs/zerolog"
)

// EnquiryNotifier sends admin notifications for new contact enquiries.
type EnquiryNotifier interface {
	SendEnquiryNotification(firstName, lastName, emailAddr, phone, courseInterest, message string) error
}

// SMTPConfig holds configuration for the SMTP server
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromName  string
	FromEmail string
	AdminTo   string
	UseTLS    bool
}

// SMTPNotifier implements EnquiryNotifier over plain SMTP
type SMTPNotifier struct {
	config SMTPConfig
	logger zerolog.Logger
}

// NewSMTPNotifier creates a new SMTPNotifier
func NewSMTPNotifier(config SMTPConfig, logger zerolog.Logger) EnquiryNotifier {
	return &SMTPNotifier{
		config: config,
		logger: logger,
	}
}

// SendEnquiryNotification mails the configured admin address about a new
// enquiry. Without SMTP credentials it only logs the enquiry, so local
// development does not need a mail server.
func (s *SMTPNotifier) SendEnquiryNotification(firstName, lastName, emailAddr, phone, courseInterest, message string) error {
	if s.config.Username == "" || s.config.Password == "" {
		s.logger.Warn().
			Str("from", emailAddr).
			Str("name", firstName+" "+lastName).
			Msg("SMTP credentials not configured - enquiry notification not sent")
		return nil
	}

	subject := fmt.Sprintf("New enquiry from %s %s", firstName, lastName)

	body := fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">New Course Enquiry</h2>
				<p><strong>Name:</strong> %s %s</p>
				<p><strong>Email:</strong> %s</p>
				<p><strong>Phone:</strong> %s</p>
				<p><strong>Course interest:</strong> %s</p>
				<p><strong>Message:</strong></p>
				<p>%s</p>
			</div>
		</body>
		</html>
	`, firstName, lastName, emailAddr, phone, courseInterest, message)

	return s.sendHTMLEmail(s.config.AdminTo, subject, body)
}

// sendHTMLEmail sends an HTML email
func (s *SMTPNotifier) sendHTMLEmail(toEmail, subject, htmlBody string) error {
	auth := smtp.PlainAuth(
		"",
		s.config.Username,
		s.config.Password,
		s.config.Host,
	)

	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.FromEmail)
	headers["To"] = toEmail
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + htmlBody

	serverAddress := s.config.Host + ":" + strconv.Itoa(s.config.Port)

	if s.config.UseTLS {
		return s.sendWithTLS(serverAddress, auth, toEmail, []byte(message))
	}

	if err := smtp.SendMail(serverAddress, auth, s.config.FromEmail, []string{toEmail}, []byte(message)); err != nil {
		s.logger.Error().Err(err).Str("to", toEmail).Msg("Failed to send enquiry notification")
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// sendWithTLS dials the SMTP server over an explicit TLS connection
func (s *SMTPNotifier) sendWithTLS(serverAddress string, auth smtp.Auth, toEmail string, message []byte) error {
	tlsConfig := &tls.Config{
		ServerName: s.config.Host,
	}

	conn, err := tls.Dial("tcp", serverAddress, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to dial SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("SMTP MAIL failed: %w", err)
	}
	if err := client.Rcpt(toEmail); err != nil {
		return fmt.Errorf("SMTP RCPT failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA failed: %w", err)
	}
	if _, err := w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close message writer: %w", err)
	}

	return client.Quit()
}

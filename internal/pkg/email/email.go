package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/paycycle-hq/paycycle-backend-go/internal/config"
)

const maxRetries = 3

// EmailService sends transactional mail for the platform.
type EmailService interface {
	SendInvitation(to, employeeName, organizationName, invitationLink, expiresAt string) error
	SendPasswordReset(to, resetLink, expiresAt string) error
}

type emailServiceImpl struct {
	cfg        config.SMTPConfig
	invitation *template.Template
	reset      *template.Template
}

var invitationTmpl = template.Must(template.New("invitation").Parse(`
<p>Hi {{.EmployeeName}},</p>
<p>{{.OrganizationName}} has invited you to join their payroll workspace.</p>
<p><a href="{{.InvitationLink}}">Accept the invitation</a> before {{.ExpiresAt}}.</p>
`))

var resetTmpl = template.Must(template.New("reset").Parse(`
<p>A password reset was requested for your account.</p>
<p><a href="{{.ResetLink}}">Reset your password</a> before {{.ExpiresAt}}.</p>
<p>If you did not request this, ignore this email.</p>
`))

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	return &emailServiceImpl{
		cfg:        cfg,
		invitation: invitationTmpl,
		reset:      resetTmpl,
	}, nil
}

type invitationEmailData struct {
	EmployeeName     string
	OrganizationName string
	InvitationLink   string
	ExpiresAt        string
}

func (s *emailServiceImpl) SendInvitation(to, employeeName, organizationName, invitationLink, expiresAt string) error {
	data := invitationEmailData{
		EmployeeName:     employeeName,
		OrganizationName: organizationName,
		InvitationLink:   invitationLink,
		ExpiresAt:        expiresAt,
	}

	var body bytes.Buffer
	if err := s.invitation.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Invitation to join %s", organizationName), body.String())
}

type passwordResetEmailData struct {
	ResetLink string
	ExpiresAt string
}

func (s *emailServiceImpl) SendPasswordReset(to, resetLink, expiresAt string) error {
	data := passwordResetEmailData{
		ResetLink: resetLink,
		ExpiresAt: expiresAt,
	}

	var body bytes.Buffer
	if err := s.reset.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Reset Password", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

package utils

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"path/filepath"
	"strings"

	"timeweave/core/config"
)

type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type EmailMessage struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// TemplateData carries every field the email templates under templates/ use.
// Unused fields stay empty for a given template.
type TemplateData struct {
	SiteName      string
	RecipientName string
	MeetingTitle  string
	Description   string
	MeetingURL    string
	SlotStart     string
	SlotEnd       string
	Timezone      string
	Deadline      string
}

func GetEmailConfig() (*EmailConfig, error) {
	cfg, ok := config.GetSafe()
	if !ok {
		return nil, fmt.Errorf("config not initialized")
	}
	if cfg.Email.Host == "" {
		return nil, fmt.Errorf("SMTP_HOST is not configured")
	}
	return &EmailConfig{
		Host:     cfg.Email.Host,
		Port:     cfg.Email.Port,
		Username: cfg.Email.Username,
		Password: cfg.Email.Password,
		From:     cfg.Email.From,
	}, nil
}

// SendEmailTLS delivers a message over implicit TLS (port 465 style SMTP).
func SendEmailTLS(msg *EmailMessage) error {
	emailCfg, err := GetEmailConfig()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", emailCfg.Host, emailCfg.Port)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: emailCfg.Host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, emailCfg.Host)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	if emailCfg.Username != "" {
		auth := smtp.PlainAuth("", emailCfg.Username, emailCfg.Password, emailCfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := client.Mail(extractAddress(emailCfg.From)); err != nil {
		return fmt.Errorf("smtp mail: %w", err)
	}
	for _, to := range msg.To {
		if err := client.Rcpt(to); err != nil {
			return fmt.Errorf("smtp rcpt %s: %w", to, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}

	contentType := "text/plain; charset=UTF-8"
	if msg.IsHTML {
		contentType = "text/html; charset=UTF-8"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", emailCfg.From)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\nContent-Type: %s\r\n\r\n", contentType)
	buf.WriteString(msg.Body)

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}

// SendTemplateEmailFromTemplatesDir renders an HTML template from the
// configured templates directory and sends it.
func SendTemplateEmailFromTemplatesDir(to []string, subject, templateFile string, data TemplateData) error {
	cfg, ok := config.GetSafe()
	if !ok {
		return fmt.Errorf("config not initialized")
	}

	body, err := RenderEmailTemplate(cfg.Email.TemplatesDir, templateFile, data)
	if err != nil {
		return err
	}

	return SendEmailTLS(&EmailMessage{
		To:      to,
		Subject: subject,
		Body:    body,
		IsHTML:  true,
	})
}

// RenderEmailTemplate is split out so tests can render without an SMTP server.
func RenderEmailTemplate(dir, templateFile string, data TemplateData) (string, error) {
	if data.SiteName == "" {
		data.SiteName = "TimeWeave"
	}

	tmpl, err := template.ParseFiles(filepath.Join(dir, templateFile))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", templateFile, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", templateFile, err)
	}
	return buf.String(), nil
}

func extractAddress(from string) string {
	if start := strings.LastIndex(from, "<"); start != -1 {
		if end := strings.LastIndex(from, ">"); end > start {
			return from[start+1 : end]
		}
	}
	return from
}

// Package mail sends analysis report emails over SMTP with implicit TLS.
package mail

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/textflow/textflow/pkg/textflow/config"
	"github.com/textflow/textflow/pkg/textflow/pipeline"
)

const dialTimeout = 20 * time.Second

// Mailer sends report emails. A zero SMTP host disables sending.
type Mailer struct {
	cfg  config.SMTP
	log  *slog.Logger
	send func(addr, from, to, msg string, cfg config.SMTP) error
}

// New creates a Mailer from SMTP settings.
func New(cfg config.SMTP, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{cfg: cfg, log: logger, send: sendSSL}
}

// Enabled reports whether a mail host is configured.
func (m *Mailer) Enabled() bool { return m.cfg.Host != "" }

// SendReport delivers the per-operation report for one analysis run.
// It returns an error so the caller can record the delivery state, but
// a failure never affects the analysis itself.
func (m *Mailer) SendReport(recipient, filename string, results []pipeline.OperationResult) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp host not configured")
	}

	subject := fmt.Sprintf("TextFlow Analytics Report – %s", filename)
	body := buildBody(filename, results)
	msg := buildMessage(m.cfg.From, recipient, subject, body)
	addr := net.JoinHostPort(m.cfg.Host, fmt.Sprintf("%d", m.cfg.Port))

	if err := m.send(addr, m.cfg.From, recipient, msg, m.cfg); err != nil {
		m.log.Error("report mail failed", "recipient", recipient, "err", err)
		return err
	}
	m.log.Info("report mail sent", "recipient", recipient, "filename", filename)
	return nil
}

// buildBody renders the plain-text report: a header, one section per
// operation result, and a footer.
func buildBody(filename string, results []pipeline.OperationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello,\n\nYour analysis task for '%s' is complete.\n\n", filename)
	b.WriteString("---------- SUMMARY REPORT ----------\n")
	for _, r := range results {
		fmt.Fprintf(&b, "\n[%s]\n%s\n", r.Title, r.Output)
	}
	b.WriteString("\n\nThis is an automated report from your TextFlow App.")
	return b.String()
}

func buildMessage(from, to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.String()
}

// sendSSL speaks SMTP over an implicit-TLS connection (port 465 style).
func sendSSL(addr, from, to, msg string, cfg config.SMTP) error {
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: cfg.Host})
	if err != nil {
		return err
	}

	c, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if cfg.Username != "" {
		auth := smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
		if err := c.Auth(auth); err != nil {
			return err
		}
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

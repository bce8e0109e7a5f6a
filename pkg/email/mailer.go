package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"grow-therapy-backend/config"

	"github.com/google/uuid"
)

// DispatchOutcome is the normalized result of one attempted email send.
// The mailer never lets a transport error escape as a Go error; every
// failure mode ends up here with Succeeded=false.
type DispatchOutcome struct {
	Succeeded     bool   `json:"succeeded"`
	MessageID     string `json:"message_id,omitempty"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// Mailer sends a single HTML email.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) DispatchOutcome
}

// SMTPMailer sends mail through a configured SMTP relay. One instance is
// created at process start and shared by every request.
type SMTPMailer struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
	timeout   time.Duration
}

// NewSMTPMailer builds a mailer from the process configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host:      cfg.EmailHost,
		port:      cfg.EmailPort,
		username:  cfg.EmailUser,
		password:  cfg.EmailPassword,
		fromEmail: cfg.EmailUser,
		fromName:  cfg.CompanyName,
		timeout:   15 * time.Second,
	}
}

// Send delivers one HTML email and reports the outcome. Transport failures
// (connect, auth, rejected recipient, timeout) are normalized into the
// returned DispatchOutcome rather than propagated.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, htmlBody string) DispatchOutcome {
	messageID := m.newMessageID()

	if err := m.send(ctx, to, subject, htmlBody, messageID); err != nil {
		return DispatchOutcome{
			Succeeded:     false,
			FailureReason: err.Error(),
		}
	}

	return DispatchOutcome{
		Succeeded: true,
		MessageID: messageID,
	}
}

// Verify performs a best-effort connectivity check against the SMTP relay.
// A failure here means later sends will likely fail too, but the server
// still starts; callers log the error and move on.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Noop(); err != nil {
		return fmt.Errorf("smtp noop failed: %w", err)
	}
	return client.Quit()
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody, messageID string) error {
	client, err := m.connect(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if ok, _ := client.Extension("AUTH"); ok {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	if err := client.Mail(m.fromEmail); err != nil {
		return fmt.Errorf("smtp MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp RCPT TO failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp DATA failed: %w", err)
	}
	if _, err := w.Write(m.buildMessage(to, subject, htmlBody, messageID)); err != nil {
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp message rejected: %w", err)
	}

	return client.Quit()
}

// connect dials the relay, applies the send timeout to the whole exchange
// and upgrades to TLS when the server offers STARTTLS.
func (m *SMTPMailer) connect(ctx context.Context) (*smtp.Client, error) {
	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("smtp connection failed: %w", err)
	}

	deadline := time.Now().Add(m.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	_ = conn.SetDeadline(deadline)

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("smtp handshake failed: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			client.Close()
			return nil, fmt.Errorf("smtp STARTTLS failed: %w", err)
		}
	}

	return client, nil
}

// buildMessage constructs the MIME message with the headers the relay and
// receiving clients expect.
func (m *SMTPMailer) buildMessage(to, subject, htmlBody, messageID string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", m.fromName, m.fromEmail)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	fmt.Fprintf(&b, "Message-ID: %s\r\n", messageID)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// newMessageID generates a message identifier scoped to the sending domain,
// the same way relay libraries do when the provider does not hand one back.
func (m *SMTPMailer) newMessageID() string {
	domain := m.fromEmail
	if at := strings.LastIndex(domain, "@"); at >= 0 {
		domain = domain[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.NewString(), domain)
}

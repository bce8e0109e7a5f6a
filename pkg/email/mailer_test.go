package email

import (
	"context"
	"strings"
	"testing"
	"time"

	"grow-therapy-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMailer() *SMTPMailer {
	return NewSMTPMailer(&config.Config{
		EmailHost:     "smtp.example.com",
		EmailPort:     587,
		EmailUser:     "hello@growyourtherapy.com",
		EmailPassword: "secret",
		CompanyEmail:  "owner@growyourtherapy.com",
		CompanyName:   "Grow Your Therapy",
	})
}

func TestBuildMessage(t *testing.T) {
	m := testMailer()
	msg := string(m.buildMessage("sarah@example.com", "We received your message", "<p>Hi</p>", "<id-123@growyourtherapy.com>"))

	assert.Contains(t, msg, "From: Grow Your Therapy <hello@growyourtherapy.com>\r\n")
	assert.Contains(t, msg, "To: sarah@example.com\r\n")
	assert.Contains(t, msg, "Subject: We received your message\r\n")
	assert.Contains(t, msg, "Message-ID: <id-123@growyourtherapy.com>\r\n")
	assert.Contains(t, msg, "Content-Type: text/html; charset=UTF-8\r\n")

	// Body separated from headers by a blank line
	headerEnd := strings.Index(msg, "\r\n\r\n")
	require.Greater(t, headerEnd, 0)
	assert.Equal(t, "<p>Hi</p>", msg[headerEnd+4:])
}

func TestNewMessageIDUsesSendingDomain(t *testing.T) {
	m := testMailer()
	id := m.newMessageID()

	assert.True(t, strings.HasPrefix(id, "<"))
	assert.True(t, strings.HasSuffix(id, "@growyourtherapy.com>"))
}

func TestSendNormalizesTransportFailures(t *testing.T) {
	// Nothing listens here; the failure must come back as an outcome,
	// never as a panic or an error escaping the boundary.
	m := testMailer()
	m.host = "127.0.0.1"
	m.port = 1
	m.timeout = 500 * time.Millisecond

	outcome := m.Send(context.Background(), "sarah@example.com", "subject", "<p>body</p>")

	assert.False(t, outcome.Succeeded)
	assert.Empty(t, outcome.MessageID)
	assert.Contains(t, outcome.FailureReason, "smtp connection failed")
}

func TestSendRespectsContextCancellation(t *testing.T) {
	m := testMailer()
	m.host = "10.255.255.1" // non-routable, forces dial to hang
	m.timeout = 10 * time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	outcome := m.Send(ctx, "sarah@example.com", "subject", "<p>body</p>")

	assert.False(t, outcome.Succeeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}

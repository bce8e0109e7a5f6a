package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// Subject lines for the two contact form emails.
const (
	SubjectNotification = "New therapy website inquiry"
	SubjectAutoReply    = "We received your message"
)

// notificationTemplate is the email sent to the company when someone
// submits the contact form.
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Website Inquiry</title>
    <style>
        body { font-family: 'Inter', -apple-system, 'Segoe UI', sans-serif; line-height: 1.6; color: #5C5C5C; max-width: 600px; margin: 0 auto; padding: 20px; }
        .container { background: #FAF9F7; border-radius: 16px; padding: 40px; border: 1px solid #E5E5E5; }
        .header { color: #2F2F2F; font-size: 24px; font-weight: 600; margin-bottom: 24px; }
        .info-row { margin-bottom: 16px; padding-bottom: 16px; border-bottom: 1px solid #E5E5E5; }
        .label { font-weight: 600; color: #7FA69B; font-size: 12px; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 4px; }
        .value { color: #2F2F2F; font-size: 16px; }
        .message-box { background: white; padding: 20px; border-radius: 12px; border-left: 4px solid #7FA69B; margin-top: 20px; }
        .footer { margin-top: 32px; padding-top: 20px; border-top: 1px solid #E5E5E5; font-size: 14px; color: #8A8A8A; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">New Website Inquiry</div>
        <div class="info-row">
            <div class="label">From</div>
            <div class="value">{{.Name}}</div>
        </div>
        <div class="info-row">
            <div class="label">Email</div>
            <div class="value"><a href="mailto:{{.Email}}" style="color: #7FA69B; text-decoration: none;">{{.Email}}</a></div>
        </div>
        <div class="label">Message</div>
        <div class="message-box">{{.MessageHTML}}</div>
        <div class="footer">
            <p>Received via Grow Your Therapy contact form</p>
            <p style="margin-top: 8px;"><a href="mailto:{{.Email}}?subject=Re: Your inquiry" style="color: #7FA69B; text-decoration: none;">Reply to {{.Name}}</a></p>
        </div>
    </div>
</body>
</html>`

// autoReplyTemplate is the confirmation email sent back to the person who
// submitted the form.
const autoReplyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for reaching out</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.7; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .container { background: #f9fafb; border-radius: 12px; padding: 30px; border: 1px solid #e5e7eb; }
        .header { font-size: 24px; font-weight: 600; margin-bottom: 16px; }
        .highlight { background: white; padding: 16px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #7FA69B; }
        .footer { margin-top: 30px; font-size: 13px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">Thank you for reaching out</div>
        <p>Hi {{.Name}},</p>
        <p>We received your message through the Grow Your Therapy website. Thank you for taking the time to connect.</p>
        <div class="highlight">
            <strong>What happens next?</strong><br>
            We will personally review your message and respond within 24 hours.
        </div>
        <p>If your inquiry is urgent, you can reply directly to this email.</p>
        <p style="margin-top: 20px;">Warm regards,<br><strong>Grow Your Therapy</strong></p>
        <div class="footer">This is an automated confirmation email.</div>
    </div>
</body>
</html>`

var (
	notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))
	autoReplyTmpl    = template.Must(template.New("autoreply").Parse(autoReplyTemplate))
)

type notificationData struct {
	Name        string
	Email       string
	MessageHTML template.HTML
}

type autoReplyData struct {
	Name string
}

// RenderNotification produces the HTML body for the company notification
// email. All user-controlled fields are HTML-escaped; newlines in the
// message become <br> tags so multi-paragraph messages keep their shape.
func RenderNotification(name, emailAddr, message string) (string, error) {
	var body bytes.Buffer
	data := notificationData{
		Name:        name,
		Email:       emailAddr,
		MessageHTML: messageToHTML(message),
	}
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render notification email: %w", err)
	}
	return body.String(), nil
}

// RenderAutoReply produces the HTML body for the confirmation email sent
// back to the submitter. Only the name is interpolated, escaped.
func RenderAutoReply(name string) (string, error) {
	var body bytes.Buffer
	if err := autoReplyTmpl.Execute(&body, autoReplyData{Name: name}); err != nil {
		return "", fmt.Errorf("failed to render auto-reply email: %w", err)
	}
	return body.String(), nil
}

// messageToHTML escapes the raw message and converts line breaks to <br>
// markup. Escaping happens first so user input can never introduce tags.
func messageToHTML(message string) template.HTML {
	escaped := template.HTMLEscapeString(message)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	escaped = strings.ReplaceAll(escaped, "\n", "<br>")
	return template.HTML(escaped)
}

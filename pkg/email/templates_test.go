package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNotificationFields(t *testing.T) {
	html, err := RenderNotification("Sarah Chen", "sarah@example.com", "I need a new website for my practice.")
	require.NoError(t, err)

	assert.Contains(t, html, "Sarah Chen")
	assert.Contains(t, html, "sarah@example.com")
	assert.Contains(t, html, "I need a new website for my practice.")
	assert.Contains(t, html, `mailto:sarah@example.com`)
}

func TestRenderNotificationIsIdempotent(t *testing.T) {
	first, err := RenderNotification("Sarah Chen", "sarah@example.com", "Hello there, this is my message.")
	require.NoError(t, err)
	second, err := RenderNotification("Sarah Chen", "sarah@example.com", "Hello there, this is my message.")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderNotificationConvertsNewlines(t *testing.T) {
	html, err := RenderNotification("Sarah Chen", "sarah@example.com", "First paragraph.\nSecond paragraph.\r\nThird paragraph.")
	require.NoError(t, err)

	assert.Contains(t, html, "First paragraph.<br>Second paragraph.<br>Third paragraph.")
	assert.NotContains(t, html, "\r\n<br>")
}

func TestRenderNotificationEscapesHTML(t *testing.T) {
	html, err := RenderNotification(
		"O'Brien",
		"evil@example.com",
		`<script>alert("xss")</script> and <img src=x>`,
	)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderAutoReply(t *testing.T) {
	t.Run("Should embed only the name", func(t *testing.T) {
		html, err := RenderAutoReply("Sarah Chen")
		require.NoError(t, err)

		assert.Contains(t, html, "Hi Sarah Chen,")
		assert.Contains(t, html, "within 24 hours")
	})

	t.Run("Should escape hostile names", func(t *testing.T) {
		html, err := RenderAutoReply(`<b onclick="x">Sarah</b>`)
		require.NoError(t, err)

		assert.NotContains(t, html, `<b onclick`)
		assert.Contains(t, html, "&lt;b")
	})

	t.Run("Should be idempotent", func(t *testing.T) {
		first, err := RenderAutoReply("Sarah Chen")
		require.NoError(t, err)
		second, err := RenderAutoReply("Sarah Chen")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestMessageToHTMLPreservesOtherCharacters(t *testing.T) {
	raw := "Tabs\tand spaces  stay, symbols too: $ % @ !"
	out := string(messageToHTML(raw))

	assert.Equal(t, raw, out)
	assert.False(t, strings.Contains(out, "<br>"))
}

package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 11, 18, 12, 0, 0, 0, time.UTC)

func TestRenderProducesPDF(t *testing.T) {
	doc := Document{
		LeagueName:     "The Gridiron Gang",
		WeekLabel:      "Week 11",
		Persona:        "a grumpy pirate",
		Format:         "Classic",
		TrashTalkLevel: 5,
		Content:        "First paragraph of the recap.\n\nSecond paragraph with more roasting.",
	}
	out, err := Render(doc, testTime)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output missing PDF magic bytes")
	assert.Greater(t, len(out), 500)
}

func TestRenderDefaultsAndEmoji(t *testing.T) {
	doc := Document{
		Persona:        "🔥 hype announcer 🔥",
		Format:         "Detailed",
		TrashTalkLevel: 9,
		Content:        "🏈 Emoji-heavy recap content 💥 with plain text too.",
	}
	out, err := Render(doc, testTime)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestSanitizeText(t *testing.T) {
	assert.Equal(t, "hello world", sanitizeText("hello 🏈 world"))
	assert.Equal(t, "a-b_c", sanitizeText("a-b_c"))
}

func TestGetFilename(t *testing.T) {
	got := GetFilename("The Gridiron Gang", "Week 11", "a grumpy pirate!", testTime)
	assert.Equal(t, "The_Gridiron_Gang_Week_11_a_grumpy_pirate_20251118.pdf", got)
}

func TestGetFilenameStripsUnsafeChars(t *testing.T) {
	got := GetFilename(`Lea/gue:*?"<>|`, "Week 1", "Bot", testTime)
	assert.NotContains(t, got, "/")
	assert.NotContains(t, got, ":")
	assert.NotContains(t, got, "*")
	assert.True(t, strings.HasSuffix(got, "_20251118.pdf"))
}

func TestGetFilenameCapsLength(t *testing.T) {
	long := strings.Repeat("VeryLongLeagueName", 20)
	got := GetFilename(long, "Week 1", "Bot", testTime)
	assert.LessOrEqual(t, len(got), 100)
}

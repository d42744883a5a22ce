package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

func TestFileTag(t *testing.T) {
	assert.Equal(t, "[IMG]", fileTag(models.FileTypeImage))
	assert.Equal(t, "[VID]", fileTag(models.FileTypeVideo))
	assert.Equal(t, "[PDF]", fileTag(models.FileTypePDF))
	assert.Equal(t, "[TXT]", fileTag(models.FileTypeText))
	assert.Equal(t, "[FILE]", fileTag(models.FileTypeOther))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Aug 30, 2026 11:05", formatDate("2026-08-30 11:05:42"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
	assert.Equal(t, "", formatDate(""))
}

func TestNotePreview(t *testing.T) {
	assert.Equal(t, "short note", notePreview("  short note  ", 40))
	assert.Equal(t, "first line …", notePreview("first line\nsecond line", 40))

	long := "a very long note that goes on and on and does not stop"
	got := notePreview(long, 20)
	assert.Len(t, []rune(got), 20)
	assert.Contains(t, got, "...")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "exactly te", fitText("exactly te", 10))
	assert.Equal(t, "truncat...", fitText("truncated text here", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "whole", fitText("whole", 0))
}

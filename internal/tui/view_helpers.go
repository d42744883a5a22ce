package tui

import (
	"strings"
	"time"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

// serverTimeLayout is the timestamp format the Vault Service returns in
// created_at fields.
const serverTimeLayout = "2006-01-02 15:04:05"

// fileTag returns the list-view tag for a stored item's type.
func fileTag(t models.FileType) string {
	switch t {
	case models.FileTypeImage:
		return "[IMG]"
	case models.FileTypeVideo:
		return "[VID]"
	case models.FileTypePDF:
		return "[PDF]"
	case models.FileTypeText:
		return "[TXT]"
	default:
		return "[FILE]"
	}
}

// formatDate renders a server timestamp in a short human form, falling back
// to the raw string when it does not parse.
func formatDate(raw string) string {
	t, err := time.Parse(serverTimeLayout, raw)
	if err != nil {
		return raw
	}
	return t.Format("Jan 2, 2006 15:04")
}

// notePreview collapses a note to a single line of at most max runes.
func notePreview(content string, max int) string {
	line := strings.TrimSpace(content)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i]) + " …"
	}
	return fitText(line, max)
}

func fitText(v string, max int) string {
	if max <= 0 {
		return v
	}
	runes := []rune(v)
	if len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/Karthikeya-Naik/VaultDrop/models"
)

// vaultRow is one visible line of the vault list, flattened from the
// synchronizer's files and notes. copyText is what 'c' puts on the
// clipboard: the stored path for files, the full content for notes.
type vaultRow struct {
	id       int64
	fileType models.FileType
	label    string
	copyText string
}

// Focus within the vault screen: browsing the list, or composing an upload.
const (
	vaultFocusList = iota
	vaultFocusPaths
	vaultFocusNote
)

type vaultModel struct {
	rows    []vaultRow
	idx     int
	loading bool
	saving  bool
	spinner spinner.Model
	status  string

	focus      int
	pathsInput textinput.Model
	noteInput  textarea.Model

	keyExisted bool
}

func newVaultModel() vaultModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	paths := textinput.New()
	paths.Placeholder = "/path/to/file, /another/file"
	paths.Width = 50

	note := textarea.New()
	note.Placeholder = "Write a note..."
	note.SetWidth(52)
	note.SetHeight(4)

	return vaultModel{spinner: s, loading: true, pathsInput: paths, noteInput: note}
}

func buildVaultRows(files []models.VaultFile, notes []models.VaultNote) []vaultRow {
	rows := make([]vaultRow, 0, len(files)+len(notes))
	for _, f := range files {
		rows = append(rows, vaultRow{
			id:       f.ID,
			fileType: f.FileType,
			label:    fmt.Sprintf("%s %s  %s", fileTag(f.FileType), f.OriginalFilename, formatDate(f.CreatedAt)),
			copyText: f.FilePath,
		})
	}
	for _, n := range notes {
		rows = append(rows, vaultRow{
			id:       n.ID,
			fileType: models.FileTypeText,
			label:    fmt.Sprintf("%s %s  %s", fileTag(models.FileTypeText), notePreview(n.Content, 40), formatDate(n.CreatedAt)),
			copyText: n.Content,
		})
	}
	return rows
}

func (m vaultModel) current() (vaultRow, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return vaultRow{}, false
	}
	return m.rows[m.idx], true
}

// pendingPaths parses the comma-separated paths field into clean entries.
func (m vaultModel) pendingPaths() []string {
	parts := strings.Split(m.pathsInput.Value(), ",")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func (m vaultModel) emptyStateLine() string {
	if m.keyExisted {
		return "Your vault is empty. Add some files or notes to your vault."
	}
	return "Start by adding files or notes to your new vault."
}

func (m vaultModel) View() string {
	header := titleStyle.Render("Your vault")
	if m.loading || m.saving {
		header += "  " + m.spinner.View()
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Loading...\n"
	case len(m.rows) == 0:
		out += m.emptyStateLine() + "\n"
	default:
		for i, row := range m.rows {
			cursor := "  "
			if m.focus == vaultFocusList && i == m.idx {
				cursor = "> "
			}
			out += cursor + row.label + "\n"
		}
	}

	if m.focus != vaultFocusList {
		out += "\n" + uiDivider + "\n"
		out += "Files:  [" + m.pathsInput.View() + "]\n"
		out += "Note:\n" + m.noteInput.View() + "\n"
		if m.saving {
			out += "\nSaving...\n"
		}
		out += "\n" + helpStyle.Render("tab next field  ctrl+s save  esc back to list")
	} else {
		hints := "n add  r refresh  c copy  d delete"
		if len(m.rows) > 0 {
			hints += "  x clear all"
		}
		hints += "  l logout  q quit"
		out += "\n" + helpStyle.Render(hints)
	}

	if m.status != "" {
		out += "\n\n" + statusStyle.Render(m.status)
	}

	return out
}

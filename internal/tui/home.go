// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package tui

import "github.com/charmbracelet/bubbles/textinput"

// Home is the landing page: product pitch plus the access-key form.
// Focus cycles between the key field and the two informational links.
const (
	homeFocusKey = iota
	homeFocusAbout
	homeFocusHowItWorks
	homeFocusCount
)

type homeModel struct {
	keyInput   textinput.Model
	focus      int
	submitting bool
}

func newHomeModel() homeModel {
	in := textinput.New()
	in.Placeholder = "your access key"
	in.Width = 40
	in.Focus()
	return homeModel{keyInput: in}
}

func (m homeModel) View() string {
	out := titleStyle.Render("One key. All your files.") + "\n\n"
	out += "Store files and notes behind a single access key.\n"
	out += "No accounts, no passwords to reset, nothing to install\n"
	out += "on the other side. Enter your key to open your vault,\n"
	out += "or enter a new one to start fresh.\n\n"
	out += uiDivider + "\n\n"

	out += "Access key: [" + m.keyInput.View() + "]\n\n"

	links := []string{"About", "How it works"}
	for i, link := range links {
		cursor := "  "
		if m.focus == i+1 {
			cursor = "> "
		}
		out += cursor + link + "\n"
	}

	if m.submitting {
		out += "\nChecking key...\n"
	}

	out += "\n" + helpStyle.Render("tab next  enter open vault  q quit")
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Karthikeya Naik

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Karthikeya-Naik/VaultDrop/internal/app"
	"github.com/Karthikeya-Naik/VaultDrop/internal/service"
	"github.com/Karthikeya-Naik/VaultDrop/models"
)

var ErrUserQuit = errors.New("user quit")

type deleteTarget struct {
	id       int64
	fileType models.FileType
}

type appModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  service.SessionKeeper
	version  string

	currentScreen screen
	home          homeModel
	about         aboutModel
	howItWorks    howItWorksModel
	vault         vaultModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete *deleteTarget
	pendingClear  bool
}

func newAppModel(ctx context.Context, services *service.ClientServices, session service.SessionKeeper, version string) appModel {
	m := appModel{
		ctx:      ctx,
		services: services,
		session:  session,
		version:  version,
		home:     newHomeModel(),
		about:    aboutModel{version: version},
		vault:    newVaultModel(),
	}
	m.vault.keyExisted = session.KeyExisted()
	m.currentScreen = resolveScreen(screenHome, gateFor(session.Active()))
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.currentScreen == screenVault {
		return tea.Batch(m.vault.spinner.Tick, m.cmdRefresh())
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingClear {
					m.pendingClear = false
					return m, m.cmdClearAll()
				}
				if m.pendingDelete == nil {
					return m, nil
				}
				return m, m.cmdDelete(*m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = nil
				m.pendingClear = false
			}
			return m, nil
		}
	case keyCheckedMsg:
		m.home.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.vault.keyExisted = msg.keyExisted
		return m, m.navigate(screenVault)
	case vaultLoadedMsg:
		m.vault.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.rebuildRows()
		return m, nil
	case saveDoneMsg:
		m.vault.saving = false
		var staleErr *service.RefreshAfterSaveError
		switch {
		case errors.As(msg.err, &staleErr):
			// The upload was accepted; retrying the form would duplicate
			// it. Drafts are spent and only the refresh failure is shown.
			m.clearSaveDrafts()
			m.showErrorf(staleErr.Err.Error())
			return m, nil
		case msg.err != nil:
			// Pending input stays intact so the user can correct and retry.
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.clearSaveDrafts()
		m.rebuildRows()
		m.vault.status = "Saved to your vault"
		return m, cmdClearStatus()
	case deleteDoneMsg:
		m.pendingDelete = nil
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.rebuildRows()
		return m, nil
	case clearDoneMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.rebuildRows()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.vault.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.vault.status = ""
		return m, nil
	case spinner.TickMsg:
		if m.vault.loading || m.vault.saving {
			var cmd tea.Cmd
			m.vault.spinner, cmd = m.vault.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenHome:
		return m.updateHome(msg)
	case screenAbout, screenHowItWorks:
		return m.updateStatic(msg)
	case screenVault:
		return m.updateVault(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenHome:
		body = m.home.View()
	case screenAbout:
		body = m.about.View()
	case screenHowItWorks:
		body = m.howItWorks.View()
	case screenVault:
		body = m.vault.View()
	}

	body = m.navBar() + "\n\n" + body

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// navBar renders the persistent header with the active screen highlighted.
// The main entry reads Home or Vault depending on the gate.
func (m appModel) navBar() string {
	main := "Home"
	if m.session.Active() {
		main = "Vault"
	}

	entries := []string{main, "About", "How it works"}
	active := 0
	switch m.currentScreen {
	case screenAbout:
		active = 1
	case screenHowItWorks:
		active = 2
	}

	parts := make([]string, len(entries))
	for i, e := range entries {
		if i == active {
			parts[i] = navActiveStyle.Render(e)
		} else {
			parts[i] = helpStyle.Render(e)
		}
	}
	return titleStyle.Render("VaultDrop") + "   " + strings.Join(parts, "  ·  ")
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

// navigate routes to the requested screen through the access gate.
// Entering the vault always kicks off a refresh.
func (m *appModel) navigate(requested screen) tea.Cmd {
	target := resolveScreen(requested, gateFor(m.session.Active()))
	m.currentScreen = target
	if target == screenVault {
		m.vault.loading = true
		m.vault.focus = vaultFocusList
		return tea.Batch(m.vault.spinner.Tick, m.cmdRefresh())
	}
	return nil
}

// clearSaveDrafts empties the compose form and returns focus to the list.
// Called once a save's upload has been accepted, whether or not the
// follow-up refresh succeeded.
func (m *appModel) clearSaveDrafts() {
	m.vault.pathsInput.Reset()
	m.vault.noteInput.Reset()
	m.vault.focus = vaultFocusList
	m.vault.pathsInput.Blur()
	m.vault.noteInput.Blur()
	m.vault.keyExisted = true
}

func (m *appModel) rebuildRows() {
	svc := m.services.VaultService
	m.vault.rows = buildVaultRows(svc.Files(), svc.Notes())
	if m.vault.idx >= len(m.vault.rows) {
		m.vault.idx = len(m.vault.rows) - 1
	}
	if m.vault.idx < 0 {
		m.vault.idx = 0
	}
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	typing := m.home.focus == homeFocusKey

	switch {
	case key.Matches(keyMsg, keys.forceQuit), !typing && key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.tab):
		m.home = homeFocusNext(m.home, 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.home = homeFocusNext(m.home, -1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		switch m.home.focus {
		case homeFocusKey:
			if m.home.submitting {
				return m, nil
			}
			rawKey := strings.TrimSpace(m.home.keyInput.Value())
			if rawKey == "" {
				m.showErrorf(app.MsgEmptyKey)
				return m, nil
			}
			m.home.submitting = true
			return m, m.cmdCheckKey(rawKey)
		case homeFocusAbout:
			return m, m.navigate(screenAbout)
		case homeFocusHowItWorks:
			return m, m.navigate(screenHowItWorks)
		}
		return m, nil
	}

	if !typing {
		return m, nil
	}

	var cmd tea.Cmd
	m.home.keyInput, cmd = m.home.keyInput.Update(msg)
	return m, cmd
}

func (m appModel) updateStatic(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		return m, m.navigate(screenHome)
	}
	return m, nil
}

func (m appModel) updateVault(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.vault.focus == vaultFocusList {
		return m.updateVaultList(keyMsg)
	}
	return m.updateVaultCompose(keyMsg)
}

func (m appModel) updateVaultList(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.vault.idx > 0 {
			m.vault.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.vault.idx < len(m.vault.rows)-1 {
			m.vault.idx++
		}
	case key.Matches(keyMsg, keys.compose):
		m.vault.focus = vaultFocusPaths
		m.vault.pathsInput.Focus()
	case key.Matches(keyMsg, keys.refresh):
		if m.vault.loading {
			return m, nil
		}
		m.vault.loading = true
		return m, tea.Batch(m.vault.spinner.Tick, m.cmdRefresh())
	case key.Matches(keyMsg, keys.copy):
		row, ok := m.vault.current()
		if !ok || row.copyText == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(row.copyText)
	case key.Matches(keyMsg, keys.delete):
		row, ok := m.vault.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fmt.Sprintf("Delete %q?", row.label)
		m.pendingDelete = &deleteTarget{id: row.id, fileType: row.fileType}
	case key.Matches(keyMsg, keys.clearAll):
		// Clearing an already empty vault is not offered.
		if len(m.vault.rows) == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = "Delete everything in your vault?"
		m.pendingClear = true
	case key.Matches(keyMsg, keys.logout):
		if err := m.services.KeyService.Logout(); err != nil {
			m.showErrorf(err.Error())
			return m, nil
		}
		m.home = newHomeModel()
		m.vault = newVaultModel()
		return m, m.navigate(screenHome)
	case key.Matches(keyMsg, keys.about):
		return m, m.navigate(screenAbout)
	case key.Matches(keyMsg, keys.info):
		return m, m.navigate(screenHowItWorks)
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateVaultCompose(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.forceQuit):
		m.err = ErrUserQuit
		return m, tea.Quit
	case key.Matches(keyMsg, keys.esc):
		// Drafts survive leaving the form.
		m.vault.focus = vaultFocusList
		m.vault.pathsInput.Blur()
		m.vault.noteInput.Blur()
		return m, nil
	case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
		if m.vault.focus == vaultFocusPaths {
			m.vault.focus = vaultFocusNote
			m.vault.pathsInput.Blur()
			m.vault.noteInput.Focus()
		} else {
			m.vault.focus = vaultFocusPaths
			m.vault.noteInput.Blur()
			m.vault.pathsInput.Focus()
		}
		return m, nil
	case key.Matches(keyMsg, keys.save):
		if m.vault.saving {
			return m, nil
		}
		paths := m.vault.pendingPaths()
		note := m.vault.noteInput.Value()
		if len(paths) == 0 && strings.TrimSpace(note) == "" {
			m.showErrorf(app.MsgNothingToSave)
			return m, nil
		}
		m.vault.saving = true
		return m, tea.Batch(m.vault.spinner.Tick, m.cmdSave(paths, note))
	}

	var cmd tea.Cmd
	if m.vault.focus == vaultFocusPaths {
		m.vault.pathsInput, cmd = m.vault.pathsInput.Update(keyMsg)
	} else {
		m.vault.noteInput, cmd = m.vault.noteInput.Update(keyMsg)
	}
	return m, cmd
}

func homeFocusNext(m homeModel, dir int) homeModel {
	m.focus = (m.focus + dir + homeFocusCount) % homeFocusCount
	if m.focus == homeFocusKey {
		m.keyInput.Focus()
	} else {
		m.keyInput.Blur()
	}
	return m
}

func (m appModel) cmdCheckKey(rawKey string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.KeyService
	return func() tea.Msg {
		keyExisted, err := svc.Submit(ctx, rawKey)
		return keyCheckedMsg{keyExisted: keyExisted, err: err}
	}
}

func (m appModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		return vaultLoadedMsg{err: svc.Refresh(ctx)}
	}
}

func (m appModel) cmdSave(paths []string, noteContent string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		uploads, err := service.LoadUploads(paths)
		if err != nil {
			return saveDoneMsg{err: err}
		}
		return saveDoneMsg{err: svc.Save(ctx, uploads, noteContent)}
	}
}

func (m appModel) cmdDelete(target deleteTarget) tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		return deleteDoneMsg{err: svc.RemoveOne(ctx, target.id, target.fileType)}
	}
}

func (m appModel) cmdClearAll() tea.Cmd {
	ctx := m.ctx
	svc := m.services.VaultService
	return func() tea.Msg {
		return clearDoneMsg{err: svc.RemoveAll(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

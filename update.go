package main

import (
	"path/filepath"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/spark/internal/config"
	"github.com/LFroesch/spark/internal/fileops"
	"github.com/LFroesch/spark/internal/giturl"
	"github.com/LFroesch/spark/internal/logger"
	"github.com/LFroesch/spark/internal/scaffold"
)

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Clear expired status messages
	if m.statusMsg != "" && time.Now().After(m.statusExpiry) {
		m.statusMsg = ""
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dimensions may change between frames; re-clamp everything.
		m.width = msg.Width
		m.height = msg.Height
		if m.width < minTerminalWidth {
			m.width = minTerminalWidth
		}
		if m.height < minTerminalHeight {
			m.height = minTerminalHeight
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeTemplates:
			return m.updateTemplates(msg)
		case modeConfig:
			return m.updateConfig(msg)
		case modeEditField:
			return m.updateEditField(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		default:
			return m.updateProjects(msg)
		}
	}

	return m, nil
}

// queryRuneAllowed is the charset accepted into the project query; the
// slash and colon make pasted repo URLs typeable.
func queryRuneAllowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.', ' ', '/', ':':
		return true
	}
	return false
}

// templateRuneAllowed edits the pending project name, which cannot
// contain path or URL characters.
func templateRuneAllowed(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.', ' ':
		return true
	}
	return false
}

// editQuery forwards a key to the query input when it passes the charset
// filter, re-ranking (and optionally resetting the cursor) on any change.
func (m *model) editQuery(msg tea.KeyMsg, allowed func(rune) bool, resetCursor bool) {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		for _, r := range msg.Runes {
			if !allowed(r) {
				return
			}
		}
	case tea.KeyBackspace:
	default:
		return
	}

	before := m.queryInput.Value()
	m.queryInput, _ = m.queryInput.Update(msg)
	if m.queryInput.Value() != before {
		if resetCursor {
			m.cursor = 0
		}
		m.refreshRanked()
	}
}

func (m *model) updateProjects(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < m.totalItems()-1 {
			m.cursor++
		}
	case "enter":
		return m.selectProjectRow()
	case "esc", "ctrl+c":
		// First escape clears the query, second cancels the session.
		if m.queryInput.Value() != "" {
			m.queryInput.SetValue("")
			m.cursor = 0
			m.refreshRanked()
		} else {
			return m, m.finish(selectionResult{action: actionCancel})
		}
	case "delete", "d":
		if m.cursor < len(m.ranked) {
			m.deleteTarget = m.cursor
			m.mode = modeConfirmDelete
		}
	case "ctrl+y":
		if m.cursor < len(m.ranked) {
			m.copyPath(m.ranked[m.cursor].Path)
		}
	default:
		m.editQuery(msg, queryRuneAllowed, true)
	}
	return m, nil
}

// selectProjectRow resolves Enter: an existing project, the create row
// (clone / blank create / template picker depending on the query), or the
// configure row.
func (m *model) selectProjectRow() (tea.Model, tea.Cmd) {
	switch {
	case m.cursor < len(m.ranked):
		return m, m.finish(selectionResult{
			action: actionOpen,
			path:   m.ranked[m.cursor].Path,
		})

	case m.cursor == len(m.ranked):
		query := m.queryInput.Value()
		switch {
		case giturl.IsRepoRef(query):
			url := giturl.Normalize(query)
			return m, m.finish(selectionResult{
				action:  actionClone,
				path:    filepath.Join(m.cat.Base(), giturl.RepoName(url)),
				repoURL: url,
			})
		case query != "":
			return m, m.finish(selectionResult{
				action:   actionCreate,
				path:     m.createPath(query),
				template: scaffold.Blank,
			})
		default:
			m.mode = modeTemplates
			m.cursor = 0
		}

	default:
		m.mode = modeConfig
		m.cursor = 0
	}
	return m, nil
}

func (m *model) updateTemplates(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	templates := scaffold.All()

	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(templates)-1 {
			m.cursor++
		}
	case "enter":
		return m, m.finish(selectionResult{
			action:   actionCreate,
			path:     m.createPath(m.pendingName()),
			template: templates[m.cursor],
		})
	case "esc", "ctrl+c":
		m.mode = modeProjects
		m.cursor = 0
	default:
		m.editQuery(msg, templateRuneAllowed, false)
	}
	return m, nil
}

func (m *model) updateConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < configRows-1 {
			m.cursor++
		}
	case "enter":
		switch m.cursor {
		case 0:
			m.startFieldEdit(fieldPath, m.cfg.ProjectsPath)
		case 1:
			m.startFieldEdit(fieldEditor, m.cfg.DefaultEditor)
		default:
			m.mode = modeProjects
			m.cursor = 0
		}
	case "esc", "ctrl+c":
		m.mode = modeProjects
		m.cursor = 0
	}
	return m, nil
}

func (m *model) startFieldEdit(field configField, current string) {
	m.editField = field
	m.editInput.SetValue(current)
	m.editInput.CursorEnd()
	m.editInput.Focus()
	m.mode = modeEditField
}

func (m *model) updateEditField(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := m.editInput.Value()
		switch m.editField {
		case fieldPath:
			m.cfg.ProjectsPath = value
		case fieldEditor:
			m.cfg.DefaultEditor = value
		}
		if err := config.Save(m.cfg); err != nil {
			logger.Error("Failed to save config: %v", err)
			m.setStatus("Failed to save config: " + err.Error())
		}
		m.editInput.Blur()
		m.mode = modeConfig
	case "esc":
		// Discard the edit.
		m.editInput.Blur()
		m.mode = modeConfig
	default:
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.deleteTarget < 0 || m.deleteTarget >= len(m.ranked) {
		m.mode = modeProjects
		m.deleteTarget = -1
		return m, nil
	}

	switch msg.String() {
	case "y", "Y":
		target := m.ranked[m.deleteTarget]
		if err := fileops.RemoveProject(target.Path); err != nil {
			logger.Error("Failed to delete %s: %v", target.Path, err)
			m.setStatus("Failed to delete: " + err.Error())
		} else {
			logger.Info("Deleted project %s", target.Path)
		}
		m.cat.Reset()
		m.mode = modeProjects
		m.deleteTarget = -1
		m.cursor = 0
		m.refreshRanked()
	default:
		// Any other key declines; the catalog is untouched.
		m.mode = modeProjects
		m.deleteTarget = -1
	}
	return m, nil
}

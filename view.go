package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/LFroesch/spark/internal/catalog"
	"github.com/LFroesch/spark/internal/giturl"
	"github.com/LFroesch/spark/internal/scaffold"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	selectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))
	urlStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	valueStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dangerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (m *model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	switch m.mode {
	case modeTemplates:
		return m.renderTemplates()
	case modeConfig:
		return m.renderConfig()
	case modeEditField:
		return m.renderEditField()
	case modeConfirmDelete:
		return m.renderConfirmDelete()
	default:
		return m.renderProjects()
	}
}

func (m *model) separator() string {
	width := m.width - 1
	if width < 10 {
		width = 10
	}
	return dimStyle.Render(strings.Repeat("─", width))
}

// maxVisibleRows is the list window height for the current terminal size.
func (m *model) maxVisibleRows() int {
	visible := m.height - fixedChromeRows
	if visible < 3 {
		visible = 3
	}
	return visible
}

// adjustScroll moves the window by the minimum needed to keep the cursor
// inside it.
func (m *model) adjustScroll(maxVisible int) {
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+maxVisible {
		m.scrollOffset = m.cursor - maxVisible + 1
	}
}

func (m *model) renderProjects() string {
	lines := []string{
		titleStyle.Render("spark"),
		m.separator(),
		m.renderQueryLine(),
		m.separator(),
	}

	maxVisible := m.maxVisibleRows()
	total := m.totalItems()
	m.clampCursor()
	m.adjustScroll(maxVisible)

	end := m.scrollOffset + maxVisible
	if end > total {
		end = total
	}

	for idx := m.scrollOffset; idx < end; idx++ {
		selected := idx == m.cursor

		marker := "  "
		if selected {
			marker = selectedStyle.Render("▶ ")
		}

		var row string
		switch {
		case idx < len(m.ranked):
			row = m.renderProjectRow(m.ranked[idx], selected)
		case idx == len(m.ranked):
			row = styledIf(m.createRowText(), selected)
		default:
			row = styledIf("⚙️  Configure", selected)
		}

		lines = append(lines, marker+row)
	}

	lines = append(lines,
		m.separator(),
		dimStyle.Render("Type: Project name  ↑↓: Navigate  Enter: Select  D: Delete  ESC: Clear"),
	)
	if m.statusMsg != "" {
		lines = append(lines, warnStyle.Render(m.statusMsg))
	}

	return strings.Join(lines, "\n")
}

func (m *model) renderQueryLine() string {
	query := m.queryInput.Value()
	switch {
	case query == "":
		return dimStyle.Render("Search or paste a GitHub URL")
	case giturl.IsRepoRef(query):
		return urlStyle.Render("🌐 " + query)
	default:
		return query
	}
}

func (m *model) createRowText() string {
	query := m.queryInput.Value()
	switch {
	case query == "":
		return "✨ Create new project (select template)"
	case giturl.IsRepoRef(query):
		return "🚀 Clone " + giturl.RepoName(giturl.Normalize(query))
	default:
		return "✨ Create " + query + " (blank template)"
	}
}

// renderProjectRow draws the entry glyph, the (highlighted) name, and the
// right-aligned age + score metadata. Metadata is dropped entirely when
// the terminal is too narrow; a row never wraps.
func (m *model) renderProjectRow(p project, selected bool) string {
	glyph := "📁"
	if p.Kind == catalog.Git {
		glyph = "🌐"
	}

	name := highlightName(p.Name, p.matches, selected)
	meta := fmt.Sprintf("%s, %.1f", relativeAge(p.Modified, time.Now()), p.Score)

	// Marker and glyph cells plus a trailing space for the metadata.
	minWidth := 5 + len([]rune(p.Name)) + len(meta) + 1
	row := glyph + " " + name
	if m.width >= minWidth {
		padding := m.width - minWidth
		if padding < 1 {
			padding = 1
		}
		row += strings.Repeat(" ", padding) + " " + dimStyle.Render(meta)
	}
	return row
}

func styledIf(text string, selected bool) string {
	if selected {
		return selectedStyle.Render(text)
	}
	return text
}

// highlightName emphasizes the rune positions the query matched.
func highlightName(name string, matches []int, selected bool) string {
	base := lipgloss.NewStyle()
	if selected {
		base = selectedStyle
	}
	if len(matches) == 0 {
		return base.Render(name)
	}

	matched := make(map[int]bool, len(matches))
	for _, idx := range matches {
		matched[idx] = true
	}

	var b strings.Builder
	for i, r := range []rune(name) {
		if matched[i] {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

// relativeAge buckets an age into compact text: just now, Nm, Nh, Nd,
// Nmo, Ny.
func relativeAge(t, now time.Time) string {
	seconds := int64(now.Sub(t).Seconds())
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24

	switch {
	case seconds < 10:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%dm", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh", hours)
	case days < 30:
		return fmt.Sprintf("%dd", days)
	case days < 365:
		return fmt.Sprintf("%dmo", days/30)
	default:
		return fmt.Sprintf("%dy", days/365)
	}
}

func (m *model) renderTemplates() string {
	creating := "Creating: " + m.pendingName()
	creatingLine := dimStyle.Render(creating)
	if m.queryInput.Value() != "" {
		creatingLine = urlStyle.Render(creating)
	}

	lines := []string{
		titleStyle.Render("✨ Choose Project Template"),
		m.separator(),
		creatingLine,
		m.separator(),
	}

	for idx, tmpl := range scaffold.All() {
		marker := "  "
		if idx == m.cursor {
			marker = selectedStyle.Render("→ ")
		}
		lines = append(lines, marker+styledIf(tmpl.DisplayName(), idx == m.cursor))
	}

	lines = append(lines,
		m.separator(),
		dimStyle.Render("↑↓: Navigate  Enter: Select  Type: Edit name  ESC: Back"),
	)
	return strings.Join(lines, "\n")
}

func (m *model) renderConfig() string {
	rows := []struct {
		label string
		value string
	}{
		{"📁 Projects Path", m.cfg.ProjectsPath},
		{"✏️  Editor", m.cfg.DefaultEditor},
		{"← Back", ""},
	}

	lines := []string{
		titleStyle.Render("⚙️  Configuration"),
		m.separator(),
	}

	for idx, row := range rows {
		marker := "  "
		if idx == m.cursor {
			marker = selectedStyle.Render("▶ ")
		}
		line := marker + styledIf(row.label, idx == m.cursor)
		if row.value != "" {
			line += ": " + valueStyle.Render(row.value)
		}
		lines = append(lines, line)
	}

	lines = append(lines,
		m.separator(),
		dimStyle.Render("↑↓: Navigate  Enter: Edit  ESC: Back"),
	)
	if m.statusMsg != "" {
		lines = append(lines, warnStyle.Render(m.statusMsg))
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderEditField() string {
	label := "📁 Projects Path"
	if m.editField == fieldEditor {
		label = "✏️  Editor"
	}

	lines := []string{
		titleStyle.Render("⚙️  Configuration"),
		m.separator(),
		selectedStyle.Render("▶ "+label+": ") + m.editInput.View(),
		m.separator(),
		dimStyle.Render("Type to edit  Enter: Save  ESC: Cancel"),
	}
	return strings.Join(lines, "\n")
}

func (m *model) renderConfirmDelete() string {
	if m.deleteTarget < 0 || m.deleteTarget >= len(m.ranked) {
		return m.renderProjects()
	}
	target := m.ranked[m.deleteTarget]

	lines := []string{
		dangerStyle.Render("🗑️  Delete Project"),
		m.separator(),
		warnStyle.Render("⚠️  Delete ") + valueStyle.Render(target.Name) + warnStyle.Render("?"),
		dimStyle.Render("   " + target.Path),
		"",
		dangerStyle.Render("This will permanently delete the entire folder!"),
		m.separator(),
		dimStyle.Render("Y: Delete  Any other key: Cancel"),
	}
	return strings.Join(lines, "\n")
}

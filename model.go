package main

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/spark/internal/catalog"
	"github.com/LFroesch/spark/internal/config"
	"github.com/LFroesch/spark/internal/logger"
	"github.com/LFroesch/spark/internal/scaffold"
	"github.com/LFroesch/spark/internal/score"
)

type mode int

const (
	modeProjects mode = iota
	modeTemplates
	modeConfig
	modeEditField
	modeConfirmDelete
)

// configField says which setting an EditField session is editing.
type configField int

const (
	fieldPath configField = iota
	fieldEditor
)

const (
	minTerminalWidth  = 40
	minTerminalHeight = 10

	// Rows taken by header, query line, separators and key hints.
	fixedChromeRows = 8

	// Synthetic rows appended below the ranked projects: create + configure.
	syntheticRows = 2

	// Rows in the configuration screen: path, editor, back.
	configRows = 3
)

type action int

const (
	actionOpen action = iota
	actionCreate
	actionClone
	actionCancel
)

// selectionResult is the session's single output; set exactly once.
type selectionResult struct {
	action   action
	path     string
	template scaffold.Template
	repoURL  string
}

// project is a catalog entry scored against the current query, with the
// matched rune positions kept for highlighting.
type project struct {
	catalog.Entry
	matches []int
}

type model struct {
	mode         mode
	cursor       int
	scrollOffset int

	queryInput textinput.Model
	editInput  textinput.Model
	editField  configField

	deleteTarget int // ranked index armed for deletion, -1 otherwise

	cat    *catalog.Catalog
	cfg    *config.Config
	ranked []project

	width  int
	height int

	result *selectionResult

	statusMsg    string
	statusExpiry time.Time
}

func initialModel(seed, basePath string, cfg *config.Config) model {
	qi := textinput.New()
	qi.Prompt = ""
	qi.CharLimit = 256
	qi.SetValue(strings.ReplaceAll(seed, " ", "-"))
	qi.Focus()

	ei := textinput.New()
	ei.Prompt = ""
	ei.CharLimit = 256

	m := model{
		mode:         modeProjects,
		queryInput:   qi,
		editInput:    ei,
		deleteTarget: -1,
		cat:          catalog.New(basePath),
		cfg:          cfg,
	}
	m.refreshRanked()
	return m
}

func (m *model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("spark"),
		textinput.Blink,
	)
}

// refreshRanked rescores every catalog entry against the current query and
// clock, filters out non-matches, and sorts by score descending. The sort
// is stable so equal scores keep catalog order.
func (m *model) refreshRanked() {
	entries, err := m.cat.Entries()
	if err != nil {
		logger.Error("Failed to list projects: %v", err)
		m.setStatus("Error reading projects: " + err.Error())
		entries = nil
	}

	query := m.queryInput.Value()
	now := time.Now()

	ranked := make([]project, 0, len(entries))
	for _, e := range entries {
		s, positions := score.Compute(e.Name, query, e.Created, e.Modified, now)
		if query != "" && s == 0 {
			continue
		}
		e.Score = s
		ranked = append(ranked, project{Entry: e, matches: positions})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	m.ranked = ranked
	m.clampCursor()
}

func (m *model) totalItems() int {
	return len(m.ranked) + syntheticRows
}

// clampCursor keeps the cursor inside the active mode's list, which can
// shrink under it when live filtering changes the ranked set.
func (m *model) clampCursor() {
	var max int
	switch m.mode {
	case modeTemplates:
		max = len(scaffold.All()) - 1
	case modeConfig:
		max = configRows - 1
	default:
		max = m.totalItems() - 1
	}
	if m.cursor > max {
		m.cursor = max
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// createPath builds the destination for a new project, collapsing spaces
// in the typed name the same way the seed query does.
func (m *model) createPath(name string) string {
	return filepath.Join(m.cat.Base(), strings.ReplaceAll(name, " ", "-"))
}

// pendingName is the project name a template creation will use.
func (m *model) pendingName() string {
	if q := m.queryInput.Value(); q != "" {
		return q
	}
	return "new-project"
}

func (m *model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusExpiry = time.Now().Add(3 * time.Second)
}

func (m *model) finish(r selectionResult) tea.Cmd {
	m.result = &r
	return tea.Quit
}

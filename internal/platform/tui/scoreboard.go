package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rainshield/internal/registry"
	"github.com/vovakirdan/rainshield/internal/storage"
)

const (
	boardRunLimit    = 100 // runs loaded per variant and listing
	detailPanelWidth = 30
	minWidthForPanel = 90 // below this the run panel sits under the table
)

// runListing selects which runs the board shows.
type runListing int

const (
	listingTop runListing = iota
	listingRecent
)

func (l runListing) String() string {
	if l == listingRecent {
		return "RECENT RUNS"
	}
	return "BEST RUNS"
}

// ScoreboardKeyMap defines the key bindings for the run board.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Listing key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Listing, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Next, k.Prev},
		{k.Listing, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "prev run")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "next run")),
		Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next variant")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev variant")),
		Listing: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:    key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel browses recorded runs per variant. Each run shows the
// seed and step count needed to replay it.
type ScoreboardModel struct {
	variants []registry.GameInfo
	cursor   int
	listing  runListing
	store    *storage.Store

	runs   []storage.ScoreEntry
	stats  *storage.GameStats
	totals storage.GameStats // across all variants
	err    error

	table     table.Model
	showDate  bool
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
	embedded  bool // Runs inside a session; back returns instead of quitting
}

// NewScoreboardModel creates a run board over every registered variant.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	return newScoreboard(store, registry.List(), width, height)
}

func newScoreboard(store *storage.Store, variants []registry.GameInfo, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: variants,
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.table = m.newRunTable()
	m.reload()
	return m
}

func (m *ScoreboardModel) tableWidth() int {
	w := m.width - 4
	if m.width >= minWidthForPanel {
		w -= detailPanelWidth + 4
	}
	return w
}

func (m *ScoreboardModel) newRunTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Steps", Width: 7},
		{Title: "Seed", Width: 12},
		{Title: "Run", Width: 9},
	}
	// The date column only fits on wider screens.
	rest := m.tableWidth() - 39 - 12
	m.showDate = rest >= 12
	if m.showDate {
		columns = append(columns, table.Column{Title: "Date", Width: min(rest, 16)})
	}

	height := m.height - 9
	if m.width < minWidthForPanel {
		height -= 8
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("24"))
	t.SetStyles(s)
	return t
}

// reload fetches the current listing, the variant stats and the board totals.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	m.totals = storage.GameStats{}
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.cursor].ID
		if m.listing == listingRecent {
			m.runs, m.err = m.store.RecentRuns(id, boardRunLimit)
		} else {
			m.runs, m.err = m.store.TopScores(id, boardRunLimit)
		}
		if m.err == nil {
			m.stats, m.err = m.store.GetGameStats(id)
		}
		if m.err == nil {
			var all map[string]*storage.GameStats
			all, m.err = m.store.GetAllGamesStats()
			for _, st := range all {
				m.totals.RunsCount += st.RunsCount
				m.totals.TotalScore += st.TotalScore
				m.totals.HighScore = max(m.totals.HighScore, st.HighScore)
				if st.LastPlayed.After(m.totals.LastPlayed) {
					m.totals.LastPlayed = st.LastPlayed
				}
			}
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Steps),
			fmt.Sprintf("%d", r.Seed),
			shortRunID(r.RunID),
		}
		if m.showDate {
			row = append(row, r.CreatedAt.Format("Jan 02 15:04"))
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Selected returns the highlighted run, if any.
func (m ScoreboardModel) Selected() (storage.ScoreEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.runs) {
		return storage.ScoreEntry{}, false
	}
	return m.runs[i], true
}

func (m ScoreboardModel) shiftVariant(by int) ScoreboardModel {
	if n := len(m.variants); n > 0 {
		m.cursor = (m.cursor + by + n) % n
		m.reload()
	}
	return m
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.shiftVariant(1), nil
		case key.Matches(msg, m.keys.Prev):
			return m.shiftVariant(-1), nil
		case key.Matches(msg, m.keys.Listing):
			m.listing = 1 - m.listing
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newRunTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("24")).Padding(0, 1)
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText(m.listing.String(), m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.variantTabs(), m.width))
	b.WriteString("\n\n")

	runs := boardBoxStyle.Render(m.runList())
	panel := boardBoxStyle.Width(detailPanelWidth).Render(m.runPanel())
	if m.width >= minWidthForPanel {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", panel))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, panel))
	}

	b.WriteString("\n")
	b.WriteString(boardDimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) variantTabs() string {
	if len(m.variants) == 0 {
		return boardDimStyle.Render("no variants registered")
	}
	tabs := make([]string, len(m.variants))
	for i, v := range m.variants {
		if i == m.cursor {
			tabs[i] = boardTabStyle.Render(v.Title)
		} else {
			tabs[i] = boardDimStyle.Render(" " + v.Title + " ")
		}
	}
	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = fmt.Sprintf("< %s >", m.variants[m.cursor].Title)
	}
	return line
}

func (m ScoreboardModel) runList() string {
	switch {
	case m.err != nil:
		return boardDimStyle.Render("Cannot read runs: " + m.err.Error())
	case len(m.runs) == 0:
		return boardDimStyle.Italic(true).Padding(1, 2).Render("No runs recorded yet.\nLet the rain find the others to score!")
	}
	return m.table.View()
}

// runPanel describes the selected run and the variant's totals.
func (m ScoreboardModel) runPanel() string {
	var b strings.Builder
	if r, ok := m.Selected(); ok {
		b.WriteString(boardTitleStyle.Render("Run"))
		b.WriteString("\n")
		fmt.Fprintf(&b, "%s\n", r.RunID)
		fmt.Fprintf(&b, "score  %d\n", r.Score)
		fmt.Fprintf(&b, "steps  %d\n", r.Steps)
		fmt.Fprintf(&b, "seed   %d\n", r.Seed)
		if !r.CreatedAt.IsZero() {
			fmt.Fprintf(&b, "date   %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
		}
		b.WriteString("\n")
	}

	if m.stats != nil && len(m.variants) > 0 {
		b.WriteString(boardTitleStyle.Render(m.variants[m.cursor].Title))
		b.WriteString("\n")
		fmt.Fprintf(&b, "runs   %d\n", m.stats.RunsCount)
		fmt.Fprintf(&b, "best   %d\n", m.stats.HighScore)
		fmt.Fprintf(&b, "avg    %.1f\n", m.stats.AvgScore)
		if !m.stats.LastPlayed.IsZero() {
			fmt.Fprintf(&b, "last   %s\n", m.stats.LastPlayed.Format("Jan 02 15:04"))
		}
		b.WriteString("\n")
	}

	b.WriteString(boardTitleStyle.Render("All variants"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "runs   %d\n", m.totals.RunsCount)
	fmt.Fprintf(&b, "best   %d", m.totals.HighScore)
	return b.String()
}

// shortRunID trims a run ID to its first block for display.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

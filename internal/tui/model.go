package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hitsum/internal/domain"
)

// Model is the Bubble Tea model for browsing ranked reports.
type Model struct {
	reports  []domain.Report
	input    textinput.Model
	viewport viewport.Model
	current  int
	query    map[string]struct{}
	status   string
	ready    bool
}

// New creates a new TUI model over the given reports.
func New(reports []domain.Report) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a token and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	m := Model{reports: reports, input: ti, viewport: vp, status: "tab/shift+tab: switch document, ctrl+c: quit"}
	m.viewport.SetContent(m.renderCurrentReport())
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := reportBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + stats, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderCurrentReport())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			m.query = toTokenSet(q)
			if len(m.query) == 0 {
				m.status = "Highlight cleared"
			} else {
				m.status = fmt.Sprintf("%d ranked sentences contain %q", m.matchCount(), q)
			}
			m.viewport.SetContent(m.renderCurrentReport())
			return m, nil
		case "tab":
			if len(m.reports) > 0 {
				m.current = (m.current + 1) % len(m.reports)
				m.viewport.SetContent(m.renderCurrentReport())
				m.viewport.GotoTop()
			}
			return m, nil
		case "shift+tab":
			if len(m.reports) > 0 {
				m.current = (m.current - 1 + len(m.reports)) % len(m.reports)
				m.viewport.SetContent(m.renderCurrentReport())
				m.viewport.GotoTop()
			}
			return m, nil
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI layout and the current report.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("HITS Summary")
	stats := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.stats())
	body := reportBoxStyle.Render(m.viewport.View())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + stats + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) stats() string {
	if len(m.reports) == 0 {
		return "no documents"
	}
	r := m.reports[m.current]
	return fmt.Sprintf("Document %d/%d: %s  (%d sentences, %d tokens, %d iterations)",
		m.current+1, len(m.reports), r.Document,
		r.Summary.SentenceCount, r.Summary.VocabularySize, r.Summary.Iterations)
}

func (m Model) renderCurrentReport() string {
	if len(m.reports) == 0 {
		return "No reports."
	}
	s := m.reports[m.current].Summary
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Sentences by hub score"))
	b.WriteString("\n")
	if len(s.Sentences) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, r := range s.Sentences {
		line := fmt.Sprintf("%2d. %.4f  %s", i+1, r.Score, r.Label)
		if m.matches(r.Label) {
			b.WriteString("* " + highlightStyle.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Tokens by authority score"))
	b.WriteString("\n")
	if len(s.Tokens) == 0 {
		b.WriteString("  (none)\n")
	}
	for i, r := range s.Tokens {
		fmt.Fprintf(&b, "  %2d. %.4f  %s\n", i+1, r.Score, r.Label)
	}
	return b.String()
}

func (m Model) matches(sentence string) bool {
	return len(m.query) > 0 && tokenOverlapScore(m.query, sentence) > 0
}

func (m Model) matchCount() int {
	if len(m.reports) == 0 {
		return 0
	}
	n := 0
	for _, r := range m.reports[m.current].Summary.Sentences {
		if m.matches(r.Label) {
			n++
		}
	}
	return n
}

var (
	reportBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	sectionStyle   = lipgloss.NewStyle().Underline(true)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	unicodeWordRe  = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

func toTokenSet(s string) map[string]struct{} {
	tokens := unicodeWordRe.FindAllString(strings.ToLower(s), -1)
	m := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		m[t] = struct{}{}
	}
	return m
}

func tokenOverlapScore(queryTokens map[string]struct{}, sentence string) int {
	score := 0
	tokens := unicodeWordRe.FindAllString(strings.ToLower(sentence), -1)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := queryTokens[t]; ok {
			score++
		}
	}
	return score
}

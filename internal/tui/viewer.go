// Package tui implements the interactive workflow viewer opened by
// `specforge implement --interactive`: a read-only bubbletea program showing
// phase progress and the wave schedule.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kestrel-tools/specforge/internal/taskgraph"
	"github.com/kestrel-tools/specforge/internal/tui/styles"
	"github.com/kestrel-tools/specforge/internal/util"
	"github.com/kestrel-tools/specforge/internal/workflow"
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous wave"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next wave"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the viewer's bubbletea model.
type Model struct {
	state        *workflow.State
	graph        *taskgraph.Graph
	waves        [][]string
	metrics      taskgraph.Metrics
	keys         keyMap
	help         help.Model
	selected     int // selected wave index
	maxNameWidth int
}

// NewModel builds a viewer over a loaded workflow state and a computed
// schedule. The schedule may be empty when the plan phase hasn't run.
func NewModel(state *workflow.State, graph *taskgraph.Graph, waves [][]string, metrics taskgraph.Metrics, maxNameWidth int) Model {
	return Model{
		state:        state,
		graph:        graph,
		waves:        waves,
		metrics:      metrics,
		keys:         defaultKeys,
		help:         help.New(),
		maxNameWidth: maxNameWidth,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.waves)-1 {
				m.selected++
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("specforge"))
	b.WriteString("\n")

	for _, p := range workflow.Phases() {
		status := string(m.state.PhaseStatus(p))
		fmt.Fprintf(&b, "%s %s\n", styles.StatusIcon(status), p.Title())
	}

	if len(m.waves) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.Subtitle.Render(fmt.Sprintf(
			"%d tasks in %d waves · score %d/100 · saves %s",
			m.graph.Len(), len(m.waves), m.metrics.Score,
			taskgraph.FormatMinutes(m.metrics.SavedMinutes))))
		b.WriteString("\n\n")

		for i, wave := range m.waves {
			label := fmt.Sprintf("Wave %d", i+1)
			if i == m.selected {
				b.WriteString(styles.SelectedRow.Render(label))
			} else {
				b.WriteString(styles.Muted.Render(label))
			}
			b.WriteString("\n")

			if i == m.selected {
				for _, id := range wave {
					task := m.graph.Get(id)
					line := fmt.Sprintf("  %s: %s", id, util.TruncateANSI(task.Name, m.maxNameWidth))
					if task.EstimatedTime != nil {
						line += styles.Muted.Render(fmt.Sprintf(" (%s)", taskgraph.FormatMinutes(*task.EstimatedTime)))
					}
					b.WriteString(line)
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Run starts the viewer and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}

// Package tui is an interactive terminal editor for the two armies.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/simulator"
)

// RunFunc estimates the odds of a battle between a and b
type RunFunc func(a, b models.Army) (simulator.Result, error)

type field int

const (
	fieldMen field = iota
	fieldKnights
	fieldStructure
	fieldLeader
	fieldsPerArmy
)

const numFields = 2 * int(fieldsPerArmy)

var fieldLabels = [fieldsPerArmy]string{"Men-at-arms", "Knights", "Structure", "Leader"}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	winStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
	columnStyle   = lipgloss.NewStyle().Width(34)
)

type resultMsg struct {
	result simulator.Result
	err    error
}

// Model holds the editor state
type Model struct {
	A, B   models.Army
	cursor int
	run    RunFunc

	running bool
	result  *simulator.Result
	err     error
}

// NewModel creates an editor starting from the given armies
func NewModel(a, b models.Army, run RunFunc) Model {
	return Model{A: a, B: b, run: run}
}

// Result returns the last completed estimate, if any
func (m Model) Result() (simulator.Result, bool) {
	if m.result == nil {
		return simulator.Result{}, false
	}
	return *m.result, true
}

// Err returns the error of the last estimate
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.running = false
		m.err = msg.err
		if msg.err == nil {
			r := msg.result
			m.result = &r
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.cursor = (m.cursor + numFields - 1) % numFields
		case "down", "j", "tab":
			m.cursor = (m.cursor + 1) % numFields
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "enter", " ":
			if m.running || m.run == nil {
				return m, nil
			}
			m.running = true
			m.err = nil
			return m, simulate(m.run, m.A, m.B)
		}
	}
	return m, nil
}

func simulate(run RunFunc, a, b models.Army) tea.Cmd {
	return func() tea.Msg {
		r, err := run(a, b)
		return resultMsg{result: r, err: err}
	}
}

// adjust moves the selected value by delta, staying within its domain.
// Any change discards the previous result.
func (m *Model) adjust(delta int) {
	army := &m.A
	if m.cursor >= int(fieldsPerArmy) {
		army = &m.B
	}
	before := *army

	switch field(m.cursor % int(fieldsPerArmy)) {
	case fieldMen:
		army.MenAtArms = clamp(army.MenAtArms+delta, 0, models.MaxMenAtArms)
	case fieldKnights:
		army.Knights = clamp(army.Knights+delta, 0, models.MaxKnights)
	case fieldStructure:
		army.Structure = models.Structure(clamp(int(army.Structure)+delta, int(models.NoStructure), int(models.FortifiedCity)))
	case fieldLeader:
		army.Leader = models.Leader(clamp(int(army.Leader)+delta, int(models.NoneOrLady), int(models.DArc)))
	}

	if *army != before {
		m.result = nil
		m.err = nil
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Fief battle odds"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		columnStyle.Render(m.armyView("Army A (attacker)", m.A, 0)),
		columnStyle.Render(m.armyView("Army B (defender)", m.B, int(fieldsPerArmy))),
	))
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString("Simulating...")
	case m.err != nil:
		b.WriteString(lossStyle.Render("Error: " + m.err.Error()))
	case m.result != nil:
		b.WriteString(resultView(*m.result))
	default:
		b.WriteString(helpStyle.Render("Press enter to estimate the odds"))
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  enter simulate  q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) armyView(title string, a models.Army, offset int) string {
	values := [fieldsPerArmy]string{
		fmt.Sprintf("%d", a.MenAtArms),
		fmt.Sprintf("%d", a.Knights),
		a.Structure.String(),
		a.Leader.String(),
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
	for i, label := range fieldLabels {
		line := fmt.Sprintf("%-12s %s", label, values[i])
		if m.cursor == offset+i {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "  %-12s %d\n", "Strength", a.StrengthPoints())
	return b.String()
}

func resultView(r simulator.Result) string {
	return strings.Join([]string{
		winStyle.Render(fmt.Sprintf("A wins %s", percent(r.WinRateA))),
		fmt.Sprintf("Tie %s", percent(r.TieRate)),
		lossStyle.Render(fmt.Sprintf("B wins %s", percent(r.WinRateB))),
	}, "   ")
}

func percent(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// Run starts the editor and blocks until the user quits. It returns the
// final state of the model.
func Run(m Model) (Model, error) {
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return m, err
	}
	return final.(Model), nil
}

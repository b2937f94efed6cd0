// Package tui provides the interactive first-law inspector.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"thermolab/internal/statefile"
	"thermolab/internal/thermo"
)

var (
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

var fieldLabels = map[string]string{
	thermo.KeyInternalEnergy: "internal energy U",
	thermo.KeyHeatAdded:      "heat added Q",
	thermo.KeyWorkDone:       "work done W",
}

var fieldOrder = []string{
	thermo.KeyInternalEnergy,
	thermo.KeyHeatAdded,
	thermo.KeyWorkDone,
}

type model struct {
	values    map[string]float64
	cursor    int
	step      float64
	editing   bool
	editBuf   string
	statePath string
	status    string
}

// NewInspector builds the inspector model seeded from sys; saves go to
// statePath.
func NewInspector(sys *thermo.System, statePath string, step float64) tea.Model {
	if sys == nil {
		sys = &thermo.System{}
	}
	if step <= 0 {
		step = 1.0
	}
	return model{
		values: map[string]float64{
			thermo.KeyInternalEnergy: sys.InternalEnergy(),
			thermo.KeyHeatAdded:      sys.HeatAdded(),
			thermo.KeyWorkDone:       sys.WorkDone(),
		},
		step:      step,
		statePath: statePath,
	}
}

// Run starts the inspector and blocks until it exits.
func Run(sys *thermo.System, statePath string, step float64) error {
	p := tea.NewProgram(NewInspector(sys, statePath, step))
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m.handleEdit(key)
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fieldOrder)-1 {
			m.cursor++
		}
	case "left", "h":
		m.values[fieldOrder[m.cursor]] -= m.step
		m.status = ""
	case "right", "l":
		m.values[fieldOrder[m.cursor]] += m.step
		m.status = ""
	case "+":
		m.step *= 10
	case "-":
		if m.step > 1e-6 {
			m.step /= 10
		}
	case "enter", "e":
		m.editing = true
		m.editBuf = ""
	case "s":
		m.save()
	}
	return m, nil
}

func (m model) handleEdit(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			if err := checkSet(fieldOrder[m.cursor], v); err == nil {
				m.values[fieldOrder[m.cursor]] = v
			}
		}
		m.editing = false
		m.status = ""
	case "esc":
		m.editing = false
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		s := key.String()
		if len(s) == 1 && strings.ContainsAny(s, "0123456789.-e+") {
			m.editBuf += s
		}
	}
	return m, nil
}

// checkSet runs the same validation a setter would.
func checkSet(field string, v float64) error {
	sys := &thermo.System{}
	switch field {
	case thermo.KeyInternalEnergy:
		return sys.SetInternalEnergy(v)
	case thermo.KeyHeatAdded:
		return sys.SetHeatAdded(v)
	default:
		return sys.SetWorkDone(v)
	}
}

func (m *model) save() {
	sys, err := m.system()
	if err != nil {
		m.status = red.Render(fmt.Sprintf("save failed: %v", err))
		return
	}
	if err := statefile.Save(sys, m.statePath); err != nil {
		m.status = red.Render(fmt.Sprintf("save failed: %v", err))
		return
	}
	m.status = green.Render("saved " + m.statePath)
}

func (m model) system() (*thermo.System, error) {
	return thermo.NewSystem(
		m.values[thermo.KeyInternalEnergy],
		m.values[thermo.KeyHeatAdded],
		m.values[thermo.KeyWorkDone],
	)
}

func (m model) View() string {
	var sb strings.Builder

	sb.WriteString(cyan.Render("thermolab") + dim.Render("  ΔU = Q − W") + "\n\n")

	for i, key := range fieldOrder {
		marker := "  "
		style := white
		if i == m.cursor {
			marker = yellow.Render("> ")
			style = yellow
		}
		value := thermo.FormatJoules(m.values[key])
		if m.editing && i == m.cursor {
			value = m.editBuf + "_"
		}
		sb.WriteString(fmt.Sprintf("%s%-18s %s J\n", marker, fieldLabels[key], style.Render(value)))
	}

	du := m.values[thermo.KeyHeatAdded] - m.values[thermo.KeyWorkDone]
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  %-18s %s J\n", "ΔU = Q − W", green.Render(thermo.FormatJoules(du))))
	sb.WriteString(fmt.Sprintf("  %-18s %s J\n", "U + ΔU",
		green.Render(thermo.FormatJoules(m.values[thermo.KeyInternalEnergy]+du))))

	if sys, err := m.system(); err == nil {
		sb.WriteString("\n  " + dim.Render(sys.String()) + "\n")
	}

	if m.status != "" {
		sb.WriteString("\n  " + m.status + "\n")
	}

	sb.WriteString("\n" + dim.Render(fmt.Sprintf(
		"  ↑/↓ field  ←/→ adjust by %s  +/- step  enter edit  s save  q quit",
		thermo.FormatJoules(m.step))) + "\n")

	return sb.String()
}

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hostbridge/wasm-imports/descriptor"
	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/wasm"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sigStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// importRow is one import flattened for display.
type importRow struct {
	module string
	name   string
	sig    string // empty for non-function imports
	kind   entity.Kind
}

type interactiveModel struct {
	err      error
	filename string
	rows     []importRow
	visible  []int // indexes into rows matching the filter
	filter   textinput.Model
	selected int
	state    modelState
}

type modelState int

const (
	stateBrowse modelState = iota
	stateFilter
	stateDetail
)

func newInteractiveModel(filename string) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "filter by name"
	ti.Prompt = "/ "
	ti.Width = 40
	return &interactiveModel{
		filename: filename,
		filter:   ti,
		state:    stateBrowse,
	}
}

type loadedMsg struct {
	err  error
	rows []importRow
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadModule
}

func (m *interactiveModel) loadModule() tea.Msg {
	data, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	info, err := wasm.ScanImports(data)
	if err != nil {
		return loadedMsg{err: err}
	}

	descs, err := descriptor.FromModule(info)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer descs.Destroy()

	rows := make([]importRow, 0, descs.Len())
	sigIdx := 0
	for i := 0; i < descs.Len(); i++ {
		d := descs.At(i)
		row := importRow{
			module: d.ModuleName(),
			name:   d.Name(),
			kind:   d.Kind(),
		}
		if d.Kind() == entity.KindFunction {
			row.sig = signature(info.ImportedFunctions[sigIdx].Sig)
			sigIdx++
		}
		rows = append(rows, row)
	}

	return loadedMsg{rows: rows}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateFilter {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "/":
			if m.state == stateBrowse {
				m.state = stateFilter
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if len(m.visible) > 0 {
					m.state = stateDetail
				}
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
			case stateDetail:
				m.state = stateBrowse
			}

		case "esc":
			switch m.state {
			case stateFilter:
				m.state = stateBrowse
				m.filter.Blur()
				m.filter.SetValue("")
				m.applyFilter()
			case stateDetail:
				m.state = stateBrowse
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.rows = msg.rows
		m.applyFilter()
	}

	if m.state == stateFilter {
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()
		return m, cmd
	}

	return m, nil
}

// applyFilter rebuilds the visible index list, matching the filter text
// against both the namespace and the import name.
func (m *interactiveModel) applyFilter() {
	query := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, row := range m.rows {
		if query == "" ||
			strings.Contains(strings.ToLower(row.module), query) ||
			strings.Contains(strings.ToLower(row.name), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if m.rows == nil {
		return "Loading module..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Import Browser"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateBrowse, stateFilter:
		if m.state == stateFilter || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(helpStyle.Render("no imports match"))
			b.WriteString("\n")
		}
		for pos, idx := range m.visible {
			line := m.formatRow(m.rows[idx])
			if pos == m.selected && m.state == stateBrowse {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.state == stateFilter {
			b.WriteString(helpStyle.Render("enter apply • esc clear"))
		} else {
			b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • q quit"))
		}

	case stateDetail:
		row := m.rows[m.visible[m.selected]]
		b.WriteString(fmt.Sprintf("  %-10s %s\n", "kind", kindStyle.Render(row.kind.String())))
		b.WriteString(fmt.Sprintf("  %-10s %s\n", "namespace", row.module))
		b.WriteString(fmt.Sprintf("  %-10s %s\n", "name", nameStyle.Render(row.name)))
		if row.sig != "" {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", "signature", sigStyle.Render(row.sig)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter back • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatRow(row importRow) string {
	line := fmt.Sprintf("%s %s.%s", kindStyle.Render(fmt.Sprintf("%-8s", row.kind)), row.module, nameStyle.Render(row.name))
	if row.sig != "" {
		line += " " + sigStyle.Render(row.sig)
	}
	return line
}

func runInteractive(filename string) error {
	p := tea.NewProgram(newInteractiveModel(filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

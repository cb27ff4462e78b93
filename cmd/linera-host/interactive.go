package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/linera-bridge/host"
	"github.com/wippyai/linera-bridge/schema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFD700"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateBrowse modelState = iota
	stateDetail
)

type browserModel struct {
	err      error
	bindings host.Bindings
	types    []typeReport
	funcs    []funcReport
	detail   viewport.Model
	selected int
	state    modelState
	width    int
	height   int
}

type loadedMsg struct {
	err   error
	types []typeReport
	funcs []funcReport
}

func newBrowserModel(b host.Bindings) *browserModel {
	return &browserModel{
		bindings: b,
		state:    stateBrowse,
		detail:   viewport.New(80, 20),
	}
}

func (m *browserModel) Init() tea.Cmd {
	return m.load
}

func (m *browserModel) load() tea.Msg {
	ctx := context.Background()
	in, err := newInspector(ctx, m.bindings)
	if err != nil {
		return loadedMsg{err: err}
	}
	defer in.Close(ctx)

	var types []typeReport
	for _, td := range schema.Types() {
		types = append(types, in.describe(td))
	}
	funcs, err := in.functions()
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{types: types, funcs: funcs}
}

// items counts the types followed by the functions.
func (m *browserModel) items() int {
	return len(m.types) + len(m.funcs)
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateBrowse && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateBrowse && m.selected < m.items()-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateBrowse:
				if m.items() > 0 {
					m.detail.SetContent(m.renderDetail())
					m.detail.GotoTop()
					m.state = stateDetail
				}
			case stateDetail:
				m.state = stateBrowse
			}
			return m, nil

		case "esc":
			m.state = stateBrowse
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.detail.Width = msg.Width
		m.detail.Height = max(msg.Height-4, 1)

	case loadedMsg:
		m.err = msg.err
		m.types = msg.types
		m.funcs = msg.funcs
		return m, nil
	}

	if m.state == stateDetail {
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browserModel) renderDetail() string {
	var b strings.Builder
	if m.selected >= len(m.types) {
		f := m.funcs[m.selected-len(m.types)]
		b.WriteString(headingStyle.Render("WIT"))
		b.WriteString("\n" + f.Signature + "\n\n")
		b.WriteString(headingStyle.Render("Core signature"))
		b.WriteString("\n" + f.Core + "\n")
		return b.String()
	}

	rep := m.types[m.selected]
	b.WriteString(headingStyle.Render("WIT"))
	b.WriteString("\n" + rep.Declaration + "\n\n")
	b.WriteString(headingStyle.Render("Layout"))
	b.WriteString("\n" + rep.layoutString() + "\n\n")
	b.WriteString(headingStyle.Render("Flat"))
	b.WriteString("\n" + rep.flatString() + "\n\n")
	b.WriteString(headingStyle.Render("Sample"))
	b.WriteString("\n" + rep.Sample + "\n\n")
	if rep.Err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", rep.Err)))
		return b.String()
	}
	b.WriteString(headingStyle.Render("Lowered"))
	b.WriteString(fmt.Sprintf("\n%v\n\n", rep.Lowered))
	b.WriteString(headingStyle.Render("Stored"))
	b.WriteString("\n" + rep.storedString() + "\n")
	return b.String()
}

func (m *browserModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.items() == 0 {
		return "Loading interface..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Linera Host"))
	b.WriteString(" ")
	b.WriteString(m.bindings.Interface())
	b.WriteString(" (" + m.bindings.Namespace() + ")\n\n")

	switch m.state {
	case stateBrowse:
		b.WriteString("Types:\n")
		for i, rep := range m.types {
			m.writeItem(&b, i, nameStyle.Render(rep.Name)+" "+typeStyle.Render(rep.flatString()))
		}
		b.WriteString("\nFunctions:\n")
		for i, f := range m.funcs {
			m.writeItem(&b, len(m.types)+i, nameStyle.Render(f.Signature))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter inspect • q quit"))

	case stateDetail:
		b.WriteString(m.detail.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • enter/esc back • q quit"))
	}
	return b.String()
}

func (m *browserModel) writeItem(b *strings.Builder, idx int, label string) {
	if idx == m.selected {
		b.WriteString(selectedStyle.Render("> " + label))
	} else {
		b.WriteString("  " + label)
	}
	b.WriteString("\n")
}

func runInteractive(b host.Bindings) error {
	p := tea.NewProgram(newBrowserModel(b), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

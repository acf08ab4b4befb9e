package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xrplf/xrpl-wasm-go/emulator"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err         error
	machine     *emulator.Machine
	filename    string
	fixtureFile string
	entryInput  textinput.Model
	rc          int32
	section     int
	cursor      int
	state       modelState
}

type modelState int

const (
	stateEnterEntry modelState = iota
	stateRunning
	stateBrowse
)

var sectionNames = []string{"traces", "events", "emitted", "built", "data"}

func newInteractiveModel(filename, fixtureFile, entry string) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "entry: "
	ti.Placeholder = emulator.DefaultEntry
	ti.SetValue(entry)
	ti.Width = 40
	ti.Focus()

	return &interactiveModel{
		filename:    filename,
		fixtureFile: fixtureFile,
		entryInput:  ti,
		state:       stateEnterEntry,
	}
}

type runDoneMsg struct {
	err     error
	machine *emulator.Machine
	rc      int32
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) runContract() tea.Msg {
	entry := m.entryInput.Value()
	if entry == "" {
		entry = emulator.DefaultEntry
	}

	machine, rc, err := execute(m.filename, m.fixtureFile, entry)
	if err != nil {
		return runDoneMsg{err: err, machine: machine}
	}
	return runDoneMsg{machine: machine, rc: rc}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateEnterEntry || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateBrowse && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.state == stateBrowse && m.cursor < len(m.sectionLines())-1 {
				m.cursor++
			}

		case "tab":
			if m.state == stateBrowse {
				m.section = (m.section + 1) % len(sectionNames)
				m.cursor = 0
			}

		case "enter":
			if m.state == stateEnterEntry {
				m.state = stateRunning
				m.err = nil
				return m, m.runContract
			}

		case "esc":
			if m.state == stateBrowse {
				m.state = stateEnterEntry
				m.section = 0
				m.cursor = 0
				m.entryInput.Focus()
			}
		}

	case runDoneMsg:
		m.machine = msg.machine
		m.rc = msg.rc
		m.err = msg.err
		m.state = stateBrowse
		m.entryInput.Blur()
	}

	if m.state == stateEnterEntry {
		var cmd tea.Cmd
		m.entryInput, cmd = m.entryInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// sectionLines renders the current section of machine state as
// one display line per item.
func (m *interactiveModel) sectionLines() []string {
	if m.machine == nil {
		return nil
	}

	var lines []string
	switch sectionNames[m.section] {
	case "traces":
		lines = append(lines, m.machine.Traces...)
	case "events":
		for _, ev := range m.machine.Events {
			lines = append(lines, fmt.Sprintf("%s %s", ev.Name, hex.EncodeToString(ev.Data)))
		}
	case "emitted":
		for _, txn := range m.machine.Emitted {
			lines = append(lines, hex.EncodeToString(txn))
		}
	case "built":
		for i, txn := range m.machine.Built {
			status := "pending"
			if txn.Emitted {
				status = "emitted"
			}
			lines = append(lines, fmt.Sprintf("txn %d type %d (%s), %d fields", i, txn.Type, status, len(txn.Fields)))
		}
	case "data":
		if len(m.machine.UpdatedData) > 0 {
			lines = append(lines, hex.EncodeToString(m.machine.UpdatedData))
		}
	}
	return lines
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contract Runner"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	switch m.state {
	case stateEnterEntry:
		b.WriteString(sectionStyle.Render("Entry export to invoke:"))
		b.WriteString("\n\n")
		b.WriteString(m.entryInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter run • ctrl+c quit"))

	case stateRunning:
		b.WriteString("Running...")

	case stateBrowse:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString("Result: ")
			b.WriteString(resultStyle.Render(fmt.Sprintf("%d", m.rc)))
		}
		b.WriteString("\n\n")

		var tabs []string
		for i, name := range sectionNames {
			label := fmt.Sprintf(" %s (%d) ", name, m.sectionCount(i))
			if i == m.section {
				tabs = append(tabs, selectedStyle.Render(label))
			} else {
				tabs = append(tabs, dimStyle.Render(label))
			}
		}
		b.WriteString(strings.Join(tabs, " "))
		b.WriteString("\n\n")

		lines := m.sectionLines()
		if len(lines) == 0 {
			b.WriteString(helpStyle.Render("(empty)"))
			b.WriteString("\n")
		}
		for i, line := range lines {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + line))
			} else {
				b.WriteString(cursor + line)
			}
			b.WriteString("\n")
		}

		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab section • ↑/↓ move • esc run again • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) sectionCount(section int) int {
	if m.machine == nil {
		return 0
	}
	switch sectionNames[section] {
	case "traces":
		return len(m.machine.Traces)
	case "events":
		return len(m.machine.Events)
	case "emitted":
		return len(m.machine.Emitted)
	case "built":
		return len(m.machine.Built)
	case "data":
		if len(m.machine.UpdatedData) > 0 {
			return 1
		}
	}
	return 0
}

func runInteractive(filename, fixtureFile, entry string) error {
	p := tea.NewProgram(newInteractiveModel(filename, fixtureFile, entry), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

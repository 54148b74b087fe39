package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	modeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// interactiveModel converts the input line on every keystroke.
type interactiveModel struct {
	err    error
	logger *zap.Logger
	result string
	input  textinput.Model
	opts   options
}

func newInteractiveModel(opts options, logger *zap.Logger) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "number or koremutake string"
	ti.Prompt = "> "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{
		input:  ti,
		logger: logger,
		opts:   opts,
	}
}

func runInteractive(opts options, logger *zap.Logger) error {
	_, err := tea.NewProgram(newInteractiveModel(opts, logger)).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.opts.mode = m.opts.mode.next()
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

func (m *interactiveModel) refresh() {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.result, m.err = "", nil
		return
	}
	m.result, m.err = convert(m.opts, value)
	if m.err != nil {
		m.logger.Debug("conversion failed", zap.String("input", value), zap.Error(m.err))
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("koremutake"))
	b.WriteString(" mode: ")
	b.WriteString(modeStyle.Render(string(m.opts.mode)))
	if m.opts.pad > 0 {
		b.WriteString(fmt.Sprintf(" pad: %d", m.opts.pad))
	}
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != "":
		b.WriteString(resultStyle.Render(m.result))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab switch mode • esc quit"))
	return b.String()
}

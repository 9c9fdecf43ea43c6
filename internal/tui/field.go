package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldModel is a single-line input run as its own bubbletea program for
// every prompt shown on a terminal.
type fieldModel struct {
	label       string
	input       textinput.Model
	submitted   bool
	interrupted bool
	eof         bool
}

func newFieldModel(label string, echo textinput.EchoMode) fieldModel {
	in := textinput.New()
	in.Prompt = ""
	in.EchoMode = echo
	in.EchoCharacter = '*'
	in.Focus()

	return fieldModel{label: label, input: in}
}

func (m fieldModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m fieldModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View keeps the typed text on screen after Enter, except for hidden input.
func (m fieldModel) View() string {
	switch {
	case m.interrupted, m.eof:
		return m.label
	case m.submitted && m.input.EchoMode != textinput.EchoNormal:
		return m.label
	case m.submitted:
		return m.label + m.input.Value()
	}
	return m.label + m.input.View()
}

func (m fieldModel) Value() string {
	return m.input.Value()
}

// readLine shows label and reads one answer through a textinput program.
// Ctrl+C reports ErrInterrupted; Ctrl+D on an empty field reports io.EOF.
func readLine(ctx context.Context, in io.Reader, out io.Writer, label string, echo textinput.EchoMode) (string, error) {
	program := tea.NewProgram(newFieldModel(label, echo),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return "", ctxErr
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(out)

	model, ok := final.(fieldModel)
	if !ok {
		return "", fmt.Errorf("read input: unexpected model %T", final)
	}
	if model.interrupted {
		return "", ErrInterrupted
	}
	if model.eof {
		return "", io.EOF
	}
	return model.Value(), nil
}

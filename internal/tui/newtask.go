package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/todo"
)

// decomposeResultMsg carries the outcome of the background decomposition.
type decomposeResultMsg struct {
	task *todo.Task
	err  error
}

// NewTaskModel shows a spinner while a goal is being decomposed. The
// actual work runs in a tea command so the UI stays responsive; the
// caller supplies it as a closure over the client and store.
type NewTaskModel struct {
	spinner spinner.Model
	goal    string
	run     func() (*todo.Task, error)
	theme   Theme

	task *todo.Task
	err  error
	done bool
}

// NewTaskSpinner builds the spinner model for goal decomposition.
func NewTaskSpinner(goal string, theme Theme, run func() (*todo.Task, error)) NewTaskModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Selected

	return NewTaskModel{
		spinner: sp,
		goal:    goal,
		run:     run,
		theme:   theme,
	}
}

// Init implements tea.Model
func (m NewTaskModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			task, err := m.run()
			return decomposeResultMsg{task: task, err: err}
		},
	)
}

// Update implements tea.Model
func (m NewTaskModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case decomposeResultMsg:
		m.task = msg.task
		m.err = msg.err
		m.done = true
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model
func (m NewTaskModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " 正在拆解目标：" + m.goal + " ..."
}

// Result returns the decomposition outcome once the program has quit.
func (m NewTaskModel) Result() (*todo.Task, error) {
	return m.task, m.err
}

// RunNewTask runs the spinner program and returns the created task. When
// the user aborts before the decomposition finishes, it returns ErrCanceled.
func RunNewTask(goal string, theme Theme, run func() (*todo.Task, error)) (*todo.Task, error) {
	p := tea.NewProgram(NewTaskSpinner(goal, theme, run))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(NewTaskModel)
	if !ok {
		return nil, errors.ErrCanceled
	}
	return finalResult(m)
}

// finalResult maps a finished model to the command-level outcome. A model
// that quit with neither a task nor an error was aborted by the user.
func finalResult(m NewTaskModel) (*todo.Task, error) {
	task, err := m.Result()
	if task == nil && err == nil {
		return nil, errors.ErrCanceled
	}
	return task, err
}

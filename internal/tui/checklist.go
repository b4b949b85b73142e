package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stepmate/stepmate/internal/store"
	"github.com/stepmate/stepmate/internal/todo"
	"github.com/stepmate/stepmate/internal/util"
)

// ChecklistModel is the interactive step-by-step execution view for a
// single task. Toggling a step persists immediately through the store;
// the model re-reads the task after every mutation so the derived
// counters on screen always match what is on disk.
type ChecklistModel struct {
	store    *store.Store
	task     todo.Task
	settings todo.Settings
	theme    Theme
	progress progress.Model

	cursor      int
	message     string // encouragement for the step just completed
	celebrating bool
	err         error
	width       int
	quitting    bool
}

// NewChecklist builds the checklist model for a task.
func NewChecklist(st *store.Store, task todo.Task, settings todo.Settings) ChecklistModel {
	theme := NewTheme(settings.Theme.PrimaryColor)
	bar := progress.New(progress.WithSolidFill(string(theme.Accent)))
	bar.Width = 40

	return ChecklistModel{
		store:    st,
		task:     task,
		settings: settings,
		theme:    theme,
		progress: bar,
		width:    80,
	}
}

// Init implements tea.Model
func (m ChecklistModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m ChecklistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-8, 50)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "j":
			if m.cursor < len(m.task.Steps)-1 {
				m.cursor++
			}
			return m, nil

		case " ", "enter":
			return m.toggleCurrent(), nil
		}
	}

	return m, nil
}

// toggleCurrent flips the selected step's completion flag and reloads
// the task so every derived field reflects the stored state.
func (m ChecklistModel) toggleCurrent() ChecklistModel {
	if len(m.task.Steps) == 0 {
		return m
	}

	step := m.task.Steps[m.cursor]
	target := !step.Completed

	if err := m.store.UpdateTaskStep(m.task.ID, step.ID, target); err != nil {
		m.err = err
		return m
	}
	m.err = nil

	updated, err := m.store.GetTask(m.task.ID)
	if err != nil {
		m.err = err
		return m
	}
	m.task = *updated

	if target {
		m.message = step.Encouragement
	} else {
		m.message = ""
	}

	if m.task.Status == todo.StatusCompleted && m.settings.Notifications.Celebration {
		m.celebrating = true
	} else {
		m.celebrating = false
	}

	return m
}

// View implements tea.Model
func (m ChecklistModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.Title.Render(m.task.Title))
	b.WriteString("\n")

	b.WriteString(m.renderProgress())
	b.WriteString("\n\n")

	for i, step := range m.task.Steps {
		b.WriteString(m.renderStepLine(i, step))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrorMsg.Render("保存失败：" + m.err.Error()))
	}

	if m.celebrating {
		b.WriteString("\n")
		b.WriteString(m.theme.Celebration.Render("🎉 恭喜你完成了这个任务！"))
	} else if m.message != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.Encouragement.Render(m.message))
	}

	b.WriteString("\n")
	b.WriteString(m.theme.HelpBar.Render("[↑↓] 选择  [space] 完成/取消  [q] 退出"))

	return b.String()
}

// renderProgress shows the completion bar with a step counter.
func (m ChecklistModel) renderProgress() string {
	percent := 0.0
	if m.task.TotalSteps > 0 {
		percent = float64(m.task.CompletedSteps) / float64(m.task.TotalSteps)
	}

	counter := Muted.Render(fmt.Sprintf(" %d/%d", m.task.CompletedSteps, m.task.TotalSteps))
	return m.progress.ViewAs(percent) + counter
}

// renderStepLine renders one step row with its completion marker and
// duration badge, truncated to the terminal width.
func (m ChecklistModel) renderStepLine(i int, step todo.Step) string {
	cursor := "  "
	if i == m.cursor {
		cursor = m.theme.Selected.Render("▶ ")
	}

	var marker, title string
	if step.Completed {
		marker = m.theme.StepDone.Render("✓")
		title = m.theme.StepDone.Render(step.Title)
	} else {
		marker = Muted.Render("○")
		title = m.theme.StepPending.Render(step.Title)
	}

	badge := m.theme.Badge.Render(fmt.Sprintf(" %d分钟 %s", step.Duration, difficultyIcon(step.Difficulty)))

	line := cursor + marker + " " + title + badge
	return util.TruncateANSI(line, m.width-2)
}

// RunChecklist loads a task and runs the checklist program until the
// user quits.
func RunChecklist(st *store.Store, taskID string, altScreen bool) error {
	task, err := st.GetTask(taskID)
	if err != nil {
		return err
	}
	settings, err := st.GetSettings()
	if err != nil {
		return err
	}

	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewChecklist(st, *task, settings), opts...)
	_, err = p.Run()
	return err
}

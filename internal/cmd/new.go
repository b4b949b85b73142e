package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/todo"
	"github.com/stepmate/stepmate/internal/tui"
)

var newCmd = &cobra.Command{
	Use:   "new <goal>",
	Short: "Decompose a goal into steps and save it as a task",
	Long: `Send a free-text goal to the decomposition model and save the
resulting 6-10 step checklist as a new task. When the API is not
configured or unreachable, a generic step plan built around the goal
is saved instead, so a task is always created.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNew,
}

var newPlain bool // skip the spinner UI

func init() {
	newCmd.Flags().BoolVar(&newPlain, "plain", false, "Create the task without the spinner UI")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	goal := strings.TrimSpace(strings.Join(args, " "))

	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	settings, err := st.GetSettings()
	if err != nil {
		return err
	}
	client := buildClient(settings, logger)

	run := func() (*todo.Task, error) {
		return createTask(context.Background(), client, st, goal)
	}

	var task *todo.Task
	if newPlain {
		task, err = run()
	} else {
		task, err = tui.RunNewTask(goal, tui.NewTheme(settings.Theme.PrimaryColor), run)
	}
	if errors.Is(err, errors.ErrCanceled) {
		fmt.Println("已取消")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("已创建任务 [%s] %s\n", shortID(task.ID), task.Title)
	fmt.Printf("共 %d 步，预计 %d 分钟\n", task.TotalSteps, task.TotalDuration)
	fmt.Println()
	for _, step := range task.Steps {
		fmt.Printf("  %d. %s (%d分钟)\n", step.Order, step.Title, step.Duration)
	}
	fmt.Println()
	fmt.Printf("开始执行：stepmate run %s\n", shortID(task.ID))
	return nil
}

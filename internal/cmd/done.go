package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/todo"
)

var doneCmd = &cobra.Command{
	Use:   "done <task> <step>",
	Short: "Mark a step as completed",
	Long: `Mark a step completed without opening the checklist UI. The step
may be given as its 1-based position or its ID. Completing the last
open step completes the task and records a completion log entry.`,
	Args: cobra.ExactArgs(2),
	RunE: runDone,
}

var doneUndo bool // flip the step back to open

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Mark the step as not completed")
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	task, err := findTask(st, args[0])
	if err != nil {
		return err
	}
	stepID, err := resolveStep(task, args[1])
	if err != nil {
		return err
	}

	if err := st.UpdateTaskStep(task.ID, stepID, !doneUndo); err != nil {
		return err
	}

	updated, err := st.GetTask(task.ID)
	if err != nil {
		return err
	}

	if doneUndo {
		fmt.Printf("已恢复步骤，进度 %d/%d\n", updated.CompletedSteps, updated.TotalSteps)
		return nil
	}

	if step := updated.Step(stepID); step != nil && step.Encouragement != "" {
		fmt.Println(step.Encouragement)
	}
	fmt.Printf("进度 %d/%d\n", updated.CompletedSteps, updated.TotalSteps)

	if updated.Status == todo.StatusCompleted {
		settings, err := st.GetSettings()
		if err == nil && settings.Notifications.Celebration {
			fmt.Println("🎉 恭喜你完成了这个任务！")
		}
	}
	return nil
}

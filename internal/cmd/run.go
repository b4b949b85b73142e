package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/config"
	"github.com/stepmate/stepmate/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Work through a task's steps interactively",
	Long: `Open the interactive checklist for a task. Toggling a step saves
immediately; completing the last step marks the task done and records
a completion log entry.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	task, err := findTask(st, args[0])
	if err != nil {
		return err
	}

	return tui.RunChecklist(st, task.ID, config.Get().TUI.AltScreen)
}

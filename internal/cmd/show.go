package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <task>",
	Short: "Show a task with all its steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	task, err := findTask(st, args[0])
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("%s  [%s]\n", task.Title, statusLabel(task.Status))
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("进度: %d/%d 步  预计 %d 分钟  难度 %s\n",
		task.CompletedSteps, task.TotalSteps, task.TotalDuration, task.Difficulty)
	if task.Category != "" {
		fmt.Printf("分类: %s\n", task.Category)
	}
	fmt.Printf("创建: %s\n", task.CreatedAt.Format("2006-01-02 15:04"))
	if task.CompletedAt != nil {
		fmt.Printf("完成: %s\n", task.CompletedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println()

	for _, step := range task.Steps {
		marker := "○"
		if step.Completed {
			marker = "✓"
		}
		fmt.Printf("  %s %d. %s (%d分钟, %s)\n", marker, step.Order, step.Title, step.Duration, step.Difficulty)
		if step.Content != step.Title {
			fmt.Printf("       %s\n", step.Content)
		}
	}
	fmt.Println()
	return nil
}

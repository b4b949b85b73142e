package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/config"
	"github.com/stepmate/stepmate/internal/todo"
	"github.com/stepmate/stepmate/internal/util"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

var (
	listStatus string // filter by status
	listAll    bool   // ignore the page size
)

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status (pending, in_progress, completed)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "Show every task regardless of page size")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	tasks, err := st.GetTasks()
	if err != nil {
		return err
	}

	if listStatus != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if string(t.Status) == listStatus {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("还没有任务，用 stepmate new <目标> 创建一个")
		return nil
	}

	limit := len(tasks)
	if !listAll {
		limit = min(config.Get().TUI.PageSize, len(tasks))
	}

	fmt.Println()
	for _, t := range tasks[:limit] {
		fmt.Println(formatTaskLine(t))
	}
	if limit < len(tasks) {
		fmt.Printf("\n... 还有 %d 个任务（--all 查看全部）\n", len(tasks)-limit)
	}
	fmt.Println()
	return nil
}

// formatTaskLine renders one task row for the list view.
func formatTaskLine(t todo.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %-4s %s", shortID(t.ID), statusLabel(t.Status), util.TruncateString(t.Title, 30))
	fmt.Fprintf(&b, "  %d/%d 步", t.CompletedSteps, t.TotalSteps)
	if t.Category != "" {
		fmt.Fprintf(&b, "  #%s", t.Category)
	}
	return b.String()
}

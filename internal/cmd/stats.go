package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/stepmate/stepmate/internal/todo"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics",
	Long: `Display task completion statistics.

Shows:
- Overall task and step counts with the completion rate
- Today's and this week's completed tasks and time spent
- Recent completion log entries`,
	RunE: runStats,
}

var (
	statsJSON    bool // output as JSON
	statsRebuild bool // recompute the aggregates from the logs first
)

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output statistics as JSON")
	statsCmd.Flags().BoolVar(&statsRebuild, "rebuild", false, "Recompute aggregates from the completion logs first")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	st, logger, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	if statsRebuild {
		if err := st.RebuildStatistics(); err != nil {
			return err
		}
	}

	taskStats, err := st.GetTaskStatistics()
	if err != nil {
		return err
	}
	stats, err := st.GetStatistics()
	if err != nil {
		return err
	}
	logs, err := st.GetCompletionLogs()
	if err != nil {
		return err
	}

	if statsJSON {
		return printStatsJSON(taskStats, stats)
	}
	printStatsText(taskStats, stats, logs)
	return nil
}

func printStatsText(taskStats todo.TaskStatistics, stats todo.Statistics, logs []todo.CompletionLog) {
	now := time.Now()

	fmt.Println()
	fmt.Println("任务总览")
	fmt.Println(strings.Repeat("─", 50))
	fmt.Printf("任务: %d 个（已完成 %d，进行中 %d，待开始 %d）\n",
		taskStats.TotalTasks, taskStats.CompletedTasks, taskStats.InProgressTasks, taskStats.PendingTasks)
	fmt.Printf("步骤: %d / %d\n", taskStats.CompletedSteps, taskStats.TotalSteps)
	fmt.Printf("完成率: %.1f%%\n", taskStats.CompletionRate)
	fmt.Println()

	fmt.Println("近期完成")
	fmt.Println(strings.Repeat("─", 50))
	day := stats.DailyStats[todo.DateKey(now)]
	week := stats.WeeklyStats[todo.WeekKey(now)]
	fmt.Printf("今天:   %d 个任务，%d 分钟\n", day.TasksCompleted, day.TotalTimeSpent)
	fmt.Printf("本周:   %d 个任务，%d 分钟\n", week.TasksCompleted, week.TotalTimeSpent)
	fmt.Println()

	if len(logs) > 0 {
		fmt.Println("最近记录")
		fmt.Println(strings.Repeat("─", 50))
		shown := 0
		for i := len(logs) - 1; i >= 0 && shown < 5; i-- {
			log := logs[i]
			fmt.Printf("%s  %s（%d 分钟）\n",
				log.CompletedAt.Format("01-02 15:04"), log.TaskTitle, log.Duration)
			shown++
		}
		fmt.Println()
	}
}

func printStatsJSON(taskStats todo.TaskStatistics, stats todo.Statistics) error {
	out := struct {
		Tasks      todo.TaskStatistics `json:"tasks"`
		Statistics todo.Statistics     `json:"statistics"`
	}{taskStats, stats}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

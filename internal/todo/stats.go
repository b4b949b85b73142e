package todo

import (
	"fmt"
	"time"
)

// DailyStat is one calendar day's aggregate completion bucket.
type DailyStat struct {
	Date            string  `json:"date"` // YYYY-MM-DD
	TasksCompleted  int     `json:"tasksCompleted"`
	StepsCompleted  int     `json:"stepsCompleted"`
	TotalTimeSpent  int     `json:"totalTimeSpent"` // minutes
	AverageDuration float64 `json:"averageDuration"`
}

// PeriodStat is a weekly or monthly rollup bucket.
type PeriodStat struct {
	Period         string `json:"period"` // YYYY-Www or YYYY-MM
	TasksCompleted int    `json:"tasksCompleted"`
	StepsCompleted int    `json:"stepsCompleted"`
	TotalTimeSpent int    `json:"totalTimeSpent"` // minutes
}

// Statistics maps calendar buckets to aggregate records. Buckets are
// updated incrementally on each completion-log insert and recomputed from
// scratch only by an explicit rebuild.
type Statistics struct {
	DailyStats   map[string]DailyStat  `json:"dailyStats"`
	WeeklyStats  map[string]PeriodStat `json:"weeklyStats"`
	MonthlyStats map[string]PeriodStat `json:"monthlyStats"`
}

// NewStatistics returns an empty Statistics with allocated maps.
func NewStatistics() Statistics {
	return Statistics{
		DailyStats:   make(map[string]DailyStat),
		WeeklyStats:  make(map[string]PeriodStat),
		MonthlyStats: make(map[string]PeriodStat),
	}
}

// Record folds one completion log into the daily bucket for the log's
// calendar date and the matching weekly and monthly rollups. Absent buckets
// are created zeroed.
func (s *Statistics) Record(log CompletionLog) {
	if s.DailyStats == nil {
		s.DailyStats = make(map[string]DailyStat)
	}
	if s.WeeklyStats == nil {
		s.WeeklyStats = make(map[string]PeriodStat)
	}
	if s.MonthlyStats == nil {
		s.MonthlyStats = make(map[string]PeriodStat)
	}

	dateKey := DateKey(log.CompletedAt)
	day := s.DailyStats[dateKey]
	day.Date = dateKey
	day.TasksCompleted++
	day.StepsCompleted++
	day.TotalTimeSpent += log.Duration
	day.AverageDuration = float64(day.TotalTimeSpent) / float64(day.TasksCompleted)
	s.DailyStats[dateKey] = day

	weekKey := WeekKey(log.CompletedAt)
	week := s.WeeklyStats[weekKey]
	week.Period = weekKey
	week.TasksCompleted++
	week.StepsCompleted++
	week.TotalTimeSpent += log.Duration
	s.WeeklyStats[weekKey] = week

	monthKey := MonthKey(log.CompletedAt)
	month := s.MonthlyStats[monthKey]
	month.Period = monthKey
	month.TasksCompleted++
	month.StepsCompleted++
	month.TotalTimeSpent += log.Duration
	s.MonthlyStats[monthKey] = month
}

// TaskStatistics is the derived summary over the current task collection.
type TaskStatistics struct {
	TotalTasks          int     `json:"totalTasks"`
	CompletedTasks      int     `json:"completedTasks"`
	InProgressTasks     int     `json:"inProgressTasks"`
	PendingTasks        int     `json:"pendingTasks"`
	TotalSteps          int     `json:"totalSteps"`
	CompletedSteps      int     `json:"completedSteps"`
	CompletionRate      float64 `json:"completionRate"` // percent
	AverageStepsPerTask float64 `json:"averageStepsPerTask"`
}

// Summarize derives TaskStatistics from a task collection.
// CompletionRate is completedTasks/totalTasks*100, 0 for an empty collection.
func Summarize(tasks []Task) TaskStatistics {
	stats := TaskStatistics{}
	for i := range tasks {
		stats.TotalTasks++
		stats.TotalSteps += tasks[i].TotalSteps
		stats.CompletedSteps += tasks[i].CompletedSteps
		switch tasks[i].Status {
		case StatusCompleted:
			stats.CompletedTasks++
		case StatusInProgress:
			stats.InProgressTasks++
		default:
			stats.PendingTasks++
		}
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.CompletedTasks) / float64(stats.TotalTasks) * 100
		stats.AverageStepsPerTask = float64(stats.TotalSteps) / float64(stats.TotalTasks)
	}
	return stats
}

// DateKey formats t's calendar date as YYYY-MM-DD in local time.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekKey formats t's ISO week as YYYY-Www.
func WeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// MonthKey formats t's calendar month as YYYY-MM.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

package todo

import (
	"testing"
	"time"
)

func TestStatistics_Record_SameDayAccumulates(t *testing.T) {
	stats := NewStatistics()
	at := time.Date(2026, 8, 29, 10, 0, 0, 0, time.Local)

	stats.Record(CompletionLog{ID: "l1", CompletedAt: at, Duration: 30})
	stats.Record(CompletionLog{ID: "l2", CompletedAt: at.Add(2 * time.Hour), Duration: 50})

	day, ok := stats.DailyStats["2026-08-29"]
	if !ok {
		t.Fatal("expected bucket for 2026-08-29")
	}
	if day.TasksCompleted != 2 {
		t.Errorf("TasksCompleted = %d, want 2", day.TasksCompleted)
	}
	if day.StepsCompleted != 2 {
		t.Errorf("StepsCompleted = %d, want 2", day.StepsCompleted)
	}
	if day.TotalTimeSpent != 80 {
		t.Errorf("TotalTimeSpent = %d, want 80", day.TotalTimeSpent)
	}
	if day.AverageDuration != 40 {
		t.Errorf("AverageDuration = %v, want 40", day.AverageDuration)
	}
}

func TestStatistics_Record_CreatesZeroedBucket(t *testing.T) {
	stats := NewStatistics()
	at := time.Date(2026, 1, 2, 8, 0, 0, 0, time.Local)

	stats.Record(CompletionLog{ID: "l1", CompletedAt: at, Duration: 25})

	day := stats.DailyStats["2026-01-02"]
	if day.TasksCompleted != 1 || day.TotalTimeSpent != 25 {
		t.Errorf("bucket = %+v, want one task and 25 minutes", day)
	}
	if day.Date != "2026-01-02" {
		t.Errorf("Date = %q, want 2026-01-02", day.Date)
	}
}

func TestStatistics_Record_NilMaps(t *testing.T) {
	var stats Statistics // zero value, as after decoding an empty document
	stats.Record(CompletionLog{CompletedAt: time.Now(), Duration: 10})

	if len(stats.DailyStats) != 1 {
		t.Errorf("len(DailyStats) = %d, want 1", len(stats.DailyStats))
	}
}

func TestStatistics_Record_Rollups(t *testing.T) {
	stats := NewStatistics()
	// Monday and Tuesday of the same ISO week and month.
	mon := time.Date(2026, 8, 24, 9, 0, 0, 0, time.Local)
	tue := mon.AddDate(0, 0, 1)

	stats.Record(CompletionLog{CompletedAt: mon, Duration: 20})
	stats.Record(CompletionLog{CompletedAt: tue, Duration: 40})

	if len(stats.DailyStats) != 2 {
		t.Errorf("len(DailyStats) = %d, want 2", len(stats.DailyStats))
	}

	week := stats.WeeklyStats[WeekKey(mon)]
	if week.TasksCompleted != 2 || week.TotalTimeSpent != 60 {
		t.Errorf("weekly rollup = %+v, want 2 tasks and 60 minutes", week)
	}

	month := stats.MonthlyStats["2026-08"]
	if month.TasksCompleted != 2 || month.TotalTimeSpent != 60 {
		t.Errorf("monthly rollup = %+v, want 2 tasks and 60 minutes", month)
	}
}

func TestPeriodKeys(t *testing.T) {
	// 2026-01-01 falls in ISO week 1 of 2026.
	newYear := time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local)
	if got := WeekKey(newYear); got != "2026-W01" {
		t.Errorf("WeekKey = %q, want 2026-W01", got)
	}
	// 2027-01-01 is a Friday in ISO week 53 of 2026.
	spill := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
	if got := WeekKey(spill); got != "2026-W53" {
		t.Errorf("WeekKey = %q, want 2026-W53", got)
	}
	if got := DateKey(newYear); got != "2026-01-01" {
		t.Errorf("DateKey = %q, want 2026-01-01", got)
	}
	if got := MonthKey(newYear); got != "2026-01" {
		t.Errorf("MonthKey = %q, want 2026-01", got)
	}
}

func TestSummarize(t *testing.T) {
	completed := NewTask("a", "", makeSteps(4))
	for i := range completed.Steps {
		completed.Steps[i].Completed = true
	}
	completed.Recount()

	inProgress := NewTask("b", "", makeSteps(6))
	inProgress.Steps[0].Completed = true
	inProgress.Recount()

	pending := NewTask("c", "", makeSteps(2))

	stats := Summarize([]Task{*completed, *inProgress, *pending})

	if stats.TotalTasks != 3 {
		t.Errorf("TotalTasks = %d, want 3", stats.TotalTasks)
	}
	if stats.CompletedTasks != 1 || stats.InProgressTasks != 1 || stats.PendingTasks != 1 {
		t.Errorf("status split = %d/%d/%d, want 1/1/1",
			stats.CompletedTasks, stats.InProgressTasks, stats.PendingTasks)
	}
	if stats.TotalSteps != 12 {
		t.Errorf("TotalSteps = %d, want 12", stats.TotalSteps)
	}
	if stats.CompletedSteps != 5 {
		t.Errorf("CompletedSteps = %d, want 5", stats.CompletedSteps)
	}
	wantRate := 1.0 / 3.0 * 100
	if diff := stats.CompletionRate - wantRate; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("CompletionRate = %v, want %v", stats.CompletionRate, wantRate)
	}
	if stats.AverageStepsPerTask != 4 {
		t.Errorf("AverageStepsPerTask = %v, want 4", stats.AverageStepsPerTask)
	}
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil)
	if stats.CompletionRate != 0 {
		t.Errorf("CompletionRate = %v, want 0 for empty collection", stats.CompletionRate)
	}
	if stats.AverageStepsPerTask != 0 {
		t.Errorf("AverageStepsPerTask = %v, want 0", stats.AverageStepsPerTask)
	}
}

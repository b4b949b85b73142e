// Package todo defines the domain entities shared by the decomposition
// client and the storage layer: tasks, steps, completion logs, user
// settings, and aggregate statistics.
package todo

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Status represents a task's lifecycle state.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Difficulty is the estimated difficulty of a step or task.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// TaskCompleteStepID is the sentinel step reference used on completion logs
// that record a task-level completion rather than a single step.
const TaskCompleteStepID = "task-complete"

// Step is one actionable unit of a decomposed goal.
type Step struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Description   string     `json:"description"`
	Encouragement string     `json:"encouragement"`
	Completed     bool       `json:"completed"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
	Order         int        `json:"order"`             // 1-based, stable
	Duration      int        `json:"estimatedDuration"` // minutes
	Difficulty    Difficulty `json:"difficulty"`
}

// Task is a user goal together with its decomposed steps.
type Task struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"` // verbatim user goal
	Description    string     `json:"description"`
	Steps          []Step     `json:"steps"`
	Status         Status     `json:"status"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	TotalSteps     int        `json:"totalSteps"`
	CompletedSteps int        `json:"completedSteps"`
	TotalDuration  int        `json:"estimatedTotalDuration"` // minutes
	Difficulty     Difficulty `json:"difficulty"`
	Category       string     `json:"category,omitempty"`
}

// CompletionLog is an immutable record of a completion event. One entry is
// appended per task-level completion; StepID then carries TaskCompleteStepID.
type CompletionLog struct {
	ID            string    `json:"id"`
	TaskID        string    `json:"taskId"`
	TaskTitle     string    `json:"taskTitle"`
	StepID        string    `json:"stepId"`
	CompletedAt   time.Time `json:"completedAt"`
	Duration      int       `json:"duration"` // minutes
	Encouragement string    `json:"encouragement"`
}

// NewTask builds a Task from a goal and its decomposed steps. Derived
// fields (counters, total duration, difficulty, category) are filled in
// and the task starts out pending.
func NewTask(goal, description string, steps []Step) *Task {
	now := time.Now()
	t := &Task{
		ID:          GenerateID(),
		Title:       goal,
		Description: description,
		Steps:       steps,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Category:    DeriveCategory(goal),
	}
	t.Recount()
	return t
}

// Step returns a pointer to the step with the given ID, or nil.
func (t *Task) Step(stepID string) *Step {
	for i := range t.Steps {
		if t.Steps[i].ID == stepID {
			return &t.Steps[i]
		}
	}
	return nil
}

// Recount re-derives every field computed from the step list: TotalSteps,
// CompletedSteps, TotalDuration, Status, and overall Difficulty. It is the
// single place the task invariants are enforced:
//
//	CompletedSteps == count(steps where completed)
//	Status == completed iff CompletedSteps == TotalSteps (and TotalSteps > 0)
//	TotalSteps == len(Steps)
func (t *Task) Recount() {
	t.TotalSteps = len(t.Steps)
	t.CompletedSteps = 0
	t.TotalDuration = 0
	for i := range t.Steps {
		if t.Steps[i].Completed {
			t.CompletedSteps++
		}
		t.TotalDuration += t.Steps[i].Duration
	}

	switch {
	case t.TotalSteps > 0 && t.CompletedSteps == t.TotalSteps:
		t.Status = StatusCompleted
	case t.CompletedSteps > 0:
		t.Status = StatusInProgress
	default:
		t.Status = StatusPending
	}

	t.Difficulty = overallDifficulty(t.Steps)
}

// overallDifficulty picks the most frequent step difficulty, resolving ties
// toward the harder tier.
func overallDifficulty(steps []Step) Difficulty {
	if len(steps) == 0 {
		return DifficultyMedium
	}
	counts := map[Difficulty]int{}
	for i := range steps {
		counts[steps[i].Difficulty]++
	}
	best := DifficultyEasy
	for _, d := range []Difficulty{DifficultyMedium, DifficultyHard} {
		if counts[d] >= counts[best] {
			best = d
		}
	}
	return best
}

// categoryKeywords maps a derived category to the substrings that imply it.
// First matching category in declaration order wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"学习", []string{"学习", "学会", "掌握", "复习", "考试", "learn", "study"}},
	{"工作", []string{"工作", "项目", "汇报", "面试", "简历", "work", "project"}},
	{"健康", []string{"健身", "运动", "锻炼", "减肥", "跑步", "fitness", "exercise"}},
	{"生活", []string{"生活", "整理", "搬家", "旅行", "购物", "travel"}},
}

// DeriveCategory guesses a category from the goal text. Returns "" when no
// keyword matches; the field is omitted from JSON in that case.
func DeriveCategory(goal string) string {
	lower := strings.ToLower(goal)
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.category
			}
		}
	}
	return ""
}

// GenerateID creates a short random hex ID.
// Falls back to a timestamp-based ID if crypto/rand fails.
func GenerateID() string {
	bytes := make([]byte, 4)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("%08x", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return hex.EncodeToString(bytes)
}

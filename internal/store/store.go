package store

import (
	"encoding/json"
	"math"
	"time"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/logging"
	"github.com/stepmate/stepmate/internal/todo"
)

// Store owns the on-disk representation of every entity. All operations
// are synchronous whole-collection read-modify-writes with last-writer-wins
// semantics; there is no locking and no transaction spanning keys.
type Store struct {
	medium Medium
	logger *logging.Logger
}

// New creates a Store over the given medium.
func New(medium Medium, logger *logging.Logger) *Store {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Store{
		medium: medium,
		logger: logger.WithComponent("store"),
	}
}

// Per-key document envelopes. Every write stamps LastUpdated; dates
// round-trip through RFC 3339 strings.
type tasksDocument struct {
	Tasks       []todo.Task `json:"tasks"`
	LastUpdated time.Time   `json:"lastUpdated"`
}

type settingsDocument struct {
	Settings    todo.Settings `json:"settings"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

type statisticsDocument struct {
	todo.Statistics
	LastUpdated time.Time `json:"lastUpdated"`
}

type logsDocument struct {
	Logs        []todo.CompletionLog `json:"logs"`
	LastUpdated time.Time            `json:"lastUpdated"`
}

// writeDocument marshals and persists a document, surfacing a rejected
// write as StorageError.
func (s *Store) writeDocument(key string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.NewStorageError("marshal document", err).WithKey(key)
	}
	if err := s.medium.Write(key, data); err != nil {
		return errors.NewStorageError("write rejected", err).WithKey(key)
	}
	return nil
}

// readDocument loads a document into out. A medium failure surfaces as
// StorageError; an absent or corrupt document leaves out untouched and
// reports ok=false, the corrupt case with a diagnostic log. Callers then
// proceed with their empty/default value.
func (s *Store) readDocument(key string, out any) (bool, error) {
	data, present, err := s.medium.Read(key)
	if err != nil {
		return false, errors.NewStorageError("read failed", err).WithKey(key)
	}
	if !present {
		return false, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("discarding corrupt document", "key", key, "error", err.Error())
		return false, nil
	}
	return true, nil
}

// -----------------------------------------------------------------------------
// Tasks
// -----------------------------------------------------------------------------

// SaveTasks replaces the whole task collection.
func (s *Store) SaveTasks(tasks []todo.Task) error {
	return s.writeDocument(KeyTasks, tasksDocument{
		Tasks:       tasks,
		LastUpdated: time.Now(),
	})
}

// GetTasks returns the task collection, empty when nothing (readable) is
// stored.
func (s *Store) GetTasks() ([]todo.Task, error) {
	var doc tasksDocument
	if _, err := s.readDocument(KeyTasks, &doc); err != nil {
		return nil, err
	}
	return doc.Tasks, nil
}

// GetTask returns the task with the given ID.
func (s *Store) GetTask(id string) (*todo.Task, error) {
	tasks, err := s.GetTasks()
	if err != nil {
		return nil, err
	}
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, errors.NewNotFoundError("task", id)
}

// AddTask appends a task to the collection.
func (s *Store) AddTask(task todo.Task) error {
	tasks, err := s.GetTasks()
	if err != nil {
		return err
	}
	return s.SaveTasks(append(tasks, task))
}

// UpdateTask replaces the stored task carrying the same ID and refreshes
// its update timestamp. An absent ID is a silent no-op, mirroring the
// whole-collection rewrite this operation is.
func (s *Store) UpdateTask(task todo.Task) error {
	tasks, err := s.GetTasks()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID == task.ID {
			task.UpdatedAt = time.Now()
			tasks[i] = task
			break
		}
	}
	return s.SaveTasks(tasks)
}

// TaskPatch is a partial task update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
}

// PatchTask applies a partial update to the task with the given ID and
// refreshes its update timestamp. Fails with NotFoundError when the ID is
// absent.
func (s *Store) PatchTask(id string, patch TaskPatch) error {
	tasks, err := s.GetTasks()
	if err != nil {
		return err
	}
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			tasks[i].Title = *patch.Title
		}
		if patch.Description != nil {
			tasks[i].Description = *patch.Description
		}
		if patch.Category != nil {
			tasks[i].Category = *patch.Category
		}
		tasks[i].UpdatedAt = time.Now()
		return s.SaveTasks(tasks)
	}
	return errors.NewNotFoundError("task", id)
}

// DeleteTask removes the task with the given ID. Removing an absent ID is
// a no-op.
func (s *Store) DeleteTask(id string) error {
	tasks, err := s.GetTasks()
	if err != nil {
		return err
	}
	kept := tasks[:0]
	for i := range tasks {
		if tasks[i].ID != id {
			kept = append(kept, tasks[i])
		}
	}
	return s.SaveTasks(kept)
}

// UpdateTaskStep sets the completion flag of exactly one step and re-derives
// the task's counters and status. Exactly on the transition into completed it
// appends one completion log whose duration spans the task's creation to its
// completion. Calling it again with the same flag value is safe: the save
// re-runs but the log side effect fires only on the edge.
func (s *Store) UpdateTaskStep(taskID, stepID string, completed bool) error {
	tasks, err := s.GetTasks()
	if err != nil {
		return err
	}

	var task *todo.Task
	for i := range tasks {
		if tasks[i].ID == taskID {
			task = &tasks[i]
			break
		}
	}
	if task == nil {
		return errors.NewNotFoundError("task", taskID)
	}

	step := task.Step(stepID)
	if step == nil {
		return errors.NewNotFoundError("step", stepID)
	}

	now := time.Now()
	prevStatus := task.Status

	step.Completed = completed
	if completed {
		if step.CompletedAt == nil {
			step.CompletedAt = &now
		}
	} else {
		step.CompletedAt = nil
	}

	task.Recount()
	task.UpdatedAt = now

	completedNow := prevStatus != todo.StatusCompleted && task.Status == todo.StatusCompleted
	if completedNow {
		task.CompletedAt = &now
	} else if task.Status != todo.StatusCompleted {
		task.CompletedAt = nil
	}

	if err := s.SaveTasks(tasks); err != nil {
		return err
	}

	if completedNow {
		// Duration deliberately spans the whole task lifetime, not the sum
		// of per-step estimates; the statistics semantics depend on it.
		minutes := int(math.Round(now.Sub(task.CreatedAt).Minutes()))
		log := todo.CompletionLog{
			ID:            todo.GenerateID(),
			TaskID:        task.ID,
			TaskTitle:     task.Title,
			StepID:        todo.TaskCompleteStepID,
			CompletedAt:   now,
			Duration:      minutes,
			Encouragement: step.Encouragement,
		}
		if err := s.AddCompletionLog(log); err != nil {
			return err
		}
		s.logger.Info("task completed", "task_id", task.ID, "duration_minutes", minutes)
	}

	return nil
}

// -----------------------------------------------------------------------------
// Settings
// -----------------------------------------------------------------------------

// GetSettings returns the stored settings merged over the documented
// defaults; stored keys win. An empty store yields pure defaults.
func (s *Store) GetSettings() (todo.Settings, error) {
	doc := settingsDocument{Settings: todo.DefaultSettings()}
	if _, err := s.readDocument(KeySettings, &doc); err != nil {
		return todo.DefaultSettings(), err
	}
	return doc.Settings, nil
}

// SaveSettings replaces the settings object wholesale.
func (s *Store) SaveSettings(settings todo.Settings) error {
	return s.writeDocument(KeySettings, settingsDocument{
		Settings:    settings,
		LastUpdated: time.Now(),
	})
}

// -----------------------------------------------------------------------------
// Completion logs & statistics
// -----------------------------------------------------------------------------

// AddCompletionLog appends a log entry and folds it into the per-day
// statistics bucket (and the weekly/monthly rollups) for the entry's
// calendar date. There is no transaction across the two keys.
func (s *Store) AddCompletionLog(log todo.CompletionLog) error {
	var logs logsDocument
	if _, err := s.readDocument(KeyLogs, &logs); err != nil {
		return err
	}
	logs.Logs = append(logs.Logs, log)
	logs.LastUpdated = time.Now()
	if err := s.writeDocument(KeyLogs, logs); err != nil {
		return err
	}

	stats := statisticsDocument{Statistics: todo.NewStatistics()}
	if _, err := s.readDocument(KeyStatistics, &stats); err != nil {
		return err
	}
	stats.Record(log)
	stats.LastUpdated = time.Now()
	return s.writeDocument(KeyStatistics, stats)
}

// GetCompletionLogs returns every completion log, oldest first.
func (s *Store) GetCompletionLogs() ([]todo.CompletionLog, error) {
	var doc logsDocument
	if _, err := s.readDocument(KeyLogs, &doc); err != nil {
		return nil, err
	}
	return doc.Logs, nil
}

// GetStatistics returns the aggregate statistics buckets.
func (s *Store) GetStatistics() (todo.Statistics, error) {
	doc := statisticsDocument{Statistics: todo.NewStatistics()}
	if _, err := s.readDocument(KeyStatistics, &doc); err != nil {
		return todo.NewStatistics(), err
	}
	return doc.Statistics, nil
}

// GetTaskStatistics derives the summary over the current task collection.
func (s *Store) GetTaskStatistics() (todo.TaskStatistics, error) {
	tasks, err := s.GetTasks()
	if err != nil {
		return todo.TaskStatistics{}, err
	}
	return todo.Summarize(tasks), nil
}

// RebuildStatistics recomputes every bucket from the completion-log
// collection. This is the only path that recomputes from scratch; normal
// operation is incremental.
func (s *Store) RebuildStatistics() error {
	logs, err := s.GetCompletionLogs()
	if err != nil {
		return err
	}
	stats := statisticsDocument{Statistics: todo.NewStatistics()}
	for _, log := range logs {
		stats.Record(log)
	}
	stats.LastUpdated = time.Now()
	return s.writeDocument(KeyStatistics, stats)
}

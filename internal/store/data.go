package store

import (
	"encoding/json"
	"time"

	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/todo"
)

// AssumedQuota is the fixed storage budget the usage indicator is reported
// against. It is informational only and never enforced.
const AssumedQuota = 5 * 1024 * 1024 // 5 MiB

// Export is the union of all four entity collections plus the export time.
type Export struct {
	Tasks      []todo.Task          `json:"tasks"`
	Settings   *todo.Settings       `json:"settings,omitempty"`
	Statistics *todo.Statistics     `json:"statistics,omitempty"`
	Logs       []todo.CompletionLog `json:"completionLogs"`
	ExportedAt time.Time            `json:"exportedAt"`
}

// StorageInfo reports serialized usage for a progress indicator.
type StorageInfo struct {
	Used       int64   `json:"used"` // bytes
	Total      int64   `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ExportData collects every entity collection into one blob.
func (s *Store) ExportData() (*Export, error) {
	tasks, err := s.GetTasks()
	if err != nil {
		return nil, err
	}
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}
	stats, err := s.GetStatistics()
	if err != nil {
		return nil, err
	}
	logs, err := s.GetCompletionLogs()
	if err != nil {
		return nil, err
	}

	return &Export{
		Tasks:      tasks,
		Settings:   &settings,
		Statistics: &stats,
		Logs:       logs,
		ExportedAt: time.Now(),
	}, nil
}

// ImportData restores collections from an exported blob. The blob may be
// partial: only the top-level keys present are overwritten, in a fixed
// order (tasks, settings, statistics, logs). Beyond structural presence
// there is no schema validation; a malformed nested value fails that key
// and aborts the remaining steps, leaving earlier keys already imported.
func (s *Store) ImportData(data []byte) error {
	var blob map[string]json.RawMessage
	if err := json.Unmarshal(data, &blob); err != nil {
		return errors.NewValidationError("import blob is not a JSON object", err)
	}

	if raw, ok := blob["tasks"]; ok {
		var tasks []todo.Task
		if err := json.Unmarshal(raw, &tasks); err != nil {
			return errors.NewValidationError("malformed tasks collection", err).WithField("tasks")
		}
		if err := s.SaveTasks(tasks); err != nil {
			return err
		}
	}

	if raw, ok := blob["settings"]; ok {
		settings := todo.DefaultSettings()
		if err := json.Unmarshal(raw, &settings); err != nil {
			return errors.NewValidationError("malformed settings object", err).WithField("settings")
		}
		if err := s.SaveSettings(settings); err != nil {
			return err
		}
	}

	if raw, ok := blob["statistics"]; ok {
		stats := todo.NewStatistics()
		if err := json.Unmarshal(raw, &stats); err != nil {
			return errors.NewValidationError("malformed statistics object", err).WithField("statistics")
		}
		doc := statisticsDocument{Statistics: stats, LastUpdated: time.Now()}
		if err := s.writeDocument(KeyStatistics, doc); err != nil {
			return err
		}
	}

	if raw, ok := blob["completionLogs"]; ok {
		var logs []todo.CompletionLog
		if err := json.Unmarshal(raw, &logs); err != nil {
			return errors.NewValidationError("malformed completion logs", err).WithField("completionLogs")
		}
		doc := logsDocument{Logs: logs, LastUpdated: time.Now()}
		if err := s.writeDocument(KeyLogs, doc); err != nil {
			return err
		}
	}

	return nil
}

// ClearAllData deletes every storage key. Irreversible.
func (s *Store) ClearAllData() error {
	for _, key := range AllKeys() {
		if err := s.medium.Delete(key); err != nil {
			return errors.NewStorageError("delete failed", err).WithKey(key)
		}
	}
	return nil
}

// GetStorageInfo sums the serialized size of every document against the
// assumed quota.
func (s *Store) GetStorageInfo() StorageInfo {
	var used int64
	for _, key := range AllKeys() {
		used += s.medium.Size(key)
	}
	return StorageInfo{
		Used:       used,
		Total:      AssumedQuota,
		Percentage: float64(used) / float64(AssumedQuota) * 100,
	}
}

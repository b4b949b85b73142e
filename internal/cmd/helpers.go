package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"github.com/stepmate/stepmate/internal/config"
	"github.com/stepmate/stepmate/internal/decompose"
	"github.com/stepmate/stepmate/internal/errors"
	"github.com/stepmate/stepmate/internal/logging"
	"github.com/stepmate/stepmate/internal/store"
	"github.com/stepmate/stepmate/internal/todo"
)

// openStore builds the store over the configured data directory. The
// returned logger must be closed by the caller.
func openStore() (*store.Store, *logging.Logger, error) {
	cfg := config.Get()
	dataDir := cfg.Paths.ResolveDataDir()

	logger := logging.NopLogger()
	if cfg.Logging.Enabled {
		var err error
		logger, err = logging.NewLogger(dataDir, cfg.Logging.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
	}

	medium, err := store.NewFileMedium(afero.NewOsFs(), dataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	return store.New(medium, logger.WithComponent("store")), logger, nil
}

// buildClient creates the decomposition client from the stored settings
// and the transport config.
func buildClient(settings todo.Settings, logger *logging.Logger) *decompose.Client {
	cfg := config.Get()
	return decompose.NewClient(settings.APIKey, settings.Model,
		decompose.WithBaseURL(cfg.API.BaseURL),
		decompose.WithTimeout(cfg.API.Timeout()),
		decompose.WithLogger(logger.WithComponent("decompose")),
	)
}

// createTask decomposes a goal, derives the category, and persists the
// new task.
func createTask(ctx context.Context, client *decompose.Client, st *store.Store, goal string) (*todo.Task, error) {
	steps, err := client.Decompose(ctx, goal)
	if err != nil {
		return nil, err
	}

	task := todo.NewTask(goal, goal, steps)
	task.Category = todo.DeriveCategory(goal)

	if err := st.AddTask(*task); err != nil {
		return nil, err
	}
	return task, nil
}

// findTask resolves a task reference: an exact ID first, then a unique
// ID prefix.
func findTask(st *store.Store, ref string) (*todo.Task, error) {
	tasks, err := st.GetTasks()
	if err != nil {
		return nil, err
	}

	var match *todo.Task
	for i := range tasks {
		if tasks[i].ID == ref {
			return &tasks[i], nil
		}
		if strings.HasPrefix(tasks[i].ID, ref) {
			if match != nil {
				return nil, fmt.Errorf("task reference %q is ambiguous", ref)
			}
			match = &tasks[i]
		}
	}
	if match == nil {
		return nil, errors.NewNotFoundError("task", ref)
	}
	return match, nil
}

// resolveStep maps a step reference to a step ID. A plain number is
// treated as the 1-based position; anything else as a step ID.
func resolveStep(task *todo.Task, ref string) (string, error) {
	var n int
	if _, err := fmt.Sscanf(ref, "%d", &n); err == nil && fmt.Sprintf("%d", n) == ref {
		if n < 1 || n > len(task.Steps) {
			return "", fmt.Errorf("step %d out of range (task has %d steps)", n, len(task.Steps))
		}
		return task.Steps[n-1].ID, nil
	}

	for i := range task.Steps {
		if task.Steps[i].ID == ref {
			return ref, nil
		}
	}
	return "", errors.NewNotFoundError("step", ref)
}

// statusLabel renders a task status for list output.
func statusLabel(s todo.Status) string {
	switch s {
	case todo.StatusPending:
		return "待开始"
	case todo.StatusInProgress:
		return "进行中"
	case todo.StatusCompleted:
		return "已完成"
	default:
		return string(s)
	}
}

// shortID returns the display form of a task ID.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

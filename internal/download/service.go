package download

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"pkt.systems/pslog"

	"github.com/ytget/plymouth-manager/internal/model"
)

// Service runs catalog installs: download the archive, then hand it to the installer
type Service struct {
	tasks      map[string]*model.InstallTask
	tasksMutex sync.RWMutex
	fetcher    *Fetcher
	installer  ArchiveInstaller
	onUpdate   func(*model.InstallTask) // callback for UI updates
	updateMu   sync.RWMutex
}

// NewService creates a new install service
func NewService(fetcher *Fetcher, installer ArchiveInstaller) *Service {
	return &Service{
		tasks:     make(map[string]*model.InstallTask),
		fetcher:   fetcher,
		installer: installer,
	}
}

// SetUpdateCallback sets the callback function for task updates.
// The callback receives a snapshot and may run on any goroutine.
func (s *Service) SetUpdateCallback(callback func(*model.InstallTask)) {
	s.updateMu.Lock()
	s.onUpdate = callback
	s.updateMu.Unlock()
}

// AddTask queues an install of entry and starts it immediately
func (s *Service) AddTask(ctx context.Context, entry model.CatalogEntry) (*model.InstallTask, error) {
	if entry.ArchiveURL == "" {
		return nil, fmt.Errorf("catalog entry %q has no archive URL", entry.Name)
	}

	s.tasksMutex.Lock()
	for _, task := range s.tasks {
		if task.URL == entry.ArchiveURL && !task.Status.IsFinished() {
			s.tasksMutex.Unlock()
			return nil, fmt.Errorf("%w for URL: %s", ErrTaskExists, entry.ArchiveURL)
		}
	}

	task := &model.InstallTask{
		ID:        generateTaskID(),
		URL:       entry.ArchiveURL,
		Name:      entry.Name,
		Status:    model.TaskStatusPending,
		StartedAt: time.Now(),
	}
	s.tasks[task.ID] = task
	snapshot := *task
	s.tasksMutex.Unlock()

	go s.runTask(ctx, task)

	return &snapshot, nil
}

// GetTask returns a snapshot of a task by ID
func (s *Service) GetTask(id string) (*model.InstallTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[id]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns snapshots of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.InstallTask {
	s.tasksMutex.RLock()
	tasks := make([]*model.InstallTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	s.tasksMutex.RUnlock()

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// RemoveTask forgets a finished task
func (s *Service) RemoveTask(id string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[id]
	if !exists {
		return fmt.Errorf("task not found: %s", id)
	}
	if !task.Status.IsFinished() {
		return fmt.Errorf("task is still running: %s", task.Status)
	}
	delete(s.tasks, id)
	return nil
}

// runTask downloads and installs a single entry
func (s *Service) runTask(ctx context.Context, task *model.InstallTask) {
	logger := pslog.Ctx(ctx).With("task", task.ID, "url", task.URL)

	s.update(task, func(t *model.InstallTask) {
		t.Status = model.TaskStatusDownloading
	})

	path, err := s.fetcher.Download(ctx, task.URL, func(p model.Progress) {
		s.update(task, func(t *model.InstallTask) {
			if p.Fraction >= t.Progress {
				t.Progress = p.Fraction
				t.Percent = p.Percent()
			}
			t.Speed = p.Throughput
		})
	})
	if err != nil {
		logger.Warn("theme download failed", "error", err)
		s.fail(task, err)
		return
	}

	s.update(task, func(t *model.InstallTask) {
		t.Status = model.TaskStatusInstalling
	})

	theme, err := s.installer.InstallFromArchive(ctx, path)
	if err != nil {
		logger.Warn("theme install failed", "error", err)
		s.fail(task, err)
		return
	}

	logger.Info("theme installed", "theme", theme.ID)
	s.update(task, func(t *model.InstallTask) {
		t.Status = model.TaskStatusCompleted
		t.Progress = 1.0
		t.Percent = 100
		t.ThemeID = theme.ID
		t.FinishedAt = time.Now()
	})
}

func (s *Service) fail(task *model.InstallTask, err error) {
	s.update(task, func(t *model.InstallTask) {
		t.Status = model.TaskStatusError
		t.LastError = err.Error()
		t.FinishedAt = time.Now()
	})
}

// update mutates task under the lock and publishes a snapshot
func (s *Service) update(task *model.InstallTask, mutate func(*model.InstallTask)) {
	s.tasksMutex.Lock()
	mutate(task)
	snapshot := *task
	s.tasksMutex.Unlock()

	s.notifyUpdate(&snapshot)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.InstallTask) {
	s.updateMu.RLock()
	callback := s.onUpdate
	s.updateMu.RUnlock()
	if callback != nil {
		callback(task)
	}
}

// generateTaskID generates a unique, time-ordered task ID
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("task-%d", time.Now().UnixNano())
	}
	return "task-" + id.String()
}

package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/checksum"
	"github.com/starford/orion/internal/models"
)

// Store loads and saves the whole task list as one data file.
type Store struct {
	provider Provider
	name     string
	logger   *slog.Logger

	// checksum of the bytes last loaded or saved; empty before the first sync
	lastSum string
}

// Open returns a Store for the data file at path on the local file system.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage: data file path is empty")
	}
	fsys, err := NewFS(filepath.Dir(path))
	if err != nil {
		return nil, err
	}
	return NewStore(fsys, filepath.Base(path), logger), nil
}

// NewStore returns a Store for the file name under provider.
func NewStore(provider Provider, name string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		provider: provider,
		name:     name,
		logger:   logger.With(slog.String("data_file", name)),
	}
}

// Load reads every task from the data file. A missing file yields an empty
// list. Blank lines are skipped.
func (s *Store) Load() ([]models.Task, error) {
	exists, err := s.provider.Exists(s.name)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrLoad, "Failed to load tasks:", err)
	}
	if !exists {
		s.logger.Debug("data file not found, starting empty")
		return []models.Task{}, nil
	}

	data, err := s.provider.Read(s.name)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrLoad, "Failed to load tasks:", err)
	}

	tasks := make([]models.Task, 0)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := Decode(line)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	s.lastSum = checksum.Sum(data)
	s.logger.Info("tasks loaded", slog.Int("tasks", len(tasks)))
	return tasks, nil
}

// Save replaces the data file with a snapshot of tasks.
func (s *Store) Save(tasks []models.Task) error {
	var b strings.Builder
	for _, t := range tasks {
		b.WriteString(Encode(t))
		b.WriteByte('\n')
	}
	content := []byte(b.String())

	s.warnIfChangedOnDisk()

	if err := s.provider.Write(s.name, content); err != nil {
		return apperr.Wrap(apperr.ErrSave, "Failed to save tasks:", err)
	}
	s.lastSum = checksum.Sum(content)
	s.logger.Debug("tasks saved", slog.Int("tasks", len(tasks)))
	return nil
}

// warnIfChangedOnDisk logs when the file no longer holds the bytes this
// store last saw. The in-memory list still wins.
func (s *Store) warnIfChangedOnDisk() {
	if s.lastSum == "" {
		return
	}
	current, err := s.provider.Read(s.name)
	if err != nil {
		s.logger.Warn("data file vanished since last sync", slog.String("error", err.Error()))
		return
	}
	if checksum.Sum(current) != s.lastSum {
		s.logger.Warn("data file changed on disk since last sync, overwriting")
	}
}

// Package jsonfile implements service.Service on a single JSON file.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"tasktracker/internal/service"
)

const tempSuffix = ".tmp"

// Store keeps the task collection in one JSON file. It holds no tasks in
// memory between calls: every operation reads the file and every mutation
// rewrites it.
type Store struct {
	fs     afero.Fs
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source for createdAt and updatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Store for the file at path on fsys.
func New(fsys afero.Fs, path string, opts ...Option) *Store {
	s := &Store{
		fs:     fsys,
		path:   path,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureExists creates the file with an empty array if it is missing.
func (s *Store) EnsureExists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := s.fs.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, service.IOError("checking "+s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return false, service.IOError("creating directory "+dir, err)
		}
	}
	if err := s.write(service.Collection{}); err != nil {
		return false, err
	}
	s.logger.Debug("created task file", "path", s.path)
	return true, nil
}

// Load reads and parses the whole file.
func (s *Store) Load(ctx context.Context) (service.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, service.IOError("reading "+s.path, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, service.ParseError(s.path, err)
	}
	if err := validateShape(doc); err != nil {
		return nil, service.ParseError(s.path, err)
	}

	var tasks service.Collection
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, service.ParseError(s.path, err)
	}
	if err := tasks.Validate(); err != nil {
		return nil, service.ParseError(s.path, err)
	}
	if tasks == nil {
		tasks = service.Collection{}
	}

	s.logger.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save overwrites the file with tasks.
func (s *Store) Save(ctx context.Context, tasks service.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.write(tasks); err != nil {
		return err
	}
	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// write encodes tasks to a temp file next to the store, then renames it over
// the store so readers never see a partial document.
func (s *Store) write(tasks service.Collection) error {
	if tasks == nil {
		tasks = service.Collection{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(tasks); err != nil {
		return service.IOError("encoding tasks", err)
	}

	tmp := s.path + tempSuffix
	defer func() { _ = s.fs.Remove(tmp) }()

	if err := afero.WriteFile(s.fs, tmp, buf.Bytes(), 0o644); err != nil {
		return service.IOError("writing "+tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		return service.IOError("replacing "+s.path, err)
	}
	return nil
}

// mutate loads the collection, applies fn and saves the result.
// Nothing is written if fn fails.
func (s *Store) mutate(ctx context.Context, fn func(*service.Collection) error) error {
	tasks, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if err := fn(&tasks); err != nil {
		return err
	}
	return s.Save(ctx, tasks)
}

// Add implements service.Service.
func (s *Store) Add(ctx context.Context, description string) (service.Task, error) {
	var added service.Task
	err := s.mutate(ctx, func(c *service.Collection) error {
		var err error
		added, err = c.Add(description, s.now())
		return err
	})
	return added, err
}

// Update implements service.Service.
func (s *Store) Update(ctx context.Context, id int, description string) (service.Task, error) {
	var updated service.Task
	err := s.mutate(ctx, func(c *service.Collection) error {
		var err error
		updated, err = c.Update(id, description, s.now())
		return err
	})
	return updated, err
}

// Delete implements service.Service.
func (s *Store) Delete(ctx context.Context, id int) error {
	return s.mutate(ctx, func(c *service.Collection) error {
		return c.Delete(id)
	})
}

// SetStatus implements service.Service.
func (s *Store) SetStatus(ctx context.Context, id int, status service.Status) (service.Task, error) {
	var updated service.Task
	err := s.mutate(ctx, func(c *service.Collection) error {
		var err error
		updated, err = c.SetStatus(id, status, s.now())
		return err
	})
	return updated, err
}

// List implements service.Service.
func (s *Store) List(ctx context.Context, status service.Status) ([]service.Task, error) {
	if status != "" {
		st, err := service.ParseStatus(string(status))
		if err != nil {
			return nil, err
		}
		status = st
	}
	tasks, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return tasks.Filter(status), nil
}

var _ service.Service = (*Store)(nil)

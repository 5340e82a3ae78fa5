// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"
	"time"

	"tasktracker/internal/service"
)

// FixedTime is the clock used by FakeService.
var FixedTime = time.Date(2026, time.October, 16, 15, 4, 5, 0, time.UTC)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu    sync.RWMutex
	tasks service.Collection

	// Created is what EnsureExists reports.
	Created bool

	// Saves counts successful mutations.
	Saves int

	// Error injection for testing
	EnsureExistsErr error
	AddErr          error
	UpdateErr       error
	DeleteErr       error
	SetStatusErr    error
	ListErr         error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{tasks: service.Collection{}}
}

// AddTask seeds a task with the given id, description and status.
func (f *FakeService) AddTask(id int, description string, status service.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{
		ID:          id,
		Description: description,
		Status:      status,
		CreatedAt:   service.FormatTimestamp(FixedTime),
	})
}

// Tasks returns a copy of the stored tasks.
func (f *FakeService) Tasks() service.Collection {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make(service.Collection, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// EnsureExists implements service.Service.
func (f *FakeService) EnsureExists(ctx context.Context) (bool, error) {
	if f.EnsureExistsErr != nil {
		return false, f.EnsureExistsErr
	}
	return f.Created, nil
}

// mutate applies fn to a copy and keeps it only on success, like a file store.
func (f *FakeService) mutate(fn func(*service.Collection) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next := make(service.Collection, len(f.tasks))
	copy(next, f.tasks)
	if err := fn(&next); err != nil {
		return err
	}
	f.tasks = next
	f.Saves++
	return nil
}

// Add implements service.Service.
func (f *FakeService) Add(ctx context.Context, description string) (service.Task, error) {
	if f.AddErr != nil {
		return service.Task{}, f.AddErr
	}
	var added service.Task
	err := f.mutate(func(c *service.Collection) error {
		var err error
		added, err = c.Add(description, FixedTime)
		return err
	})
	return added, err
}

// Update implements service.Service.
func (f *FakeService) Update(ctx context.Context, id int, description string) (service.Task, error) {
	if f.UpdateErr != nil {
		return service.Task{}, f.UpdateErr
	}
	var updated service.Task
	err := f.mutate(func(c *service.Collection) error {
		var err error
		updated, err = c.Update(id, description, FixedTime)
		return err
	})
	return updated, err
}

// Delete implements service.Service.
func (f *FakeService) Delete(ctx context.Context, id int) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	return f.mutate(func(c *service.Collection) error {
		return c.Delete(id)
	})
}

// SetStatus implements service.Service.
func (f *FakeService) SetStatus(ctx context.Context, id int, status service.Status) (service.Task, error) {
	if f.SetStatusErr != nil {
		return service.Task{}, f.SetStatusErr
	}
	var updated service.Task
	err := f.mutate(func(c *service.Collection) error {
		var err error
		updated, err = c.SetStatus(id, status, FixedTime)
		return err
	})
	return updated, err
}

// List implements service.Service.
func (f *FakeService) List(ctx context.Context, status service.Status) ([]service.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.tasks.Filter(status), nil
}

var _ service.Service = (*FakeService)(nil)

package service

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Collection is the ordered list of tasks persisted as one document.
// Operations mutate the collection in memory only; persisting it is the
// caller's job.
type Collection []Task

// NextID returns the id for a new task: max existing id + 1, or 1 if empty.
// Ids freed by deletes are never reused while a larger id exists.
func (c Collection) NextID() (int, error) {
	maxID := 0
	for _, t := range c {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID == math.MaxInt {
		return 0, UserErrorf("no task ID left after %d", maxID)
	}
	return maxID + 1, nil
}

func (c Collection) index(id int) int {
	for i, t := range c {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with id.
func (c Collection) Find(id int) (Task, error) {
	if err := checkID(id); err != nil {
		return Task{}, err
	}
	i := c.index(id)
	if i < 0 {
		return Task{}, NotFound(id)
	}
	return c[i], nil
}

// Add appends a new todo task and returns it.
func (c *Collection) Add(description string, now time.Time) (Task, error) {
	if err := checkDescription(description); err != nil {
		return Task{}, err
	}
	id, err := c.NextID()
	if err != nil {
		return Task{}, err
	}
	t := Task{
		ID:          id,
		Description: description,
		Status:      StatusTodo,
		CreatedAt:   FormatTimestamp(now),
	}
	*c = append(*c, t)
	return t, nil
}

// Update replaces the description of task id.
func (c Collection) Update(id int, description string, now time.Time) (Task, error) {
	if err := checkID(id); err != nil {
		return Task{}, err
	}
	if err := checkDescription(description); err != nil {
		return Task{}, err
	}
	i := c.index(id)
	if i < 0 {
		return Task{}, NotFound(id)
	}
	c[i].Description = description
	c[i].UpdatedAt = FormatTimestamp(now)
	return c[i], nil
}

// Delete removes task id, keeping the order of the remaining tasks.
func (c *Collection) Delete(id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	i := c.index(id)
	if i < 0 {
		return NotFound(id)
	}
	*c = append((*c)[:i], (*c)[i+1:]...)
	return nil
}

// SetStatus moves task id to status.
func (c Collection) SetStatus(id int, status Status, now time.Time) (Task, error) {
	if err := checkID(id); err != nil {
		return Task{}, err
	}
	st, err := ParseStatus(string(status))
	if err != nil {
		return Task{}, err
	}
	i := c.index(id)
	if i < 0 {
		return Task{}, NotFound(id)
	}
	c[i].Status = st
	c[i].UpdatedAt = FormatTimestamp(now)
	return c[i], nil
}

// Filter returns the tasks with status in their original order.
// An empty status matches every task.
func (c Collection) Filter(status Status) []Task {
	out := make([]Task, 0, len(c))
	for _, t := range c {
		if status == "" || t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks every record and that ids are unique.
func (c Collection) Validate() error {
	seen := make(map[int]bool, len(c))
	for i, t := range c {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		if seen[t.ID] {
			return fmt.Errorf("record %d: duplicate task ID %d", i, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

func checkID(id int) error {
	if id < 1 {
		return UserErrorf("invalid task ID: %d (must be a positive number)", id)
	}
	return nil
}

func checkDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &Error{Kind: KindUser, Err: ErrEmptyDescription}
	}
	return nil
}

// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, st := range Statuses {
		if string(st) == name {
			return st, nil
		}
	}
	return "", UserErrorf("invalid status %q (valid: todo, in-progress, done)", s)
}

// TimestampLayout is the format of createdAt and updatedAt.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Task represents a single task item.
// The JSON field names are the on-disk format.
type Task struct {
	ID          int    `json:"id" validate:"gt=0"`
	Description string `json:"task" validate:"required"`
	Status      Status `json:"status" validate:"required,oneof=todo in-progress done"`
	CreatedAt   string `json:"createdAt" validate:"required"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

var validate = newValidator()

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the field rules of a single task record.
func (t Task) Validate() error {
	err := validate.Struct(t)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	e := verrs[0]
	return fmt.Errorf("task %d: field %s failed rule %q (value: %v)", t.ID, e.Field(), e.Tag(), e.Value())
}

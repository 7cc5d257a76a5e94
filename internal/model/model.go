package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// TaskID is the server-assigned task identifier. The client treats it as
// opaque: ids are compared and embedded in request paths, never parsed.
type TaskID string

// UnmarshalJSON accepts both string and numeric ids. The wire format uses
// whatever the server's primary key type is, and deployments differ.
func (id *TaskID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = TaskID(n.String())
	return nil
}

func (id TaskID) String() string { return string(id) }

// Task is a titled, completable to-do item. Task state is owned by the remote
// service; the client only ever holds a snapshot of the last fetch.
type Task struct {
	ID        TaskID `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter selects a subset of tasks for display. It is transient UI state and
// is never persisted.
type Filter int

const (
	FilterAll Filter = iota
	FilterPending
	FilterCompleted
)

func (f Filter) String() string {
	switch f {
	case FilterPending:
		return "pending"
	case FilterCompleted:
		return "completed"
	default:
		return "all"
	}
}

// ParseFilter resolves a filter name case-insensitively. The empty string
// means "all". The second return reports whether the name was recognized.
func ParseFilter(s string) (Filter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return FilterAll, true
	case "pending", "open":
		return FilterPending, true
	case "completed", "done":
		return FilterCompleted, true
	default:
		return FilterAll, false
	}
}

// Next cycles all -> pending -> completed -> all. The TUI binds this to a
// single key.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterPending
	case FilterPending:
		return FilterCompleted
	default:
		return FilterAll
	}
}

func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	default:
		return true
	}
}

// Apply returns the tasks selected by f, preserving fetch order. The result
// is always a fresh slice so callers can't mutate the snapshot through it.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Package tasklist holds the client-side task snapshot and the
// fire-and-refetch mutation flow around it.
//
// The snapshot is always a full copy of the last successful fetch. Mutations
// are never applied locally: each write goes to the service and, on success,
// is followed by exactly one re-fetch that replaces the snapshot wholesale.
// A failed call leaves the snapshot untouched (stale, but never corrupt).
package tasklist

import (
	"context"
	"strings"
	"sync"

	"taskdeck/internal/api"
	"taskdeck/internal/model"
)

// Controller owns the local task snapshot and the display filter.
//
// The mutex only guarantees memory safety: overlapping operations are not
// ordered or de-duplicated, so the last response to land wins.
type Controller struct {
	svc api.Service

	mu     sync.RWMutex
	tasks  []model.Task
	filter model.Filter
}

func New(svc api.Service) *Controller {
	return &Controller{svc: svc}
}

// Refresh fetches all tasks and replaces the snapshot. On failure the prior
// snapshot stays in place and the error is returned.
func (c *Controller) Refresh(ctx context.Context) error {
	tasks, err := c.svc.FetchAll(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()
	return nil
}

// Create sends a new pending task and re-fetches. An empty or
// whitespace-only title is rejected locally: no request is made and no error
// is reported.
func (c *Controller) Create(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}
	if _, err := c.svc.Create(ctx, title, false); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// ToggleComplete flips a task's completed flag, re-sending the cached title,
// then re-fetches.
//
// TODO: when id is not in the snapshot this sends an empty title, which
// clobbers the server-side title. Fix needs either a fetch-before-update
// here or a partial update on the server.
func (c *Controller) ToggleComplete(ctx context.Context, id model.TaskID) error {
	title := ""
	completed := false
	if t, ok := c.find(id); ok {
		title = t.Title
		completed = t.Completed
	}
	if _, err := c.svc.Update(ctx, id, title, !completed); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Rename replaces a task's title, preserving the cached completed flag, then
// re-fetches.
func (c *Controller) Rename(ctx context.Context, id model.TaskID, title string) error {
	completed := false
	if t, ok := c.find(id); ok {
		completed = t.Completed
	}
	if _, err := c.svc.Update(ctx, id, title, completed); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Remove deletes a task, then re-fetches.
func (c *Controller) Remove(ctx context.Context, id model.TaskID) error {
	if err := c.svc.Delete(ctx, id); err != nil {
		return err
	}
	return c.Refresh(ctx)
}

// Tasks returns a copy of the full snapshot.
func (c *Controller) Tasks() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.Task(nil), c.tasks...)
}

// Visible returns the snapshot with the current filter applied.
func (c *Controller) Visible() []model.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter.Apply(c.tasks)
}

// Counts reports total and completed task counts for the status line.
func (c *Controller) Counts() (total, completed int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.Completed {
			completed++
		}
	}
	return len(c.tasks), completed
}

func (c *Controller) Filter() model.Filter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

func (c *Controller) SetFilter(f model.Filter) {
	c.mu.Lock()
	c.filter = f
	c.mu.Unlock()
}

// CycleFilter advances the filter (all -> pending -> completed) and returns
// the new value.
func (c *Controller) CycleFilter() model.Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = c.filter.Next()
	return c.filter
}

func (c *Controller) find(id model.TaskID) (model.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Package testutil provides testing utilities shared across packages.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"taskdeck/internal/model"
)

// ErrNotFound is returned when a task id is unknown to the fake.
var ErrNotFound = errors.New("not found")

// UpdateCall records the arguments of one Update request as seen by the
// "server".
type UpdateCall struct {
	ID        model.TaskID
	Title     string
	Completed bool
}

// FakeService is an in-memory api.Service. Tests seed it with tasks, inject
// per-operation errors, and assert on call counters.
type FakeService struct {
	mu     sync.Mutex
	tasks  []model.Task
	nextID int

	// Error injection.
	FetchErr  error
	CreateErr error
	UpdateErr error
	DeleteErr error

	// Call counters.
	FetchCalls  int
	CreateCalls int
	UpdateCalls int
	DeleteCalls int

	// LastUpdate holds the most recent Update request, defect hunting included.
	LastUpdate *UpdateCall
}

// NewFakeService creates an empty fake.
func NewFakeService() *FakeService {
	return &FakeService{}
}

// Seed replaces the fake's task set.
func (f *FakeService) Seed(tasks ...model.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]model.Task(nil), tasks...)
}

// AddTask appends a task with a generated id and returns it.
func (f *FakeService) AddTask(title string, completed bool) model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.addLocked(title, completed)
}

func (f *FakeService) addLocked(title string, completed bool) model.Task {
	f.nextID++
	t := model.Task{
		ID:        model.TaskID(fmt.Sprintf("task-%d", f.nextID)),
		Title:     title,
		Completed: completed,
	}
	f.tasks = append(f.tasks, t)
	return t
}

// FetchAll implements api.Service.
func (f *FakeService) FetchAll(ctx context.Context) ([]model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FetchCalls++
	if f.FetchErr != nil {
		return nil, f.FetchErr
	}
	return append([]model.Task(nil), f.tasks...), nil
}

// Create implements api.Service.
func (f *FakeService) Create(ctx context.Context, title string, completed bool) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreateCalls++
	if f.CreateErr != nil {
		return model.Task{}, f.CreateErr
	}
	return f.addLocked(title, completed), nil
}

// Update implements api.Service.
func (f *FakeService) Update(ctx context.Context, id model.TaskID, title string, completed bool) (model.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UpdateCalls++
	if f.UpdateErr != nil {
		return model.Task{}, f.UpdateErr
	}
	f.LastUpdate = &UpdateCall{ID: id, Title: title, Completed: completed}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = title
			f.tasks[i].Completed = completed
			return f.tasks[i], nil
		}
	}
	return model.Task{}, ErrNotFound
}

// Delete implements api.Service.
func (f *FakeService) Delete(ctx context.Context, id model.TaskID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Tasks returns a copy of the fake's current task set.
func (f *FakeService) Tasks() []model.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Task(nil), f.tasks...)
}

// Package api defines the contract with the remote to-do service and its
// HTTP implementation.
//
// Everything above this package (CLI commands, the TUI, the task-list
// controller) talks to the service exclusively through the Service
// interface and never touches net/http directly.
package api

import (
	"context"

	"taskdeck/internal/model"
)

// Service is the backend task API.
type Service interface {
	// FetchAll returns every task the service knows about, in server order.
	FetchAll(ctx context.Context) ([]model.Task, error)

	// Create creates a task and returns the server's copy (with its id).
	Create(ctx context.Context, title string, completed bool) (model.Task, error)

	// Update replaces a task's title and completed flag.
	Update(ctx context.Context, id model.TaskID, title string, completed bool) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id model.TaskID) error
}

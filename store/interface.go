package store

import "github.com/josephgoksu/todo/models"

// TaskStore defines the contract for persisting the task collection.
// The collection is always read and written as a whole; there is no
// per-task addressing in storage.
type TaskStore interface {
	// Load returns the full collection in stored order. A missing
	// backing file yields an empty collection and no error.
	Load() ([]models.Task, error)

	// Save serializes the entire collection and overwrites the
	// backing file.
	Save(tasks []models.Task) error

	// Path returns the location of the backing file.
	Path() string
}

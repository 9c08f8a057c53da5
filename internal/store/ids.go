package store

import "github.com/google/uuid"

// NewTaskID returns an opaque unique task identifier. Task ids are assigned
// once at creation and never change.
func NewTaskID() string {
	return uuid.NewString()
}

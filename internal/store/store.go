package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"taskspark/internal/model"
)

// Store is the durable backing store for sessions, task collections and the
// event log. All state lives in a single SQLite file under Dir.
type Store struct {
	Dir string
}

// ErrEmptyUsername rejects login with a blank or whitespace-only username.
// The persisted session is left untouched.
var ErrEmptyUsername = errors.New("username is empty")

const sessionKey = "username"

// TasksKey returns the key-value record key scoping a task collection to a
// session identity.
func TasksKey(username string) string {
	return "tasks_" + username
}

// DefaultDir resolves the data directory: TASKSPARK_DIR, else ~/.taskspark.
func DefaultDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("TASKSPARK_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskspark"), nil
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

// CurrentUser returns the persisted session identity, if any. This is how a
// new process restores the previous session without re-prompting.
func (s Store) CurrentUser(ctx context.Context) (string, bool, error) {
	v, ok, err := s.Get(ctx, sessionKey)
	if err != nil {
		return "", false, err
	}
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false, nil
	}
	return v, true, nil
}

// Login stores the trimmed username as the active session identity.
func (s Store) Login(ctx context.Context, username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", ErrEmptyUsername
	}
	if err := s.Set(ctx, sessionKey, username); err != nil {
		return "", err
	}
	return username, nil
}

// Logout clears the persisted session identity. The user's task collection
// stays in the store untouched.
func (s Store) Logout(ctx context.Context) error {
	return s.Delete(ctx, sessionKey)
}

// LoadTasks retrieves the task collection persisted for the given identity.
// A missing or unparseable payload loads as an empty collection; losing the
// record is recoverable, so it is never an error.
func (s Store) LoadTasks(ctx context.Context, username string) ([]model.Task, error) {
	raw, ok, err := s.Get(ctx, TasksKey(username))
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return []model.Task{}, nil
	}
	var out []model.Task
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []model.Task{}, nil
	}
	if out == nil {
		out = []model.Task{}
	}
	return out, nil
}

// SaveTasks persists the full canonical list for the given identity. Write
// failures propagate: silently losing user data is not acceptable here.
func (s Store) SaveTasks(ctx context.Context, username string, list []model.Task) error {
	if list == nil {
		list = []model.Task{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return s.Set(ctx, TasksKey(username), string(b))
}

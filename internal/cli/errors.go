package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type notLoggedInError struct{}

func (notLoggedInError) Error() string {
	return "not logged in; run `taskspark login <username>` (or pass --user)"
}

func errNotLoggedIn() error {
	return notLoggedInError{}
}

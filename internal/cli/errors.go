package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

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

var errEmptyTitle = errors.New("title is required")

type boardExistsError struct {
	key string
}

func (e boardExistsError) Error() string {
	return fmt.Sprintf("board already initialized under key %q (use --force to overwrite)", e.key)
}

type invalidArgError struct {
	name   string
	value  string
	expect string
}

func (e invalidArgError) Error() string {
	return fmt.Sprintf("invalid %s: %q (expected %s)", e.name, e.value, e.expect)
}

func parseIndex(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, invalidArgError{name: name, value: s, expect: "an integer"}
	}
	return n, nil
}

func requireTitle(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errEmptyTitle
	}
	return s, nil
}

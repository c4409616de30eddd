package pick

import (
	"errors"
	"fmt"
)

var ErrCategoryNotFound = errors.New("category not found")

// CategoryNotFoundError is returned by Engine.Pick for an unknown name.
type CategoryNotFoundError struct {
	Name string
}

func (e *CategoryNotFoundError) Error() string {
	return fmt.Sprintf("category `%s` was not found in the config", e.Name)
}

func (e *CategoryNotFoundError) Is(target error) bool {
	return target == ErrCategoryNotFound
}

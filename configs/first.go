package configs

import "errors"

// First reads the first definition of path, or the zero value when no
// config file defines it. Any other load failure is a panic: a present
// but broken config file should not be silently ignored.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

package formstate

import "github.com/google/uuid"

// newID mints a fresh unique identifier for a repeatable entity. IDs are stable
// for the entity's lifetime and are used for targeted update and removal.
func newID() string {
	return uuid.NewString()
}

// appendEntity returns a new slice with e appended, leaving the original intact.
func appendEntity[T any](list []T, e T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	return append(out, e)
}

// removeEntity returns a new slice without the entity whose id matches. A missing
// id is a no-op, not an error.
func removeEntity[T any](list []T, id string, idOf func(T) string) []T {
	out := make([]T, 0, len(list))
	for _, e := range list {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		// Keep an empty collection indistinguishable from a never-populated one.
		return nil
	}
	return out
}

// updateEntity returns a new slice where apply has been invoked on the entity
// whose id matches; all other entries are copied unchanged.
func updateEntity[T any](list []T, id string, idOf func(T) string, apply func(T) T) []T {
	out := make([]T, len(list))
	for i, e := range list {
		if idOf(e) == id {
			e = apply(e)
		}
		out[i] = e
	}
	return out
}

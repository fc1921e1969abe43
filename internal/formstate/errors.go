// Package formstate provides the in-memory form state containers for the profile
// and project README forms. Every operation produces a fresh state value; callers
// always observe a new copy and can detect change by comparing snapshots.
package formstate

import "fmt"

// UnknownFieldError reports a SetField or UpdateEntity call naming a field the
// target does not have.
type UnknownFieldError struct {
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field: %s", e.Field)
}

// UnknownCollectionError reports a collection operation naming a collection the
// form does not have.
type UnknownCollectionError struct {
	Collection string
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("unknown collection: %s", e.Collection)
}

package improve

import (
	"fmt"

	"github.com/google/uuid"
)

// EmptySectionError means the targeted section has no text to improve.
type EmptySectionError struct {
	Section string
}

func (e *EmptySectionError) Error() string {
	return fmt.Sprintf("%s has no content to improve", e.Section)
}

// EntryNotFoundError means the targeted entry ID is not in the record.
type EntryNotFoundError struct {
	Section string
	ID      uuid.UUID
}

func (e *EntryNotFoundError) Error() string {
	return fmt.Sprintf("%s entry %s not found", e.Section, e.ID)
}

package fit

import (
	"fmt"

	"github.com/google/uuid"
)

// NotFoundError indicates the referenced job record does not exist.
type NotFoundError struct {
	JobID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("job not found: %s", e.JobID)
}

// ProfileMissingError indicates the user has no stored profile to score.
type ProfileMissingError struct {
	UserID uuid.UUID
}

func (e *ProfileMissingError) Error() string {
	return fmt.Sprintf("no profile for user: %s", e.UserID)
}

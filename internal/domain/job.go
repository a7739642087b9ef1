package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")

// Job is a posting on the board. There is no owner reference: any
// authenticated user may create postings, and the mutation routes do not
// check identity at all (see router.go).
type Job struct {
	ID          string
	Title       string
	Company     string
	Location    string
	JobType     string
	Description string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// JobPatch carries a partial update. Nil fields keep their current value.
type JobPatch struct {
	Title       *string
	Company     *string
	Location    *string
	JobType     *string
	Description *string
}

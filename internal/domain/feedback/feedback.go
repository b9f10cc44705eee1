// Package feedback defines user feedback records and the pure statistics
// computed over them.  Persistence is behind the Repository interface; the
// postgres implementation lives in the infrastructure layer and this package
// never touches a database.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// Rating bounds.  Zero means "no rating given": the entry still counts
// toward totals but is excluded from averages.
const (
	MinRating = 0
	MaxRating = 5
)

// Entry is one stored feedback record.
type Entry struct {
	ID        uuid.UUID    `json:"id"`
	Question  string       `json:"question"`
	Answer    string       `json:"answer"`
	Rating    int          `json:"rating"`
	Comment   string       `json:"comment,omitempty"`
	Domain    legal.Domain `json:"domain"`
	CreatedAt time.Time    `json:"created_at"`
}

// Validate checks the entry's invariants before persistence.
func (e *Entry) Validate() error {
	if e.Question == "" {
		return errors.Validation("feedback question must not be empty")
	}
	if e.Rating < MinRating || e.Rating > MaxRating {
		return errors.Newf(errors.CodeInvalidRating,
			"rating %d outside allowed range %d..%d", e.Rating, MinRating, MaxRating)
	}
	return nil
}

// Repository persists feedback entries.  List returns entries ordered by
// CreatedAt descending.
type Repository interface {
	Append(ctx context.Context, entry *Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
	All(ctx context.Context) ([]Entry, error)
}

package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/feedback"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

var feedbackColumns = []string{"id", "question", "answer", "rating", "comment", "domain", "created_at"}

func TestFeedbackRepoAppend(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFeedbackRepo(db, logging.NewNopLogger())

	entry := &feedback.Entry{
		Question:  "I was fired",
		Answer:    "Based on your situation...",
		Rating:    4,
		Comment:   "helpful",
		Domain:    legal.DomainLabor,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs(sqlmock.AnyArg(), entry.Question, entry.Answer, entry.Rating,
			entry.Comment, "Labor Law", entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Append(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID, "a zero ID must be assigned on insert")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepoAppendKeepsProvidedID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFeedbackRepo(db, logging.NewNopLogger())
	id := uuid.New()

	mock.ExpectExec("INSERT INTO feedback").
		WithArgs(id, "q", "a", 5, "", "Civil Law", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &feedback.Entry{ID: id, Question: "q", Answer: "a", Rating: 5, Domain: legal.DomainCivil}
	require.NoError(t, repo.Append(context.Background(), entry))
	assert.Equal(t, id, entry.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepoAppendError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFeedbackRepo(db, logging.NewNopLogger())

	mock.ExpectExec("INSERT INTO feedback").
		WillReturnError(assert.AnError)

	err = repo.Append(context.Background(), &feedback.Entry{Question: "q"})
	assert.True(t, errors.IsCode(err, errors.CodeDatabaseError))
}

func TestFeedbackRepoList(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFeedbackRepo(db, logging.NewNopLogger())

	now := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(feedbackColumns).
		AddRow(uuid.New(), "q2", "a2", 5, "", "Labor Law", now).
		AddRow(uuid.New(), "q1", "a1", 3, "meh", "Civil Law", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM feedback").
		WithArgs(2).
		WillReturnRows(rows)

	entries, err := repo.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "q2", entries[0].Question)
	assert.Equal(t, legal.DomainCivil, entries[1].Domain)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFeedbackRepoAllEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewFeedbackRepo(db, logging.NewNopLogger())

	mock.ExpectQuery("SELECT (.+) FROM feedback").
		WillReturnRows(sqlmock.NewRows(feedbackColumns))

	entries, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

// Package repositories contains the SQL-backed persistence implementations.
package repositories

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/feedback"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// FeedbackRepo persists feedback entries in PostgreSQL.  It implements
// feedback.Repository.
type FeedbackRepo struct {
	db     *sql.DB
	logger logging.Logger
}

// NewFeedbackRepo builds a FeedbackRepo over db.
func NewFeedbackRepo(db *sql.DB, logger logging.Logger) *FeedbackRepo {
	return &FeedbackRepo{db: db, logger: logger}
}

// Append stores one feedback entry.  A zero ID is assigned before insert.
func (r *FeedbackRepo) Append(ctx context.Context, entry *feedback.Entry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	const query = `
		INSERT INTO feedback (id, question, answer, rating, comment, domain, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.Question, entry.Answer, entry.Rating,
		entry.Comment, string(entry.Domain), entry.CreatedAt,
	)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to insert feedback entry")
	}

	r.logger.Debug("feedback entry stored",
		logging.String("id", entry.ID.String()),
		logging.String("domain", string(entry.Domain)),
	)
	return nil
}

// List returns up to limit entries, newest first.
func (r *FeedbackRepo) List(ctx context.Context, limit int) ([]feedback.Entry, error) {
	const query = `
		SELECT id, question, answer, rating, comment, domain, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to query feedback entries")
	}
	defer rows.Close()

	return scanEntries(rows)
}

// All returns every stored entry, newest first.  The stats computations need
// the full data set.
func (r *FeedbackRepo) All(ctx context.Context) ([]feedback.Entry, error) {
	const query = `
		SELECT id, question, answer, rating, comment, domain, created_at
		FROM feedback
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to query feedback entries")
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]feedback.Entry, error) {
	entries := []feedback.Entry{}
	for rows.Next() {
		var (
			e      feedback.Entry
			domain string
		)
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Rating, &e.Comment, &domain, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to scan feedback row")
		}
		e.Domain = legal.Domain(domain)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to iterate feedback rows")
	}
	return entries, nil
}

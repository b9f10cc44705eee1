// Package feedback is the application service over the feedback domain:
// validation, domain attribution, persistence, and the derived statistics.
package feedback

import (
	"context"
	"time"

	domainfb "github.com/turtacn/LegalAid-Assistant/internal/domain/feedback"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/classify"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/prometheus"
)

// SubmitRequest is one feedback submission.
type SubmitRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Service stores feedback and computes statistics over it.
type Service struct {
	repo    domainfb.Repository
	logger  logging.Logger
	metrics *prometheus.AppMetrics
	events  kafka.Publisher
	now     func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithMetrics attaches the metric set.
func WithMetrics(metrics *prometheus.AppMetrics) Option {
	return func(s *Service) { s.metrics = metrics }
}

// WithEvents attaches the analytics publisher.
func WithEvents(events kafka.Publisher) Option {
	return func(s *Service) { s.events = events }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires the feedback service over repo.
func NewService(repo domainfb.Repository, logger logging.Logger, opts ...Option) *Service {
	s := &Service{
		repo:    repo,
		logger:  logger,
		metrics: prometheus.NewNopAppMetrics(),
		events:  kafka.NopPublisher{},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit validates and stores one feedback entry.  The legal domain is
// attributed by classifying the original question.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domainfb.Entry, error) {
	entry := &domainfb.Entry{
		Question:  req.Question,
		Answer:    req.Answer,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Domain:    classify.Classify(req.Question),
		CreatedAt: s.now().UTC(),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	s.metrics.RecordFeedback(entry.Rating, entry.Domain.String())
	s.events.Publish(ctx, kafka.Event{
		Type:   kafka.EventFeedback,
		Domain: entry.Domain,
		Rating: entry.Rating,
	})
	s.logger.Info("feedback stored",
		logging.String("id", entry.ID.String()),
		logging.String("domain", entry.Domain.String()),
		logging.Int("rating", entry.Rating),
	)
	return entry, nil
}

// Stats returns the aggregate statistics over all stored feedback.
func (s *Service) Stats(ctx context.Context) (domainfb.Stats, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return domainfb.Stats{}, err
	}
	return domainfb.ComputeStats(entries), nil
}

// Performance returns per-domain rating summaries.
func (s *Service) Performance(ctx context.Context) (map[string]domainfb.Performance, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return domainfb.ComputePerformance(entries), nil
}

// Suggestions returns improvement suggestions derived from the ratings.
func (s *Service) Suggestions(ctx context.Context) ([]string, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}
	return domainfb.Suggestions(entries), nil
}

// Report renders the plain-text feedback analysis report.
func (s *Service) Report(ctx context.Context) (string, error) {
	entries, err := s.repo.All(ctx)
	if err != nil {
		return "", err
	}
	return domainfb.Report(entries, s.now()), nil
}

// Package assistant orchestrates the analysis pipeline and the dialog
// engine behind request/response DTOs the transport layers share.
package assistant

import (
	"context"
	"time"

	"github.com/turtacn/LegalAid-Assistant/internal/domain/advice"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/classify"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/dialog"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/extract"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/knowledge"
	"github.com/turtacn/LegalAid-Assistant/internal/domain/translate"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/document"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/storage/minio"
	"github.com/turtacn/LegalAid-Assistant/pkg/errors"
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

const defaultMaxDocumentBytes = 10 << 20

// Service is the application facade over the domain packages.
type Service struct {
	engine     *dialog.Engine
	logger     logging.Logger
	metrics    *prometheus.AppMetrics
	events     kafka.Publisher
	documents  minio.DocumentStore
	locks      *sessionLocks
	maxDocSize int64
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

// WithDocumentStore attaches the uploaded-document archive.
func WithDocumentStore(store minio.DocumentStore) Option {
	return func(s *Service) { s.documents = store }
}

// WithMaxDocumentSize caps uploaded document sizes in bytes.
func WithMaxDocumentSize(limit int64) Option {
	return func(s *Service) {
		if limit > 0 {
			s.maxDocSize = limit
		}
	}
}

// NewService wires the facade over store.
func NewService(store dialog.SessionStore, logger logging.Logger, opts ...Option) *Service {
	s := &Service{
		engine:     dialog.NewEngine(store, dialog.WithLogger(logger)),
		logger:     logger,
		metrics:    prometheus.NewNopAppMetrics(),
		events:     kafka.NopPublisher{},
		documents:  minio.NopStore{},
		locks:      newSessionLocks(),
		maxDocSize: defaultMaxDocumentBytes,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze runs the full single-shot pipeline over one question.  It never
// fails: empty input yields the General-Law response with no entities.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) AnalyzeResponse {
	start := time.Now()

	domain := classify.Classify(req.Text)
	bundle := knowledge.ForDomain(domain)
	situations := advice.DetectSituations(req.Text, bundle)
	entities := extract.Extract(req.Text)
	composed := advice.Compose(req.Text, domain)

	resp := AnalyzeResponse{
		Domain:     domain,
		Situations: situations,
		Entities:   entities,
		Advice:     composed,
		References: knowledge.References(domain),
		Forms:      knowledge.Forms(domain),
		Resources:  knowledge.Resources(domain),
		Search:     knowledge.Search(domain, req.Text),
	}

	s.metrics.RecordAnalysis(domain.String(), len(entities), true)
	s.metrics.ComposeDuration.WithLabelValues(domain.String()).Observe(time.Since(start).Seconds())
	s.publish(ctx, kafka.Event{
		Type:       kafka.EventAnalysis,
		Domain:     domain,
		Situations: situationKeys(situations),
		Entities:   len(entities),
	})
	return resp
}

// Chat runs one conversation turn.  Turns for the same session id are
// serialized; distinct sessions proceed concurrently.
func (s *Service) Chat(ctx context.Context, req ChatRequest) (ChatReply, error) {
	if req.SessionID == "" {
		return ChatReply{}, errors.New(errors.CodeValidation, "session id is required")
	}

	release := s.locks.acquire(req.SessionID)
	defer release()

	reply, err := s.engine.Turn(ctx, req.SessionID, req.Message)
	if err != nil {
		s.metrics.RecordError("dialog", string(errors.GetCode(err)))
		return ChatReply{}, err
	}

	s.metrics.DialogTurnsTotal.WithLabelValues("turn").Inc()
	s.metrics.DialogReplyLength.WithLabelValues().Observe(float64(len(reply.Message)))
	s.publish(ctx, kafka.Event{Type: kafka.EventChatTurn, SessionID: req.SessionID})

	return ChatReply{
		SessionID:   req.SessionID,
		Message:     reply.Message,
		Suggestions: reply.Suggestions,
	}, nil
}

// History returns the recorded turns for a session.  Unknown ids yield an
// empty history.
func (s *Service) History(ctx context.Context, sessionID string) ([]dialog.Turn, error) {
	return s.engine.History(ctx, sessionID)
}

// ClearSession drops a session's history and context.
func (s *Service) ClearSession(ctx context.Context, sessionID string) error {
	release := s.locks.acquire(sessionID)
	defer release()

	if err := s.engine.ClearSession(ctx, sessionID); err != nil {
		s.metrics.RecordError("dialog", string(errors.GetCode(err)))
		return err
	}
	s.metrics.SessionsCleared.WithLabelValues().Inc()
	return nil
}

// Translate converts assistant output between supported languages.
func (s *Service) Translate(ctx context.Context, req TranslateRequest) (TranslateResponse, error) {
	translated, err := translate.Translate(req.Text, req.SourceLang, req.TargetLang)
	if err != nil {
		s.metrics.TranslationsTotal.WithLabelValues(req.SourceLang, req.TargetLang, "error").Inc()
		return TranslateResponse{}, err
	}

	s.metrics.TranslationsTotal.WithLabelValues(req.SourceLang, req.TargetLang, "ok").Inc()
	s.publish(ctx, kafka.Event{Type: kafka.EventTranslation, Language: req.TargetLang})
	return TranslateResponse{
		Text:       translated,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	}, nil
}

// DetectLanguage identifies the language of a text.
func (s *Service) DetectLanguage(text string) (DetectLanguageResponse, error) {
	detection, err := translate.Detect(text)
	if err != nil {
		return DetectLanguageResponse{}, err
	}
	return DetectLanguageResponse{
		Code:      detection.Code,
		Language:  detection.Language,
		Reliable:  detection.Reliable,
		Supported: translate.Supported(detection.Code),
		Score:     detection.Score,
	}, nil
}

// SupportedLanguages lists the language codes the translator knows.
func (s *Service) SupportedLanguages() map[string]string {
	return translate.SupportedLanguages()
}

// ProcessDocument extracts text from an uploaded document, archives the
// original when object storage is enabled, and analyzes the extracted text.
func (s *Service) ProcessDocument(ctx context.Context, req DocumentRequest) (DocumentResponse, error) {
	format := document.Format(req.Filename)

	if int64(len(req.Data)) > s.maxDocSize {
		s.metrics.DocumentsProcessed.WithLabelValues(format, "too_large").Inc()
		return DocumentResponse{}, errors.Newf(errors.CodeDocumentTooLarge,
			"document exceeds the %d byte limit", s.maxDocSize)
	}

	text, err := document.Extract(req.Filename, req.Data)
	if err != nil {
		s.metrics.DocumentsProcessed.WithLabelValues(format, "error").Inc()
		s.metrics.RecordError("document", string(errors.GetCode(err)))
		return DocumentResponse{}, err
	}
	text = document.CleanText(text)

	// Archival is best-effort: a storage outage must not fail the analysis.
	objectKey, err := s.documents.Store(ctx, req.Filename, req.Data)
	if err != nil {
		s.logger.Warn("failed to archive uploaded document",
			logging.String("filename", req.Filename),
			logging.Err(err),
		)
		objectKey = ""
	}

	s.metrics.DocumentsProcessed.WithLabelValues(format, "ok").Inc()
	s.metrics.DocumentSizeBytes.WithLabelValues(format).Observe(float64(len(req.Data)))
	s.publish(ctx, kafka.Event{
		Type:      kafka.EventDocument,
		Filename:  req.Filename,
		SizeBytes: int64(len(req.Data)),
	})

	return DocumentResponse{
		Filename:  req.Filename,
		ObjectKey: objectKey,
		Text:      text,
		Analysis:  s.Analyze(ctx, AnalyzeRequest{Text: text}),
	}, nil
}

func (s *Service) publish(ctx context.Context, event kafka.Event) {
	s.events.Publish(ctx, event)
}

func situationKeys(situations []legal.Situation) []string {
	keys := make([]string, len(situations))
	for i, situation := range situations {
		keys[i] = string(situation.Key)
	}
	return keys
}

// Package kafka publishes analytics events about assistant usage to a
// Kafka topic.  Publishing is best-effort: a broker outage never fails the
// user-facing request.
package kafka

import (
	"time"

	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// EventType tags the analytics event payload.
type EventType string

const (
	EventAnalysis    EventType = "analysis"
	EventChatTurn    EventType = "chat_turn"
	EventFeedback    EventType = "feedback"
	EventDocument    EventType = "document"
	EventTranslation EventType = "translation"
)

// Event is the wire payload for one analytics record.  SessionID doubles as
// the partition key so a session's events stay ordered.
type Event struct {
	Type       EventType    `json:"type"`
	SessionID  string       `json:"session_id,omitempty"`
	Domain     legal.Domain `json:"domain,omitempty"`
	Situations []string     `json:"situations,omitempty"`
	Entities   int          `json:"entities,omitempty"`
	Rating     int          `json:"rating,omitempty"`
	Language   string       `json:"language,omitempty"`
	Filename   string       `json:"filename,omitempty"`
	SizeBytes  int64        `json:"size_bytes,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

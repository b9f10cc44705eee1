package assistant

import (
	"github.com/turtacn/LegalAid-Assistant/pkg/types/legal"
)

// AnalyzeRequest is one question to run through the full pipeline.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse carries everything the pipeline derives from one question.
type AnalyzeResponse struct {
	Domain     legal.Domain       `json:"domain"`
	Situations []legal.Situation  `json:"situations"`
	Entities   []legal.Entity     `json:"entities"`
	Advice     string             `json:"advice"`
	References []string           `json:"references"`
	Forms      []legal.Form       `json:"forms"`
	Resources  []legal.Resource   `json:"resources"`
	Search     legal.SearchResult `json:"search"`
}

// ChatRequest is one user turn in a conversation.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatReply is the bot's answer to one turn.
type ChatReply struct {
	SessionID   string   `json:"session_id"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// TranslateRequest translates assistant output between supported languages.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// TranslateResponse carries the translated text.
type TranslateResponse struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// DetectLanguageResponse reports the detected language of a text.
type DetectLanguageResponse struct {
	Code      string  `json:"code"`
	Language  string  `json:"language"`
	Reliable  bool    `json:"reliable"`
	Supported bool    `json:"supported"`
	Score     float64 `json:"score"`
}

// DocumentRequest is one uploaded document to extract and analyze.
type DocumentRequest struct {
	Filename string `json:"filename"`
	Data     []byte `json:"-"`
}

// DocumentResponse carries the extracted text, the archive key when object
// storage is enabled, and the analysis of the extracted text.
type DocumentResponse struct {
	Filename  string          `json:"filename"`
	ObjectKey string          `json:"object_key,omitempty"`
	Text      string          `json:"text"`
	Analysis  AnalyzeResponse `json:"analysis"`
}

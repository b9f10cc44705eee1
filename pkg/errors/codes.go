package errors

import "net/http"

// ErrorCode is the typed identifier of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string { return string(c) }

// Common error codes shared by every module.
const (
	CodeOK      ErrorCode = "OK"
	CodeUnknown ErrorCode = "COMMON_000"

	CodeInternal           ErrorCode = "COMMON_001"
	CodeBadRequest         ErrorCode = "COMMON_002"
	CodeUnauthorized       ErrorCode = "COMMON_003"
	CodeForbidden          ErrorCode = "COMMON_004"
	CodeNotFound           ErrorCode = "COMMON_005"
	CodeConflict           ErrorCode = "COMMON_006"
	CodeTooManyRequests    ErrorCode = "COMMON_007"
	CodeServiceUnavailable ErrorCode = "COMMON_008"
	CodeTimeout            ErrorCode = "COMMON_009"
	CodeValidation         ErrorCode = "COMMON_010"
	CodeSerialization      ErrorCode = "COMMON_011"
	CodeDatabaseError      ErrorCode = "COMMON_012"
	CodeCacheError         ErrorCode = "COMMON_013"
	CodeMessagingError     ErrorCode = "COMMON_014"
	CodeStorageError       ErrorCode = "COMMON_015"
)

// Classification module error codes.
const (
	// CodeInvalidDomain marks a domain label outside the closed set passed
	// across the API boundary.  Inside the pipeline unknown domains fall back
	// to Civil Law knowledge instead of raising this.
	CodeInvalidDomain ErrorCode = "CLS_001"
)

// Entity-extraction module error codes.
const (
	CodeExtractionFailed ErrorCode = "NER_001"
)

// Knowledge-base module error codes.
const (
	CodeKnowledgeMissing ErrorCode = "KB_001"
)

// Dialog module error codes.
const (
	CodeSessionNotFound  ErrorCode = "DLG_001"
	CodeSessionStoreDown ErrorCode = "DLG_002"
)

// Feedback module error codes.
const (
	CodeFeedbackNotFound ErrorCode = "FBK_001"
	CodeInvalidRating    ErrorCode = "FBK_002"
)

// Document-processing module error codes.
const (
	CodeUnsupportedFormat  ErrorCode = "DOC_001"
	CodeDocumentTooLarge   ErrorCode = "DOC_002"
	CodeDocumentUnreadable ErrorCode = "DOC_003"
)

// Translation module error codes.
const (
	CodeUnsupportedLanguage ErrorCode = "TRN_001"
	CodeDetectionFailed     ErrorCode = "TRN_002"
)

// HTTPStatusForCode maps an ErrorCode to the HTTP status the interfaces layer
// should respond with.  Codes without an explicit mapping are treated as
// internal server errors so that new codes fail safe.
func HTTPStatusForCode(code ErrorCode) int {
	switch code {
	case CodeOK:
		return http.StatusOK
	case CodeBadRequest, CodeValidation, CodeSerialization,
		CodeInvalidDomain, CodeInvalidRating,
		CodeUnsupportedFormat, CodeUnsupportedLanguage:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound, CodeSessionNotFound, CodeFeedbackNotFound, CodeKnowledgeMissing:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	case CodeDocumentTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeTooManyRequests:
		return http.StatusTooManyRequests
	case CodeServiceUnavailable, CodeSessionStoreDown:
		return http.StatusServiceUnavailable
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// IsClientError reports whether the code maps to a 4xx status.
func IsClientError(code ErrorCode) bool {
	s := HTTPStatusForCode(code)
	return s >= 400 && s < 500
}

// IsServerError reports whether the code maps to a 5xx status.
func IsServerError(code ErrorCode) bool {
	return HTTPStatusForCode(code) >= 500
}

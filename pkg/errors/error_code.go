package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInsufficientData     ErrorCode = 102
	ErrCodeMissingVolume        ErrorCode = 103
	ErrCodeDivisionByZero       ErrorCode = 104
	ErrCodeUnorderedSeries      ErrorCode = 105
	ErrCodeDuplicateTimestamp   ErrorCode = 106

	// Data/Resource errors (200-299)
	ErrCodeDataNotFound ErrorCode = 200
	ErrCodeNoDataFound  ErrorCode = 201

	// Report errors (400-499)
	ErrCodeReportRenderFailed ErrorCode = 400

	// Market data errors (700-799)
	ErrCodeMarketDataFetchFailed ErrorCode = 700
	ErrCodeMarketDataParseFailed ErrorCode = 701
	ErrCodeInvalidProvider       ErrorCode = 702
	ErrCodeInvalidLookback       ErrorCode = 703
	ErrCodeSymbolNotFound        ErrorCode = 704
)

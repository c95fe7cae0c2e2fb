package entity

// Severity classifies the outcome attached to every API response.
type Severity string

const (
	// SeveritySuccess means the operation completed as requested.
	SeveritySuccess Severity = "SUCCESS"
	// SeverityWarning means the client can correct the request, or the operation completed partially.
	SeverityWarning Severity = "WARNING"
	// SeverityError means a missing resource or a server-side failure.
	SeverityError Severity = "ERROR"
)

package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code     string `json:"code"`               // Business error code, e.g., "PHONE_NOT_FOUND"
	Details  string `json:"details,omitempty"`  // Detailed error information (optional)
	Severity string `json:"severity,omitempty"` // Presentation severity hint, e.g., "warning"
}

// Response is the unified envelope used by the error middleware when a
// handler lets an error escape to the boundary.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // User-friendly message
	Error   *ErrorInfo `json:"error,omitempty"`
}

package server

import "time"

// Server limits
const (
	MaxRequestBytes   = 1 << 20
	ReadHeaderTimeout = 5 * time.Second
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Metrics server starting"
	LogMsgServerStopped    = "Metrics server stopped"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgRunFailed        = "Requested run failed"
)

// HTTP error messages
const (
	ErrMsgInvalidBody      = "Invalid request body"
	ErrMsgScenarioNotFound = "Scenario not found"
	ErrMsgRunFailed        = "Run failed"
)

// HTTP header names
const (
	HeaderContentType     = "Content-Type"
	HeaderContentTypeOpts = "X-Content-Type-Options"
	HeaderFrameOptions    = "X-Frame-Options"
	HeaderReferrerPolicy  = "Referrer-Policy"
	ContentTypeJSON       = "application/json"
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
)

// Paths that are not logged per request
var QuietPaths = []string{
	"/healthz",
	"/metrics",
}

package scan

import "github.com/wrenfield/scan-inbox/internal/item"

// Mode selects the extraction strategy for a scan.
type Mode string

const (
	// ModeQuick runs the local heuristic detectors over recognized text.
	ModeQuick Mode = "quick"

	// ModeSmart sends the image to the remote vision model.
	ModeSmart Mode = "smart"
)

// Result is the uniform envelope every scan resolves into. Failures are
// represented as data: Success is false and Error carries the message, but
// Items is always present and never nil.
type Result struct {
	Success        bool        `json:"success"`
	Mode           Mode        `json:"mode"`
	Items          []item.Item `json:"items"`
	RawText        string      `json:"rawText,omitempty"`
	Error          string      `json:"error,omitempty"`
	ProcessingTime int64       `json:"processingTime"` // milliseconds

	cause error
}

// Cause returns the underlying failure, if any, so the transport layer can
// pick a status code. It is not serialized.
func (r Result) Cause() error {
	return r.cause
}

package scanning

import (
	"context"
	"errors"

	"github.com/wrenfield/scan-inbox/internal/item"
)

// Failure classes surfaced by a Scanner. The transport layer maps these to
// status codes; the orchestrator only carries them as data.
var (
	// ErrNoCredentials means the scanner's service credential is absent.
	ErrNoCredentials = errors.New("scanner credentials are not configured")

	// ErrNoImage means no image data was supplied.
	ErrNoImage = errors.New("no image data supplied")

	// ErrBadImage means the image payload could not be decoded or converted.
	ErrBadImage = errors.New("invalid image payload")

	// ErrUpstream means the remote model call itself failed.
	ErrUpstream = errors.New("model request failed")

	// ErrBadReply means the model reply was not valid JSON after fence
	// stripping.
	ErrBadReply = errors.New("model reply is not valid JSON")
)

// Scanner extracts actionable items from an image using a vision-language
// model. The returned string is the model's raw textual reply, retained for
// diagnostics. A zero-length item list is a valid successful outcome.
type Scanner interface {
	ScanImage(ctx context.Context, imageData []byte, contentType string) ([]item.Item, string, error)

	// Close closes the scanner and releases resources.
	Close() error
}

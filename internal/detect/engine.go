package detect

import (
	"strings"
	"time"

	"github.com/wrenfield/scan-inbox/internal/item"
)

// Detector scans recognized text for evidence of one item kind. Detectors
// are stateless, perform no I/O, and may run in any order.
type Detector interface {
	Detect(text string, lines []string) []item.Item
}

// Engine runs every registered detector over the same input and
// concatenates the results. Detectors are not mutually exclusive: text that
// mentions both a birthday and a gift card yields one item of each kind.
//
// Meeting-notes, workout-plan, and prescription kinds have no local
// detector here; only the remote model path produces them.
type Engine struct {
	detectors []Detector
}

// NewEngine creates an Engine with the full detector registry.
func NewEngine() *Engine {
	return NewEngineWithClock(time.Now)
}

// NewEngineWithClock creates an Engine with a custom clock for testing. The
// clock only feeds the receipt detector's current-date fallback.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{
		detectors: []Detector{
			birthdayDetector{},
			invitationDetector{},
			todoDetector{},
			receiptDetector{now: now},
			giftCardDetector{},
		},
	}
}

// Detect runs all detectors over the text. The result is never nil; text
// with no matching evidence yields an empty slice.
func (e *Engine) Detect(text string) []item.Item {
	lines := strings.Split(text, "\n")
	items := make([]item.Item, 0)
	for _, d := range e.detectors {
		items = append(items, d.Detect(text, lines)...)
	}
	return items
}

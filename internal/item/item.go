package item

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Kind classifies an extracted item. The payload shape is fixed per kind.
type Kind string

const (
	KindBirthday     Kind = "birthday"
	KindInvitation   Kind = "invitation"
	KindTodo         Kind = "todo"
	KindReceipt      Kind = "receipt"
	KindGiftCard     Kind = "gift-card"
	KindMeetingNotes Kind = "meeting-notes"
	KindWorkoutPlan  Kind = "workout-plan"
	KindPrescription Kind = "prescription"
)

// Item is a single actionable suggestion extracted from a scanned artifact.
// Items are created fresh on every scan and are immutable once produced.
type Item struct {
	ID                   string      `json:"id"`
	Kind                 Kind        `json:"type"`
	Confidence           float64     `json:"confidence"`
	Title                string      `json:"title"`
	Description          string      `json:"description,omitempty"`
	Payload              Payload     `json:"data,omitempty"`
	SuggestedDestination Destination `json:"suggestedDestination"`
	Icon                 string      `json:"icon"`
}

// New creates an Item with a fresh id, confidence clamped to [0, 1], and the
// destination and icon stamped from the routing table. Callers must never set
// SuggestedDestination or Icon themselves.
func New(kind Kind, confidence float64, title string, payload Payload) Item {
	dest, icon := Route(kind)
	return Item{
		ID:                   uuid.NewString(),
		Kind:                 kind,
		Confidence:           clampConfidence(confidence),
		Title:                title,
		Payload:              payload,
		SuggestedDestination: dest,
		Icon:                 icon,
	}
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// UnmarshalJSON decodes the payload into the typed struct matching the item's
// kind, so items read back from the history store keep their payload types.
func (it *Item) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID                   string          `json:"id"`
		Kind                 Kind            `json:"type"`
		Confidence           float64         `json:"confidence"`
		Title                string          `json:"title"`
		Description          string          `json:"description"`
		Data                 json.RawMessage `json:"data"`
		SuggestedDestination Destination     `json:"suggestedDestination"`
		Icon                 string          `json:"icon"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	payload, err := DecodePayload(raw.Kind, raw.Data)
	if err != nil {
		return err
	}
	*it = Item{
		ID:                   raw.ID,
		Kind:                 raw.Kind,
		Confidence:           raw.Confidence,
		Title:                raw.Title,
		Description:          raw.Description,
		Payload:              payload,
		SuggestedDestination: raw.SuggestedDestination,
		Icon:                 raw.Icon,
	}
	return nil
}

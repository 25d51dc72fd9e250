package item

import "encoding/json"

// Payload is the kind-specific record carried by an Item. Exactly one
// concrete payload type exists per kind; GenericPayload covers kinds this
// subsystem does not recognize.
type Payload interface {
	isPayload()
}

// BirthdayPayload carries the fields of a birthday item.
type BirthdayPayload struct {
	PersonName string `json:"personName"`
	Date       string `json:"date"` // ISO calendar date
	Recurring  bool   `json:"recurring"`
}

// InvitationPayload carries the fields of an invitation item.
type InvitationPayload struct {
	EventName string `json:"eventName"`
	Date      string `json:"date,omitempty"`
	Time      string `json:"time,omitempty"`
	Location  string `json:"location,omitempty"`
}

// TodoPayload carries either a single task (bullet-line form) or an
// aggregate list of lines (keyword fallback form).
type TodoPayload struct {
	Task     string   `json:"task,omitempty"`
	Priority string   `json:"priority,omitempty"`
	Items    []string `json:"items,omitempty"`
}

// ReceiptPayload carries the fields of a receipt item.
type ReceiptPayload struct {
	Merchant  string        `json:"merchant"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Date      string        `json:"date"`
	LineItems []ReceiptLine `json:"lineItems,omitempty"`
}

// ReceiptLine is a single line item on a receipt.
type ReceiptLine struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// GiftCardPayload carries the fields of a gift-card item.
type GiftCardPayload struct {
	Brand  string  `json:"brand"`
	Amount float64 `json:"amount"`
	Code   string  `json:"code,omitempty"`
}

// MeetingNotesPayload carries the fields of a meeting-notes item.
type MeetingNotesPayload struct {
	Subject     string   `json:"subject"`
	Date        string   `json:"date,omitempty"`
	Notes       string   `json:"notes,omitempty"`
	ActionItems []string `json:"actionItems,omitempty"`
}

// WorkoutPlanPayload carries the fields of a workout-plan item.
type WorkoutPlanPayload struct {
	PlanName  string   `json:"planName"`
	Exercises []string `json:"exercises,omitempty"`
}

// PrescriptionPayload carries the fields of a prescription item.
type PrescriptionPayload struct {
	Medication string `json:"medication"`
	Dosage     string `json:"dosage,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
	Prescriber string `json:"prescriber,omitempty"`
}

// GenericPayload holds the raw fields of an item whose kind has no
// dedicated payload type.
type GenericPayload map[string]any

func (BirthdayPayload) isPayload()     {}
func (InvitationPayload) isPayload()   {}
func (TodoPayload) isPayload()         {}
func (ReceiptPayload) isPayload()      {}
func (GiftCardPayload) isPayload()     {}
func (MeetingNotesPayload) isPayload() {}
func (WorkoutPlanPayload) isPayload()  {}
func (PrescriptionPayload) isPayload() {}
func (GenericPayload) isPayload()      {}

// DecodePayload unmarshals raw payload JSON into the typed struct for the
// given kind. Missing payloads decode to nil; payloads whose fields do not
// fit the typed struct fall back to GenericPayload rather than failing, and
// unknown kinds always decode generically.
func DecodePayload(kind Kind, data json.RawMessage) (Payload, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	switch kind {
	case KindBirthday:
		var p BirthdayPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindInvitation:
		var p InvitationPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindTodo:
		var p TodoPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindReceipt:
		var p ReceiptPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindGiftCard:
		var p GiftCardPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindMeetingNotes:
		var p MeetingNotesPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindWorkoutPlan:
		var p WorkoutPlanPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	case KindPrescription:
		var p PrescriptionPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return decodeGeneric(data)
		}
		return p, nil
	default:
		return decodeGeneric(data)
	}
}

func decodeGeneric(data json.RawMessage) (Payload, error) {
	var g GenericPayload
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return g, nil
}

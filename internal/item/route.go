package item

// Destination is the domain area an accepted item should be filed into. It
// is a UI routing hint for downstream code, not a binding contract.
type Destination string

const (
	DestEvent      Destination = "event"
	DestTask       Destination = "task"
	DestTodo       Destination = "todo"
	DestJournal    Destination = "journal"
	DestSafe       Destination = "safe"
	DestGiftCard   Destination = "gift-card"
	DestResolution Destination = "resolution"
)

// Route maps an item kind to its suggested destination and display icon.
// This table is the single source of truth for both extraction paths and is
// never overridden per item.
func Route(kind Kind) (Destination, string) {
	switch kind {
	case KindBirthday:
		return DestEvent, "🎂"
	case KindInvitation:
		return DestEvent, "💌"
	case KindTodo:
		return DestTodo, "✅"
	case KindReceipt:
		return DestSafe, "🧾"
	case KindGiftCard:
		return DestGiftCard, "🎁"
	case KindMeetingNotes:
		return DestTask, "📋"
	case KindWorkoutPlan:
		return DestResolution, "🏃"
	case KindPrescription:
		return DestSafe, "💊"
	default:
		return DestTask, "📄"
	}
}

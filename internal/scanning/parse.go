package scanning

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wrenfield/scan-inbox/internal/item"
)

// rawItem is the loosely typed shape the model replies with. Everything is
// optional; mapping fills defaults.
type rawItem struct {
	Type        string          `json:"type"`
	Confidence  *float64        `json:"confidence"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Data        json.RawMessage `json:"data"`
}

// parseItems turns a model reply into items. It strips any markdown code
// fences, locates the JSON array (tolerating a single bare object), and
// maps each entry with defaults: missing type becomes "todo", missing
// confidence 0.8, missing title "Untitled". Destination and icon are always
// recomputed from the routing table, never trusted from the model.
func parseItems(text string) ([]item.Item, error) {
	t := stripFences(text)

	raws, err := decodeRawItems(t)
	if err != nil {
		return nil, err
	}

	items := make([]item.Item, 0, len(raws))
	for _, r := range raws {
		items = append(items, mapItem(r))
	}
	return items, nil
}

func stripFences(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}

func decodeRawItems(t string) ([]rawItem, error) {
	start := strings.Index(t, "[")
	end := strings.LastIndex(t, "]")
	if start != -1 && end > start {
		var raws []rawItem
		if err := json.Unmarshal([]byte(t[start:end+1]), &raws); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
		}
		return raws, nil
	}

	// Some models reply with a single object despite the array contract.
	start = strings.Index(t, "{")
	end = strings.LastIndex(t, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("%w: no JSON array in reply", ErrBadReply)
	}
	var raw rawItem
	if err := json.Unmarshal([]byte(t[start:end+1]), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadReply, err)
	}
	return []rawItem{raw}, nil
}

func mapItem(r rawItem) item.Item {
	kind := item.Kind(strings.TrimSpace(r.Type))
	if kind == "" {
		kind = item.KindTodo
	}

	confidence := 0.8
	if r.Confidence != nil {
		confidence = *r.Confidence
	}

	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = "Untitled"
	}

	payload, err := item.DecodePayload(kind, r.Data)
	if err != nil {
		slog.Debug("discarding unreadable item payload", "type", kind, "error", err)
	}

	it := item.New(kind, confidence, title, payload)
	it.Description = strings.TrimSpace(r.Description)
	return it
}

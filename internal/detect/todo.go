package detect

import (
	"regexp"
	"strings"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var todoKeywordRe = regexp.MustCompile(`(?i)\b(to-?do|tasks?|checklist|action items?|errands|don't forget|remember to)\b`)

// todoDetector has two paths: every bullet or numbered line becomes its own
// item, and only when no such lines exist does a to-do keyword produce a
// single aggregate item holding the first lines of the text.
type todoDetector struct{}

const maxAggregateLines = 10

func (todoDetector) Detect(text string, lines []string) []item.Item {
	var items []item.Item
	for _, line := range lines {
		content, ok := bulletContent(line)
		if !ok {
			continue
		}
		items = append(items, item.New(item.KindTodo, 0.8, content, item.TodoPayload{
			Task:     content,
			Priority: "medium",
		}))
	}
	if len(items) > 0 {
		return items
	}

	if !todoKeywordRe.MatchString(text) {
		return nil
	}

	var kept []string
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if t == "" {
			continue
		}
		kept = append(kept, t)
		if len(kept) == maxAggregateLines {
			break
		}
	}

	it := item.New(item.KindTodo, 0.6, "To-do list", item.TodoPayload{Items: kept})
	return []item.Item{it}
}

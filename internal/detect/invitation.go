package detect

import (
	"regexp"
	"strings"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var (
	invitationKeywordRe = regexp.MustCompile(`(?i)\b(invited|invitation|invite|rsvp|join us|celebration|event)\b`)
	invitationNameRe    = regexp.MustCompile(`\b(?:[Tt]o|[Ff]or)\s+((?:[A-Z][\w'&-]*[ ]?){1,6})`)
	locationRe          = regexp.MustCompile(`(?i)\b(?:at|location|venue|address)\s*:?\s+(.{10,100})`)
)

// invitationDetector requires an invitation keyword; date and time tokens
// are optional extras.
type invitationDetector struct{}

func (invitationDetector) Detect(text string, lines []string) []item.Item {
	if !invitationKeywordRe.MatchString(text) {
		return nil
	}

	name := ""
	if m := invitationNameRe.FindStringSubmatch(text); m != nil {
		name = strings.TrimSpace(m[1])
	}
	if name == "" {
		name = firstNonEmptyLine(lines)
	}
	if name == "" {
		name = "Event"
	}

	payload := item.InvitationPayload{EventName: name}
	if date, ok := findDate(text); ok {
		payload.Date = date
	}
	if tm, ok := findTime(text); ok {
		payload.Time = tm
	}
	if m := locationRe.FindStringSubmatch(text); m != nil {
		payload.Location = strings.TrimSpace(m[1])
	}

	it := item.New(item.KindInvitation, 0.75, name, payload)
	it.Description = "Invitation"
	return []item.Item{it}
}

func firstNonEmptyLine(lines []string) string {
	for _, line := range lines {
		if t := strings.TrimSpace(line); t != "" {
			return t
		}
	}
	return ""
}

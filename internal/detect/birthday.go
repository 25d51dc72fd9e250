package detect

import (
	"regexp"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var (
	birthdayKeywordRe = regexp.MustCompile(`(?i)\b(birthday|b-?day|anniversary|born|turning)\b`)

	// Name extraction is deliberately case-sensitive on the captured name so
	// the keyword match cannot swallow a lowercase following word.
	birthdayNameRe = regexp.MustCompile(`\b(?:[Bb]irthday|[Bb]-?day|[Ff]or)[,!:]?\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)
)

// birthdayDetector requires a birthday keyword and a date token. Birthdays
// are always recurring.
type birthdayDetector struct{}

func (birthdayDetector) Detect(text string, lines []string) []item.Item {
	if !birthdayKeywordRe.MatchString(text) {
		return nil
	}
	date, ok := findDate(text)
	if !ok {
		return nil
	}

	name := "Unknown"
	if m := birthdayNameRe.FindStringSubmatch(text); m != nil {
		name = m[1]
	}

	title := name + "'s birthday"
	if name == "Unknown" {
		title = "Birthday"
	}

	it := item.New(item.KindBirthday, 0.7, title, item.BirthdayPayload{
		PersonName: name,
		Date:       date,
		Recurring:  true,
	})
	it.Description = "Birthday on " + date
	return []item.Item{it}
}

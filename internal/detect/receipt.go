package detect

import (
	"regexp"
	"strings"
	"time"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var (
	receiptKeywordRe = regexp.MustCompile(`(?i)\b(receipt|invoice|total|subtotal|tax|payment)\b`)
	merchantLineRe   = regexp.MustCompile(`^[A-Z][A-Za-z0-9&'. -]{2,39}$`)
)

// receiptDetector requires a receipt keyword. The merchant is the first
// capitalized line, the amount comes from a labeled total, and the date
// falls back to the current date.
type receiptDetector struct {
	now func() time.Time
}

func (d receiptDetector) Detect(text string, lines []string) []item.Item {
	if !receiptKeywordRe.MatchString(text) {
		return nil
	}

	amount, _ := findLabeledAmount(text)

	merchant := "Unknown Merchant"
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if merchantLineRe.MatchString(t) {
			merchant = t
			break
		}
	}

	date, ok := findNumericDate(text)
	if !ok {
		date = d.now().Format("2006-01-02")
	}

	it := item.New(item.KindReceipt, 0.7, "Receipt - "+merchant, item.ReceiptPayload{
		Merchant: merchant,
		Amount:   amount,
		Currency: "USD",
		Date:     date,
	})
	return []item.Item{it}
}

package detect

import (
	"regexp"
	"strings"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var (
	giftCardKeywordRe = regexp.MustCompile(`(?i)\b(gift\s?card|gift certificate|voucher)\b`)
	giftCardCodeRe    = regexp.MustCompile(`(?i)\b(?:code|pin|number)\s*:?\s*([A-Za-z0-9]{6,20})\b`)
)

// Retailers recognized by substring match. Anything else is Unknown Brand.
var knownBrands = []string{
	"Amazon", "Starbucks", "Target", "Walmart", "Apple", "iTunes",
	"Google Play", "Visa", "Mastercard", "Best Buy", "Home Depot",
	"Sephora", "Nike", "Netflix", "Steam",
}

type giftCardDetector struct{}

func (giftCardDetector) Detect(text string, lines []string) []item.Item {
	if !giftCardKeywordRe.MatchString(text) {
		return nil
	}

	amount, _ := findCurrencyAmount(text)

	brand := "Unknown Brand"
	lower := strings.ToLower(text)
	for _, b := range knownBrands {
		if strings.Contains(lower, strings.ToLower(b)) {
			brand = b
			break
		}
	}

	payload := item.GiftCardPayload{Brand: brand, Amount: amount}
	if m := giftCardCodeRe.FindStringSubmatch(text); m != nil {
		payload.Code = m[1]
	}

	title := brand + " gift card"
	if brand == "Unknown Brand" {
		title = "Gift card"
	}

	return []item.Item{item.New(item.KindGiftCard, 0.75, title, payload)}
}

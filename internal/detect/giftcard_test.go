package detect

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var _ = Describe("giftCardDetector", func() {
	var (
		text  string
		items []item.Item
	)

	JustBeforeEach(func() {
		items = giftCardDetector{}.Detect(text, strings.Split(text, "\n"))
	})

	When("a branded gift card is present", func() {
		BeforeEach(func() {
			text = "Starbucks Gift Card\nValue: $25.00\nCard number: ABC123XYZ9"
		})

		It("should detect one gift card", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Kind).To(Equal(item.KindGiftCard))
		})

		It("should match the brand against the allow-list", func() {
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Brand).To(Equal("Starbucks"))
		})

		It("should extract the amount", func() {
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Amount).To(Equal(25.0))
		})

		It("should extract the code", func() {
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Code).To(Equal("ABC123XYZ9"))
		})

		It("should report the fixed confidence", func() {
			Expect(items[0].Confidence).To(Equal(0.75))
		})

		It("should route to the gift-card destination", func() {
			Expect(items[0].SuggestedDestination).To(Equal(item.DestGiftCard))
		})
	})

	When("the brand is not on the allow-list", func() {
		BeforeEach(func() {
			text = "Joe's Diner gift certificate worth $15"
		})

		It("should default to Unknown Brand", func() {
			Expect(items).To(HaveLen(1))
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Brand).To(Equal("Unknown Brand"))
		})
	})

	When("no amount or code is present", func() {
		BeforeEach(func() {
			text = "amazon voucher inside"
		})

		It("should default the amount to zero and omit the code", func() {
			Expect(items).To(HaveLen(1))
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Amount).To(BeZero())
			Expect(payload.Code).To(BeEmpty())
		})

		It("should match the brand case-insensitively", func() {
			payload := items[0].Payload.(item.GiftCardPayload)
			Expect(payload.Brand).To(Equal("Amazon"))
		})
	})

	When("no gift-card keyword is present", func() {
		BeforeEach(func() {
			text = "Here is a card for your birthday"
		})

		It("should detect nothing", func() {
			Expect(items).To(BeEmpty())
		})
	})
})

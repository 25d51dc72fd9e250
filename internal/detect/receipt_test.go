package detect

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var _ = Describe("receiptDetector", func() {
	var (
		text  string
		items []item.Item
	)

	JustBeforeEach(func() {
		items = receiptDetector{now: fixedNow}.Detect(text, strings.Split(text, "\n"))
	})

	When("a full receipt is present", func() {
		BeforeEach(func() {
			text = "CVS Pharmacy\n123 Main St\n01/15/2024\nSUBTOTAL 23.99\nTAX 2.00\nTOTAL: $25.99"
		})

		It("should detect one receipt", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Kind).To(Equal(item.KindReceipt))
		})

		It("should take the merchant from the first capitalized line", func() {
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Merchant).To(Equal("CVS Pharmacy"))
		})

		It("should extract the labeled total", func() {
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Amount).To(Equal(25.99))
		})

		It("should extract the numeric date", func() {
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Date).To(Equal("2024-01-15"))
		})

		It("should report the fixed confidence", func() {
			Expect(items[0].Confidence).To(Equal(0.7))
		})

		It("should route to the safe", func() {
			Expect(items[0].SuggestedDestination).To(Equal(item.DestSafe))
		})
	})

	When("no amount pattern matches", func() {
		BeforeEach(func() {
			text = "payment received, thank you"
		})

		It("should default the amount to zero", func() {
			Expect(items).To(HaveLen(1))
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Amount).To(BeZero())
		})

		It("should default the merchant to Unknown Merchant", func() {
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Merchant).To(Equal("Unknown Merchant"))
		})
	})

	When("no date token is present", func() {
		BeforeEach(func() {
			text = "Corner Bakery\ninvoice enclosed"
		})

		It("should default to the current date", func() {
			Expect(items).To(HaveLen(1))
			payload := items[0].Payload.(item.ReceiptPayload)
			Expect(payload.Date).To(Equal("2024-06-01"))
		})
	})

	When("no receipt keyword is present", func() {
		BeforeEach(func() {
			text = "Shopping ideas for the weekend"
		})

		It("should detect nothing", func() {
			Expect(items).To(BeEmpty())
		})
	})
})

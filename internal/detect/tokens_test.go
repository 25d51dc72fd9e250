package detect

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("findDate", func() {
	It("should pass through ISO dates", func() {
		date, ok := findDate("appointment on 2024-03-15 downtown")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2024-03-15"))
	})

	It("should normalize numeric US dates", func() {
		date, ok := findDate("Born 05/12/1990.")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("1990-05-12"))
	})

	It("should swap month and day when the month is impossible", func() {
		date, ok := findDate("due 25/12/2024")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2024-12-25"))
	})

	It("should expand two-digit years", func() {
		date, ok := findDate("paid 1/2/24")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2024-01-02"))
	})

	It("should recognize Month Day, Year", func() {
		date, ok := findDate("party on June 14, 2025 at noon")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2025-06-14"))
	})

	It("should recognize abbreviated month names", func() {
		date, ok := findDate("due Sept 3, 2024")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2024-09-03"))
	})

	It("should recognize Day Month Year", func() {
		date, ok := findDate("wedding on 14 June 2025")
		Expect(ok).To(BeTrue())
		Expect(date).To(Equal("2025-06-14"))
	})

	It("should report no match for plain text", func() {
		_, ok := findDate("no dates here")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("findTime", func() {
	It("should match an hour with am/pm", func() {
		tm, ok := findTime("doors open at 7pm sharp")
		Expect(ok).To(BeTrue())
		Expect(tm).To(Equal("7pm"))
	})

	It("should match hour and minutes with am/pm", func() {
		tm, ok := findTime("starts 6:30 PM")
		Expect(ok).To(BeTrue())
		Expect(tm).To(Equal("6:30 PM"))
	})

	It("should match a bare 12-hour clock time", func() {
		tm, ok := findTime("meet at 11:45 in the lobby")
		Expect(ok).To(BeTrue())
		Expect(tm).To(Equal("11:45"))
	})

	It("should report no match without a time token", func() {
		_, ok := findTime("sometime this week")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("amount recognizers", func() {
	It("should match labeled totals", func() {
		amount, ok := findLabeledAmount("TOTAL: $42.75")
		Expect(ok).To(BeTrue())
		Expect(amount).To(Equal(42.75))
	})

	It("should match labeled amounts without a dollar sign", func() {
		amount, ok := findLabeledAmount("Amount paid 19.99")
		Expect(ok).To(BeTrue())
		Expect(amount).To(Equal(19.99))
	})

	It("should strip thousands separators", func() {
		amount, ok := findLabeledAmount("total $1,234.56")
		Expect(ok).To(BeTrue())
		Expect(amount).To(Equal(1234.56))
	})

	It("should match generic currency tokens", func() {
		amount, ok := findCurrencyAmount("worth $25 at any store")
		Expect(ok).To(BeTrue())
		Expect(amount).To(Equal(25.0))
	})

	It("should not match a bare number as currency", func() {
		_, ok := findCurrencyAmount("call 5551234")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("bulletContent", func() {
	It("should match dash bullets", func() {
		content, ok := bulletContent("- buy milk")
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("buy milk"))
	})

	It("should match unicode bullets", func() {
		content, ok := bulletContent("• water the plants")
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("water the plants"))
	})

	It("should match checkbox bullets", func() {
		content, ok := bulletContent("☐ schedule dentist")
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("schedule dentist"))
	})

	It("should match numbered lines with a dot", func() {
		content, ok := bulletContent("1. pack the suitcase")
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("pack the suitcase"))
	})

	It("should match numbered lines with a parenthesis", func() {
		content, ok := bulletContent("2) book the flight")
		Expect(ok).To(BeTrue())
		Expect(content).To(Equal("book the flight"))
	})

	It("should not match plain prose", func() {
		_, ok := bulletContent("we should probably buy milk")
		Expect(ok).To(BeFalse())
	})

	It("should not match a bare marker with no text", func() {
		_, ok := bulletContent("- ")
		Expect(ok).To(BeFalse())
	})
})

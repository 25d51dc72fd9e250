package detect

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/wrenfield/scan-inbox/internal/item"
)

var _ = Describe("birthdayDetector", func() {
	var (
		text  string
		items []item.Item
	)

	JustBeforeEach(func() {
		items = birthdayDetector{}.Detect(text, []string{text})
	})

	When("a keyword and a date are present", func() {
		BeforeEach(func() {
			text = "Happy Birthday John! Born 05/12/1990."
		})

		It("should detect one birthday", func() {
			Expect(items).To(HaveLen(1))
			Expect(items[0].Kind).To(Equal(item.KindBirthday))
		})

		It("should extract the person's name", func() {
			payload := items[0].Payload.(item.BirthdayPayload)
			Expect(payload.PersonName).To(Equal("John"))
		})

		It("should normalize the date", func() {
			payload := items[0].Payload.(item.BirthdayPayload)
			Expect(payload.Date).To(Equal("1990-05-12"))
		})

		It("should always mark the birthday recurring", func() {
			payload := items[0].Payload.(item.BirthdayPayload)
			Expect(payload.Recurring).To(BeTrue())
		})

		It("should report the fixed confidence", func() {
			Expect(items[0].Confidence).To(Equal(0.7))
		})

		It("should route to the event destination", func() {
			Expect(items[0].SuggestedDestination).To(Equal(item.DestEvent))
		})
	})

	When("no name pattern matches", func() {
		BeforeEach(func() {
			text = "anniversary reminder 10/03/2022"
		})

		It("should default the name to Unknown", func() {
			Expect(items).To(HaveLen(1))
			payload := items[0].Payload.(item.BirthdayPayload)
			Expect(payload.PersonName).To(Equal("Unknown"))
		})
	})

	When("there is a keyword but no date token", func() {
		BeforeEach(func() {
			text = "Happy birthday to you!"
		})

		It("should detect nothing", func() {
			Expect(items).To(BeEmpty())
		})
	})

	When("there is a date but no keyword", func() {
		BeforeEach(func() {
			text = "See you on 05/12/2024"
		})

		It("should detect nothing", func() {
			Expect(items).To(BeEmpty())
		})
	})
})

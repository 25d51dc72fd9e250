package scanning

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("Ollama", func() {
	var (
		server  *ghttp.Server
		scanner *Ollama
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		var err error
		scanner, err = NewOllama(server.URL(), "llava")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	When("the context is already canceled", func() {
		It("should keep context.Canceled visible through the upstream error", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, _, err := scanner.ScanImage(ctx, []byte("raw png bytes"), "image/png")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrUpstream)).To(BeTrue())
			Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		})
	})
})

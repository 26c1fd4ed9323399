package llm_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/llm"
)

var _ = Describe("EstimateCost", func() {
	It("prices gpt-4o input and output separately", func() {
		cost := llm.EstimateCost("gpt-4o", 1_000_000, 1_000_000)
		Expect(cost).To(BeNumerically("~", 12.50, 1e-9))
	})

	It("prices gpt-3.5 below gpt-4o", func() {
		cheap := llm.EstimateCost("gpt-3.5-turbo", 1_000_000, 0)
		Expect(cheap).To(BeNumerically("~", 0.50, 1e-9))
	})

	It("matches model names case-insensitively", func() {
		Expect(llm.EstimateCost("GPT-4o-2024-08-06", 1_000_000, 0)).
			To(BeNumerically("~", 2.50, 1e-9))
	})

	It("prefers the more specific gpt-4o price over gpt-4", func() {
		Expect(llm.EstimateCost("gpt-4o-mini", 0, 1_000_000)).
			To(BeNumerically("~", 10.00, 1e-9))
	})

	It("falls back to a default price for unknown models", func() {
		Expect(llm.EstimateCost("some-new-model", 1_000_000, 0)).
			To(BeNumerically("~", 2.50, 1e-9))
	})

	It("returns zero for zero tokens", func() {
		Expect(llm.EstimateCost("gpt-4o", 0, 0)).To(BeZero())
	})
})

package analysis_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/analysis"
)

var _ = Describe("SplitSections", func() {
	It("splits a plan into sections in document order", func() {
		text := "## Executive Summary\nOverview line.\n\n## Response Procedures\nStep one.\nStep two."

		sections := analysis.SplitSections(text)

		Expect(sections).To(HaveLen(2))
		Expect(sections[0].Title).To(Equal("Executive Summary"))
		Expect(sections[0].Content).To(Equal("Overview line.\n"))
		Expect(sections[1].Title).To(Equal("Response Procedures"))
		Expect(sections[1].Content).To(Equal("Step one.\nStep two."))
	})

	It("drops lines before the first header", func() {
		text := "# Incident Response Plan\npreamble text\n\n## Executive Summary\nOverview."

		sections := analysis.SplitSections(text)

		Expect(sections).To(HaveLen(1))
		Expect(sections[0].Title).To(Equal("Executive Summary"))
		Expect(sections[0].Content).To(Equal("Overview."))
	})

	It("ignores deeper headers as content", func() {
		text := "## Response Procedures\n### Ransomware\nIsolate hosts."

		sections := analysis.SplitSections(text)

		Expect(sections).To(HaveLen(1))
		Expect(sections[0].Content).To(Equal("### Ransomware\nIsolate hosts."))
	})

	It("keeps first position but later content for duplicate titles", func() {
		text := "## Scope\nfirst version\n## Communication Plan\nnotify legal\n## Scope\nsecond version"

		sections := analysis.SplitSections(text)

		Expect(sections).To(HaveLen(2))
		Expect(sections[0].Title).To(Equal("Scope"))
		Expect(sections[0].Content).To(Equal("second version"))
		Expect(sections[1].Title).To(Equal("Communication Plan"))
	})

	It("trims whitespace around titles", func() {
		sections := analysis.SplitSections("##   Executive Summary  \ncontent")

		Expect(sections).To(HaveLen(1))
		Expect(sections[0].Title).To(Equal("Executive Summary"))
	})

	It("returns nothing for empty input", func() {
		Expect(analysis.SplitSections("")).To(BeEmpty())
	})

	It("returns nothing when there are no headers", func() {
		Expect(analysis.SplitSections("just a paragraph\nanother line")).To(BeEmpty())
	})

	It("keeps a trailing header with empty content", func() {
		sections := analysis.SplitSections("## Executive Summary\ntext\n## Appendices")

		Expect(sections).To(HaveLen(2))
		Expect(sections[1].Title).To(Equal("Appendices"))
		Expect(sections[1].Content).To(Equal(""))
	})
})

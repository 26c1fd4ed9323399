package guardrails_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/guardrails"
)

var _ = Describe("Redactor", func() {
	var redactor *guardrails.Redactor

	BeforeEach(func() {
		redactor = guardrails.NewRedactor()
	})

	It("redacts email addresses", func() {
		out := redactor.Redact("Contact the IT lead at jane.doe@example.com for escalation.")
		Expect(out).To(Equal("Contact the IT lead at [EMAIL_REDACTED] for escalation."))
	})

	It("redacts phone numbers with and without separators", func() {
		Expect(redactor.Redact("Call 555-123-4567 immediately.")).
			To(Equal("Call [PHONE_REDACTED] immediately."))
		Expect(redactor.Redact("Hotline: 5551234567")).
			To(Equal("Hotline: [PHONE_REDACTED]"))
	})

	It("redacts social security numbers", func() {
		out := redactor.Redact("Employee SSN 123-45-6789 must never appear here.")
		Expect(out).To(Equal("Employee SSN [SSN_REDACTED] must never appear here."))
	})

	It("redacts credit card numbers", func() {
		out := redactor.Redact("Card on file: 4111-1111-1111-1111.")
		Expect(out).To(Equal("Card on file: [CREDIT_CARD_REDACTED]."))
	})

	It("redacts multiple kinds of PII in one pass", func() {
		out := redactor.Redact("Reach bob@corp.io or 555-123-4567.")
		Expect(out).To(Equal("Reach [EMAIL_REDACTED] or [PHONE_REDACTED]."))
	})

	It("leaves clean text untouched", func() {
		text := "Notify the response team lead and isolate affected hosts within 30 minutes."
		Expect(redactor.Redact(text)).To(Equal(text))
	})

	It("reports whether text contains PII", func() {
		Expect(redactor.ContainsPII("mail me at a@b.co")).To(BeTrue())
		Expect(redactor.ContainsPII("no identifiers here")).To(BeFalse())
	})
})

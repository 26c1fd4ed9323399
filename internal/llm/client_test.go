package llm_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ksamaarora/vciso-backend/internal/llm"
)

var _ = Describe("New", func() {
	It("requires an API key", func() {
		_, err := llm.New(llm.Config{})
		Expect(err).To(HaveOccurred())
	})

	It("reports the configured model", func() {
		client, err := llm.New(llm.Config{APIKey: "test-key", Model: "gpt-4o"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o"))
	})

	It("defaults the model when unset", func() {
		client, err := llm.New(llm.Config{APIKey: "test-key"})
		Expect(err).NotTo(HaveOccurred())
		Expect(client.Model()).To(Equal("gpt-4o"))
	})
})

var _ = Describe("GenerateSchema", func() {
	type payload struct {
		Severity string   `json:"severity" jsonschema:"enum=critical,enum=high"`
		Items    []string `json:"items"`
	}

	It("reflects a strict object schema", func() {
		schema := llm.GenerateSchema[payload]()

		raw, err := json.Marshal(schema)
		Expect(err).NotTo(HaveOccurred())

		var decoded map[string]any
		Expect(json.Unmarshal(raw, &decoded)).To(Succeed())
		Expect(decoded["type"]).To(Equal("object"))
		Expect(decoded["additionalProperties"]).To(Equal(false))

		props, ok := decoded["properties"].(map[string]any)
		Expect(ok).To(BeTrue())
		Expect(props).To(HaveKey("severity"))
		Expect(props).To(HaveKey("items"))
	})
})

var _ = Describe("Temp", func() {
	It("returns a pointer to the given value", func() {
		t := llm.Temp(0.3)
		Expect(t).To(HaveValue(BeNumerically("==", 0.3)))
	})
})

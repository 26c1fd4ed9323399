package llm

import "strings"

// Static per-model pricing in USD per 1M tokens. Estimates only, for the
// usage log line; stale prices are harmless.
type modelPrice struct {
	inputPerM  float64
	outputPerM float64
}

var prices = []struct {
	match string
	price modelPrice
}{
	{"gpt-3.5", modelPrice{inputPerM: 0.50, outputPerM: 1.50}},
	{"gpt-4o", modelPrice{inputPerM: 2.50, outputPerM: 10.00}},
	{"gpt-4", modelPrice{inputPerM: 2.50, outputPerM: 10.00}},
}

var defaultPrice = modelPrice{inputPerM: 2.50, outputPerM: 10.00}

// EstimateCost returns the estimated USD cost of a completion call.
func EstimateCost(model string, promptTokens, completionTokens int64) float64 {
	price := defaultPrice
	lower := strings.ToLower(model)
	for _, p := range prices {
		if strings.Contains(lower, p.match) {
			price = p.price
			break
		}
	}
	inputCost := float64(promptTokens) / 1_000_000 * price.inputPerM
	outputCost := float64(completionTokens) / 1_000_000 * price.outputPerM
	return inputCost + outputCost
}

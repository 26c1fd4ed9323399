package rag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ksamaarora/vciso-backend/internal/model"
)

// NoGuidanceFound is the sentinel produced when there are no passages to
// format. Callers must treat it as "skip analysis", never feed it to the
// model as if it were real guidance.
const NoGuidanceFound = "No relevant framework guidance found."

// FormatContext renders passages as a numbered citation block:
//
//	[1] NIST SP 800-61, Section 3.2 (Page 15) [Relevance: 0.89]:
//	"Incident response procedures should include..."
func FormatContext(passages []model.Passage) string {
	if len(passages) == 0 {
		return NoGuidanceFound
	}

	parts := make([]string, 0, len(passages))
	for i, p := range passages {
		source := p.Source
		if source == "" {
			source = "Unknown"
		}
		section := p.Section
		if section == "" {
			section = "Unknown Section"
		}
		page := "N/A"
		if p.Page != nil {
			page = strconv.Itoa(*p.Page)
		}
		citation := fmt.Sprintf("[%d] %s, %s (Page %s) [Relevance: %.2f]:\n\"%s\"\n",
			i+1, source, section, page, p.Score, p.Text)
		parts = append(parts, citation)
	}

	return strings.Join(parts, "\n\n")
}

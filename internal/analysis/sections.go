package analysis

import "strings"

// Section is one titled slice of an IR plan.
type Section struct {
	Title   string
	Content string
}

const sectionMarker = "## "

// SplitSections decomposes a Markdown plan into its second-level sections,
// in document order. Content runs from a "## " header to the next one,
// exclusive of both header lines. Lines before the first header are dropped.
// A duplicate title keeps its first position but takes the later content.
func SplitSections(text string) []Section {
	var (
		sections []Section
		position = make(map[string]int)
		current  = -1
		content  []string
	)

	flush := func() {
		if current < 0 {
			return
		}
		sections[current].Content = strings.Join(content, "\n")
		content = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, sectionMarker) {
			flush()
			title := strings.TrimSpace(strings.TrimPrefix(line, sectionMarker))
			if idx, seen := position[title]; seen {
				current = idx
			} else {
				position[title] = len(sections)
				current = len(sections)
				sections = append(sections, Section{Title: title})
			}
			content = nil
			continue
		}
		if current >= 0 {
			content = append(content, line)
		}
	}
	flush()

	return sections
}

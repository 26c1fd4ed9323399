package ingest

import "strings"

// Chunker splits text into overlapping chunks on a cascade of separators,
// preferring paragraph breaks, then lines, then sentences, then words, and
// finally hard character boundaries.
type Chunker struct {
	size       int
	overlap    int
	separators []string
}

func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = 1000
	}
	if overlap < 0 || overlap >= size {
		overlap = size / 5
	}
	return &Chunker{
		size:       size,
		overlap:    overlap,
		separators: []string{"\n\n", "\n", ". ", " ", ""},
	}
}

// Split returns chunks of at most the configured size. Adjacent chunks share
// up to `overlap` characters of trailing context.
func (c *Chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if len(text) <= c.size {
		return []string{text}
	}
	return c.split(text, c.separators)
}

func (c *Chunker) split(text string, separators []string) []string {
	sep := ""
	var rest []string
	for i, s := range separators {
		if s == "" {
			break
		}
		if strings.Contains(text, s) {
			sep = s
			rest = separators[i+1:]
			break
		}
	}
	if sep == "" {
		return c.hardSplit(text)
	}

	pieces := strings.Split(text, sep)
	sepLen := len(sep)

	var (
		chunks    []string
		window    []string
		windowLen int // joined length plus one separator of slack, so emitted chunks stay <= size
	)

	emit := func() {
		if len(window) == 0 {
			return
		}
		chunk := strings.Join(window, sep)
		if strings.TrimSpace(chunk) != "" {
			chunks = append(chunks, chunk)
		}
	}

	for _, piece := range pieces {
		if len(piece) > c.size {
			// Oversized piece: flush what we have and recurse with finer separators.
			emit()
			window = nil
			windowLen = 0
			chunks = append(chunks, c.split(piece, rest)...)
			continue
		}

		if windowLen+len(piece)+sepLen > c.size && len(window) > 0 {
			emit()
			// Keep a tail of pieces as overlap for the next chunk, shrinking
			// further if the retained tail plus this piece would not fit.
			for len(window) > 0 && (windowLen > c.overlap || windowLen+len(piece)+sepLen > c.size) {
				windowLen -= len(window[0]) + sepLen
				window = window[1:]
			}
		}

		window = append(window, piece)
		windowLen += len(piece) + sepLen
	}
	emit()

	return chunks
}

func (c *Chunker) hardSplit(text string) []string {
	step := c.size - c.overlap
	if step < 1 {
		step = c.size
	}
	var chunks []string
	for start := 0; start < len(text); start += step {
		end := start + c.size
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[start:end])
		if end == len(text) {
			break
		}
	}
	return chunks
}

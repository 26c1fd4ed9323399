package ingest

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ledongthuc/pdf"

	"github.com/ksamaarora/vciso-backend/common/logger"
	"github.com/ksamaarora/vciso-backend/internal/embedding"
	"github.com/ksamaarora/vciso-backend/internal/vectordb"
)

// FrameworkMeta describes one authoritative framework document.
type FrameworkMeta struct {
	File     string
	Source   string
	FullName string
	Version  string
	URL      string
}

// Frameworks is the fixed set of guidance corpora the service indexes.
var Frameworks = []FrameworkMeta{
	{
		File:     "nist_sp_800_61.pdf",
		Source:   "NIST SP 800-61",
		FullName: "Computer Security Incident Handling Guide",
		Version:  "Revision 2",
		URL:      "https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-61r2.pdf",
	},
	{
		File:     "cisa_guidelines.pdf",
		Source:   "CISA",
		FullName: "CISA Incident Response Guidelines",
		Version:  "2024",
		URL:      "https://www.cisa.gov/topics/cybersecurity-best-practices/incident-response",
	},
	{
		File:     "sans_framework.pdf",
		Source:   "SANS",
		FullName: "SANS Incident Handler's Handbook",
		Version:  "Latest",
		URL:      "https://www.sans.org/white-papers/incident-handlers-handbook/",
	},
}

const embedBatchSize = 100

// Indexer chunks framework PDFs, embeds the chunks and upserts them into the
// vector index. Chunk IDs are derived from source and location so re-indexing
// is idempotent.
type Indexer struct {
	embedder embedding.Provider
	index    vectordb.Index
	chunker  *Chunker
	dir      string
}

func NewIndexer(embedder embedding.Provider, index vectordb.Index, dir string) *Indexer {
	return &Indexer{
		embedder: embedder,
		index:    index,
		chunker:  NewChunker(1000, 200),
		dir:      dir,
	}
}

// IndexAll processes every known framework PDF under the configured directory.
// Missing files are skipped with a warning.
func (ix *Indexer) IndexAll(ctx context.Context) error {
	if _, err := os.Stat(ix.dir); err != nil {
		return fmt.Errorf("frameworks directory %s: %w", ix.dir, err)
	}

	var all []vectordb.Record
	for _, meta := range Frameworks {
		fctx := logger.WithLogFields(ctx, logger.LogFields{Framework: logger.Ptr(meta.Source)})

		path := filepath.Join(ix.dir, meta.File)
		if _, err := os.Stat(path); err != nil {
			slog.WarnContext(fctx, "framework PDF not found, skipping", "path", path)
			continue
		}

		records, err := ix.processPDF(fctx, path, meta)
		if err != nil {
			return fmt.Errorf("processing %s: %w", meta.File, err)
		}
		slog.InfoContext(fctx, "framework processed", "vectors", len(records))
		all = append(all, records...)
	}

	if len(all) == 0 {
		slog.WarnContext(ctx, "no vectors to upload")
		return nil
	}

	slog.InfoContext(ctx, "uploading vectors", "count", len(all))
	if err := ix.index.Upsert(ctx, all); err != nil {
		return fmt.Errorf("upserting vectors: %w", err)
	}
	return nil
}

type pageChunk struct {
	text string
	page int
}

func (ix *Indexer) processPDF(ctx context.Context, path string, meta FrameworkMeta) ([]vectordb.Record, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	defer f.Close()

	var chunks []pageChunk
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.WarnContext(ctx, "failed to extract page text", "page", pageNum, "error", err)
			continue
		}
		for _, chunk := range ix.chunker.Split(text) {
			chunks = append(chunks, pageChunk{text: chunk, page: pageNum})
		}
	}
	slog.DebugContext(ctx, "pdf chunked", "pages", reader.NumPage(), "chunks", len(chunks))

	records := make([]vectordb.Record, 0, len(chunks))
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.text
		}
		vectors, err := ix.embedder.EmbedBatch(ctx, texts)
		if err != nil {
			return nil, fmt.Errorf("embedding chunks: %w", err)
		}

		for i, c := range batch {
			idx := start + i
			page := c.page
			records = append(records, vectordb.Record{
				ID:     chunkID(meta.Source, c.page, idx),
				Vector: vectors[i],
				Metadata: vectordb.Metadata{
					Source:     meta.Source,
					Page:       &page,
					Text:       c.text,
					ChunkIndex: idx,
				},
			})
		}
	}

	return records, nil
}

// chunkID hashes source and location so the same chunk always gets the same ID.
func chunkID(source string, page, chunkIdx int) string {
	raw := fmt.Sprintf("%s-page%d-chunk%d", source, page, chunkIdx)
	sum := md5.Sum([]byte(raw))
	return hex.EncodeToString(sum[:])
}

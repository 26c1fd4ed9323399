package vectordb

import "context"

// Metadata is the citation payload stored alongside each vector.
type Metadata struct {
	Source     string
	Section    string
	Page       *int
	Text       string
	ChunkIndex int
}

// Record is one vector plus metadata to upsert into the index.
type Record struct {
	ID       string
	Vector   []float64
	Metadata Metadata
}

// Match is one nearest-neighbor result. Score is cosine similarity in [0,1].
type Match struct {
	ID       string
	Score    float64
	Metadata Metadata
}

// Stats reports index-level statistics, used by the readiness probe.
type Stats struct {
	NumDocuments int64
}

// Index stores vectors with metadata and answers approximate nearest-neighbor
// queries. sourceFilter, when non-empty, restricts matches to records whose
// source metadata equals it exactly.
type Index interface {
	Upsert(ctx context.Context, records []Record) error
	Query(ctx context.Context, vector []float64, topK int, sourceFilter string) ([]Match, error)
	Stats(ctx context.Context) (Stats, error)
}
